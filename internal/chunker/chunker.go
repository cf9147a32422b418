// Package chunker splits long document text into bounded, overlapping,
// sentence-boundary-respecting segments sized for the extraction service,
// and merges per-segment field maps back into one record.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Config bounds the splitter. Sizes are in bytes of UTF-8 text.
type Config struct {
	Size    int // target segment size
	Overlap int // bytes shared between consecutive segments
	MinSize int // texts shorter than this are returned whole
}

// DefaultConfig matches the extraction service's input budget.
func DefaultConfig() Config {
	return Config{Size: 4000, Overlap: 200, MinSize: 500}
}

// Segment is one bounded slice of a document's text. Start/End are byte
// offsets into the source; End reflects the pre-trim cut position so the
// windows cover the input.
type Segment struct {
	Index int
	Start int
	End   int
	Text  string
}

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

const (
	sentenceWindow   = 200 // search radius around the target cut for a sentence end
	whitespaceWindow = 100 // fallback radius for a plain space
)

// Split cuts text into segments of roughly cfg.Size bytes. Each boundary
// before the final segment prefers the sentence terminator nearest the
// target, then the nearest whitespace, then an exact cut. The next segment
// starts cfg.Overlap bytes before the previous end. Deterministic for the
// same text and config.
func Split(text string, cfg Config) []Segment {
	if cfg.Size <= 0 {
		cfg = DefaultConfig()
	}
	if len(text) < cfg.MinSize {
		return []Segment{{Index: 0, Start: 0, End: len(text), Text: text}}
	}

	var segments []Segment
	start := 0
	index := 0

	for start < len(text) {
		targetEnd := start + cfg.Size

		var cut int
		if targetEnd >= len(text) {
			cut = len(text)
		} else {
			cut = findCut(text, start, targetEnd)
		}

		segments = append(segments, Segment{
			Index: index,
			Start: start,
			End:   cut,
			Text:  strings.TrimSpace(text[start:cut]),
		})

		if cut >= len(text) {
			break
		}
		start = cut - cfg.Overlap
		if start < 0 {
			start = 0
		}
		index++
	}
	return segments
}

// findCut picks the boundary for a non-final segment.
func findCut(text string, start, targetEnd int) int {
	searchStart := targetEnd - sentenceWindow
	if searchStart < start {
		searchStart = start
	}
	searchEnd := targetEnd + sentenceWindow
	if searchEnd > len(text) {
		searchEnd = len(text)
	}

	// Nearest sentence terminator to the target.
	best := -1
	bestDist := -1
	for _, m := range sentenceEnd.FindAllStringIndex(text[searchStart:searchEnd], -1) {
		pos := searchStart + m[1]
		dist := pos - targetEnd
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best, bestDist = pos, dist
		}
	}
	if best != -1 {
		return best
	}

	// Nearest whitespace within the narrower window.
	wsFrom := targetEnd - whitespaceWindow
	if wsFrom < start {
		wsFrom = start
	}
	wsTo := targetEnd + whitespaceWindow
	if wsTo > len(text) {
		wsTo = len(text)
	}
	if sp := strings.LastIndex(text[wsFrom:wsTo], " "); sp != -1 {
		return wsFrom + sp
	}

	// Exact cut, backed off to a rune boundary.
	cut := targetEnd
	for cut > start && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return cut
}
