package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor pulls text out of a PDF via its page content streams. That
// covers digitally produced documents, which is what the source system
// sends; scanned image-only PDFs yield empty text and a warning, and the
// caller decides whether to fail the document.
type PDFExtractor struct {
	conf *model.Configuration
	log  *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFExtractor{conf: conf, log: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("pdf page count: %w", err)
	}

	// pdfcpu only extracts content streams to files, so stage them in a
	// temp dir and scrape the text operators.
	tmp, err := os.MkdirTemp("", "content-*")
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			e.log.Warn("extract.pdf.tmp_cleanup_failed", "dir", tmp, "error", rmErr)
		}
	}()

	if err := api.ExtractContentFile(path, tmp, nil, e.conf); err != nil {
		return TextExtractionResult{}, fmt.Errorf("pdf content extraction: %w", err)
	}

	var b strings.Builder
	for _, f := range contentFilesInOrder(tmp) {
		raw, err := os.ReadFile(f)
		if err != nil {
			return TextExtractionResult{}, fmt.Errorf("read content stream: %w", err)
		}
		b.WriteString(ScrapeContentText(string(raw)))
		b.WriteString("\n")
	}

	res := TextExtractionResult{
		Text:       strings.TrimSpace(b.String()),
		Pages:      pages,
		SourceType: "PDF",
		Method:     "pdf-content",
		Duration:   time.Since(start),
	}
	if res.Text == "" {
		res.Warnings = append(res.Warnings, "no text operators found; likely a scanned image pdf")
	}

	e.log.Info("extract.pdf.ok",
		"path", filepath.Base(path),
		"pages", pages,
		"text_len", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

var contentPageRe = regexp.MustCompile(`_(\d+)\.txt$`)

// contentFilesInOrder lists extracted content files sorted by page number.
func contentFilesInOrder(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	type pageFile struct {
		page int
		path string
	}
	var files []pageFile
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		page := 0
		if m := contentPageRe.FindStringSubmatch(ent.Name()); m != nil {
			page, _ = strconv.Atoi(m[1])
		}
		files = append(files, pageFile{page: page, path: filepath.Join(dir, ent.Name())})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].page < files[j].page })

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out
}

var (
	tjRe      = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*Tj`)
	tjArrayRe = regexp.MustCompile(`\[((?:[^\[\]\\]|\\.)*)\]\s*TJ`)
	strLitRe  = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)
	escRe     = regexp.MustCompile(`\\([nrtbf()\\]|[0-7]{1,3})`)
)

// ScrapeContentText reads the text-showing operators (Tj, TJ) out of a PDF
// content stream. It handles literal strings with standard escapes; hex
// strings and CID-encoded fonts are out of reach here and simply produce
// nothing, which ends up reported as a scanned-pdf warning.
func ScrapeContentText(stream string) string {
	var b strings.Builder

	write := func(s string) {
		s = strings.TrimSpace(unescapePDFString(s))
		if s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	for _, m := range tjRe.FindAllStringSubmatch(stream, -1) {
		write(m[1])
	}
	for _, m := range tjArrayRe.FindAllStringSubmatch(stream, -1) {
		var parts []string
		for _, lit := range strLitRe.FindAllStringSubmatch(m[1], -1) {
			parts = append(parts, unescapePDFString(lit[1]))
		}
		write(strings.Join(parts, ""))
	}
	return b.String()
}

func unescapePDFString(s string) string {
	return escRe.ReplaceAllStringFunc(s, func(esc string) string {
		body := esc[1:]
		switch body {
		case "n":
			return "\n"
		case "r":
			return "\r"
		case "t":
			return "\t"
		case "b", "f":
			return ""
		case "(", ")", "\\":
			return body
		}
		if n, err := strconv.ParseUint(body, 8, 16); err == nil && n < 256 {
			return string(rune(n))
		}
		return body
	})
}
