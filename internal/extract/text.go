package extract

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
)

// PlainTextExtractor reads .txt uploads (the petition text arrives this way).
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(_ context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}

	res := TextExtractionResult{
		Text:       string(b),
		Pages:      1,
		SourceType: "TEXT",
		Method:     "plain",
		Duration:   time.Since(start),
	}
	if !utf8.Valid(b) {
		res.Warnings = append(res.Warnings, "file is not valid utf-8; kept as-is")
	}
	return res, nil
}
