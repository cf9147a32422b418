package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Router dispatches extraction by file extension.
type Router struct {
	pdf   TextExtractor
	plain TextExtractor
}

func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		pdf:   NewPDFExtractor(logger),
		plain: PlainTextExtractor{},
	}
}

func (r *Router) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		return r.pdf.Extract(ctx, path)
	case "txt":
		return r.plain.Extract(ctx, path)
	default:
		return TextExtractionResult{}, fmt.Errorf("unsupported file type for text extraction: %s", filepath.Ext(path))
	}
}
