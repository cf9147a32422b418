package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/extract"
)

// StagedTextProvider bridges documents stored as database blobs to the
// file-based text extractors: the content is staged to a temp file with the
// right extension, extracted, and removed again.
type StagedTextProvider struct {
	router  *extract.Router
	workDir string
	log     *slog.Logger
}

// NewStagedTextProvider stages files under workDir; an empty workDir falls
// back to the system temp directory.
func NewStagedTextProvider(router *extract.Router, workDir string, logger *slog.Logger) *StagedTextProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &StagedTextProvider{router: router, workDir: workDir, log: logger}
}

func (p *StagedTextProvider) TextFor(ctx context.Context, doc entity.Document) (string, error) {
	if len(doc.Content) == 0 {
		return "", fmt.Errorf("document %s: no content stored", doc.ID)
	}

	ext := doc.Extension
	if ext == "" {
		ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(doc.Filename)), ".")
	}
	if ext == "" {
		return "", fmt.Errorf("document %s: cannot determine file type", doc.ID)
	}

	f, err := os.CreateTemp(p.workDir, "doc-*."+ext)
	if err != nil {
		return "", fmt.Errorf("stage document %s: %w", doc.ID, err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(doc.Content); err != nil {
		f.Close()
		return "", fmt.Errorf("stage document %s: %w", doc.ID, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("stage document %s: %w", doc.ID, err)
	}

	res, err := p.router.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	for _, w := range res.Warnings {
		p.log.Warn("pipeline.extract.warning", "document_id", doc.ID, "warning", w)
	}
	p.log.Debug("pipeline.extract.ok",
		"document_id", doc.ID,
		"method", res.Method,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds())
	return res.Text, nil
}
