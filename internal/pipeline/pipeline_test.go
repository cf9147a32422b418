package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/analyzer"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/extract"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
	"github.com/oguzakin/eligibility-tracker/internal/recon"
	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

func TestStagedTextProviderReadsPlainText(t *testing.T) {
	workDir := t.TempDir()
	p := NewStagedTextProvider(extract.NewRouter(nil), workDir, slog.Default())

	doc := entity.Document{
		ID:        uuid.New(),
		Filename:  "ozgecmis.txt",
		Extension: "txt",
		Content:   []byte("Çevre mühendisliği alanında on yıl çalıştım."),
	}
	text, err := p.TextFor(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, text, "on yıl")

	// Nothing staged should survive the call.
	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStagedTextProviderFallsBackToFilenameExtension(t *testing.T) {
	p := NewStagedTextProvider(extract.NewRouter(nil), t.TempDir(), nil)

	doc := entity.Document{
		ID:       uuid.New(),
		Filename: filepath.Join("dosyalar", "not.TXT"),
		Content:  []byte("kısa not"),
	}
	text, err := p.TextFor(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "kısa not", text)
}

func TestStagedTextProviderRejectsEmptyContent(t *testing.T) {
	p := NewStagedTextProvider(extract.NewRouter(nil), t.TempDir(), nil)

	_, err := p.TextFor(context.Background(), entity.Document{ID: uuid.New(), Filename: "bos.pdf"})
	assert.ErrorContains(t, err, "no content")
}

// --- processor fixtures -------------------------------------------------

type fakeExtractor struct {
	fields map[string]any
}

func (f *fakeExtractor) ExtractFields(_ context.Context, _ llm.ExtractRequest) (llm.Result, error) {
	clone := make(map[string]any, len(f.fields))
	for k, v := range f.fields {
		clone[k] = v
	}
	return llm.Result{Fields: clone, Model: "fake"}, nil
}

type textMap map[uuid.UUID]string

func (m textMap) TextFor(_ context.Context, d entity.Document) (string, error) {
	t, ok := m[d.ID]
	if !ok {
		return "", errors.New("no text for document")
	}
	return t, nil
}

type fakeAppRepo struct {
	statuses []constants.AppStatus
	errMsg   *string
}

func (r *fakeAppRepo) Create(_ context.Context, app entity.Application) (*entity.Application, error) {
	return &app, nil
}
func (r *fakeAppRepo) GetByID(context.Context, uuid.UUID) (*entity.Application, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeAppRepo) GetByTrackingNo(context.Context, string) (*entity.Application, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeAppRepo) NextPending(context.Context, int) ([]*entity.Application, error) {
	return nil, nil
}
func (r *fakeAppRepo) MarkProcessing(context.Context, uuid.UUID) error {
	r.statuses = append(r.statuses, constants.AppStatusProcessing)
	return nil
}
func (r *fakeAppRepo) MarkProcessed(_ context.Context, _ uuid.UUID, success bool, errMsg *string) error {
	if success {
		r.statuses = append(r.statuses, constants.AppStatusDone)
	} else {
		r.statuses = append(r.statuses, constants.AppStatusFailed)
	}
	r.errMsg = errMsg
	return nil
}

type statusUpdate struct {
	id     uuid.UUID
	status constants.DocStatus
}

type fakeDocRepo struct {
	docs    []*entity.Document
	updates []statusUpdate
	types   map[uuid.UUID]constants.DocType
}

func (r *fakeDocRepo) CreateBatch(context.Context, []entity.Document) error { return nil }
func (r *fakeDocRepo) ListByApplication(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return r.docs, nil
}
func (r *fakeDocRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.DocStatus, _ *string) error {
	r.updates = append(r.updates, statusUpdate{id: id, status: status})
	return nil
}
func (r *fakeDocRepo) UpdateType(_ context.Context, id uuid.UUID, t constants.DocType) error {
	if r.types == nil {
		r.types = map[uuid.UUID]constants.DocType{}
	}
	r.types[id] = t
	return nil
}

type fakeResultRepo struct {
	saved *repository.SaveRunRequest
}

func (r *fakeResultRepo) SaveRun(_ context.Context, req *repository.SaveRunRequest) (*entity.AnalysisResult, error) {
	r.saved = req
	return &entity.AnalysisResult{}, nil
}
func (r *fakeResultRepo) LatestByApplication(context.Context, uuid.UUID) (*entity.AnalysisResult, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeResultRepo) ListAll(context.Context) ([]*entity.AnalysisResult, error) {
	return nil, nil
}

func newProcessor(texts recon.TextProvider, apps *fakeAppRepo, docs *fakeDocRepo, results *fakeResultRepo) *Processor {
	ex := &fakeExtractor{fields: map[string]any{
		"full_name":              "Ali Veli",
		"national_id":            "12345678901",
		"total_experience_years": float64(4),
	}}
	engine := recon.NewEngine(analyzer.NewRegistry(ex, nil), classify.New(), texts, nil)
	return NewProcessor(apps, docs, results, engine, nil)
}

func TestProcessApplicationPersistsOutcome(t *testing.T) {
	app := entity.Application{ID: uuid.New(), TrackingNo: "SYD-2024-0042", ServiceID: constants.ServiceAcademicResponsible}
	cv := &entity.Document{ID: uuid.New(), ApplicationID: app.ID, Filename: "cv.pdf", Type: constants.CV, Status: constants.DocStatusPending}

	apps := &fakeAppRepo{}
	docs := &fakeDocRepo{docs: []*entity.Document{cv}}
	results := &fakeResultRepo{}
	proc := newProcessor(textMap{cv.ID: "Çevre mühendisi olarak dört yıl görev aldım."}, apps, docs, results)

	require.NoError(t, proc.ProcessApplication(context.Background(), &app))

	assert.Equal(t, []constants.AppStatus{constants.AppStatusProcessing, constants.AppStatusDone}, apps.statuses)
	require.NotNil(t, results.saved)
	assert.Equal(t, "SKIPPED", results.saved.ValidationStatus)
	assert.Equal(t, "Ali Veli", results.saved.Record.Fields["full_name"])
	assert.False(t, results.saved.Record.DocsComplete)
	assert.NotEmpty(t, results.saved.Extractions)

	require.Len(t, docs.updates, 1)
	assert.Equal(t, cv.ID, docs.updates[0].id)
	assert.Equal(t, constants.DocStatusAnalyzed, docs.updates[0].status)
}

func TestProcessApplicationMarksFailureWhenNothingAnalyzable(t *testing.T) {
	app := entity.Application{ID: uuid.New(), TrackingNo: "SYD-2024-0043", ServiceID: constants.ServiceAcademicResponsible}
	photo := &entity.Document{ID: uuid.New(), ApplicationID: app.ID, Filename: "foto.jpg", Type: constants.Photo, Status: constants.DocStatusPending}

	apps := &fakeAppRepo{}
	docs := &fakeDocRepo{docs: []*entity.Document{photo}}
	results := &fakeResultRepo{}
	proc := newProcessor(textMap{}, apps, docs, results)

	err := proc.ProcessApplication(context.Background(), &app)
	require.Error(t, err)

	assert.Equal(t, []constants.AppStatus{constants.AppStatusProcessing, constants.AppStatusFailed}, apps.statuses)
	require.NotNil(t, apps.errMsg)
	assert.Contains(t, *apps.errMsg, "no document produced usable fields")
	assert.Nil(t, results.saved)
}
