// Package ingest decodes the source system's application JSON into
// entities. The wire format keeps the upstream Turkish field names; one
// payload may hold a single application or a batch.
package ingest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// RawDocument is one uploaded file as it arrives from the source system.
// BelgeTipi is null for exactly one document per application, the cover
// letter.
type RawDocument struct {
	BelgeAdi  string  `json:"belgeAdi"`
	BelgeTipi *string `json:"belgeTipi"`
	DosyaByte string  `json:"dosyaByte"`
}

// RawApplication is the intake payload for one application.
type RawApplication struct {
	BasvuruID     int64         `json:"basvuruId"`
	TakipNo       string        `json:"takipNo"`
	BasvuruTarihi string        `json:"basvuruTarihi"`
	HizmetID      string        `json:"hizmetId"`
	HizmetAdi     string        `json:"hizmetAdi"`
	VatandasTC    string        `json:"basvuruYapanVatandasTC"`
	Ad            string        `json:"basvuruYapanAd"`
	Soyad         string        `json:"basvuruYapanSoyad"`
	BasvuruDurum  string        `json:"basvuruDurum"`
	Belgeler      []RawDocument `json:"basvuruBelgeListesi"`
}

// Decode reads an intake payload that is either one application object or
// an array of them.
func Decode(data []byte) ([]RawApplication, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var many []RawApplication
		if err := json.Unmarshal(data, &many); err != nil {
			return nil, fmt.Errorf("decode intake batch: %w", err)
		}
		return many, nil
	}
	var one RawApplication
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decode intake: %w", err)
	}
	return []RawApplication{one}, nil
}

// Validate rejects payloads the pipeline cannot process. The service id
// defaults upstream, so an empty one is filled rather than refused.
func (r *RawApplication) Validate() error {
	if r.TakipNo == "" {
		return fmt.Errorf("intake %d: missing takipNo", r.BasvuruID)
	}
	if r.HizmetID == "" {
		r.HizmetID = constants.ServiceAcademicResponsible
	}
	if !constants.IsKnownServiceID(r.HizmetID) {
		return fmt.Errorf("intake %s: unknown service id %q", r.TakipNo, r.HizmetID)
	}
	if len(r.VatandasTC) != 11 {
		return fmt.Errorf("intake %s: national id must be 11 digits, got %d", r.TakipNo, len(r.VatandasTC))
	}
	return nil
}

// ApplicantName joins the upstream name parts.
func (r *RawApplication) ApplicantName() string {
	return strings.TrimSpace(r.Ad + " " + r.Soyad)
}

// submittedAtLayouts covers the date shapes the source system has been seen
// emitting.
var submittedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// SubmittedAt parses the application date, nil when absent or unreadable.
func (r *RawApplication) SubmittedAt() *time.Time {
	s := strings.TrimSpace(r.BasvuruTarihi)
	if s == "" {
		return nil
	}
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// DecodeContent returns the document's binary payload.
func (d *RawDocument) DecodeContent() ([]byte, error) {
	payload := strings.TrimSpace(d.DosyaByte)
	if payload == "" {
		return nil, fmt.Errorf("document %q: empty content", d.BelgeAdi)
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("document %q: base64 decode: %w", d.BelgeAdi, err)
	}
	return b, nil
}

// Extension returns the normalized file extension of the upload.
func (d *RawDocument) Extension() string {
	return constants.NormalizeExt(filepath.Ext(d.BelgeAdi))
}

// DeclaredType returns the upstream type label, empty for null.
func (d *RawDocument) DeclaredType() string {
	if d.BelgeTipi == nil {
		return ""
	}
	return strings.TrimSpace(*d.BelgeTipi)
}
