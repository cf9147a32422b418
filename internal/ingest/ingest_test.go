package ingest

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
)

func b64(n int) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", n)))
}

func sampleIntakeJSON() string {
	return fmt.Sprintf(`{
		"basvuruId": 4242,
		"takipNo": "SYD-2024-0042",
		"basvuruTarihi": "2024-01-15T10:30:00",
		"hizmetId": "10309",
		"hizmetAdi": "Sanayide Yeşil Dönüşüm Sorumlusu (Sektör Çalışanı)",
		"basvuruYapanVatandasTC": "12345678901",
		"basvuruYapanAd": "Ali",
		"basvuruYapanSoyad": "Veli",
		"basvuruDurum": "Başvuru Alındı",
		"basvuruBelgeListesi": [
			{"belgeAdi": "ust_yazi.pdf", "belgeTipi": null, "dosyaByte": %q},
			{"belgeAdi": "diploma.pdf", "belgeTipi": "Yök Lisans Diploması", "dosyaByte": %q},
			{"belgeAdi": "sgk_hizmet_dokumu.pdf", "belgeTipi": "Ek Belge", "dosyaByte": %q}
		]
	}`, b64(300), b64(300), b64(300))
}

func TestDecodeSingleObject(t *testing.T) {
	apps, err := Decode([]byte(sampleIntakeJSON()))
	require.NoError(t, err)
	require.Len(t, apps, 1)

	assert.Equal(t, "SYD-2024-0042", apps[0].TakipNo)
	assert.Len(t, apps[0].Belgeler, 3)
}

func TestDecodeArray(t *testing.T) {
	payload := "[" + sampleIntakeJSON() + "," + sampleIntakeJSON() + "]"
	apps, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestConvertBuildsApplicationAndDocuments(t *testing.T) {
	apps, err := Decode([]byte(sampleIntakeJSON()))
	require.NoError(t, err)

	app, docs, issues, err := NewImporter(nil).Convert(apps[0])
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, int64(4242), app.SourceID)
	assert.Equal(t, "Ali Veli", app.ApplicantName)
	assert.Equal(t, "12345678901", app.NationalID)
	assert.Equal(t, constants.AppStatusPending, app.Status)
	require.NotNil(t, app.SubmittedAt)
	assert.Equal(t, 2024, app.SubmittedAt.Year())

	require.Len(t, docs, 3)
	byName := map[string]constants.DocType{}
	for _, d := range docs {
		byName[d.Filename] = d.Type
		assert.Equal(t, app.ID, d.ApplicationID)
		assert.Equal(t, constants.DocStatusPending, d.Status)
		assert.EqualValues(t, 300, d.SizeBytes)
	}
	assert.Equal(t, constants.CoverLetter, byName["ust_yazi.pdf"], "null belgeTipi means cover letter")
	assert.Equal(t, constants.Diploma, byName["diploma.pdf"])
	assert.Equal(t, constants.ServiceRecord, byName["sgk_hizmet_dokumu.pdf"], "unknown label falls back to filename")
}

func TestConvertRejectsBadDocumentsButKeepsApplication(t *testing.T) {
	apps, err := Decode([]byte(sampleIntakeJSON()))
	require.NoError(t, err)
	raw := apps[0]
	raw.Belgeler = append(raw.Belgeler,
		RawDocument{BelgeAdi: "virus.exe", DosyaByte: b64(300)},
		RawDocument{BelgeAdi: "bozuk.pdf", DosyaByte: "!!! not base64 !!!"},
		RawDocument{BelgeAdi: "minik.pdf", DosyaByte: b64(10)},
	)

	_, docs, issues, err := NewImporter(nil).Convert(raw)
	require.NoError(t, err)

	assert.Len(t, docs, 3)
	require.Len(t, issues, 3)
	reasons := map[string]string{}
	for _, i := range issues {
		reasons[i.Filename] = i.Reason
	}
	assert.Contains(t, reasons["virus.exe"], "not accepted")
	assert.Contains(t, reasons["bozuk.pdf"], "base64")
	assert.Contains(t, reasons["minik.pdf"], "too small")
}

func TestValidateRequiresTrackingNoAndNationalID(t *testing.T) {
	raw := RawApplication{HizmetID: "10307", VatandasTC: "12345678901"}
	assert.Error(t, raw.Validate(), "missing takipNo")

	raw = RawApplication{TakipNo: "X", HizmetID: "10307", VatandasTC: "123"}
	assert.Error(t, raw.Validate(), "short national id")

	raw = RawApplication{TakipNo: "X", HizmetID: "99999", VatandasTC: "12345678901"}
	assert.Error(t, raw.Validate(), "unknown service")
}

func TestValidateDefaultsEmptyServiceID(t *testing.T) {
	raw := RawApplication{TakipNo: "X", VatandasTC: "12345678901"}
	require.NoError(t, raw.Validate())
	assert.Equal(t, constants.ServiceAcademicResponsible, raw.HizmetID)
}

func TestSubmittedAtLayouts(t *testing.T) {
	for _, s := range []string{"2024-01-15T10:30:00", "2024-01-15", "15.01.2024"} {
		raw := RawApplication{BasvuruTarihi: s}
		ts := raw.SubmittedAt()
		require.NotNil(t, ts, s)
		assert.Equal(t, 2024, ts.Year(), s)
	}
	assert.Nil(t, (&RawApplication{BasvuruTarihi: "dün"}).SubmittedAt())
}
