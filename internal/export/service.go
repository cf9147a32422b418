package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

// Service produces the decision-support XLSX workbook reviewers work from:
// one row per analyzed application, with the conflicts and validation
// findings broken out on their own sheets.
type Service struct {
	apps    repository.ApplicationRepository
	results repository.ResultRepository
	logger  *slog.Logger
}

func NewService(apps repository.ApplicationRepository, results repository.ResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{apps: apps, results: results, logger: logger}
}

var resultHeaders = []string{
	"Takip No",
	"Ad Soyad",
	"TC Kimlik No",
	"Üniversite",
	"Bölüm",
	"Mezuniyet Yılı",
	"Eğitim Seviyesi",
	"Toplam Deneyim (Yıl)",
	"Enerji",
	"Metal",
	"Mineral",
	"Kimya",
	"Atık",
	"Diğer",
	"Adli Sicil",
	"Yeşil Dönüşüm Tecrübesi",
	"Mevzuat Bilgisi",
	"Proje Sayısı",
	"Belgeler Tam",
	"Eksik Belgeler",
	"Doğrulama",
	"Çelişki Sayısı",
	"Analiz Tarihi",
	"Süre (sn)",
}

// ExportResultsXLSX renders every analysis run into a workbook.
func (s *Service) ExportResultsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	results, err := s.results.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Başvurular"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, h := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	conflictSheet, findingSheet := "Çelişkiler", "Bulgular"
	for _, name := range []string{conflictSheet, findingSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	writeRow(f, conflictSheet, 1, []any{"Takip No", "Alan", "Strateji", "Değerler"})
	writeRow(f, findingSheet, 1, []any{"Takip No", "Alan", "Kaynak", "Değer", "Beklenen", "Önem"})

	row, conflictRow, findingRow := 2, 2, 2
	for _, res := range results {
		app, err := s.apps.GetByID(ctx, res.ApplicationID)
		if err != nil {
			s.logger.Warn("export.application_missing", "application_id", res.ApplicationID, "error", err)
			continue
		}

		fields := map[string]any{}
		if err := json.Unmarshal(res.Fields, &fields); err != nil {
			s.logger.Warn("export.fields_unreadable", "application_id", res.ApplicationID, "error", err)
			continue
		}
		conflicts := map[string]entity.Conflict{}
		if len(res.Conflicts) > 0 {
			_ = json.Unmarshal(res.Conflicts, &conflicts)
		}

		writeRow(f, sheet, row, []any{
			app.TrackingNo,
			stringField(fields, "full_name"),
			stringField(fields, "national_id"),
			stringField(fields, "university"),
			stringField(fields, "department"),
			fields["graduation_year"],
			stringField(fields, "education_level"),
			fields["total_experience_years"],
			fields[constants.ExperienceField(constants.SectorEnergy)],
			fields[constants.ExperienceField(constants.SectorMetal)],
			fields[constants.ExperienceField(constants.SectorMineral)],
			fields[constants.ExperienceField(constants.SectorChemistry)],
			fields[constants.ExperienceField(constants.SectorWaste)],
			fields[constants.ExperienceField(constants.SectorOther)],
			boolText(fields["has_criminal_record"]),
			boolText(fields["green_transition_experience"]),
			boolText(fields["environmental_regulation_knowledge"]),
			projectCount(fields),
			boolText(res.DocsComplete),
			strings.Join(res.MissingDocs, ", "),
			validationText(res.Findings),
			len(conflicts),
			res.AnalyzedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", res.ElapsedSec),
		})
		row++

		for _, field := range sortedKeys(conflicts) {
			c := conflicts[field]
			writeRow(f, conflictSheet, conflictRow, []any{
				app.TrackingNo, field, c.Strategy, conflictValues(c),
			})
			conflictRow++
		}
		for _, fd := range res.Findings {
			writeRow(f, findingSheet, findingRow, []any{
				app.TrackingNo, fd.Field, fd.Source,
				fmt.Sprintf("%v", fd.Value), fmt.Sprintf("%v", fd.Expected), string(fd.Severity),
			})
			findingRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.results.ok",
		"applications", row-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// boolText renders booleans the way the review board reads them.
func boolText(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "VAR"
		}
		return "YOK"
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func projectCount(fields map[string]any) int {
	list, _ := fields["projects"].([]any)
	return len(list)
}

func validationText(findings []entity.ValidationFinding) string {
	critical := 0
	for _, fd := range findings {
		if fd.Severity == constants.SeverityCritical {
			critical++
		}
	}
	switch {
	case critical > 0:
		return fmt.Sprintf("BAŞARISIZ (%d kritik)", critical)
	case len(findings) > 0:
		return fmt.Sprintf("GEÇTİ (%d uyarı)", len(findings))
	default:
		return "GEÇTİ"
	}
}

func conflictValues(c entity.Conflict) string {
	parts := make([]string, 0, len(c.Values))
	for t, v := range c.Values {
		parts = append(parts, fmt.Sprintf("%s=%v", t, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func sortedKeys(m map[string]entity.Conflict) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
