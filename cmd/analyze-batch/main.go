package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oguzakin/eligibility-tracker/gen/ent"
	"github.com/oguzakin/eligibility-tracker/internal/analyzer"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/common"
	"github.com/oguzakin/eligibility-tracker/internal/export"
	"github.com/oguzakin/eligibility-tracker/internal/extract"
	"github.com/oguzakin/eligibility-tracker/internal/ingest"
	"github.com/oguzakin/eligibility-tracker/internal/llm/ollama"
	"github.com/oguzakin/eligibility-tracker/internal/pipeline"
	"github.com/oguzakin/eligibility-tracker/internal/recon"
	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

// analyze-batch runs the whole flow against a local SQLite file, no
// daemon and no Postgres: import an intake JSON, analyze the pending
// applications, export the review workbook.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	var dbPath string

	root := &cobra.Command{
		Use:           "analyze-batch",
		Short:         "Local batch analysis of eligibility applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "eligibility.db", "SQLite database file")

	root.AddCommand(
		newImportCmd(&dbPath, logger),
		newRunCmd(&dbPath, logger),
		newExportCmd(&dbPath, logger),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openClient(ctx context.Context, dbPath string, logger *slog.Logger) (*ent.Client, error) {
	return repository.OpenSQLite(ctx, dbPath, logger)
}

func newImportCmd(dbPath *string, logger *slog.Logger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an intake JSON payload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			payload, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			raws, err := ingest.Decode(payload)
			if err != nil {
				return err
			}

			entc, err := openClient(ctx, *dbPath, logger)
			if err != nil {
				return err
			}
			defer entc.Close()
			apps := repository.NewApplicationRepository(entc, logger)
			docs := repository.NewDocumentRepository(entc, logger)
			importer := ingest.NewImporter(logger)

			imported, rejected := 0, 0
			for _, raw := range raws {
				app, appDocs, issues, err := importer.Convert(raw)
				if err != nil {
					logger.Error("application rejected", "tracking_no", raw.TakipNo, "error", err)
					rejected++
					continue
				}
				if _, err := apps.Create(ctx, app); err != nil {
					return err
				}
				if err := docs.CreateBatch(ctx, appDocs); err != nil {
					return err
				}
				for _, issue := range issues {
					fmt.Printf("  ! %s: %s\n", issue.Filename, issue.Reason)
				}
				imported++
			}
			fmt.Printf("Imported %d application(s), rejected %d\n", imported, rejected)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "intake JSON file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRunCmd(dbPath *string, logger *slog.Logger) *cobra.Command {
	var trackingNo string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyze pending applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := common.LoadConfig()

			entc, err := openClient(ctx, *dbPath, logger)
			if err != nil {
				return err
			}
			defer entc.Close()

			apps := repository.NewApplicationRepository(entc, logger)
			docs := repository.NewDocumentRepository(entc, logger)
			results := repository.NewResultRepository(entc, logger)

			extractor := ollama.NewClient(ollama.Config{
				BaseURL:     cfg.Ollama.Host,
				Model:       cfg.Ollama.Model,
				Timeout:     cfg.Ollama.Timeout,
				MaxRetries:  cfg.Ollama.MaxRetries,
				Temperature: float64(cfg.Ollama.Temperature),
			}, logger)
			if err := extractor.CheckHealth(ctx); err != nil {
				return fmt.Errorf("ollama not reachable at %s: %w", cfg.Ollama.Host, err)
			}

			texts := pipeline.NewStagedTextProvider(extract.NewRouter(logger), cfg.Pipeline.WorkDir, logger)
			engine := recon.NewEngine(analyzer.NewRegistry(extractor, logger), classify.New(), texts, logger)
			processor := pipeline.NewProcessor(apps, docs, results, engine, logger)

			if trackingNo != "" {
				app, err := apps.GetByTrackingNo(ctx, trackingNo)
				if err != nil {
					return fmt.Errorf("application %s: %w", trackingNo, err)
				}
				return processor.ProcessApplication(ctx, app)
			}

			pending, err := apps.NextPending(ctx, cfg.Pipeline.BatchLimit)
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("Nothing pending.")
				return nil
			}
			failures := 0
			for _, app := range pending {
				if err := processor.ProcessApplication(ctx, app); err != nil {
					failures++
				}
			}
			fmt.Printf("Analyzed %d application(s), %d failed\n", len(pending), failures)
			return nil
		},
	}
	cmd.Flags().StringVar(&trackingNo, "tracking", "", "analyze a single application by tracking number")
	return cmd
}

func newExportCmd(dbPath *string, logger *slog.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export analysis results to XLSX",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			entc, err := openClient(ctx, *dbPath, logger)
			if err != nil {
				return err
			}
			defer entc.Close()

			apps := repository.NewApplicationRepository(entc, logger)
			results := repository.NewResultRepository(entc, logger)

			svc := export.NewService(apps, results, logger)
			b, err := svc.ExportResultsXLSX(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", out, len(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "sonuclar.xlsx", "output XLSX path")
	return cmd
}
