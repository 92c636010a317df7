package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"recruitos/internal/csvexport"
	"recruitos/internal/domain"
	"recruitos/internal/fields"
	"recruitos/internal/ocr"
	"recruitos/internal/port"
	"recruitos/internal/service"
	"recruitos/internal/storage/s3"
	"recruitos/internal/textextract"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	extractCSVPath string
	extractS3Keys  []string
	extractArchive bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Extract structured applicant fields from resume documents",
	Run: func(cmd *cobra.Command, args []string) {
		extract(cmd.Context(), args)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractCSVPath, "csv", "o", "", "write extracted records to a CSV file")
	extractCmd.Flags().StringSliceVarP(&extractS3Keys, "s3-key", "k", nil, "extract documents stored under the given bucket keys")
	extractCmd.Flags().BoolVarP(&extractArchive, "archive", "a", false, "archive local documents to the bucket after extraction")
}

func extract(ctx context.Context, paths []string) {
	cfg, lg := setup()

	if len(paths) == 0 && len(extractS3Keys) == 0 {
		lg.Fatal("nothing to extract", zap.String("hint", "pass file paths or --s3-key"))
	}

	var storage port.ObjectStorage
	if len(extractS3Keys) > 0 || extractArchive {
		var err error
		storage, err = s3.NewS3Client(&cfg.S3)
		if err != nil {
			lg.Fatal("creating storage client", zap.Error(err))
		}
	}

	extractor := textextract.NewExtractor(ocr.NewClient(&cfg.OCR), &cfg.OCR, lg)
	ingest := service.NewIngestService(extractor, fields.NewExtractor(nil), storage, &cfg.S3, lg)

	records := make([]domain.ExtractedFields, 0, len(paths)+len(extractS3Keys))

	for _, path := range paths {
		payload, err := os.ReadFile(path)
		if err != nil {
			lg.Fatal("reading document", zap.String("path", path), zap.Error(err))
		}

		doc := domain.RawDocument{
			Filename: filepath.Base(path),
			Kind:     domain.KindForFilename(path),
			Payload:  payload,
		}

		rec, err := ingest.IngestDocument(ctx, doc)
		if err != nil {
			lg.Fatal("extracting document", zap.String("path", path), zap.Error(err))
		}
		records = append(records, *rec)

		if extractArchive {
			key, err := ingest.ArchiveDocument(ctx, doc)
			if err != nil {
				lg.Fatal("archiving document", zap.String("path", path), zap.Error(err))
			}
			lg.Info("archived document", zap.String("path", path), zap.String("key", key))
		}
	}

	for _, key := range extractS3Keys {
		rec, err := ingest.IngestFromStorage(ctx, key)
		if err != nil {
			lg.Fatal("extracting stored document", zap.String("key", key), zap.Error(err))
		}
		records = append(records, *rec)
	}

	pretty, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		lg.Fatal("encoding records", zap.Error(err))
	}
	fmt.Println(string(pretty))

	if extractCSVPath != "" {
		if err := writeCSV(extractCSVPath, records); err != nil {
			lg.Fatal("writing csv", zap.String("path", extractCSVPath), zap.Error(err))
		}
		lg.Info("wrote csv export", zap.String("path", extractCSVPath), zap.Int("records", len(records)))
	}
}

func writeCSV(path string, records []domain.ExtractedFields) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}

	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		return err
	}
	w.Flush()

	return w.Error()
}
