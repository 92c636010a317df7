package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/fields"
	"recruitos/internal/match"
	"recruitos/internal/ocr"
	"recruitos/internal/repository/postgres"
	"recruitos/internal/service"
	"recruitos/internal/textextract"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	screenJobID    string
	screenRegister bool
	screenName     string
	screenEmail    string
	screenPhone    string
	screenCity     string
)

var screenCmd = &cobra.Command{
	Use:   "screen [file]",
	Short: "Screen an applicant against the stored pool for a job posting",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd.Context(), args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVarP(&screenJobID, "job", "J", "", "job posting id (required)")
	screenCmd.Flags().BoolVarP(&screenRegister, "register", "r", false, "store the applicant when not a duplicate")
	screenCmd.Flags().StringVar(&screenName, "name", "", "applicant name (instead of a resume file)")
	screenCmd.Flags().StringVar(&screenEmail, "email", "", "applicant email")
	screenCmd.Flags().StringVar(&screenPhone, "phone", "", "applicant phone")
	screenCmd.Flags().StringVar(&screenCity, "city", "", "applicant city")

	_ = screenCmd.MarkFlagRequired("job")
}

func screen(ctx context.Context, args []string) {
	cfg, lg := setup()

	jobID, err := uuid.Parse(screenJobID)
	if err != nil {
		lg.Fatal("parsing job id", zap.String("job", screenJobID), zap.Error(err))
	}

	rec, err := screenedIdentity(ctx, cfg, lg, args)
	if err != nil {
		lg.Fatal("building applicant identity", zap.Error(err))
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		lg.Fatal("connecting to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	matcher := match.NewMatcher(cfg.Matcher.Threshold, lg)
	screening := service.NewScreeningService(postgres.NewIdentityRepo(db), matcher, lg)

	result, err := screening.ScreenApplicant(ctx, jobID, rec)
	if err != nil {
		lg.Fatal("screening applicant", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		lg.Fatal("encoding result", zap.Error(err))
	}
	fmt.Println(string(pretty))

	if screenRegister && !result.IsDuplicate {
		id, err := screening.RegisterApplicant(ctx, jobID, rec)
		if err != nil {
			lg.Fatal("registering applicant", zap.Error(err))
		}
		lg.Info("registered applicant", zap.String("id", id.String()))
	}
}

// screenedIdentity builds the identity to screen, either from a resume file
// or from the explicit flag values.
func screenedIdentity(ctx context.Context, cfg *config.Config, lg *zap.Logger, args []string) (domain.IdentityRecord, error) {
	if len(args) == 1 {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return domain.IdentityRecord{}, err
		}

		doc := domain.RawDocument{
			Filename: filepath.Base(args[0]),
			Kind:     domain.KindForFilename(args[0]),
			Payload:  payload,
		}

		extractor := textextract.NewExtractor(ocr.NewClient(&cfg.OCR), &cfg.OCR, lg)
		ingest := service.NewIngestService(extractor, fields.NewExtractor(nil), nil, &cfg.S3, lg)

		extracted, err := ingest.IngestDocument(ctx, doc)
		if err != nil {
			return domain.IdentityRecord{}, err
		}

		return service.IdentityFromExtracted(extracted), nil
	}

	if screenName == "" && screenEmail == "" && screenPhone == "" && screenCity == "" {
		return domain.IdentityRecord{}, fmt.Errorf("pass a resume file or at least one of --name, --email, --phone, --city")
	}

	return domain.IdentityRecord{
		Name:  screenName,
		Email: screenEmail,
		Phone: screenPhone,
		City:  screenCity,
	}, nil
}
