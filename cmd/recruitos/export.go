package main

import (
	"context"
	"os"

	"recruitos/internal/domain"
	"recruitos/internal/match"
	"recruitos/internal/repository/postgres"
	"recruitos/internal/xlsxexport"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportJobID   string
	exportOutPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a duplicate screening report for a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		export(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportJobID, "job", "J", "", "job posting id (required)")
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "screening-report.xlsx", "output report path")

	_ = exportCmd.MarkFlagRequired("job")
}

func export(ctx context.Context) {
	cfg, lg := setup()

	jobID, err := uuid.Parse(exportJobID)
	if err != nil {
		lg.Fatal("parsing job id", zap.String("job", exportJobID), zap.Error(err))
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		lg.Fatal("connecting to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	identities, err := postgres.NewIdentityRepo(db).ListIdentities(ctx, jobID)
	if err != nil {
		lg.Fatal("listing applicants", zap.Error(err))
	}

	matcher := match.NewMatcher(cfg.Matcher.Threshold, lg)

	rows := make([]xlsxexport.ReportRow, 0, len(identities))
	for i, rec := range identities {
		pool := make([]domain.IdentityRecord, 0, len(identities)-1)
		pool = append(pool, identities[:i]...)
		pool = append(pool, identities[i+1:]...)

		rows = append(rows, xlsxexport.ReportRow{
			Applicant: rec,
			Result:    matcher.CheckAgainstAll(rec, pool),
		})
	}

	f, err := os.Create(exportOutPath)
	if err != nil {
		lg.Fatal("creating report file", zap.String("path", exportOutPath), zap.Error(err))
	}
	defer func() { _ = f.Close() }()

	if err := xlsxexport.WriteReport(f, rows); err != nil {
		lg.Fatal("writing report", zap.String("path", exportOutPath), zap.Error(err))
	}

	lg.Info("wrote screening report",
		zap.String("path", exportOutPath),
		zap.Int("applicants", len(rows)),
	)
}
