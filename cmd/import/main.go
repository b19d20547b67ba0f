package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/cache"
	"github.com/tgoubier/moments-ms-go/internal/config"
	"github.com/tgoubier/moments-ms-go/internal/db"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/repository/postgres"
	ingestSvc "github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
)

// reportFilename is the per-video artifact the analysis pipeline
// drops in each video folder of a dataset.
const reportFilename = "video_analysis_report.json"

func main() {
	ctx := context.Background()

	datasetPath := flag.String("dataset", "", "path to a dataset directory of video folders")
	flag.Parse()
	if *datasetPath == "" {
		logger.Error(ctx, "❌  -dataset is required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		ca = cache.NewNoop()
	}

	reports, err := collectReports(ctx, *datasetPath)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to scan dataset: %v", err)
		os.Exit(1)
	}
	if len(reports) == 0 {
		logger.Warnf(ctx, "⚠️  No analysis reports found under %q", *datasetPath)
		return
	}
	logger.Infof(ctx, "found %d analysis reports to import", len(reports))

	store := postgres.NewMomentStore(database.DB)
	ingesterSvc := ingestSvc.NewReportIngester(store, ca)
	batchSvc := ingestSvc.NewBatchIngester(ingesterSvc)

	out, err := batchSvc.IngestBatch(ctx, reports)
	if err != nil && !errors.Is(err, ingestSvc.ErrPartialIngest) {
		logger.Errorf(ctx, "❌  Import failed: %v", err)
		os.Exit(1)
	}

	for _, res := range out.Results {
		if !res.OK {
			logger.Errorf(ctx, "❌  video #%s: %s", res.VideoID, res.Error)
		}
	}
	logger.Infof(ctx, "✅  Import finished: %d succeeded, %d failed, %d moments", out.Succeeded, out.Failed, out.TotalMoments)

	if out.Failed > 0 {
		os.Exit(1)
	}
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

// collectReports walks the top level of the dataset directory and
// decodes the analysis report of every video folder that has one.
// Folders without a report are skipped with a warning.
func collectReports(ctx context.Context, datasetPath string) ([]port.Report, error) {
	entries, err := os.ReadDir(datasetPath)
	if err != nil {
		return nil, err
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	sort.Strings(folders)

	var reports []port.Report
	for _, folder := range folders {
		reportPath := filepath.Join(datasetPath, folder, reportFilename)
		raw, err := os.ReadFile(reportPath)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warnf(ctx, "⚠️  no analysis report found in %q", folder)
				continue
			}
			return nil, err
		}

		var report port.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			logger.Warnf(ctx, "⚠️  skipping unreadable report in %q: %v", folder, err)
			continue
		}
		// reports written by older pipeline versions omit the video id
		if report.VideoID == "" {
			report.VideoID = folder
		}
		reports = append(reports, report)
	}

	return reports, nil
}
