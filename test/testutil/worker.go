package testutil

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/tgoubier/moments-ms-go/internal/cache"
	"github.com/tgoubier/moments-ms-go/internal/db"
	workerHandler "github.com/tgoubier/moments-ms-go/internal/handler/worker"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/repository/postgres"
	"github.com/tgoubier/moments-ms-go/internal/task"
	ingestSvc "github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
)

// StartWorker starts an asynq worker processing ingestion tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(dbConn *db.Database, redisAddr string) func() {
	store := postgres.NewMomentStore(dbConn.DB)
	ca := cache.NewNoop()
	ingesterSvc := ingestSvc.NewReportIngester(store, ca)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeIngestReport, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseIngestReportPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.IngestReportHandler(ctx, p, ingesterSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
