package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tgoubier/moments-ms-go/internal/cache"
	"github.com/tgoubier/moments-ms-go/internal/config"
	"github.com/tgoubier/moments-ms-go/internal/db"
	"github.com/tgoubier/moments-ms-go/internal/handler/api"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/renderer"
	"github.com/tgoubier/moments-ms-go/internal/repository/postgres"
	"github.com/tgoubier/moments-ms-go/internal/storage"
	"github.com/tgoubier/moments-ms-go/internal/task"
	ingestSvc "github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
	searchSvc "github.com/tgoubier/moments-ms-go/internal/usecase/search"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	store := postgres.NewMomentStore(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and async imports are disabled")
	}

	r.Get("/health", api.HealthHandler())

	statsSvc := searchSvc.NewStatsGetter(store)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.Get("/api/stats", api.GetStatsHandler(rendererSvc, statsSvc))

	listVideosSvc := searchSvc.NewVideoLister(store)
	r.Get("/api/videos", api.ListVideosHandler(listVideosSvc))

	getVideoSvc := searchSvc.NewVideoGetter(store, ca)
	r.With(api.WithVideoID()).
		Get("/api/videos/{id}", api.GetVideoHandler(getVideoSvc))

	if cfg.MinioEndpoint != "" {
		strg := initStorage(ctx, cfg)
		initBucket(ctx, strg, cfg.KeyframesBucket)

		keyframeSvc := searchSvc.NewKeyframeURLGetter(store, strg, cfg.KeyframesBucket)
		r.With(api.WithMomentID()).
			Get("/api/moments/{momentID}/keyframe", api.GetKeyframeURLHandler(keyframeSvc))
	} else {
		logger.Warn(ctx, "⚠️  MinIO not configured, keyframe URLs are disabled")
		r.Get("/api/moments/{momentID}/keyframe", api.KeyframeStorageDisabledHandler())
	}

	r.Post("/api/search/keywords", api.SearchKeywordsHandler(searchSvc.NewKeywordSearcher(store)))
	r.Post("/api/search/objects", api.SearchObjectsHandler(searchSvc.NewObjectSearcher(store)))
	r.Post("/api/search/text", api.SearchTextHandler(searchSvc.NewTextSearcher(store)))
	r.Post("/api/search/color", api.SearchColorHandler(searchSvc.NewColorSearcher(store)))
	r.Post("/api/search/vector", api.SearchEmbeddingHandler(searchSvc.NewEmbeddingSearcher(store)))
	r.Post("/api/search/temporal", api.SearchTemporalHandler(searchSvc.NewTemporalSearcher(store)))
	r.Post("/api/search/segment", api.SearchSegmentHandler(searchSvc.NewSegmentSearcher(store)))
	r.Post("/api/search/multimodal", api.SearchMultimodalHandler(searchSvc.NewMultimodalSearcher(store)))

	ingesterSvc := ingestSvc.NewReportIngester(store, ca)
	r.Post("/api/import", api.ImportReportHandler(ingesterSvc))

	batchSvc := ingestSvc.NewBatchIngester(ingesterSvc)
	r.Post("/api/import/batch", api.ImportBatchHandler(batchSvc))

	r.Post("/api/import/async", api.ImportAsyncHandler(dispatcher))

	listenRouter(ctx, r, cfg, database)
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

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
