package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/routes"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/archive"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/media"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/blob"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/config"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := db.MaybeAutoMigrate(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	blobStore, err := blob.NewStore(cfg.Blob.Root)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare blob store", err)
		os.Exit(1)
	}

	mediaMetrics := metrics.NewMediaMetrics(prometheus.DefaultRegisterer)

	recordsService, err := records.NewService(records.NewRepository(dbClient.DB()), cfg.Export.ListLimit)
	if err != nil {
		logg.Error(context.Background(), "failed to create records service", err)
		os.Exit(1)
	}

	mediaService, err := media.NewService(media.NewRepository(dbClient.DB()), blobStore, logg, mediaMetrics, cfg.Export.ListLimit)
	if err != nil {
		logg.Error(context.Background(), "failed to create media service", err)
		os.Exit(1)
	}

	archiveBuilder, err := archive.NewBuilder(mediaService, logg, mediaMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create archive builder", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":       cfg.App.Env,
		"addr":      addr,
		"blob_root": blobStore.Root(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, blobStore.Root(), recordsService, mediaService, archiveBuilder, mediaMetrics),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
