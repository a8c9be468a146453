package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/controllers"
	"github.com/ntu-info/emogo-backend-Yessinea2025/api/middleware"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/archive"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/media"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/config"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	blobRoot string,
	recordsService records.Service,
	mediaService media.Service,
	archiveBuilder *archive.Builder,
	mediaMetrics *metrics.MediaMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	maxUploadBytes := int64(cfg.Media.MaxUploadMB) * 1024 * 1024

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, blobRoot))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/sentiments", controllers.CreateSentiment(recordsService, logg))
	r.Post("/gps", controllers.CreateGPS(recordsService, logg))

	r.Route("/vlogs", func(r chi.Router) {
		r.Post("/", controllers.UploadVlog(mediaService, logg, maxUploadBytes))
		r.Get("/", controllers.ListVlogs(mediaService, logg))
		r.Get("/{storedName}", controllers.DownloadVlog(mediaService, logg))
	})

	r.Route("/export", func(r chi.Router) {
		r.Get("/sentiments", controllers.ExportSentiments(recordsService, logg, mediaMetrics))
		r.Get("/sentiments/csv", controllers.ExportSentimentsCSV(recordsService, logg, mediaMetrics))
		r.Get("/gps", controllers.ExportGPS(recordsService, logg, mediaMetrics))
		r.Get("/gps/csv", controllers.ExportGPSCSV(recordsService, logg, mediaMetrics))
		r.Get("/vlogs", controllers.ExportVlogs(mediaService, logg, mediaMetrics))
		r.Get("/vlogs/download-all", controllers.DownloadAllVlogs(mediaService, archiveBuilder, logg, mediaMetrics))
		r.Get("/vlogs/download-multiple", controllers.DownloadSelectedVlogs(archiveBuilder, logg, mediaMetrics))
		r.Get("/all", controllers.ExportAll(recordsService, mediaService, logg, mediaMetrics))
		r.Get("/all/download", controllers.ExportAllDownload(recordsService, mediaService, logg, mediaMetrics))
	})

	r.Post("/clear_all_data", controllers.ClearAllData(recordsService, mediaService, logg))

	return r
}
