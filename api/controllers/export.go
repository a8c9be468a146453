package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/api/validators"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/archive"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/export"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/media"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/metrics"
)

// ExportSentiments returns the sentiment collection as a JSON view.
func ExportSentiments(svc records.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.ListSentiments(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncExport("json")
		responses.WriteSuccess(w, export.SentimentViews(rows))
	}
}

// ExportSentimentsCSV returns the sentiment collection as a CSV download.
func ExportSentimentsCSV(svc records.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.ListSentiments(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload, err := export.CSV(rows, export.SentimentColumns())
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render sentiments csv"))
			return
		}

		m.IncExport("csv")
		writeCSV(w, "sentiments_"+export.FileTimestamp(time.Now())+".csv", payload)
	}
}

// ExportGPS returns the GPS collection as a JSON view. Accuracy is dropped.
func ExportGPS(svc records.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.ListGPS(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncExport("json")
		responses.WriteSuccess(w, export.GPSViews(rows))
	}
}

// ExportGPSCSV returns the GPS collection as a CSV download.
func ExportGPSCSV(svc records.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.ListGPS(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload, err := export.CSV(rows, export.GPSColumns())
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render gps csv"))
			return
		}

		m.IncExport("csv")
		writeCSV(w, "gps_coordinates_"+export.FileTimestamp(time.Now())+".csv", payload)
	}
}

// ExportVlogs returns the vlog catalog as a JSON view.
func ExportVlogs(svc media.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncExport("json")
		responses.WriteSuccess(w, export.VlogViews(rows))
	}
}

// DownloadAllVlogs bundles every stored vlog into one ZIP. Items whose
// payload has gone missing are skipped rather than failing the bundle; an
// empty catalog yields an empty archive.
func DownloadAllVlogs(svc media.Service, builder *archive.Builder, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		writeArchive(w, r, builder, logg, m, storedNames(rows))
	}
}

// DownloadSelectedVlogs bundles the vlogs named in the `names` query
// parameter (comma separated stored names).
func DownloadSelectedVlogs(builder *archive.Builder, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		names, err := validators.ParseNameList(r, "names")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		writeArchive(w, r, builder, logg, m, names)
	}
}

// ExportAll returns the full-dataset JSON snapshot inline.
func ExportAll(recordsSvc records.Service, mediaSvc media.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snap, err := buildSnapshot(r, recordsSvc, mediaSvc)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.IncExport("json")
		responses.WriteSuccess(w, snap)
	}
}

// ExportAllDownload returns the full-dataset JSON snapshot as a file
// attachment.
func ExportAllDownload(recordsSvc records.Service, mediaSvc media.Service, logg *logger.Logger, m *metrics.MediaMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snap, err := buildSnapshot(r, recordsSvc, mediaSvc)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render snapshot"))
			return
		}

		m.IncExport("json")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "emogo_data_"+export.FileTimestamp(time.Now())+".json"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}

func buildSnapshot(r *http.Request, recordsSvc records.Service, mediaSvc media.Service) (export.Snapshot, error) {
	ctx := r.Context()

	sentiments, err := recordsSvc.ListSentiments(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	gps, err := recordsSvc.ListGPS(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	vlogs, err := mediaSvc.List(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}

	return export.BuildSnapshot(sentiments, gps, vlogs, time.Now()), nil
}

func writeArchive(w http.ResponseWriter, r *http.Request, builder *archive.Builder, logg *logger.Logger, m *metrics.MediaMetrics, names []string) {
	ctx := r.Context()

	if builder == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "archive builder unavailable"))
		return
	}

	result, err := builder.BuildZip(ctx, names)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}

	m.IncExport("zip")
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "emogo_vlogs_"+export.FileTimestamp(time.Now())+".zip"))
	w.Header().Set("X-Archive-Added", fmt.Sprint(result.Added))
	w.Header().Set("X-Archive-Skipped", fmt.Sprint(len(result.Skipped)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Payload)
}

func writeCSV(w http.ResponseWriter, filename string, payload []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func storedNames(rows []models.Vlog) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.StoredName)
	}
	return names
}
