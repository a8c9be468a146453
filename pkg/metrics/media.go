package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MediaMetrics records upload, export and archive activity.
type MediaMetrics struct {
	uploads        prometheus.Counter
	uploadFailures prometheus.Counter
	uploadBytes    prometheus.Counter
	exports        *prometheus.CounterVec
	archiveSkipped prometheus.Counter
	deleteDuration prometheus.Histogram
}

// NewMediaMetrics registers the media metrics on the provided registerer.
func NewMediaMetrics(reg prometheus.Registerer) *MediaMetrics {
	if reg == nil {
		return &MediaMetrics{}
	}
	uploads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Completed vlog uploads.",
	})
	uploadFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_upload_failures_total",
		Help: "Failed vlog uploads.",
	})
	uploadBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_upload_bytes_total",
		Help: "Bytes written to the blob store by uploads.",
	})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "export_builds_total",
		Help: "Export payloads rendered, by format.",
	}, []string{"format"})
	archiveSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "archive_items_skipped_total",
		Help: "Archive items skipped because the record or blob was missing.",
	})
	deleteDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "media_delete_all_duration_seconds",
		Help:    "Duration of bulk delete sweeps.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(uploads, uploadFailures, uploadBytes, exports, archiveSkipped, deleteDuration)
	return &MediaMetrics{
		uploads:        uploads,
		uploadFailures: uploadFailures,
		uploadBytes:    uploadBytes,
		exports:        exports,
		archiveSkipped: archiveSkipped,
		deleteDuration: deleteDuration,
	}
}

// ObserveUpload records a completed upload of the given size.
func (m *MediaMetrics) ObserveUpload(sizeBytes int64) {
	if m == nil || m.uploads == nil {
		return
	}
	m.uploads.Inc()
	m.uploadBytes.Add(float64(sizeBytes))
}

// IncUploadFailure increments the failed-upload counter.
func (m *MediaMetrics) IncUploadFailure() {
	if m == nil || m.uploadFailures == nil {
		return
	}
	m.uploadFailures.Inc()
}

// IncExport counts one rendered export payload for the named format.
func (m *MediaMetrics) IncExport(format string) {
	if m == nil || m.exports == nil {
		return
	}
	if format == "" {
		format = "unknown"
	}
	m.exports.WithLabelValues(format).Inc()
}

// IncArchiveSkipped counts an archive item omitted for a missing source.
func (m *MediaMetrics) IncArchiveSkipped() {
	if m == nil || m.archiveSkipped == nil {
		return
	}
	m.archiveSkipped.Inc()
}

// ObserveDeleteAll records the duration of a bulk delete sweep.
func (m *MediaMetrics) ObserveDeleteAll(duration time.Duration) {
	if m == nil || m.deleteDuration == nil {
		return
	}
	m.deleteDuration.Observe(duration.Seconds())
}
