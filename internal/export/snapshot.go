package export

import (
	"time"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
)

// SentimentView is a sentiment record rendered for export.
type SentimentView struct {
	ID        string  `json:"id"`
	Emotion   string  `json:"emotion"`
	Score     int     `json:"score"`
	Note      *string `json:"note,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// GPSView is a location sample rendered for export. Accuracy is dropped.
type GPSView struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// VlogView is a catalog record rendered for export. The blob reference is an
// internal addressing detail and never leaves the service.
type VlogView struct {
	ID          string  `json:"id"`
	StoredName  string  `json:"stored_name"`
	DisplayName string  `json:"display_name"`
	Description *string `json:"description,omitempty"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`
	CreatedAt   string  `json:"created_at"`
}

// Snapshot is the full-dataset JSON export: every collection rendered in the
// presentation zone, plus the instant the snapshot was cut.
type Snapshot struct {
	Sentiments     []SentimentView `json:"sentiments"`
	GPSCoordinates []GPSView       `json:"gps_coordinates"`
	Vlogs          []VlogView      `json:"vlogs"`
	ExportTime     string          `json:"export_time"`
	Timezone       string          `json:"timezone"`
	TotalRecords   int             `json:"total_records"`
}

// SentimentViews renders sentiment records in the presentation zone.
func SentimentViews(rows []models.Sentiment) []SentimentView {
	views := make([]SentimentView, 0, len(rows))
	for _, s := range rows {
		views = append(views, SentimentView{
			ID:        s.ID.String(),
			Emotion:   s.Emotion,
			Score:     s.Score,
			Note:      s.Note,
			Timestamp: Normalize(s.Timestamp),
		})
	}
	return views
}

// GPSViews renders location samples in the presentation zone.
func GPSViews(rows []models.GPSCoordinate) []GPSView {
	views := make([]GPSView, 0, len(rows))
	for _, g := range rows {
		views = append(views, GPSView{
			ID:        g.ID.String(),
			Latitude:  g.Latitude,
			Longitude: g.Longitude,
			Timestamp: Normalize(g.Timestamp),
		})
	}
	return views
}

// VlogViews renders catalog records in the presentation zone.
func VlogViews(rows []models.Vlog) []VlogView {
	views := make([]VlogView, 0, len(rows))
	for _, v := range rows {
		views = append(views, VlogView{
			ID:          v.ID.String(),
			StoredName:  v.StoredName,
			DisplayName: v.DisplayName,
			Description: v.Description,
			ContentType: v.ContentType,
			SizeBytes:   v.SizeBytes,
			CreatedAt:   Normalize(v.CreatedAt),
		})
	}
	return views
}

// BuildSnapshot assembles the export projection for all three collections.
func BuildSnapshot(sentiments []models.Sentiment, gps []models.GPSCoordinate, vlogs []models.Vlog, now time.Time) Snapshot {
	return Snapshot{
		Sentiments:     SentimentViews(sentiments),
		GPSCoordinates: GPSViews(gps),
		Vlogs:          VlogViews(vlogs),
		ExportTime:     Normalize(now),
		Timezone:       TimezoneLabel,
		TotalRecords:   len(sentiments) + len(gps) + len(vlogs),
	}
}
