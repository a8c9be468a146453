package export

import "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"

// SentimentColumns is the evaluator-facing CSV shape for mood ratings.
func SentimentColumns() []Column[models.Sentiment] {
	return []Column[models.Sentiment]{
		{Name: "emotion", Value: func(s models.Sentiment) any { return s.Emotion }},
		{Name: "score", Value: func(s models.Sentiment) any { return s.Score }},
		{Name: "note", Value: func(s models.Sentiment) any { return s.Note }},
		{Name: "timestamp", Value: func(s models.Sentiment) any { return s.Timestamp }},
	}
}

// GPSColumns is the evaluator-facing CSV shape for location samples.
// Accuracy is stored but intentionally absent from exports.
func GPSColumns() []Column[models.GPSCoordinate] {
	return []Column[models.GPSCoordinate]{
		{Name: "latitude", Value: func(g models.GPSCoordinate) any { return g.Latitude }},
		{Name: "longitude", Value: func(g models.GPSCoordinate) any { return g.Longitude }},
		{Name: "timestamp", Value: func(g models.GPSCoordinate) any { return g.Timestamp }},
	}
}

// VlogColumns is the evaluator-facing CSV shape for the vlog catalog. Blob
// references are an internal addressing detail and never exported.
func VlogColumns() []Column[models.Vlog] {
	return []Column[models.Vlog]{
		{Name: "stored_name", Value: func(v models.Vlog) any { return v.StoredName }},
		{Name: "display_name", Value: func(v models.Vlog) any { return v.DisplayName }},
		{Name: "description", Value: func(v models.Vlog) any { return v.Description }},
		{Name: "content_type", Value: func(v models.Vlog) any { return v.ContentType }},
		{Name: "size_bytes", Value: func(v models.Vlog) any { return v.SizeBytes }},
		{Name: "created_at", Value: func(v models.Vlog) any { return v.CreatedAt }},
	}
}
