package records

import (
	"context"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes sentiment and GPS record persistence. Both collections
// are plain append-only tables with no cross-row invariants.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a records repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSentiment persists a sentiment record.
func (r *Repository) CreateSentiment(ctx context.Context, s *models.Sentiment) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// CreateGPS persists a GPS sample.
func (r *Repository) CreateGPS(ctx context.Context, g *models.GPSCoordinate) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// ListSentiments returns sentiment records in insertion order, capped at
// limit. Insertion order follows created_at, not the client-supplied
// timestamp.
func (r *Repository) ListSentiments(ctx context.Context, limit int) ([]models.Sentiment, error) {
	var rows []models.Sentiment
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListGPS returns GPS samples in insertion order, capped at limit.
func (r *Repository) ListGPS(ctx context.Context, limit int) ([]models.GPSCoordinate, error) {
	var rows []models.GPSCoordinate
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAllSentiments removes every sentiment record and returns the count.
func (r *Repository) DeleteAllSentiments(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Sentiment{})
	return res.RowsAffected, res.Error
}

// DeleteAllGPS removes every GPS sample and returns the count.
func (r *Repository) DeleteAllGPS(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.GPSCoordinate{})
	return res.RowsAffected, res.Error
}
