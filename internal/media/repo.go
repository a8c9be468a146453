package media

import (
	"context"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes vlog catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a vlog repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a catalog record.
func (r *Repository) Create(ctx context.Context, vlog *models.Vlog) error {
	return r.db.WithContext(ctx).Create(vlog).Error
}

// FindByStoredName retrieves a catalog record by its stored name.
func (r *Repository) FindByStoredName(ctx context.Context, storedName string) (*models.Vlog, error) {
	var v models.Vlog
	if err := r.db.WithContext(ctx).First(&v, "stored_name = ?", storedName).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns catalog records in insertion order, capped at limit. The id
// tiebreak keeps ordering stable when rows share a creation timestamp.
func (r *Repository) List(ctx context.Context, limit int) ([]models.Vlog, error) {
	var rows []models.Vlog
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAll removes every catalog record and returns the number deleted.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Vlog{})
	return res.RowsAffected, res.Error
}
