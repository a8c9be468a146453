package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"go.uber.org/multierr"
)

type recordsRepository interface {
	CreateSentiment(ctx context.Context, s *models.Sentiment) error
	CreateGPS(ctx context.Context, g *models.GPSCoordinate) error
	ListSentiments(ctx context.Context, limit int) ([]models.Sentiment, error)
	ListGPS(ctx context.Context, limit int) ([]models.GPSCoordinate, error)
	DeleteAllSentiments(ctx context.Context) (int64, error)
	DeleteAllGPS(ctx context.Context) (int64, error)
}

// SentimentInput models a mood rating submission.
type SentimentInput struct {
	Emotion   string
	Score     int
	Note      *string
	Timestamp *time.Time
}

// GPSInput models a location sample submission.
type GPSInput struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Timestamp *time.Time
}

// DeleteResult reports what a bulk delete removed from the plain collections.
type DeleteResult struct {
	SentimentsDeleted int64
	GPSDeleted        int64
}

// Service stores and lists the plain sentiment and GPS collections.
type Service interface {
	AddSentiment(ctx context.Context, input SentimentInput) (*models.Sentiment, error)
	AddGPS(ctx context.Context, input GPSInput) (*models.GPSCoordinate, error)
	ListSentiments(ctx context.Context) ([]models.Sentiment, error)
	ListGPS(ctx context.Context) ([]models.GPSCoordinate, error)
	DeleteAll(ctx context.Context) (DeleteResult, error)
}

type service struct {
	repo      recordsRepository
	listLimit int
	now       func() time.Time
}

// NewService constructs a records service. listLimit caps the list
// operations; zero or negative means unbounded.
func NewService(repo recordsRepository, listLimit int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("records repository required")
	}
	return &service{
		repo:      repo,
		listLimit: listLimit,
		now:       time.Now,
	}, nil
}

// AddSentiment stores a mood rating. A missing timestamp defaults to the
// server receipt time.
func (s *service) AddSentiment(ctx context.Context, input SentimentInput) (*models.Sentiment, error) {
	emotion := strings.TrimSpace(input.Emotion)
	if emotion == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "emotion is required")
	}

	row := &models.Sentiment{
		ID:        uuid.New(),
		Emotion:   emotion,
		Score:     input.Score,
		Note:      input.Note,
		Timestamp: s.timestampOrNow(input.Timestamp),
	}
	if err := s.repo.CreateSentiment(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist sentiment")
	}
	return row, nil
}

// AddGPS stores a location sample. A missing timestamp defaults to the
// server receipt time.
func (s *service) AddGPS(ctx context.Context, input GPSInput) (*models.GPSCoordinate, error) {
	if input.Latitude < -90 || input.Latitude > 90 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latitude must be between -90 and 90")
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "longitude must be between -180 and 180")
	}

	row := &models.GPSCoordinate{
		ID:        uuid.New(),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		Timestamp: s.timestampOrNow(input.Timestamp),
	}
	if err := s.repo.CreateGPS(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist gps sample")
	}
	return row, nil
}

func (s *service) ListSentiments(ctx context.Context) ([]models.Sentiment, error) {
	rows, err := s.repo.ListSentiments(ctx, s.listLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sentiments")
	}
	return rows, nil
}

func (s *service) ListGPS(ctx context.Context) ([]models.GPSCoordinate, error) {
	rows, err := s.repo.ListGPS(ctx, s.listLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gps samples")
	}
	return rows, nil
}

// DeleteAll clears both collections. Partial failure still reports the
// counts actually removed.
func (s *service) DeleteAll(ctx context.Context) (DeleteResult, error) {
	var result DeleteResult
	var errs error

	n, err := s.repo.DeleteAllSentiments(ctx)
	result.SentimentsDeleted = n
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("clearing sentiments: %w", err))
	}

	n, err = s.repo.DeleteAllGPS(ctx)
	result.GPSDeleted = n
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("clearing gps samples: %w", err))
	}

	if errs != nil {
		return result, pkgerrors.Wrap(pkgerrors.CodeStorage, errs, "bulk delete incomplete")
	}
	return result, nil
}

func (s *service) timestampOrNow(ts *time.Time) time.Time {
	if ts != nil && !ts.IsZero() {
		return *ts
	}
	return s.now()
}
