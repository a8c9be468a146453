package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	sentiments []models.Sentiment
	gps        []models.GPSCoordinate

	deleteSentimentsErr error
	deleteGPSErr        error
}

func (r *stubRepo) CreateSentiment(ctx context.Context, s *models.Sentiment) error {
	r.sentiments = append(r.sentiments, *s)
	return nil
}

func (r *stubRepo) CreateGPS(ctx context.Context, g *models.GPSCoordinate) error {
	r.gps = append(r.gps, *g)
	return nil
}

func (r *stubRepo) ListSentiments(ctx context.Context, limit int) ([]models.Sentiment, error) {
	rows := r.sentiments
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *stubRepo) ListGPS(ctx context.Context, limit int) ([]models.GPSCoordinate, error) {
	rows := r.gps
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *stubRepo) DeleteAllSentiments(ctx context.Context) (int64, error) {
	if r.deleteSentimentsErr != nil {
		return 0, r.deleteSentimentsErr
	}
	n := int64(len(r.sentiments))
	r.sentiments = nil
	return n, nil
}

func (r *stubRepo) DeleteAllGPS(ctx context.Context) (int64, error) {
	if r.deleteGPSErr != nil {
		return 0, r.deleteGPSErr
	}
	n := int64(len(r.gps))
	r.gps = nil
	return n, nil
}

func newTestService(t *testing.T, repo *stubRepo) *service {
	t.Helper()
	svc, err := NewService(repo, 1000)
	require.NoError(t, err)
	typed := svc.(*service)
	typed.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	return typed
}

func TestAddSentimentDefaultsTimestamp(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	row, err := svc.AddSentiment(context.Background(), SentimentInput{Emotion: "happy", Score: 4})
	require.NoError(t, err)

	assert.Equal(t, "happy", row.Emotion)
	assert.Equal(t, 4, row.Score)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), row.Timestamp)
	assert.Len(t, repo.sentiments, 1)
}

func TestAddSentimentKeepsClientTimestamp(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	row, err := svc.AddSentiment(context.Background(), SentimentInput{Emotion: "calm", Score: 3, Timestamp: &ts})
	require.NoError(t, err)
	assert.Equal(t, ts, row.Timestamp)
}

func TestAddSentimentRejectsEmptyEmotion(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.AddSentiment(context.Background(), SentimentInput{Emotion: "  "})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestAddGPSValidatesRange(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.AddGPS(context.Background(), GPSInput{Latitude: 91, Longitude: 0})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddGPS(context.Background(), GPSInput{Latitude: 0, Longitude: -181})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestAddGPSStoresAccuracy(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	acc := 12.5
	row, err := svc.AddGPS(context.Background(), GPSInput{Latitude: 25.017, Longitude: 121.54, Accuracy: &acc})
	require.NoError(t, err)
	require.NotNil(t, row.Accuracy)
	assert.Equal(t, acc, *row.Accuracy)
}

func TestDeleteAllReportsCounts(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo)

	for i := 0; i < 3; i++ {
		_, err := svc.AddSentiment(context.Background(), SentimentInput{Emotion: "ok", Score: i})
		require.NoError(t, err)
	}
	_, err := svc.AddGPS(context.Background(), GPSInput{Latitude: 1, Longitude: 2})
	require.NoError(t, err)

	result, err := svc.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.SentimentsDeleted)
	assert.Equal(t, int64(1), result.GPSDeleted)
}

func TestDeleteAllPartialFailureStillReportsCounts(t *testing.T) {
	repo := &stubRepo{deleteSentimentsErr: errors.New("table locked")}
	svc := newTestService(t, repo)

	_, err := svc.AddGPS(context.Background(), GPSInput{Latitude: 1, Longitude: 2})
	require.NoError(t, err)

	result, err := svc.DeleteAll(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStorage))
	assert.Equal(t, int64(0), result.SentimentsDeleted)
	assert.Equal(t, int64(1), result.GPSDeleted)
}
