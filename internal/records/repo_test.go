package records

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRecordsDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "records.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Sentiment{}, &models.GPSCoordinate{}))
	return conn
}

func TestListSentimentsFollowsInsertionOrder(t *testing.T) {
	repo := NewRepository(newRecordsDB(t))
	ctx := context.Background()

	// Client timestamps run backwards; listing must still follow when the
	// rows were inserted.
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	emotions := []string{"calm", "happy", "tired"}
	for i, emotion := range emotions {
		require.NoError(t, repo.CreateSentiment(ctx, &models.Sentiment{
			ID:        uuid.New(),
			Emotion:   emotion,
			Score:     i,
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rows, err := repo.ListSentiments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Equal(t, emotions[i], row.Emotion)
	}
}

func TestListGPSFollowsInsertionOrder(t *testing.T) {
	repo := NewRepository(newRecordsDB(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	lats := []float64{25.017, 25.018, 25.019}
	for i, lat := range lats {
		require.NoError(t, repo.CreateGPS(ctx, &models.GPSCoordinate{
			ID:        uuid.New(),
			Latitude:  lat,
			Longitude: 121.54,
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rows, err := repo.ListGPS(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Equal(t, lats[i], row.Latitude)
	}
}

func TestDeleteAllRecordsReportsCounts(t *testing.T) {
	repo := NewRepository(newRecordsDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateSentiment(ctx, &models.Sentiment{
		ID: uuid.New(), Emotion: "happy", Score: 5, Timestamp: time.Now().UTC(),
	}))
	require.NoError(t, repo.CreateGPS(ctx, &models.GPSCoordinate{
		ID: uuid.New(), Latitude: 25.017, Longitude: 121.54, Timestamp: time.Now().UTC(),
	}))

	sentiments, err := repo.DeleteAllSentiments(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, sentiments)

	gps, err := repo.DeleteAllGPS(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, gps)
}
