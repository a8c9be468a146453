package db

import (
	"context"
	"fmt"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/config"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

// MaybeAutoMigrate syncs the schema when the feature flag is enabled. The
// schema is three flat tables, so GORM auto-migration is the whole migration
// story for this service.
func MaybeAutoMigrate(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "running schema auto-migration")

	if err := client.DB().WithContext(ctx).AutoMigrate(
		&models.Sentiment{},
		&models.GPSCoordinate{},
		&models.Vlog{},
	); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}

	logg.Info(ctx, "schema auto-migration completed")
	return nil
}
