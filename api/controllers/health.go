package controllers

import (
	"net/http"
	"os"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/config"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-EmoGo-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies both persistence tiers are reachable: the catalog
// database and the blob store root.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, blobRoot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-EmoGo-Env", cfg.App.Env)

		checks := map[string]string{}

		if dbP == nil {
			checks["database"] = "not configured"
		} else if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		} else {
			checks["database"] = "ok"
		}

		if info, err := os.Stat(blobRoot); err != nil || !info.IsDir() {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "blob store root unavailable"))
			return
		}
		checks["blob_store"] = "ok"

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
