package controllers

import (
	"net/http"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/media"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

// ClearAllData wipes every collection and the blob store. Partial failure
// still reports whatever was removed; the counts in the response are the
// achieved counts, not the requested ones.
func ClearAllData(recordsSvc records.Service, mediaSvc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if recordsSvc == nil || mediaSvc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "services unavailable"))
			return
		}

		recordsResult, recordsErr := recordsSvc.DeleteAll(ctx)
		mediaResult, mediaErr := mediaSvc.DeleteAll(ctx)

		deleted := map[string]any{
			"sentiments":      recordsResult.SentimentsDeleted,
			"gps_coordinates": recordsResult.GPSDeleted,
			"vlogs":           mediaResult.VlogsDeleted,
			"blobs":           mediaResult.BlobsDeleted,
		}

		if recordsErr != nil || mediaErr != nil {
			err := recordsErr
			if err == nil {
				err = mediaErr
			}
			typed := pkgerrors.Wrap(pkgerrors.CodeStorage, err, "clear all data incomplete").WithDetails(deleted)
			responses.WriteError(ctx, logg, w, typed)
			return
		}

		if logg != nil {
			logg.Info(logg.WithFields(ctx, deleted), "all collections cleared")
		}
		responses.WriteSuccess(w, map[string]any{
			"message": "all data cleared",
			"deleted": deleted,
		})
	}
}
