package controllers

import (
	"net/http"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/api/validators"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

type createGPSPayload struct {
	Latitude  float64               `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64               `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  *float64              `json:"accuracy,omitempty"`
	Timestamp *validators.Timestamp `json:"timestamp,omitempty"`
}

// CreateGPS stores one location sample.
func CreateGPS(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		var payload createGPSPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		row, err := svc.AddGPS(ctx, records.GPSInput{
			Latitude:  payload.Latitude,
			Longitude: payload.Longitude,
			Accuracy:  payload.Accuracy,
			Timestamp: payload.Timestamp.TimePtr(),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}
