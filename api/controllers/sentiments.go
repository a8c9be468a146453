package controllers

import (
	"net/http"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/api/validators"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/records"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

type createSentimentPayload struct {
	Emotion   string                `json:"emotion" validate:"required"`
	Score     int                   `json:"score" validate:"gte=0,lte=10"`
	Note      *string               `json:"note,omitempty"`
	Timestamp *validators.Timestamp `json:"timestamp,omitempty"`
}

// CreateSentiment stores one mood rating.
func CreateSentiment(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		var payload createSentimentPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		row, err := svc.AddSentiment(ctx, records.SentimentInput{
			Emotion:   payload.Emotion,
			Score:     payload.Score,
			Note:      payload.Note,
			Timestamp: payload.Timestamp.TimePtr(),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}
