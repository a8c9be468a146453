package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ntu-info/emogo-backend-Yessinea2025/api/responses"
	"github.com/ntu-info/emogo-backend-Yessinea2025/internal/media"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
)

const uploadFileField = "file"

// UploadVlog ingests one multipart video upload: the payload streams into
// the blob store before the catalog record is written.
func UploadVlog(svc media.Service, logg *logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}

		file, header, err := r.FormFile(uploadFileField)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart field 'file' is required"))
			return
		}
		defer file.Close()

		var description *string
		if d := strings.TrimSpace(r.FormValue("description")); d != "" {
			description = &d
		}

		vlog, err := svc.Upload(ctx, file, media.UploadInput{
			FileName:    header.Filename,
			ContentType: contentTypeFromHeader(header),
			Description: description,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, vlog)
	}
}

// DownloadVlog streams one stored video back to the client.
func DownloadVlog(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		storedName := chi.URLParam(r, "storedName")
		vlog, rc, err := svc.Fetch(ctx, storedName)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", vlog.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(vlog.SizeBytes, 10))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vlog.DisplayName))

		if _, err := io.Copy(w, rc); err != nil {
			// Headers are gone; the client sees a truncated body. Log and move on.
			if logg != nil {
				logg.Error(ctx, "vlog stream interrupted", err)
			}
		}
	}
}

// ListVlogs returns the catalog without payloads.
func ListVlogs(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func contentTypeFromHeader(header *multipart.FileHeader) string {
	if header == nil {
		return ""
	}
	return header.Header.Get("Content-Type")
}
