package media

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/blob"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/metrics"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const defaultContentType = "application/octet-stream"

type blobStore interface {
	Put(ctx context.Context, r io.Reader) (string, int64, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
	ListRefs(ctx context.Context) ([]string, error)
}

type catalogRepository interface {
	Create(ctx context.Context, vlog *models.Vlog) error
	FindByStoredName(ctx context.Context, storedName string) (*models.Vlog, error)
	List(ctx context.Context, limit int) ([]models.Vlog, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// UploadInput models the metadata accompanying an uploaded video stream.
type UploadInput struct {
	FileName    string
	ContentType string
	Description *string
}

// DeleteResult reports what a bulk delete actually removed. Counts are valid
// even when the accompanying error is non-nil.
type DeleteResult struct {
	VlogsDeleted int64
	BlobsDeleted int
}

// Service exposes the two-tier vlog persistence semantics: the binary payload
// lives in the blob store, the metadata record in the catalog.
type Service interface {
	Upload(ctx context.Context, r io.Reader, input UploadInput) (*models.Vlog, error)
	Fetch(ctx context.Context, storedName string) (*models.Vlog, io.ReadCloser, error)
	List(ctx context.Context) ([]models.Vlog, error)
	DeleteAll(ctx context.Context) (DeleteResult, error)
}

type service struct {
	repo      catalogRepository
	blobs     blobStore
	logg      *logger.Logger
	metrics   *metrics.MediaMetrics
	listLimit int

	now    func() time.Time
	suffix func() string
}

// NewService constructs a media service over the provided catalog and blob
// store. listLimit caps List; zero or negative means unbounded.
func NewService(repo catalogRepository, blobs blobStore, logg *logger.Logger, m *metrics.MediaMetrics, listLimit int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if blobs == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		blobs:     blobs,
		logg:      logg,
		metrics:   m,
		listLimit: listLimit,
		now:       time.Now,
		suffix:    randomSuffix,
	}, nil
}

// Upload streams the payload into the blob store first, then records it in
// the catalog. A record never points at a blob that is not fully persisted.
func (s *service) Upload(ctx context.Context, r io.Reader, input UploadInput) (*models.Vlog, error) {
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if r == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upload body is required")
	}

	contentType := strings.TrimSpace(input.ContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	ref, size, err := s.blobs.Put(ctx, r)
	if err != nil {
		s.metrics.IncUploadFailure()
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpload, err, "persist upload payload")
	}

	vlog := &models.Vlog{
		ID:          uuid.New(),
		BlobRef:     ref,
		StoredName:  buildStoredName(s.now(), s.suffix(), fileName),
		DisplayName: fileName,
		Description: input.Description,
		ContentType: contentType,
		SizeBytes:   size,
	}

	if err := s.repo.Create(ctx, vlog); err != nil {
		// The blob is already durable. Leave it in place for reconciliation
		// instead of racing a cleanup against a possibly-committed row.
		s.metrics.IncUploadFailure()
		orphanCtx := s.logg.WithFields(ctx, map[string]any{
			"blob_ref":    ref,
			"stored_name": vlog.StoredName,
		})
		s.logg.Error(orphanCtx, "catalog insert failed, blob left orphaned", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "persist catalog record")
	}

	s.metrics.ObserveUpload(size)
	return vlog, nil
}

// Fetch resolves a stored name to its catalog record and an open payload
// stream. The caller owns closing the stream.
func (s *service) Fetch(ctx context.Context, storedName string) (*models.Vlog, io.ReadCloser, error) {
	storedName = strings.TrimSpace(storedName)
	if storedName == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "stored name is required")
	}

	vlog, err := s.repo.FindByStoredName(ctx, storedName)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "vlog not found")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog record")
	}

	rc, err := s.blobs.Open(ctx, vlog.BlobRef)
	if err != nil {
		if stdErrors.Is(err, blob.ErrNotFound) {
			blobCtx := s.logg.WithFields(ctx, map[string]any{
				"blob_ref":    vlog.BlobRef,
				"stored_name": vlog.StoredName,
			})
			s.logg.Error(blobCtx, "catalog record has no payload", err)
			return nil, nil, pkgerrors.Wrap(pkgerrors.CodeBlobMissing, err, "open payload").
				WithDetails(map[string]any{"stored_name": vlog.StoredName})
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open payload")
	}

	return vlog, rc, nil
}

// List returns the catalog in insertion order, capped at the configured limit.
func (s *service) List(ctx context.Context) ([]models.Vlog, error) {
	rows, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return rows, nil
}

// DeleteAll clears the catalog, then sweeps every blob in the store,
// including orphans no record points at. Partial failure still reports the
// counts actually removed.
func (s *service) DeleteAll(ctx context.Context) (DeleteResult, error) {
	start := s.now()
	var result DeleteResult
	var errs error

	deleted, err := s.repo.DeleteAll(ctx)
	result.VlogsDeleted = deleted
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("clearing catalog: %w", err))
	}

	refs, err := s.blobs.ListRefs(ctx)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("listing blobs: %w", err))
	}
	for _, ref := range refs {
		if err := s.blobs.Delete(ctx, ref); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("deleting blob %s: %w", ref, err))
			continue
		}
		result.BlobsDeleted++
	}

	s.metrics.ObserveDeleteAll(s.now().Sub(start))
	if errs != nil {
		return result, pkgerrors.Wrap(pkgerrors.CodeStorage, errs, "bulk delete incomplete")
	}
	return result, nil
}
