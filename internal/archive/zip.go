// Package archive bundles stored vlog payloads into ZIP files on demand.
// Bundles are reconstructed from the catalog and blob store at request time;
// nothing archived is ever persisted.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/metrics"
)

type fetcher interface {
	Fetch(ctx context.Context, storedName string) (*models.Vlog, io.ReadCloser, error)
}

// Builder assembles ZIP bundles from stored vlogs.
type Builder struct {
	media   fetcher
	logg    *logger.Logger
	metrics *metrics.MediaMetrics
}

// NewBuilder constructs an archive builder over the media fetch surface.
func NewBuilder(media fetcher, logg *logger.Logger, m *metrics.MediaMetrics) (*Builder, error) {
	if media == nil {
		return nil, fmt.Errorf("media fetcher required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Builder{media: media, logg: logg, metrics: m}, nil
}

// Result is a finished bundle plus what was left out of it.
type Result struct {
	Payload []byte
	Added   int
	Skipped []string
}

// BuildZip bundles the named vlogs under their original display names.
// Items whose record or payload has gone missing are skipped and reported,
// not fatal: a partially consistent store still yields the recoverable
// subset. Any other failure aborts the bundle.
func (b *Builder) BuildZip(ctx context.Context, storedNames []string) (*Result, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	result := &Result{}
	usedNames := map[string]int{}

	for _, storedName := range storedNames {
		if err := ctx.Err(); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "archive build cancelled")
		}

		rec, rc, err := b.media.Fetch(ctx, storedName)
		if err != nil {
			if pkgerrors.HasCode(err, pkgerrors.CodeNotFound) || pkgerrors.HasCode(err, pkgerrors.CodeBlobMissing) {
				skipCtx := b.logg.WithField(ctx, "stored_name", storedName)
				b.logg.Warn(skipCtx, "skipping archive item with missing source")
				b.metrics.IncArchiveSkipped()
				result.Skipped = append(result.Skipped, storedName)
				continue
			}
			_ = zw.Close()
			return nil, err
		}

		entryName := dedupeEntryName(entryNameFor(rec), usedNames)
		w, err := zw.Create(entryName)
		if err != nil {
			_ = rc.Close()
			_ = zw.Close()
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create archive entry")
		}
		if _, err := io.Copy(w, rc); err != nil {
			_ = rc.Close()
			_ = zw.Close()
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write archive entry")
		}
		_ = rc.Close()
		result.Added++
	}

	if err := zw.Close(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize archive")
	}

	result.Payload = buf.Bytes()
	return result, nil
}

// entryNameFor picks the in-archive name: the human-supplied display name,
// falling back to the stored name when the display name is unusable.
func entryNameFor(rec *models.Vlog) string {
	name := strings.TrimSpace(rec.DisplayName)
	if name == "" {
		return rec.StoredName
	}
	return path.Base(strings.ReplaceAll(name, "\\", "/"))
}

// dedupeEntryName disambiguates colliding display names inside one bundle:
// the second "clip.mp4" becomes "clip (1).mp4".
func dedupeEntryName(name string, used map[string]int) string {
	n, seen := used[name]
	if !seen {
		used[name] = 0
		return name
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for {
		n++
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if _, taken := used[candidate]; !taken {
			used[name] = n
			used[candidate] = 0
			return candidate
		}
	}
}
