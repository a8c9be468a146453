// Package blob implements the on-disk content container for vlog payloads.
//
// Each blob is an opaque immutable byte sequence keyed by a store-assigned
// reference. Writes go to a temp file first and are moved into place with an
// atomic rename, so a blob is either fully visible or not visible at all.
// Blobs are sharded into a two-level directory structure derived from the
// reference to keep directories small.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	tempDirName = ".tmp"
	blobDirName = "blobs"

	fileMode = 0o644
	dirMode  = 0o755
)

// ErrNotFound is returned when a reference does not resolve to a stored blob.
var ErrNotFound = errors.New("blob not found")

// Store is a filesystem-backed blob container rooted at a single directory.
// All methods are safe for concurrent use.
type Store struct {
	root string
}

// NewStore prepares the container directories under root.
func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(filepath.Join(root, blobDirName), dirMode); err != nil {
		return nil, fmt.Errorf("creating blobs directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, tempDirName), dirMode); err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the container root directory.
func (s *Store) Root() string {
	return s.root
}

// Put stores everything readable from r and returns the assigned reference
// and the number of bytes written. On any failure the temp file is removed
// and no blob becomes retrievable.
func (s *Store) Put(ctx context.Context, r io.Reader) (string, int64, error) {
	ref := newRef()

	tmpPath := filepath.Join(s.root, tempDirName, ref)
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return "", 0, fmt.Errorf("creating temp file: %w", err)
	}

	size, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", 0, fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", 0, fmt.Errorf("closing blob: %w", err)
	}

	dataPath := s.pathFromRef(ref)
	if err := os.MkdirAll(filepath.Dir(dataPath), dirMode); err != nil {
		_ = os.Remove(tmpPath)
		return "", 0, fmt.Errorf("creating shard directory: %w", err)
	}
	// Rename is atomic on the filesystems we target; partial writes never
	// land under blobs/.
	if err := os.Rename(tmpPath, dataPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", 0, fmt.Errorf("committing blob: %w", err)
	}

	return ref, size, nil
}

// Open returns a reader over the exact bytes previously stored under ref.
func (s *Store) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if !validRef(ref) {
		return nil, fmt.Errorf("blob %q: %w", ref, ErrNotFound)
	}

	f, err := os.Open(s.pathFromRef(ref))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("blob %q: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("open blob %q: %w", ref, err)
	}
	return f, nil
}

// Delete removes the blob under ref. Deleting an unknown or already-deleted
// reference is not an error.
func (s *Store) Delete(ctx context.Context, ref string) error {
	if !validRef(ref) {
		return nil
	}

	dataPath := s.pathFromRef(ref)
	if err := os.Remove(dataPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete blob %q: %w", ref, err)
	}

	s.cleanupEmptyDirs(dataPath)
	return nil
}

// ListRefs walks the container and returns every stored reference. Order is
// unspecified; the listing exists for bulk deletion and reconciliation.
func (s *Store) ListRefs(ctx context.Context) ([]string, error) {
	blobsDir := filepath.Join(s.root, blobDirName)

	var refs []string
	err := filepath.WalkDir(blobsDir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if validRef(d.Name()) {
			refs = append(refs, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing blobs: %w", err)
	}
	return refs, nil
}

// pathFromRef shards refs into ref[:2]/ref[2:4]/ref under blobs/.
func (s *Store) pathFromRef(ref string) string {
	return filepath.Join(s.root, blobDirName, ref[:2], ref[2:4], ref)
}

// cleanupEmptyDirs removes empty shard directories after a delete, stopping
// at the first non-empty directory or at the blobs root.
func (s *Store) cleanupEmptyDirs(path string) {
	blobsDir := filepath.Join(s.root, blobDirName)
	parent := filepath.Dir(path)

	for parent != blobsDir && parent != s.root && parent != "." && parent != "/" {
		entries, err := os.ReadDir(parent)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := os.Remove(parent); err != nil {
			break
		}
		parent = filepath.Dir(parent)
	}
}
