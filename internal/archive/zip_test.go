package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/db/models"
	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/ntu-info/emogo-backend-Yessinea2025/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVlog struct {
	record  models.Vlog
	payload []byte
	err     error
}

type fakeFetcher struct {
	vlogs map[string]fakeVlog
}

func (f *fakeFetcher) Fetch(ctx context.Context, storedName string) (*models.Vlog, io.ReadCloser, error) {
	v, ok := f.vlogs[storedName]
	if !ok {
		return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "vlog not found")
	}
	if v.err != nil {
		return nil, nil, v.err
	}
	rec := v.record
	return &rec, io.NopCloser(bytes.NewReader(v.payload)), nil
}

func newTestBuilder(t *testing.T, f *fakeFetcher) *Builder {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	b, err := NewBuilder(f, logg, nil)
	require.NoError(t, err)
	return b
}

func readEntries(t *testing.T, payload []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	entries := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(data)
	}
	return entries
}

func TestBuildZipBundlesUnderDisplayNames(t *testing.T) {
	f := &fakeFetcher{vlogs: map[string]fakeVlog{
		"20240101_aaa_one.mp4": {
			record:  models.Vlog{StoredName: "20240101_aaa_one.mp4", DisplayName: "one.mp4"},
			payload: []byte("first-payload"),
		},
		"20240102_bbb_two.mp4": {
			record:  models.Vlog{StoredName: "20240102_bbb_two.mp4", DisplayName: "two.mp4"},
			payload: []byte("second-payload"),
		},
	}}
	b := newTestBuilder(t, f)

	result, err := b.BuildZip(context.Background(), []string{"20240101_aaa_one.mp4", "20240102_bbb_two.mp4"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Empty(t, result.Skipped)

	entries := readEntries(t, result.Payload)
	assert.Equal(t, map[string]string{
		"one.mp4": "first-payload",
		"two.mp4": "second-payload",
	}, entries)
}

func TestBuildZipSkipsMissingItems(t *testing.T) {
	f := &fakeFetcher{vlogs: map[string]fakeVlog{
		"present.mp4": {
			record:  models.Vlog{StoredName: "present.mp4", DisplayName: "clip.mp4"},
			payload: []byte("bytes"),
		},
		"stranded.mp4": {
			err: pkgerrors.New(pkgerrors.CodeBlobMissing, "payload gone"),
		},
	}}
	b := newTestBuilder(t, f)

	result, err := b.BuildZip(context.Background(), []string{"present.mp4", "ghost.mp4", "stranded.mp4"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.ElementsMatch(t, []string{"ghost.mp4", "stranded.mp4"}, result.Skipped)

	entries := readEntries(t, result.Payload)
	assert.Equal(t, map[string]string{"clip.mp4": "bytes"}, entries)
}

func TestBuildZipFailsOnUnexpectedError(t *testing.T) {
	f := &fakeFetcher{vlogs: map[string]fakeVlog{
		"broken.mp4": {
			err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("db down"), "load catalog record"),
		},
	}}
	b := newTestBuilder(t, f)

	_, err := b.BuildZip(context.Background(), []string{"broken.mp4"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}

func TestBuildZipDisambiguatesDuplicateNames(t *testing.T) {
	f := &fakeFetcher{vlogs: map[string]fakeVlog{
		"a": {record: models.Vlog{StoredName: "a", DisplayName: "clip.mp4"}, payload: []byte("one")},
		"b": {record: models.Vlog{StoredName: "b", DisplayName: "clip.mp4"}, payload: []byte("two")},
		"c": {record: models.Vlog{StoredName: "c", DisplayName: "clip.mp4"}, payload: []byte("three")},
	}}
	b := newTestBuilder(t, f)

	result, err := b.BuildZip(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)

	entries := readEntries(t, result.Payload)
	assert.Equal(t, map[string]string{
		"clip.mp4":     "one",
		"clip (1).mp4": "two",
		"clip (2).mp4": "three",
	}, entries)
}

func TestBuildZipEmptyListYieldsEmptyArchive(t *testing.T) {
	b := newTestBuilder(t, &fakeFetcher{vlogs: map[string]fakeVlog{}})

	result, err := b.BuildZip(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Added)

	entries := readEntries(t, result.Payload)
	assert.Empty(t, entries)
}
