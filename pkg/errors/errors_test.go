package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeBlobMissing, http.StatusInternalServerError},
		{CodeUpload, http.StatusInternalServerError},
		{CodeStorage, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("MetadataFor(%s).HTTPStatus = %d, want %d", tc.code, got, tc.status)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown code mapped to %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesChain(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("disk full")
	err := Wrap(CodeStorage, cause, "write blob")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped cause not found in chain")
	}
	if err.Code() != CodeStorage {
		t.Fatalf("code = %s", err.Code())
	}
	if err.Error() != "STORAGE_WRITE_ERROR: write blob" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	t.Parallel()

	inner := New(CodeBlobMissing, "blob gone")
	outer := fmt.Errorf("fetch: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("As returned nil for wrapped typed error")
	}
	if typed.Code() != CodeBlobMissing {
		t.Fatalf("code = %s", typed.Code())
	}
	if !HasCode(outer, CodeBlobMissing) {
		t.Fatal("HasCode missed wrapped code")
	}
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	t.Parallel()

	if typed := As(stdErrors.New("plain")); typed != nil {
		t.Fatalf("expected nil, got %v", typed)
	}
}
