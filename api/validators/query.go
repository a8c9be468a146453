package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
)

// ParseNameList splits a comma-separated query parameter into trimmed,
// non-empty values.
func ParseNameList(r *http.Request, key string) ([]string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter has no usable values").WithDetails(map[string]any{"field": key})
	}
	return values, nil
}
