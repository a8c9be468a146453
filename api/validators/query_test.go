package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/ntu-info/emogo-backend-Yessinea2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameList(t *testing.T) {
	r := httptest.NewRequest("GET", "/export/vlogs/download-multiple?names=a.mp4,%20b.mp4,,c.mp4", nil)

	values, err := ParseNameList(r, "names")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mp4", "b.mp4", "c.mp4"}, values)
}

func TestParseNameListMissingParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/export/vlogs/download-multiple", nil)

	_, err := ParseNameList(r, "names")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParseNameListOnlySeparators(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?names=,%20,", nil)

	_, err := ParseNameList(r, "names")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
