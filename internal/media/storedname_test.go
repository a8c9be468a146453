package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildStoredName(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	cases := []struct {
		name        string
		displayName string
		want        string
	}{
		{"plain", "clip.mp4", "20250314_092653_d0e1f2_clip.mp4"},
		{"spaces become dashes", "my morning clip.mp4", "20250314_092653_d0e1f2_my-morning-clip.mp4"},
		{"path is stripped", "../../etc/passwd", "20250314_092653_d0e1f2_passwd"},
		{"windows path is stripped", `C:\videos\clip.mp4`, "20250314_092653_d0e1f2_clip.mp4"},
		{"empty falls back", "", "20250314_092653_d0e1f2_upload"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildStoredName(now, "d0e1f2", tc.displayName))
		})
	}
}

func TestRandomSuffixShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		s := randomSuffix()
		assert.Len(t, s, 6)
		for _, r := range s {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "suffix %q is not lowercase hex", s)
		}
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1, "suffixes should not repeat constantly")
}
