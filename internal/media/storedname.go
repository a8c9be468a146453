package media

import (
	"crypto/rand"
	"encoding/hex"
	"path"
	"strings"
	"time"
	"unicode"
)

const storedNameTimeLayout = "20060102_150405"

// buildStoredName derives the on-catalog name for an upload: receipt
// timestamp, a random suffix, then the sanitized client file name. The suffix
// keeps names unique when uploads land within the same second; the unique
// index on stored_name backs that up.
func buildStoredName(now time.Time, suffix, displayName string) string {
	cleanName := sanitizeFileName(displayName)
	if cleanName == "" {
		cleanName = "upload"
	}
	return now.Format(storedNameTimeLayout) + "_" + suffix + "_" + cleanName
}

// randomSuffix returns 6 hex characters from a CSPRNG.
func randomSuffix() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// fall back to a fixed marker rather than panic mid-upload.
		return "000000"
	}
	return hex.EncodeToString(b[:])
}

func sanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Base(strings.TrimSpace(strings.ReplaceAll(name, "\\", "/")))
	if clean == "" || clean == "." || clean == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
