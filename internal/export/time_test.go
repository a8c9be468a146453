package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShiftsToUTCPlus8(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"utc midnight",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"2024-01-01 08:00:00",
		},
		{
			"crosses the date line",
			time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
			"2024-01-02 07:30:00",
		},
		{
			"already utc+8 stays put",
			time.Date(2024, 6, 15, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*60*60)),
			"2024-06-15 12:00:00",
		},
		{
			"negative offset input",
			time.Date(2024, 3, 10, 20, 15, 42, 0, time.FixedZone("UTC-5", -5*60*60)),
			"2024-03-11 09:15:42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}
