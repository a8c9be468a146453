// Package export renders the stored collections into evaluator-facing
// views: CSV tables, JSON snapshots, and the column specs shared by both.
// Every instant is presented in fixed-offset UTC+8 local time; the stored
// values stay absolute and are never written back from a rendered view.
package export

import "time"

// TimezoneLabel names the presentation zone in exported payloads.
const TimezoneLabel = "Asia/Taipei (UTC+8)"

const timeLayout = "2006-01-02 15:04:05"

// exportZone is a fixed offset, deliberately not a tzdata lookup: the study
// renders in UTC+8 regardless of host configuration or DST rules.
var exportZone = time.FixedZone("UTC+8", 8*60*60)

// Normalize renders an absolute instant as a UTC+8 local-time string.
func Normalize(t time.Time) string {
	return t.In(exportZone).Format(timeLayout)
}

// FileTimestamp renders an instant as the compact UTC+8 form used in
// download file names.
func FileTimestamp(t time.Time) string {
	return t.In(exportZone).Format("20060102_150405")
}
