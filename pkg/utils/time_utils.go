package utils

import (
	"os"
	"time"
)

// Service timezone (IST, +05:30 unless overridden). Naive client timestamps
// are interpreted here, matching the behaviour documented for location and
// SOS ingest.
var serviceLoc = func() *time.Location {
	if tz := os.Getenv("SERVICE_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func ServiceLocation() *time.Location { return serviceLoc }

func NowService() time.Time { return time.Now().In(serviceLoc) }

// Layouts without a zone suffix; parsed in the service timezone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseClientTimestamp accepts ISO-8601 datetimes, with or without a zone
// offset. Zone-less values are taken to be in the service timezone.
func ParseClientTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, serviceLoc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Convert an epoch value in seconds to service-local time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(serviceLoc)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(serviceLoc).Format(time.RFC3339)
}
