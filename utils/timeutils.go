package utils

import (
	"time"
)

// Iso8601 formats t in UTC as RFC 3339
func Iso8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds formats a POSIX timestamp such as a GTFS-RT header
// timestamp.
func Iso8601FromUnixSeconds(sec int64) string {
	return Iso8601(time.Unix(sec, 0))
}

// ValidUntil returns when a response built at base stops being fresh, or an
// empty string when the refresh interval is unknown.
func ValidUntil(base time.Time, refresh time.Duration) string {
	if base.IsZero() || refresh <= 0 {
		return ""
	}
	return Iso8601(base.Add(refresh))
}
