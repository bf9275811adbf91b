// Package timezone resolves the configured application zone. Timestamps the
// store writes are taken in it.
package timezone

import (
	"time"
	_ "time/tzdata"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to UTC for an empty or unknown zone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// NowFunc is handed to gorm so that autoCreateTime uses the zone.
func NowFunc(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}
