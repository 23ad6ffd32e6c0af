package romfs

import (
	"fmt"
	"time"
)

// Time is the six-byte ROMFS timestamp: one byte per field, no timezone.
// Values are treated as UTC by convention.
type Time struct {
	// YearsSince1970 counts calendar years from 1970.
	YearsSince1970 uint8
	// Month0 is the zero-indexed month (0 = January).
	Month0 uint8
	// Day0 is the zero-indexed day of the month.
	Day0    uint8
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

// TimeFromStd converts a time.Time to a ROMFS timestamp.
//
// The value is converted to UTC first. Years outside 1970..2225 are clamped
// to the representable range; sub-second precision is discarded.
func TimeFromStd(t time.Time) Time {
	t = t.UTC()
	year := t.Year() - 1970
	if year < 0 {
		year = 0
	}
	if year > 255 {
		year = 255
	}
	return Time{
		YearsSince1970: uint8(year),
		Month0:         uint8(t.Month() - 1),
		Day0:           uint8(t.Day() - 1),
		Hours:          uint8(t.Hour()),
		Minutes:        uint8(t.Minute()),
		Seconds:        uint8(t.Second()),
	}
}

// Std returns the timestamp as a time.Time in UTC.
//
// Out-of-range field values are normalized the way time.Date normalizes
// them (e.g. month 13 rolls into the following year).
func (t Time) Std() time.Time {
	return time.Date(
		1970+int(t.YearsSince1970),
		time.Month(t.Month0)+1,
		int(t.Day0)+1,
		int(t.Hours), int(t.Minutes), int(t.Seconds), 0,
		time.UTC,
	)
}

// String formats the timestamp as RFC 3339 UTC, e.g. "2023-11-12T20:05:16Z".
func (t Time) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
		1970+int(t.YearsSince1970), t.Month0+1, t.Day0+1,
		t.Hours, t.Minutes, t.Seconds)
}
