package domain

import (
	"fmt"
	"time"

	// Embedded zone database so that validation does not depend on the host.
	_ "time/tzdata"
)

// DefaultTimezone is used for accounts created without a time zone in a
// guild that has none either.
const DefaultTimezone = "Europe/Paris"

// LoadTimezone returns the location named by the IANA name tz.
func LoadTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, tz)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, tz)
	}

	return loc, nil
}

// LocalDate returns midnight UTC of the calendar day t falls on in loc, so
// that dates compare with Before/After/Equal.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
