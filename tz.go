// Package tz models fixed time zones: named zones whose offset from the
// universal reference is constant for all instants, with no seasonal
// transitions.
package tz

import (
	"github.com/maganaluis/tz/errors"
	"github.com/maganaluis/tz/internal/offsetlex"
)

// TimeZone is implemented by zone values that expose a display name and an
// offset from the universal reference.
type TimeZone interface {
	Name() string
	Offset() Offset
}

// FixedZone is a time zone whose offset never varies with date. Values are
// immutable after construction and safe to share across goroutines without
// synchronization.
type FixedZone struct {
	name   string
	offset Offset
}

// UTC is the canonical zero-offset zone, designator "Z".
var UTC = FixedZone{name: "Z"}

// NewFixedZone builds a zone from an explicit designator and offset. The
// designator must be non-empty and at most 15 bytes; no validation is
// performed beyond what Offset itself enforces.
func NewFixedZone(name string, offset Offset) FixedZone {
	return FixedZone{name: name, offset: offset}
}

// FixedZoneFromSeconds builds a zone from a designator and integer second
// components for the standard and daylight-saving offsets.
func FixedZoneFromSeconds(name string, std, dst int) FixedZone {
	return NewFixedZone(name, OffsetFromSeconds(std, dst))
}

// ParseFixedZone recognizes a fixed-offset designator such as "Z", "UTC",
// "UTC+6", "-1330" or "15:45:21". Except for the literal "Z", the returned
// zone carries the canonical name derived from the parsed fields, so
// equivalent spellings normalize to the same designator. Input matching no
// grammar form fails with *errors.UnrecognizedTimeZone.
func ParseFixedZone(s string) (FixedZone, error) {
	if s == "Z" {
		return UTC, nil
	}
	fields, ok := offsetlex.Parse(s)
	if !ok {
		return FixedZone{}, errors.NewUnrecognizedTimeZone(s)
	}
	return FixedZone{
		name:   fields.CanonicalName(),
		offset: OffsetFromSeconds(fields.TotalSeconds(), 0),
	}, nil
}

// Name returns the zone's designator.
func (z FixedZone) Name() string {
	return z.name
}

// Offset returns the zone's offset.
func (z FixedZone) Offset() Offset {
	return z.offset
}

// String returns the designator.
func (z FixedZone) String() string {
	return z.name
}

// Rename returns a copy of the zone carrying the new designator; z itself is
// unchanged.
func (z FixedZone) Rename(name string) FixedZone {
	z.name = name
	return z
}

// Compare orders zones chronologically and returns -1, 0 or 1. At a shared
// wall-clock reading the zone with the numerically larger offset reaches that
// reading earlier in universal time, so it sorts first: z precedes other
// exactly when other's offset is numerically smaller than z's. Zones with
// equal offsets compare as 0 regardless of designator.
func (z FixedZone) Compare(other FixedZone) int {
	return other.offset.Compare(z.offset)
}
