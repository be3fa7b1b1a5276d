package tz

import (
	"fmt"
	"time"
)

// Offset is a zone's displacement from the universal reference, split into a
// standard component and a daylight-saving component.
type Offset struct {
	Std time.Duration
	DST time.Duration
}

// OffsetFromSeconds builds an Offset from integer second components.
func OffsetFromSeconds(std, dst int) Offset {
	return Offset{
		Std: time.Duration(std) * time.Second,
		DST: time.Duration(dst) * time.Second,
	}
}

// Total returns the effective offset: standard plus daylight-saving.
func (o Offset) Total() time.Duration {
	return o.Std + o.DST
}

// Compare orders offsets by the numeric value of their total offset,
// ascending. It returns -1, 0 or 1.
func (o Offset) Compare(other Offset) int {
	left, right := o.Total(), other.Total()
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// String renders the total offset as a signed clock reading, "+05:30" or
// "-13:30", with a trailing seconds field when the offset is not a whole
// number of minutes.
func (o Offset) String() string {
	total := o.Total()
	sign := byte('+')
	if total < 0 {
		sign = '-'
		total = -total
	}
	seconds := int(total / time.Second)
	hour := seconds / 3600
	minute := seconds % 3600 / 60
	second := seconds % 60
	if second == 0 {
		return fmt.Sprintf("%c%02d:%02d", sign, hour, minute)
	}
	return fmt.Sprintf("%c%02d:%02d:%02d", sign, hour, minute, second)
}
