// Package offsetlex recognizes fixed-offset time zone designators such as
// "UTC", "UTC+6", "-1330" or "15:45:21" and extracts their clock components.
package offsetlex

import (
	"strconv"
	"strings"
)

// Fields holds the sign coefficient and clock components extracted from a
// fixed-offset designator. Components absent from the input are zero.
type Fields struct {
	Coefficient int // -1 if a '-' sign was captured, +1 otherwise
	Hour        int
	Minute      int
	Second      int
}

// Parse matches s against the fixed-offset grammar, anchored over the whole
// input. Branches are tried in priority order:
//
//	"UTC" alone, or "UTC" with a signed 1-2 digit hour ("UTC+6", "UTC-12")
//	a sign with exactly two digits ("+05", "-11")
//	an optional "UTC" prefix (consumed only when a sign follows it), an
//	optional sign, a 2-digit hour, then either ":MM" with an optional ":SS",
//	or a directly concatenated "MM" with no colons and no seconds
//
// A second field requires a minute field, which requires an hour field.
// The literal "Z" form is short-circuited by the caller before Parse runs.
func Parse(s string) (Fields, bool) {
	if f, ok := parseUTCHour(s); ok {
		return f, true
	}
	if f, ok := parseSignedHour(s); ok {
		return f, true
	}
	return parseClock(s)
}

// TotalSeconds returns the signed offset in seconds.
func (f Fields) TotalSeconds() int {
	return f.Coefficient * (f.Hour*3600 + f.Minute*60 + f.Second)
}

// CanonicalName renders the display name derived from the parsed numeric
// fields, never from the input substring, so equivalent spellings such as
// "+0530" and "+05:30" normalize to the same name.
func (f Fields) CanonicalName() string {
	if f.Hour == 0 && f.Minute == 0 && f.Second == 0 {
		return "UTC"
	}

	var buf strings.Builder
	buf.Grow(12)
	buf.WriteString("UTC")
	if f.Coefficient < 0 {
		buf.WriteByte('-')
	} else {
		buf.WriteByte('+')
	}
	writeTwoDigits(&buf, f.Hour)
	buf.WriteByte(':')
	writeTwoDigits(&buf, f.Minute)
	if f.Second != 0 {
		buf.WriteByte(':')
		writeTwoDigits(&buf, f.Second)
	}
	return buf.String()
}

// parseUTCHour matches "UTC", optionally followed by a sign and a 1-2 digit
// hour. Minute and second default to zero in this branch.
func parseUTCHour(s string) (Fields, bool) {
	rest, ok := strings.CutPrefix(s, "UTC")
	if !ok {
		return Fields{}, false
	}
	if rest == "" {
		return Fields{Coefficient: 1}, true
	}
	coefficient, ok := signCoefficient(rest[0])
	if !ok {
		return Fields{}, false
	}
	digits := rest[1:]
	if len(digits) < 1 || len(digits) > 2 || !allDigits(digits) {
		return Fields{}, false
	}
	hour, err := strconv.Atoi(digits)
	if err != nil {
		return Fields{}, false
	}
	return Fields{Coefficient: coefficient, Hour: hour}, true
}

// parseSignedHour matches a bare sign followed by exactly two digits.
func parseSignedHour(s string) (Fields, bool) {
	if len(s) != 3 {
		return Fields{}, false
	}
	coefficient, ok := signCoefficient(s[0])
	if !ok || !allDigits(s[1:]) {
		return Fields{}, false
	}
	hour, err := strconv.Atoi(s[1:])
	if err != nil {
		return Fields{}, false
	}
	return Fields{Coefficient: coefficient, Hour: hour}, true
}

// parseClock matches the general hour-minute-second branch. The "UTC" prefix
// participates only when a sign immediately follows it.
func parseClock(s string) (Fields, bool) {
	if rest, ok := strings.CutPrefix(s, "UTC"); ok {
		if rest == "" {
			return Fields{}, false
		}
		if _, signed := signCoefficient(rest[0]); !signed {
			return Fields{}, false
		}
		s = rest
	}

	coefficient := 1
	if s != "" {
		if c, ok := signCoefficient(s[0]); ok {
			coefficient = c
			s = s[1:]
		}
	}
	if len(s) < 2 || !allDigits(s[:2]) {
		return Fields{}, false
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return Fields{}, false
	}
	s = s[2:]

	var minute, second int
	switch {
	case len(s) == 2 && allDigits(s):
		minute, _ = strconv.Atoi(s)
	case len(s) == 3 && s[0] == ':' && allDigits(s[1:]):
		minute, _ = strconv.Atoi(s[1:])
	case len(s) == 6 && s[0] == ':' && s[3] == ':' && allDigits(s[1:3]) && allDigits(s[4:]):
		minute, _ = strconv.Atoi(s[1:3])
		second, _ = strconv.Atoi(s[4:])
	default:
		return Fields{}, false
	}
	if minute > 59 || second > 59 {
		return Fields{}, false
	}
	return Fields{Coefficient: coefficient, Hour: hour, Minute: minute, Second: second}, true
}

func signCoefficient(c byte) (int, bool) {
	switch c {
	case '+':
		return 1, true
	case '-':
		return -1, true
	default:
		return 0, false
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func writeTwoDigits(buf *strings.Builder, v int) {
	buf.WriteByte(byte('0' + v/10))
	buf.WriteByte(byte('0' + v%10))
}
