package businesstime

import (
	"strings"
	"time"
)

// UTCLayout is the canonical output format: UTC, second precision.
const UTCLayout = "2006-01-02T15:04:05Z"

var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// ParseUTC parses an ISO 8601 timestamp that carries the explicit "Z" UTC
// designator. Offsets such as +00:00 and zone-less values are rejected.
func ParseUTC(s string) (time.Time, bool) {
	if !strings.HasSuffix(s, "Z") {
		return time.Time{}, false
	}
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseUTCToLocal is ParseUTC followed by conversion to the schedule's zone.
func (s *Schedule) ParseUTCToLocal(str string) (time.Time, bool) {
	t, ok := ParseUTC(str)
	if !ok {
		return time.Time{}, false
	}
	return t.In(s.loc), true
}

// FormatUTC renders t in UTC without sub-second digits.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCLayout)
}
