package holiday

import (
	"regexp"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Keys checked first when the payload is an object, in priority order.
var preferredKeys = []string{"holidays", "Holidays", "workingDays", "WorkingDays", "dates", "Dates"}

// Keys holding the date inside an array of objects.
var dateFields = []string{"date", "Date", "fecha", "Fecha"}

// ParseDates extracts YYYY-MM-DD strings from the payloads the holiday
// endpoint has been seen to return:
//
//	["2025-01-01", ...]
//	[{"date": "2025-01-01"}, ...]
//	{"holidays": [...]} (or workingDays / dates, any casing listed above)
//	{"anything": [...]} (first key, in document order, that yields dates)
//
// It returns ErrInvalidFormat when nothing usable is found.
func ParseDates(body []byte) ([]string, error) {
	value, typ, _, err := jsonparser.Get(body)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	dates := extract(value, typ)
	if len(dates) == 0 {
		return nil, ErrInvalidFormat
	}
	return dates, nil
}

func extract(value []byte, typ jsonparser.ValueType) []string {
	switch typ {
	case jsonparser.Array:
		return fromArray(value)
	case jsonparser.Object:
		return fromObject(value)
	default:
		return nil
	}
}

type element struct {
	value []byte
	typ   jsonparser.ValueType
}

func fromArray(data []byte) []string {
	var items []element
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		items = append(items, element{value: value, typ: typ})
	})
	if err != nil {
		return nil
	}

	if allOfType(items, jsonparser.String) {
		out := []string{}
		for _, it := range items {
			s, err := jsonparser.ParseString(it.value)
			if err != nil {
				continue
			}
			if d, ok := validDate(s); ok {
				out = append(out, d)
			}
		}
		return out
	}

	if allOfType(items, jsonparser.Object) {
		var out []string
		for _, it := range items {
			if d, ok := validDate(dateField(it.value)); ok {
				out = append(out, d)
			}
		}
		return out
	}

	return nil
}

func fromObject(data []byte) []string {
	for _, key := range preferredKeys {
		value, typ, _, err := jsonparser.Get(data, key)
		if err != nil {
			continue
		}
		if dates := extract(value, typ); len(dates) > 0 {
			return dates
		}
	}

	var found []string
	_ = jsonparser.ObjectEach(data, func(_ []byte, value []byte, typ jsonparser.ValueType, _ int) error {
		if found != nil {
			return nil
		}
		if dates := extract(value, typ); len(dates) > 0 {
			found = dates
		}
		return nil
	})
	return found
}

// dateField returns the first non-empty string among dateFields.
func dateField(obj []byte) string {
	for _, key := range dateFields {
		s, err := jsonparser.GetString(obj, key)
		if err == nil && s != "" {
			return s
		}
	}
	return ""
}

func validDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !dateRegex.MatchString(s) {
		return "", false
	}
	if _, err := businesstime.ParseDate(s); err != nil {
		return "", false
	}
	return s, true
}

func allOfType(items []element, typ jsonparser.ValueType) bool {
	for _, it := range items {
		if it.typ != typ {
			return false
		}
	}
	return true
}
