package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Default substitutions for nullable upstream fields.
const (
	DefaultUnknown = "Unknown"
	DefaultDash    = "-"
	DefaultNA      = "N/A"
)

// Date converts the date encodings the upstream emits into a canonical
// "YYYY-MM-DD" string. Observed inputs: ISO date strings, ISO datetime
// strings, [year, month, day, ...] numeric tuples, nil.
//
// Tuples are formatted without calendar validation; an out-of-range
// month or day passes through as-is. Strings without a 'T' are returned
// unchanged, malformed or not.
func Date(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		if d == "" {
			return ""
		}
		if i := strings.IndexByte(d, 'T'); i >= 0 {
			return d[:i]
		}
		return d
	case []int:
		if len(d) < 3 {
			return ""
		}
		return fmt.Sprintf("%d-%02d-%02d", d[0], d[1], d[2])
	case []any:
		// JSON arrays decode to []any with float64 elements.
		if len(d) < 3 {
			return ""
		}
		parts := make([]int, 3)
		for i := 0; i < 3; i++ {
			n, ok := d[i].(float64)
			if !ok {
				return ""
			}
			parts[i] = int(n)
		}
		return fmt.Sprintf("%d-%02d-%02d", parts[0], parts[1], parts[2])
	default:
		return ""
	}
}

// FlexDate decodes either encoding into the canonical date string, so
// DTO fields never leak a raw tuple or a datetime into view code.
type FlexDate string

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = FlexDate(Date(raw))
	return nil
}

func (d FlexDate) String() string {
	return string(d)
}

// FlexID decodes an id that the upstream returns as either a JSON
// string or a JSON number.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*id = FlexID(v)
	case float64:
		if v == float64(int64(v)) {
			*id = FlexID(fmt.Sprintf("%d", int64(v)))
		} else {
			*id = FlexID(fmt.Sprintf("%v", v))
		}
	case nil:
		*id = ""
	default:
		*id = ""
	}
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

// All maps a fetched DTO slice to view records. A nil input yields an
// empty, non-nil slice so callers can treat "no rows" uniformly.
func All[D, R any](dtos []D, fn func(D) R) []R {
	out := make([]R, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, fn(d))
	}
	return out
}

// String returns *s or def when s is nil or empty.
func String(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// Float returns *f or 0 when f is nil.
func Float(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Int returns *i or 0 when i is nil.
func Int(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
