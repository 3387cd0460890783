package data

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Stat is an optional numeric blueprint field. The source data mixes numbers,
// numeric strings and booleans; anything else decodes as "not set".
type Stat struct {
	value float64
	valid bool
}

// NewStat returns a set Stat, mostly for tests.
func NewStat(v float64) Stat {
	return Stat{value: v, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		return nil
	case bytes.Equal(b, []byte("true")):
		*s = Stat{value: 1, valid: true}
	case bytes.Equal(b, []byte("false")):
		*s = Stat{value: 0, valid: true}
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*s = Stat{value: v, valid: true}
		}
	default:
		if v, err := strconv.ParseFloat(string(b), 64); err == nil {
			*s = Stat{value: v, valid: true}
		}
	}
	return nil
}

// Get returns the value and whether it was present
func (s Stat) Get() (float64, bool) {
	return s.value, s.valid
}

// Set reports whether the field was present in the source.
func (s Stat) Set() bool {
	return s.valid
}

// Truthy mirrors the source viewer's "shown only when non-zero" fields.
func (s Stat) Truthy() bool {
	return s.valid && s.value != 0
}

// String renders the value, or "-" when absent.
func (s Stat) String() string {
	if !s.valid {
		return "-"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}
