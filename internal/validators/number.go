package validators

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NumericString accepts a JSON number, a JSON string or null and keeps the
// raw text so that validation can report a non-numeric value as a field
// violation rather than a decoding failure.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(strings.TrimSpace(s))
	default:
		*n = NumericString(b)
	}
	return nil
}

// Float is nil for an absent value. Call it only after validation.
func (n NumericString) Float() *float64 {
	if n == "" {
		return nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil
	}
	return &f
}
