package espn

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Flex holds a scalar that ESPN sends either as a JSON number or as a
// string ("14", 14, "1.5"). It keeps the textual form.
type Flex string

func (f *Flex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flex(strings.TrimSpace(s))
		return nil
	}
	*f = Flex(b)
	return nil
}

func (f Flex) String() string { return string(f) }

// Float parses the value as a number.
func (f Flex) Float() (float64, bool) {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int parses the value as a number and rounds it.
func (f Flex) Int() (int, bool) {
	v, ok := f.Float()
	if !ok {
		return 0, false
	}
	return int(math.Round(v)), true
}

// IntOr returns the parsed int or def.
func (f Flex) IntOr(def int) int {
	if v, ok := f.Int(); ok {
		return v
	}
	return def
}
