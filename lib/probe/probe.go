// Package probe reads values out of loosely-typed JSON documents whose
// shape is undocumented and unstable. The same logical fact can live at
// several alternative paths depending on upstream version; callers
// declare candidate paths in priority order and the first one holding a
// usable value wins.
package probe

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// Object is a decoded JSON object. The zero value (nil) is safe to probe
// and yields nothing.
type Object map[string]any

func FromJSON(data []byte) (Object, error) {
	var out Object
	err := json.Unmarshal(data, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get walks a path of object keys and slice indices (numeric segments)
// and returns the value found, or nil if any step is missing.
func (o Object) Get(path ...string) any {
	var current any = map[string]any(o)
	for _, segment := range path {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[segment]
			if !ok {
				return nil
			}
			current = next
		case Object:
			next, ok := v[segment]
			if !ok {
				return nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			current = v[idx]
		default:
			return nil
		}
	}
	return current
}

// String returns the value at path if it is a non-empty string.
func (o Object) String(path ...string) string {
	s, _ := o.Get(path...).(string)
	return s
}

var decimalRegex = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Float returns a numeric value at path. Strings are accepted when they
// contain a decimal-number substring ("24,50 €" yields 24.5); a string
// without one yields no value, not zero.
func (o Object) Float(path ...string) (float64, bool) {
	return coerceFloat(o.Get(path...))
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		match := decimalRegex.FindString(n)
		if match == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(normalizeDecimal(match), 64)
		return f, err == nil
	}
	return 0, false
}

// locale-specific decimal commas become dots
func normalizeDecimal(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == ',' {
			out[i] = '.'
		}
	}
	return string(out)
}

// Int is Float truncated to an integer.
func (o Object) Int(path ...string) (int, bool) {
	f, ok := o.Float(path...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Slice returns the value at path if it is a JSON array.
func (o Object) Slice(path ...string) []any {
	s, _ := o.Get(path...).([]any)
	return s
}

// Object returns the value at path if it is a JSON object.
func (o Object) Object(path ...string) Object {
	m, _ := o.Get(path...).(map[string]any)
	return Object(m)
}

// FirstString resolves candidate paths in declared order and returns the
// first non-empty string. Later candidates are never consulted once one
// succeeds.
func (o Object) FirstString(paths ...[]string) string {
	for _, p := range paths {
		if v := o.String(p...); v != "" {
			return v
		}
	}
	return ""
}

// FirstFloat is FirstString for numeric values.
func (o Object) FirstFloat(paths ...[]string) (float64, bool) {
	for _, p := range paths {
		if v, ok := o.Float(p...); ok {
			return v, true
		}
	}
	return 0, false
}

// FirstInt is FirstFloat truncated to an integer.
func (o Object) FirstInt(paths ...[]string) (int, bool) {
	for _, p := range paths {
		if v, ok := o.Int(p...); ok {
			return v, true
		}
	}
	return 0, false
}
