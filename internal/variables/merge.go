// Package variables merges command-line overrides into a spec's default
// variables.
package variables

import (
	"maps"
	"strconv"
	"strings"

	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/specs"
)

// Merge returns a copy of defaults with overrides applied. overrides holds
// alternating keys and raw values; a trailing key without a value is dropped.
// defaults is never modified.
func Merge(defaults map[string]specs.Value, overrides []string) map[string]specs.Value {
	merged := make(map[string]specs.Value, len(defaults)+len(overrides)/2)
	maps.Copy(merged, defaults)

	for i := 0; i+1 < len(overrides); i += 2 {
		key, raw := overrides[i], overrides[i+1]
		value := Coerce(raw)
		output.Debug("override", "key", key, "value", value.Literal(), "type", value.Kind())
		merged[key] = value
	}

	if len(overrides)%2 == 1 {
		output.Debug("dropping unpaired option", "key", overrides[len(overrides)-1])
	}

	return merged
}

// Coerce converts a raw command-line value into the first type it parses as:
// integer, float, boolean, date/time, and finally the string itself.
func Coerce(raw string) specs.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return specs.Integer(i)
	}
	if !isHex(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return specs.Float(f)
		}
	}
	switch raw {
	case "true":
		return specs.Boolean(true)
	case "false":
		return specs.Boolean(false)
	}
	if dt, ok := specs.ParseDateTime(raw); ok {
		return dt
	}
	return specs.String(raw)
}

// isHex reports whether raw has a 0x prefix, which ParseFloat would accept
// as a hexadecimal float.
func isHex(raw string) bool {
	digits := strings.TrimLeft(raw, "+-")
	return strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X")
}

// Pairs flattens KEY=VALUE options into alternating keys and values for
// Merge. The value may itself contain '='. Options without '=' are skipped.
func Pairs(options []string) []string {
	pairs := make([]string, 0, len(options)*2)
	for _, opt := range options {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			output.Debug("ignoring option without a value", "option", opt)
			continue
		}
		pairs = append(pairs, key, value)
	}
	return pairs
}
