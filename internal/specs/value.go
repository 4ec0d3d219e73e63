package specs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDateTime
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Value is a spec variable. The set of implementations is closed:
// String, Integer, Float, Boolean and DateTime.
type Value interface {
	// Kind reports the variant.
	Kind() Kind

	// Native returns the Go value handed to template engines and the TOML encoder.
	Native() any

	// Literal renders the value the way it is written in a spec document.
	Literal() string

	isValue()
}

type (
	// String is a text variable.
	String string

	// Integer is a signed 64-bit variable.
	Integer int64

	// Float is a 64-bit floating point variable.
	Float float64

	// Boolean is a true/false variable.
	Boolean bool
)

func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Boolean) Kind() Kind { return KindBoolean }

func (v String) Native() any  { return string(v) }
func (v Integer) Native() any { return int64(v) }
func (v Float) Native() any   { return float64(v) }
func (v Boolean) Native() any { return bool(v) }

func (v String) Literal() string  { return quote(string(v)) }
func (v Integer) Literal() string { return strconv.FormatInt(int64(v), 10) }
func (v Boolean) Literal() string { return strconv.FormatBool(bool(v)) }

func (v Float) Literal() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (String) isValue()  {}
func (Integer) isValue() {}
func (Float) isValue()   {}
func (Boolean) isValue() {}

// DateTime holds one of the four TOML date/time forms: an offset date-time
// (time.Time), a local date-time, a local date or a local time.
type DateTime struct {
	value any
}

// NewDateTime wraps a TOML date/time value.
func NewDateTime(v any) (DateTime, error) {
	switch v.(type) {
	case time.Time, toml.LocalDateTime, toml.LocalDate, toml.LocalTime:
		return DateTime{value: v}, nil
	default:
		return DateTime{}, fmt.Errorf("%T is not a date/time value", v)
	}
}

// ParseDateTime parses s as a TOML date/time literal, for example
// 1979-05-27T07:32:00Z, 1979-05-27T07:32:00, 1979-05-27 or 07:32:00.
func ParseDateTime(s string) (DateTime, bool) {
	if s == "" || strings.TrimSpace(s) != s || strings.ContainsAny(s, "\r\n#=\"'[]{}") {
		return DateTime{}, false
	}

	var doc struct {
		V any `toml:"v"`
	}
	if err := toml.Unmarshal([]byte("v = "+s), &doc); err != nil {
		return DateTime{}, false
	}

	dt, err := NewDateTime(doc.V)
	if err != nil {
		return DateTime{}, false
	}
	return dt, true
}

func (DateTime) Kind() Kind { return KindDateTime }

func (v DateTime) Native() any { return v.value }

func (v DateTime) Literal() string {
	switch t := v.value.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func (DateTime) isValue() {}

// FromNative converts a decoded TOML value into a Value.
func FromNative(v any) (Value, error) {
	switch n := v.(type) {
	case string:
		return String(n), nil
	case int64:
		return Integer(n), nil
	case int:
		return Integer(n), nil
	case float64:
		return Float(n), nil
	case bool:
		return Boolean(n), nil
	case time.Time, toml.LocalDateTime, toml.LocalDate, toml.LocalTime:
		return DateTime{value: n}, nil
	case []any:
		return nil, fmt.Errorf("arrays are not supported as variables")
	case map[string]any:
		return nil, fmt.Errorf("tables are not supported as variables")
	default:
		return nil, fmt.Errorf("unsupported variable type %T", v)
	}
}

// NativeMap converts variables into the map handed to template engines.
func NativeMap(vars map[string]Value) map[string]any {
	native := make(map[string]any, len(vars))
	for k, v := range vars {
		native[k] = v.Native()
	}
	return native
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
