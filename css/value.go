// CSS value model and parsing.
package css

import (
	"strconv"
	"strings"
)

// ValueType identifies the variant held by a Value.
type ValueType int

const (
	ValueKeyword ValueType = iota
	ValueString
	ValueNumber
	ValueLength
	ValueColor
	ValueAuto
	ValueMultiple
)

// Value is a parsed CSS declaration value. Parsing is total: anything that
// does not match a more specific variant becomes a Keyword.
type Value struct {
	Type    ValueType
	Keyword string
	Str     string
	Number  float64
	Length  Length
	Color   Color
	Values  []Value
}

// Keyword creates a keyword value.
func Keyword(kw string) Value { return Value{Type: ValueKeyword, Keyword: kw} }

// StringValue creates a quoted-string value.
func StringValue(s string) Value { return Value{Type: ValueString, Str: s} }

// Number creates a numeric value.
func Number(n float64) Value { return Value{Type: ValueNumber, Number: n} }

// LengthValue wraps a Length.
func LengthValue(l Length) Value { return Value{Type: ValueLength, Length: l} }

// ColorValue wraps a Color.
func ColorValue(c Color) Value { return Value{Type: ValueColor, Color: c} }

// AutoValue is the parsed "auto" keyword.
func AutoValue() Value { return Value{Type: ValueAuto} }

// Multiple wraps space-separated component values.
func Multiple(values []Value) Value { return Value{Type: ValueMultiple, Values: values} }

// ParseValue parses a CSS declaration value. Space-separated inputs become a
// Multiple value with each component parsed individually; splitting is
// parenthesis-aware so function notation stays intact.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)

	parts := splitComponents(s)
	if len(parts) > 1 {
		values := make([]Value, len(parts))
		for i, part := range parts {
			values[i] = parseSingleValue(part)
		}
		return Multiple(values)
	}

	return parseSingleValue(s)
}

// parseSingleValue classifies one space-free token.
func parseSingleValue(s string) Value {
	s = strings.TrimSpace(s)

	if s == "auto" {
		return AutoValue()
	}

	if strings.HasPrefix(s, "#") {
		return ColorValue(HexColor(s))
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		if c, ok := parseFunctionColor(s); ok {
			return ColorValue(c)
		}
		return Keyword(s)
	}

	if IsNamedColor(s) {
		return ColorValue(NamedColor(s))
	}

	if l, ok := ParseLength(s); ok {
		return LengthValue(l)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(n)
	}

	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return StringValue(s[1 : len(s)-1])
	}

	return Keyword(s)
}

// splitComponents splits on whitespace outside parentheses and quotes.
func splitComponents(s string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			current.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
			current.WriteByte(ch)
		case ch == '(':
			depth++
			current.WriteByte(ch)
		case ch == ')':
			depth--
			current.WriteByte(ch)
		case (ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r') && depth == 0:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// String formats the value as CSS text.
func (v Value) String() string {
	switch v.Type {
	case ValueKeyword:
		return v.Keyword
	case ValueString:
		return v.Str
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueLength:
		return v.Length.String()
	case ValueColor:
		return v.Color.String()
	case ValueAuto:
		return "auto"
	case ValueMultiple:
		parts := make([]string, len(v.Values))
		for i, val := range v.Values {
			parts[i] = val.String()
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	if v.Type == ValueMultiple {
		if len(v.Values) != len(other.Values) {
			return false
		}
		for i := range v.Values {
			if !v.Values[i].Equal(other.Values[i]) {
				return false
			}
		}
		return true
	}
	return v.Keyword == other.Keyword && v.Str == other.Str &&
		v.Number == other.Number && v.Length == other.Length && v.Color == other.Color
}
