// List-related value types.
package css

import (
	"fmt"
	"strings"
)

// ListStyleType represents the list-style-type property.
type ListStyleType int

const (
	ListStyleNone ListStyleType = iota
	ListStyleDisc
	ListStyleCircle
	ListStyleSquare
	ListStyleDecimal
	ListStyleDecimalLeadingZero
	ListStyleLowerRoman
	ListStyleUpperRoman
	ListStyleLowerAlpha
	ListStyleUpperAlpha
)

// ParseListStyleType parses a list-style-type keyword, defaulting to disc.
func ParseListStyleType(s string) ListStyleType {
	switch normalizeKeyword(s) {
	case "none":
		return ListStyleNone
	case "disc":
		return ListStyleDisc
	case "circle":
		return ListStyleCircle
	case "square":
		return ListStyleSquare
	case "decimal":
		return ListStyleDecimal
	case "decimal-leading-zero":
		return ListStyleDecimalLeadingZero
	case "lower-roman":
		return ListStyleLowerRoman
	case "upper-roman":
		return ListStyleUpperRoman
	case "lower-alpha", "lower-latin":
		return ListStyleLowerAlpha
	case "upper-alpha", "upper-latin":
		return ListStyleUpperAlpha
	}
	return ListStyleDisc
}

// Marker returns the marker text for a 1-based list item index.
func (t ListStyleType) Marker(index int) string {
	switch t {
	case ListStyleNone:
		return ""
	case ListStyleDisc:
		return "•"
	case ListStyleCircle:
		return "◦"
	case ListStyleSquare:
		return "▪"
	case ListStyleDecimal:
		return fmt.Sprintf("%d.", index)
	case ListStyleDecimalLeadingZero:
		return fmt.Sprintf("%02d.", index)
	case ListStyleLowerRoman:
		return strings.ToLower(toRoman(index)) + "."
	case ListStyleUpperRoman:
		return toRoman(index) + "."
	case ListStyleLowerAlpha:
		return toAlpha(index, 'a') + "."
	case ListStyleUpperAlpha:
		return toAlpha(index, 'A') + "."
	}
	return ""
}

// toAlpha converts a 1-based index to an alphabetic counter (a, b, ... z,
// aa, ab, ...).
func toAlpha(n int, base byte) string {
	if n <= 0 {
		return ""
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{base + byte(n%26)}, out...)
		n /= 26
	}
	return string(out)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}
