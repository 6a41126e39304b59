// Package css implements CSS parsing, selector matching and the cascade
// used to compute final styles for document nodes.
package css

import "strconv"

// Unit represents a CSS length unit.
type Unit int

const (
	UnitPx Unit = iota
	UnitPt
	UnitEm
	UnitRem
	UnitPercent
	UnitVw
	UnitVh
	UnitAuto
)

// String returns the CSS suffix for the unit.
func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPt:
		return "pt"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	case UnitPercent:
		return "%"
	case UnitVw:
		return "vw"
	case UnitVh:
		return "vh"
	case UnitAuto:
		return "auto"
	}
	return ""
}

// Length is a CSS length value with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Px creates a pixel length.
func Px(value float64) Length { return Length{Value: value, Unit: UnitPx} }

// Pt creates a point length.
func Pt(value float64) Length { return Length{Value: value, Unit: UnitPt} }

// Em creates a font-relative length.
func Em(value float64) Length { return Length{Value: value, Unit: UnitEm} }

// Rem creates a root-font-relative length.
func Rem(value float64) Length { return Length{Value: value, Unit: UnitRem} }

// Percent creates a percentage length.
func Percent(value float64) Length { return Length{Value: value, Unit: UnitPercent} }

// Vw creates a viewport-width length.
func Vw(value float64) Length { return Length{Value: value, Unit: UnitVw} }

// Vh creates a viewport-height length.
func Vh(value float64) Length { return Length{Value: value, Unit: UnitVh} }

// Auto creates the auto length.
func Auto() Length { return Length{Unit: UnitAuto} }

// ToPx converts the length to pixels. fontSize provides the base for em
// units, parentSize for percentages and viewport units. Auto resolves to 0
// and is expected to be handled by the caller before conversion.
func (l Length) ToPx(fontSize, parentSize float64) float64 {
	switch l.Unit {
	case UnitPx:
		return l.Value
	case UnitPt:
		// 1pt = 1/72 inch at 96 DPI
		return l.Value * 96.0 / 72.0
	case UnitEm:
		return l.Value * fontSize
	case UnitRem:
		return l.Value * DefaultFontSize
	case UnitPercent:
		return l.Value / 100.0 * parentSize
	case UnitVw, UnitVh:
		return l.Value / 100.0 * parentSize
	case UnitAuto:
		return 0
	}
	return 0
}

// String formats the length as CSS text.
func (l Length) String() string {
	if l.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// lengthSuffixes in match order. Longer suffixes come first so that "rem"
// is not consumed as "em".
var lengthSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"rem", UnitRem},
	{"px", UnitPx},
	{"pt", UnitPt},
	{"em", UnitEm},
	{"vw", UnitVw},
	{"vh", UnitVh},
	{"%", UnitPercent},
}

// ParseLength parses a CSS length such as "12px" or "50%". It returns false
// for unknown units and plain numbers.
func ParseLength(s string) (Length, bool) {
	for _, ls := range lengthSuffixes {
		if len(s) > len(ls.suffix) && s[len(s)-len(ls.suffix):] == ls.suffix {
			num, err := strconv.ParseFloat(s[:len(s)-len(ls.suffix)], 64)
			if err != nil {
				return Length{}, false
			}
			return Length{Value: num, Unit: ls.unit}, true
		}
	}
	return Length{}, false
}
