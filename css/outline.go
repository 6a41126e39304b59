// Outline value types.
package css

import "strings"

// OutlineStyle represents the outline-style property.
type OutlineStyle int

const (
	OutlineNone OutlineStyle = iota
	OutlineHidden
	OutlineDotted
	OutlineDashed
	OutlineSolid
	OutlineDouble
	OutlineGroove
	OutlineRidge
	OutlineInset
	OutlineOutset
)

// ParseOutlineStyle parses an outline-style keyword, defaulting to none.
func ParseOutlineStyle(s string) OutlineStyle {
	switch normalizeKeyword(s) {
	case "hidden":
		return OutlineHidden
	case "dotted":
		return OutlineDotted
	case "dashed":
		return OutlineDashed
	case "solid":
		return OutlineSolid
	case "double":
		return OutlineDouble
	case "groove":
		return OutlineGroove
	case "ridge":
		return OutlineRidge
	case "inset":
		return OutlineInset
	case "outset":
		return OutlineOutset
	}
	return OutlineNone
}

func isOutlineStyleKeyword(s string) bool {
	switch normalizeKeyword(s) {
	case "none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

func (os OutlineStyle) String() string {
	switch os {
	case OutlineHidden:
		return "hidden"
	case OutlineDotted:
		return "dotted"
	case OutlineDashed:
		return "dashed"
	case OutlineSolid:
		return "solid"
	case OutlineDouble:
		return "double"
	case OutlineGroove:
		return "groove"
	case OutlineRidge:
		return "ridge"
	case OutlineInset:
		return "inset"
	case OutlineOutset:
		return "outset"
	}
	return "none"
}

// Outline represents the outline shorthand. A nil Color means the outline
// follows the element's text color.
type Outline struct {
	Width Length
	Style OutlineStyle
	Color *Color
}

// IsVisible reports whether the outline should be drawn.
func (o Outline) IsVisible() bool {
	return o.Style != OutlineNone && o.Style != OutlineHidden
}

// outlineWidthKeyword maps the named outline widths to pixel lengths.
func outlineWidthKeyword(s string) (Length, bool) {
	switch normalizeKeyword(s) {
	case "thin":
		return Px(1), true
	case "medium":
		return Px(3), true
	case "thick":
		return Px(5), true
	}
	return Length{}, false
}

// ParseOutline parses the outline shorthand: width, style and color in any
// order. "none" clears the outline; unrecognized tokens are ignored.
func ParseOutline(s string) Outline {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return Outline{}
	}

	out := Outline{Width: Px(3), Style: OutlineSolid}
	for _, part := range splitComponents(s) {
		if isOutlineStyleKeyword(part) {
			out.Style = ParseOutlineStyle(part)
			continue
		}
		if w, ok := outlineWidthKeyword(part); ok {
			out.Width = w
			continue
		}
		switch parsed := parseSingleValue(part); parsed.Type {
		case ValueLength:
			out.Width = parsed.Length
		case ValueColor:
			c := parsed.Color
			out.Color = &c
		}
	}
	return out
}
