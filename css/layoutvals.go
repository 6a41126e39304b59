// Layout-related value types.
package css

// Display represents the display property.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayNone
)

// ParseDisplay parses a display keyword. The second return value is false
// for unrecognized keywords so callers can keep the current value.
func ParseDisplay(s string) (Display, bool) {
	switch normalizeKeyword(s) {
	case "block":
		return DisplayBlock, true
	case "inline":
		return DisplayInline, true
	case "inline-block":
		return DisplayInlineBlock, true
	case "flex":
		return DisplayFlex, true
	case "none":
		return DisplayNone, true
	}
	return DisplayInline, false
}

func (d Display) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	case DisplayInlineBlock:
		return "inline-block"
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	}
	return "inline"
}

// Visibility represents the visibility property.
type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

// ParseVisibility parses a visibility keyword, defaulting to visible.
func ParseVisibility(s string) Visibility {
	switch normalizeKeyword(s) {
	case "hidden":
		return VisibilityHidden
	case "collapse":
		return VisibilityCollapse
	}
	return VisibilityVisible
}

func (v Visibility) String() string {
	switch v {
	case VisibilityHidden:
		return "hidden"
	case VisibilityCollapse:
		return "collapse"
	}
	return "visible"
}

// Float represents the float property.
type Float int

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// ParseFloat parses a float keyword, defaulting to none.
func ParseFloat(s string) Float {
	switch normalizeKeyword(s) {
	case "left":
		return FloatLeft
	case "right":
		return FloatRight
	}
	return FloatNone
}

// Clear represents the clear property.
type Clear int

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// ParseClear parses a clear keyword, defaulting to none.
func ParseClear(s string) Clear {
	switch normalizeKeyword(s) {
	case "left":
		return ClearLeft
	case "right":
		return ClearRight
	case "both":
		return ClearBoth
	}
	return ClearNone
}

// Overflow represents the overflow property.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// ParseOverflow parses an overflow keyword, defaulting to visible.
func ParseOverflow(s string) Overflow {
	switch normalizeKeyword(s) {
	case "hidden":
		return OverflowHidden
	case "scroll":
		return OverflowScroll
	case "auto":
		return OverflowAuto
	}
	return OverflowVisible
}

// BoxSizing represents the box-sizing property.
type BoxSizing int

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

// ParseBoxSizing parses a box-sizing keyword, defaulting to content-box.
func ParseBoxSizing(s string) BoxSizing {
	if normalizeKeyword(s) == "border-box" {
		return BoxSizingBorderBox
	}
	return BoxSizingContentBox
}

// EdgeSizes holds per-side pixel sizes for margin, padding and border.
type EdgeSizes struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformEdges creates EdgeSizes with the same value on all sides.
func UniformEdges(v float64) EdgeSizes {
	return EdgeSizes{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderRadius holds the per-corner radii.
type BorderRadius struct {
	TopLeft     Length
	TopRight    Length
	BottomLeft  Length
	BottomRight Length
}

// UniformRadius creates a BorderRadius with the same radius on all corners.
func UniformRadius(l Length) BorderRadius {
	return BorderRadius{TopLeft: l, TopRight: l, BottomLeft: l, BottomRight: l}
}

// FlexBasisKind identifies the variant held by a FlexBasis.
type FlexBasisKind int

const (
	FlexBasisAuto FlexBasisKind = iota
	FlexBasisContent
	FlexBasisLength
)

// FlexBasis represents the flex-basis property.
type FlexBasis struct {
	Kind   FlexBasisKind
	Length Length
}

// ParseFlexBasis parses a flex-basis value, defaulting to auto.
func ParseFlexBasis(s string) FlexBasis {
	s = normalizeKeyword(s)
	if s == "content" {
		return FlexBasis{Kind: FlexBasisContent}
	}
	if l, ok := ParseLength(s); ok {
		return FlexBasis{Kind: FlexBasisLength, Length: l}
	}
	return FlexBasis{}
}

// Gap represents the gap shorthand as row and column gaps.
type Gap struct {
	Row    Length
	Column Length
}

// UniformGap creates a Gap with the same length for rows and columns.
func UniformGap(l Length) Gap {
	return Gap{Row: l, Column: l}
}
