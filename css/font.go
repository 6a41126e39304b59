// Font-related value types.
package css

import "strconv"

// FontStyle represents the font-style property.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// ParseFontStyle parses a font-style keyword, defaulting to normal.
func ParseFontStyle(s string) FontStyle {
	switch normalizeKeyword(s) {
	case "italic":
		return FontStyleItalic
	case "oblique":
		return FontStyleOblique
	}
	return FontStyleNormal
}

func (fs FontStyle) String() string {
	switch fs {
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	}
	return "normal"
}

// FontVariant represents the font-variant property.
type FontVariant int

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
)

// ParseFontVariant parses a font-variant keyword, defaulting to normal.
func ParseFontVariant(s string) FontVariant {
	if normalizeKeyword(s) == "small-caps" {
		return FontVariantSmallCaps
	}
	return FontVariantNormal
}

func (fv FontVariant) String() string {
	if fv == FontVariantSmallCaps {
		return "small-caps"
	}
	return "normal"
}

// LineHeightKind identifies the variant held by a LineHeight.
type LineHeightKind int

const (
	LineHeightNormal LineHeightKind = iota
	LineHeightLength
	LineHeightNumber
)

// LineHeight represents the line-height property: the normal keyword, a
// length, or a unitless multiplier.
type LineHeight struct {
	Kind   LineHeightKind
	Length Length
	Number float64
}

// ParseLineHeight parses a line-height value, defaulting to normal.
func ParseLineHeight(s string) LineHeight {
	s = normalizeKeyword(s)
	if s == "normal" {
		return LineHeight{}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return LineHeight{Kind: LineHeightNumber, Number: n}
	}
	if l, ok := ParseLength(s); ok {
		return LineHeight{Kind: LineHeightLength, Length: l}
	}
	return LineHeight{}
}

// ToPx resolves the line height against the element's font size. Normal
// uses the conventional 1.2 multiplier.
func (lh LineHeight) ToPx(fontSize float64) float64 {
	switch lh.Kind {
	case LineHeightLength:
		return lh.Length.ToPx(fontSize, fontSize)
	case LineHeightNumber:
		return fontSize * lh.Number
	}
	return fontSize * 1.2
}
