// Text-related value types.
package css

import "strings"

// normalizeKeyword lowercases and trims a keyword token.
func normalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TextDecoration is a bit set of decoration lines.
type TextDecoration uint8

const (
	DecorationNone        TextDecoration = 0
	DecorationUnderline   TextDecoration = 1 << 0
	DecorationOverline    TextDecoration = 1 << 1
	DecorationLineThrough TextDecoration = 1 << 2
)

// ParseTextDecoration parses a text-decoration value. Multiple lines may be
// given space-separated; unknown tokens are ignored.
func ParseTextDecoration(s string) TextDecoration {
	var d TextDecoration
	for _, part := range strings.Fields(strings.ToLower(s)) {
		switch part {
		case "underline":
			d |= DecorationUnderline
		case "overline":
			d |= DecorationOverline
		case "line-through":
			d |= DecorationLineThrough
		case "none":
			return DecorationNone
		}
	}
	return d
}

// HasUnderline reports whether the underline bit is set.
func (d TextDecoration) HasUnderline() bool { return d&DecorationUnderline != 0 }

// HasOverline reports whether the overline bit is set.
func (d TextDecoration) HasOverline() bool { return d&DecorationOverline != 0 }

// HasLineThrough reports whether the line-through bit is set.
func (d TextDecoration) HasLineThrough() bool { return d&DecorationLineThrough != 0 }

func (d TextDecoration) String() string {
	if d == DecorationNone {
		return "none"
	}
	var parts []string
	if d.HasUnderline() {
		parts = append(parts, "underline")
	}
	if d.HasOverline() {
		parts = append(parts, "overline")
	}
	if d.HasLineThrough() {
		parts = append(parts, "line-through")
	}
	return strings.Join(parts, " ")
}

// TextAlign represents the text-align property.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// ParseTextAlign parses a text-align keyword, defaulting to left.
func ParseTextAlign(s string) TextAlign {
	switch normalizeKeyword(s) {
	case "right":
		return TextAlignRight
	case "center":
		return TextAlignCenter
	case "justify":
		return TextAlignJustify
	}
	return TextAlignLeft
}

func (ta TextAlign) String() string {
	switch ta {
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	}
	return "left"
}

// TextTransform represents the text-transform property.
type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

// ParseTextTransform parses a text-transform keyword, defaulting to none.
func ParseTextTransform(s string) TextTransform {
	switch normalizeKeyword(s) {
	case "capitalize":
		return TextTransformCapitalize
	case "uppercase":
		return TextTransformUppercase
	case "lowercase":
		return TextTransformLowercase
	}
	return TextTransformNone
}

// Apply transforms text according to the transform mode.
func (tt TextTransform) Apply(text string) string {
	switch tt {
	case TextTransformUppercase:
		return strings.ToUpper(text)
	case TextTransformLowercase:
		return strings.ToLower(text)
	case TextTransformCapitalize:
		words := strings.Fields(text)
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		return strings.Join(words, " ")
	}
	return text
}

// WhiteSpace represents the white-space property.
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

// ParseWhiteSpace parses a white-space keyword, defaulting to normal.
func ParseWhiteSpace(s string) WhiteSpace {
	switch normalizeKeyword(s) {
	case "nowrap":
		return WhiteSpaceNowrap
	case "pre":
		return WhiteSpacePre
	case "pre-wrap":
		return WhiteSpacePreWrap
	case "pre-line":
		return WhiteSpacePreLine
	}
	return WhiteSpaceNormal
}

// ShouldWrap reports whether text is allowed to wrap.
func (ws WhiteSpace) ShouldWrap() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpacePreWrap || ws == WhiteSpacePreLine
}

// PreservesWhitespace reports whether runs of whitespace are kept.
func (ws WhiteSpace) PreservesWhitespace() bool {
	return ws == WhiteSpacePre || ws == WhiteSpacePreWrap || ws == WhiteSpacePreLine
}

// VerticalAlignKind identifies the variant held by a VerticalAlign.
type VerticalAlignKind int

const (
	VerticalAlignBaseline VerticalAlignKind = iota
	VerticalAlignTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom
	VerticalAlignLength
)

// VerticalAlign represents the vertical-align property.
type VerticalAlign struct {
	Kind   VerticalAlignKind
	Length Length
}

// ParseVerticalAlign parses a vertical-align keyword, defaulting to
// baseline.
func ParseVerticalAlign(s string) VerticalAlign {
	switch normalizeKeyword(s) {
	case "top":
		return VerticalAlign{Kind: VerticalAlignTop}
	case "middle":
		return VerticalAlign{Kind: VerticalAlignMiddle}
	case "bottom":
		return VerticalAlign{Kind: VerticalAlignBottom}
	case "sub":
		return VerticalAlign{Kind: VerticalAlignSub}
	case "super":
		return VerticalAlign{Kind: VerticalAlignSuper}
	case "text-top":
		return VerticalAlign{Kind: VerticalAlignTextTop}
	case "text-bottom":
		return VerticalAlign{Kind: VerticalAlignTextBottom}
	}
	return VerticalAlign{}
}
