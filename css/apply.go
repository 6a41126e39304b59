// Declaration application: turning parsed declarations into computed
// values.
package css

import "strconv"

// applyDeclaration applies a single declaration to the computed values.
// Declarations whose value does not fit the property are ignored, keeping
// the previous value in place.
func applyDeclaration(cv *ComputedValues, decl Declaration, parent *ComputedValues, env environment) {
	switch decl.Property {
	case PropColor:
		if decl.Value.Type == ValueColor {
			c := decl.Value.Color
			cv.Color = &c
		}
	case PropBackground:
		expandBackground(cv, decl.Value)
	case PropBackgroundColor:
		if decl.Value.Type == ValueColor {
			c := decl.Value.Color
			cv.BackgroundColor = &c
		}
	case PropBackgroundImage:
		switch decl.Value.Type {
		case ValueString:
			cv.BackgroundImage = ParseBackgroundImage(decl.Value.Str)
		case ValueKeyword:
			cv.BackgroundImage = ParseBackgroundImage(decl.Value.Keyword)
		}

	case PropFont:
		expandFont(cv, decl.Value, parent, env)
	case PropFontSize:
		switch decl.Value.Type {
		case ValueLength:
			parentFontSize := env.rootFontSize
			if parent != nil {
				parentFontSize = parent.FontSize
			}
			cv.FontSize = env.lengthPx(decl.Value.Length, parentFontSize, parentFontSize)
		case ValueNumber:
			cv.FontSize = decl.Value.Number
		}
	case PropFontFamily:
		if family := fontFamilyName(decl.Value); family != "" {
			cv.FontFamily = family
		}
	case PropFontWeight:
		if decl.Value.Type == ValueKeyword {
			cv.FontWeight = decl.Value.Keyword
		} else if decl.Value.Type == ValueNumber {
			cv.FontWeight = strconv.FormatFloat(decl.Value.Number, 'f', -1, 64)
		}
	case PropFontStyle:
		if kw, ok := keywordText(decl.Value); ok {
			cv.FontStyle = ParseFontStyle(kw)
		}
	case PropFontVariant:
		if kw, ok := keywordText(decl.Value); ok {
			cv.FontVariant = ParseFontVariant(kw)
		}
	case PropLineHeight:
		switch decl.Value.Type {
		case ValueLength:
			cv.LineHeight = LineHeight{Kind: LineHeightLength, Length: decl.Value.Length}
		case ValueNumber:
			cv.LineHeight = LineHeight{Kind: LineHeightNumber, Number: decl.Value.Number}
		case ValueKeyword:
			cv.LineHeight = ParseLineHeight(decl.Value.Keyword)
		case ValueString:
			cv.LineHeight = ParseLineHeight(decl.Value.Str)
		}

	case PropTextDecoration:
		if kw, ok := keywordText(decl.Value); ok {
			cv.TextDecoration = ParseTextDecoration(kw)
		} else if decl.Value.Type == ValueMultiple {
			cv.TextDecoration = ParseTextDecoration(decl.Value.String())
		}
	case PropTextAlign:
		if kw, ok := keywordText(decl.Value); ok {
			cv.TextAlign = ParseTextAlign(kw)
		}
	case PropTextTransform:
		if kw, ok := keywordText(decl.Value); ok {
			cv.TextTransform = ParseTextTransform(kw)
		}
	case PropWhiteSpace:
		if kw, ok := keywordText(decl.Value); ok {
			cv.WhiteSpace = ParseWhiteSpace(kw)
		}
	case PropVerticalAlign:
		if decl.Value.Type == ValueLength {
			cv.VerticalAlign = VerticalAlign{Kind: VerticalAlignLength, Length: decl.Value.Length}
		} else if kw, ok := keywordText(decl.Value); ok {
			cv.VerticalAlign = ParseVerticalAlign(kw)
		}

	case PropDisplay:
		if decl.Value.Type == ValueKeyword {
			if d, ok := ParseDisplay(decl.Value.Keyword); ok {
				cv.Display = d
			}
		}
	case PropVisibility:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Visibility = ParseVisibility(kw)
		}
	case PropFloat:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Float = ParseFloat(kw)
		}
	case PropClear:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Clear = ParseClear(kw)
		}
	case PropOverflow:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Overflow = ParseOverflow(kw)
		}

	case PropWidth:
		applyOptionalLength(&cv.Width, decl.Value)
	case PropHeight:
		applyOptionalLength(&cv.Height, decl.Value)
	case PropMaxWidth:
		applyOptionalLength(&cv.MaxWidth, decl.Value)
	case PropMinWidth:
		applyOptionalLength(&cv.MinWidth, decl.Value)
	case PropMaxHeight:
		applyOptionalLength(&cv.MaxHeight, decl.Value)
	case PropMinHeight:
		applyOptionalLength(&cv.MinHeight, decl.Value)

	case PropMargin:
		expandEdges(&cv.Margin, decl.Value, cv.FontSize, env)
	case PropMarginTop:
		applyEdge(&cv.Margin.Top, decl.Value, cv.FontSize, env)
	case PropMarginRight:
		applyEdge(&cv.Margin.Right, decl.Value, cv.FontSize, env)
	case PropMarginBottom:
		applyEdge(&cv.Margin.Bottom, decl.Value, cv.FontSize, env)
	case PropMarginLeft:
		applyEdge(&cv.Margin.Left, decl.Value, cv.FontSize, env)
	case PropPadding:
		expandEdges(&cv.Padding, decl.Value, cv.FontSize, env)
	case PropPaddingTop:
		applyEdge(&cv.Padding.Top, decl.Value, cv.FontSize, env)
	case PropPaddingRight:
		applyEdge(&cv.Padding.Right, decl.Value, cv.FontSize, env)
	case PropPaddingBottom:
		applyEdge(&cv.Padding.Bottom, decl.Value, cv.FontSize, env)
	case PropPaddingLeft:
		applyEdge(&cv.Padding.Left, decl.Value, cv.FontSize, env)

	case PropBorderRadius:
		if decl.Value.Type == ValueLength {
			cv.BorderRadius = UniformRadius(decl.Value.Length)
		}
	case PropBorderTopLeftRadius:
		if decl.Value.Type == ValueLength {
			cv.BorderRadius.TopLeft = decl.Value.Length
		}
	case PropBorderTopRightRadius:
		if decl.Value.Type == ValueLength {
			cv.BorderRadius.TopRight = decl.Value.Length
		}
	case PropBorderBottomLeftRadius:
		if decl.Value.Type == ValueLength {
			cv.BorderRadius.BottomLeft = decl.Value.Length
		}
	case PropBorderBottomRightRadius:
		if decl.Value.Type == ValueLength {
			cv.BorderRadius.BottomRight = decl.Value.Length
		}
	case PropBoxSizing:
		if kw, ok := keywordText(decl.Value); ok {
			cv.BoxSizing = ParseBoxSizing(kw)
		}
	case PropBoxShadow:
		if text, ok := rawText(decl.Value); ok {
			cv.BoxShadow = ParseBoxShadows(text)
		}

	case PropOutline:
		if text, ok := rawText(decl.Value); ok {
			cv.Outline = ParseOutline(text)
		}
	case PropOutlineWidth:
		switch decl.Value.Type {
		case ValueLength:
			cv.Outline.Width = decl.Value.Length
		case ValueKeyword:
			if w, ok := outlineWidthKeyword(decl.Value.Keyword); ok {
				cv.Outline.Width = w
			}
		}
	case PropOutlineStyle:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Outline.Style = ParseOutlineStyle(kw)
		}
	case PropOutlineColor:
		if decl.Value.Type == ValueColor {
			c := decl.Value.Color
			cv.Outline.Color = &c
		}
	case PropOutlineOffset:
		if decl.Value.Type == ValueLength {
			cv.OutlineOffset = decl.Value.Length
		}

	case PropCursor:
		if kw, ok := keywordText(decl.Value); ok {
			cv.Cursor = ParseCursor(kw)
		}
	case PropZIndex:
		switch decl.Value.Type {
		case ValueNumber:
			cv.ZIndex = int(decl.Value.Number)
		case ValueAuto:
			cv.ZIndex = 0
		}
	case PropOpacity:
		if decl.Value.Type == ValueNumber {
			cv.Opacity = clamp01(decl.Value.Number)
		}
	case PropListStyleType:
		if kw, ok := keywordText(decl.Value); ok {
			cv.ListStyleType = ParseListStyleType(kw)
		}

	case PropFlexGrow:
		if decl.Value.Type == ValueNumber {
			cv.FlexGrow = decl.Value.Number
		}
	case PropFlexShrink:
		if decl.Value.Type == ValueNumber {
			cv.FlexShrink = decl.Value.Number
		}
	case PropFlexBasis:
		switch decl.Value.Type {
		case ValueLength:
			cv.FlexBasis = FlexBasis{Kind: FlexBasisLength, Length: decl.Value.Length}
		case ValueAuto:
			cv.FlexBasis = FlexBasis{}
		case ValueKeyword:
			cv.FlexBasis = ParseFlexBasis(decl.Value.Keyword)
		}
	case PropGap:
		applyGap(cv, decl.Value)
	}
}

// keywordText extracts keyword-like text from keyword and string values.
func keywordText(v Value) (string, bool) {
	switch v.Type {
	case ValueKeyword:
		return v.Keyword, true
	case ValueString:
		return v.Str, true
	}
	return "", false
}

// rawText recovers the declaration text for values with their own grammar
// (outline, box-shadow) that re-tokenize it.
func rawText(v Value) (string, bool) {
	switch v.Type {
	case ValueKeyword:
		return v.Keyword, true
	case ValueString:
		return v.Str, true
	case ValueMultiple:
		return v.String(), true
	}
	return "", false
}

// applyOptionalLength handles the width/height family: lengths are stored,
// auto clears the field, anything else is ignored.
func applyOptionalLength(dst **Length, v Value) {
	switch v.Type {
	case ValueLength:
		l := v.Length
		*dst = &l
	case ValueAuto:
		*dst = nil
	}
}

// applyEdge resolves a single margin or padding side to pixels. Auto
// resolves to 0 until layout can do better.
func applyEdge(dst *float64, v Value, fontSize float64, env environment) {
	switch v.Type {
	case ValueLength:
		*dst = env.lengthPx(v.Length, fontSize, env.viewportWidth)
	case ValueAuto:
		*dst = 0
	}
}

func applyGap(cv *ComputedValues, v Value) {
	switch v.Type {
	case ValueLength:
		cv.Gap = UniformGap(v.Length)
	case ValueMultiple:
		if len(v.Values) >= 2 {
			var gap Gap
			if v.Values[0].Type == ValueLength {
				gap.Row = v.Values[0].Length
			}
			if v.Values[1].Type == ValueLength {
				gap.Column = v.Values[1].Length
			}
			cv.Gap = gap
		} else if len(v.Values) == 1 && v.Values[0].Type == ValueLength {
			cv.Gap = UniformGap(v.Values[0].Length)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
