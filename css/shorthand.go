// Shorthand property expansion.
//
// Shorthands reset the properties they cover before applying their
// components, so an earlier longhand declaration never leaks through a
// later shorthand.
package css

import "strings"

// expandBackground handles the background shorthand. Components may be a
// color, url() image, or the none keyword in any order.
func expandBackground(cv *ComputedValues, v Value) {
	cv.BackgroundColor = nil
	cv.BackgroundImage = BackgroundImage{}

	switch v.Type {
	case ValueColor:
		c := v.Color
		cv.BackgroundColor = &c
	case ValueKeyword:
		applyBackgroundToken(cv, v.Keyword)
	case ValueString:
		applyBackgroundToken(cv, v.Str)
	case ValueMultiple:
		for _, part := range v.Values {
			switch part.Type {
			case ValueColor:
				c := part.Color
				cv.BackgroundColor = &c
			case ValueKeyword:
				applyBackgroundToken(cv, part.Keyword)
			case ValueString:
				applyBackgroundToken(cv, part.Str)
			}
		}
	}
}

// applyBackgroundToken classifies a single background component.
func applyBackgroundToken(cv *ComputedValues, token string) {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, "none") {
		return
	}
	if strings.HasPrefix(token, "url(") {
		cv.BackgroundImage = ParseBackgroundImage(token)
		return
	}
	if parsed := parseSingleValue(token); parsed.Type == ValueColor {
		c := parsed.Color
		cv.BackgroundColor = &c
	}
}

// expandFont handles the font shorthand:
//
//	font: [style] [variant] [weight] size[/line-height] family
//
// Style, variant and weight keywords are only recognized before the size.
// Only the first comma-separated family is kept.
func expandFont(cv *ComputedValues, v Value, parent *ComputedValues, env environment) {
	cv.FontStyle = FontStyleNormal
	cv.FontVariant = FontVariantNormal
	cv.FontWeight = "normal"
	cv.LineHeight = LineHeight{}

	var fontStr string
	switch v.Type {
	case ValueString:
		fontStr = v.Str
	case ValueKeyword:
		fontStr = v.Keyword
	case ValueMultiple:
		parts := make([]string, 0, len(v.Values))
		for _, part := range v.Values {
			if s := part.String(); s != "" {
				parts = append(parts, s)
			}
		}
		fontStr = strings.Join(parts, " ")
	default:
		return
	}

	tokens := splitFontTokens(fontStr)
	if len(tokens) == 0 {
		return
	}

	sizeFound := false
	var familyParts []string

	for _, token := range tokens {
		if token == "," {
			if sizeFound && len(familyParts) > 0 {
				break
			}
			continue
		}
		lower := strings.ToLower(token)

		if !sizeFound {
			switch lower {
			case "normal", "italic", "oblique":
				cv.FontStyle = ParseFontStyle(token)
				continue
			}
			if lower == "small-caps" {
				cv.FontVariant = FontVariantSmallCaps
				continue
			}
			switch lower {
			case "bold", "bolder", "lighter",
				"100", "200", "300", "400", "500", "600", "700", "800", "900":
				cv.FontWeight = token
				continue
			}

			if slash := strings.IndexByte(token, '/'); slash >= 0 {
				if applyFontSize(cv, token[:slash], parent, env) {
					sizeFound = true
					cv.LineHeight = ParseLineHeight(token[slash+1:])
					continue
				}
			}
			if applyFontSize(cv, token, parent, env) {
				sizeFound = true
				continue
			}
		}

		if sizeFound {
			familyParts = append(familyParts, token)
		}
	}

	if len(familyParts) > 0 {
		family := strings.Join(familyParts, " ")
		if len(family) >= 2 && (family[0] == '"' && family[len(family)-1] == '"' ||
			family[0] == '\'' && family[len(family)-1] == '\'') {
			family = family[1 : len(family)-1]
		}
		cv.FontFamily = family
	}
}

// applyFontSize parses a font-size token, returning false when the token is
// not a size.
func applyFontSize(cv *ComputedValues, token string, parent *ComputedValues, env environment) bool {
	parsed := parseSingleValue(token)
	switch parsed.Type {
	case ValueLength:
		parentFontSize := env.rootFontSize
		if parent != nil {
			parentFontSize = parent.FontSize
		}
		cv.FontSize = env.lengthPx(parsed.Length, parentFontSize, parentFontSize)
		return true
	case ValueNumber:
		cv.FontSize = parsed.Number
		return true
	}
	return false
}

// splitFontTokens splits a font shorthand on whitespace, keeping quoted
// family names intact and emitting commas as standalone tokens so the
// family list boundary stays visible.
func splitFontTokens(value string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	var quoteChar byte

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch == '"' || ch == '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = ch
			} else if ch == quoteChar {
				inQuotes = false
			}
			current.WriteByte(ch)
		case ch == ' ' && !inQuotes:
			flush()
		case ch == ',' && !inQuotes:
			flush()
			tokens = append(tokens, ",")
		default:
			current.WriteByte(ch)
		}
	}
	flush()

	return tokens
}

// fontFamilyName extracts the effective family from a font-family value.
// Fallback families after the first comma are dropped and surrounding
// quotes are stripped. A quoted family arrives as a string value with the
// quotes already gone; any comma inside it is part of the name.
func fontFamilyName(v Value) string {
	var raw string
	switch v.Type {
	case ValueString:
		return strings.TrimSpace(v.Str)
	case ValueKeyword:
		raw = v.Keyword
	case ValueMultiple:
		raw = v.String()
	default:
		return ""
	}

	if comma := strings.IndexByte(raw, ','); comma >= 0 {
		raw = raw[:comma]
	}
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && (raw[0] == '"' && raw[len(raw)-1] == '"' ||
		raw[0] == '\'' && raw[len(raw)-1] == '\'') {
		raw = raw[1 : len(raw)-1]
	}
	return raw
}

// expandEdges handles the margin and padding shorthands with the standard
// 1, 2, 3 and 4 value forms.
func expandEdges(dst *EdgeSizes, v Value, fontSize float64, env environment) {
	switch v.Type {
	case ValueLength:
		*dst = UniformEdges(env.lengthPx(v.Length, fontSize, env.viewportWidth))
	case ValueAuto:
		*dst = UniformEdges(0)
	case ValueMultiple:
		px := make([]float64, len(v.Values))
		for i, part := range v.Values {
			px[i] = edgePx(part, fontSize, env)
		}
		switch len(px) {
		case 1:
			*dst = UniformEdges(px[0])
		case 2:
			*dst = EdgeSizes{Top: px[0], Right: px[1], Bottom: px[0], Left: px[1]}
		case 3:
			*dst = EdgeSizes{Top: px[0], Right: px[1], Bottom: px[2], Left: px[1]}
		case 4:
			*dst = EdgeSizes{Top: px[0], Right: px[1], Bottom: px[2], Left: px[3]}
		}
	}
}

func edgePx(v Value, fontSize float64, env environment) float64 {
	switch v.Type {
	case ValueLength:
		return env.lengthPx(v.Length, fontSize, env.viewportWidth)
	case ValueNumber:
		return v.Number
	}
	return 0
}
