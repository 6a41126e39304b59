// Box shadow values.
package css

import "strings"

// BoxShadow is one shadow layer of the box-shadow property.
type BoxShadow struct {
	OffsetX Length
	OffsetY Length
	Blur    Length
	Spread  Length
	Color   Color
	Inset   bool
}

// defaultShadowColor is used when a shadow gives no color.
func defaultShadowColor() Color {
	return RGBA(0, 0, 0, 0.5)
}

// ParseBoxShadows parses a box-shadow value: comma-separated shadow layers,
// each "[inset] offset-x offset-y [blur [spread]] [color]". "none" and
// layers without both offsets yield no shadows.
func ParseBoxShadows(s string) []BoxShadow {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return nil
	}

	var shadows []BoxShadow
	for _, layer := range splitShadowLayers(s) {
		if shadow, ok := parseShadowLayer(layer); ok {
			shadows = append(shadows, shadow)
		}
	}
	return shadows
}

// splitShadowLayers splits on commas outside parentheses so rgba() colors
// stay inside their layer.
func splitShadowLayers(s string) []string {
	var layers []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '(':
			depth++
			current.WriteByte(ch)
		case ch == ')':
			depth--
			current.WriteByte(ch)
		case ch == ',' && depth == 0:
			layers = append(layers, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		layers = append(layers, current.String())
	}
	return layers
}

func parseShadowLayer(s string) (BoxShadow, bool) {
	parts := splitComponents(strings.TrimSpace(s))

	shadow := BoxShadow{Color: defaultShadowColor()}
	if len(parts) > 0 && strings.EqualFold(parts[0], "inset") {
		shadow.Inset = true
		parts = parts[1:]
	} else if len(parts) > 0 && strings.EqualFold(parts[len(parts)-1], "inset") {
		shadow.Inset = true
		parts = parts[:len(parts)-1]
	}

	if len(parts) < 2 {
		return BoxShadow{}, false
	}

	offsetX, okX := shadowLength(parts[0])
	offsetY, okY := shadowLength(parts[1])
	if !okX || !okY {
		return BoxShadow{}, false
	}
	shadow.OffsetX = offsetX
	shadow.OffsetY = offsetY

	lengthIndex := 0
	for _, part := range parts[2:] {
		if l, ok := shadowLength(part); ok {
			switch lengthIndex {
			case 0:
				shadow.Blur = l
			case 1:
				shadow.Spread = l
			}
			lengthIndex++
			continue
		}
		if parsed := parseSingleValue(part); parsed.Type == ValueColor {
			shadow.Color = parsed.Color
		}
	}
	return shadow, true
}

// shadowLength accepts lengths and bare numbers (treated as pixels, so a
// plain 0 offset works).
func shadowLength(s string) (Length, bool) {
	switch parsed := parseSingleValue(s); parsed.Type {
	case ValueLength:
		return parsed.Length, true
	case ValueNumber:
		return Px(parsed.Number), true
	}
	return Length{}, false
}
