// CSS color parsing and resolution.
// Reference: https://www.w3.org/TR/css-color-3/
package css

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorKind discriminates the representation a Color was parsed from.
type ColorKind int

const (
	ColorRgb ColorKind = iota
	ColorRgba
	ColorNamed
	ColorHex
)

// Color is a CSS color value. The parsed representation is preserved so that
// two colors compare equal only when written the same way; RGBA resolves the
// actual channel values.
type Color struct {
	Kind    ColorKind
	R, G, B uint8
	A       float64
	Name    string
	Hex     string
}

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRgb, R: r, G: g, B: b}
}

// RGBA creates a color from 8-bit channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{Kind: ColorRgba, R: r, G: g, B: b, A: a}
}

// NamedColor creates a color referring to a CSS color name.
func NamedColor(name string) Color {
	return Color{Kind: ColorNamed, Name: name}
}

// HexColor creates a color from hex notation, with or without the leading '#'.
func HexColor(hex string) Color {
	return Color{Kind: ColorHex, Hex: strings.TrimPrefix(hex, "#")}
}

// IsNamedColor reports whether s is a recognized CSS color name.
func IsNamedColor(s string) bool {
	s = strings.ToLower(s)
	if s == "transparent" {
		return true
	}
	_, ok := colornames.Map[s]
	return ok
}

// RGBA resolves the color to concrete channel values. Unknown names and
// malformed hex strings resolve to opaque black.
func (c Color) RGBA() color.RGBA {
	switch c.Kind {
	case ColorRgb:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	case ColorRgba:
		a := c.A
		if a < 0 {
			a = 0
		} else if a > 1 {
			a = 1
		}
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
	case ColorNamed:
		name := strings.ToLower(c.Name)
		if name == "transparent" {
			return color.RGBA{}
		}
		if rgba, ok := colornames.Map[name]; ok {
			return rgba
		}
		return color.RGBA{A: 255}
	case ColorHex:
		return hexToRGBA(c.Hex)
	}
	return color.RGBA{A: 255}
}

// hexToRGBA parses 3- or 6-digit hex notation, falling back to opaque black.
func hexToRGBA(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	black := color.RGBA{A: 255}
	switch len(hex) {
	case 3:
		r, okR := hexByte(hex[0:1] + hex[0:1])
		g, okG := hexByte(hex[1:2] + hex[1:2])
		b, okB := hexByte(hex[2:3] + hex[2:3])
		if okR && okG && okB {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	case 6:
		r, okR := hexByte(hex[0:2])
		g, okG := hexByte(hex[2:4])
		b, okB := hexByte(hex[4:6])
		if okR && okG && okB {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	return black
}

func hexByte(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// String formats the color as CSS text.
func (c Color) String() string {
	switch c.Kind {
	case ColorRgb:
		return "rgb(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B)) + ")"
	case ColorRgba:
		return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B)) + ", " +
			strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
	case ColorNamed:
		return c.Name
	case ColorHex:
		return "#" + c.Hex
	}
	return ""
}

// parseFunctionColor parses rgb(...) and rgba(...) notation. It returns
// false when the arguments are malformed.
func parseFunctionColor(s string) (Color, bool) {
	var inner string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		inner = s[5 : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		inner = s[4 : len(s)-1]
	default:
		return Color{}, false
	}

	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return Color{}, false
	}

	r, errR := strconv.ParseUint(parts[0], 10, 8)
	g, errG := strconv.ParseUint(parts[1], 10, 8)
	b, errB := strconv.ParseUint(parts[2], 10, 8)
	if errR != nil || errG != nil || errB != nil {
		return Color{}, false
	}

	if len(parts) >= 4 {
		if a, err := strconv.ParseFloat(parts[3], 64); err == nil {
			return RGBA(uint8(r), uint8(g), uint8(b), a), true
		}
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}
