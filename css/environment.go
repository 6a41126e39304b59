// Resolution environment for context-dependent units.
package css

// environment carries the document-level context needed to resolve units
// that do not depend on the element itself: rem against the root font size,
// vw/vh against the viewport, and percentages against the viewport width as
// the containing-block stand-in before layout runs.
type environment struct {
	rootFontSize   float64
	viewportWidth  float64
	viewportHeight float64
}

func defaultEnvironment() environment {
	return environment{
		rootFontSize:   DefaultFontSize,
		viewportWidth:  1280,
		viewportHeight: 720,
	}
}

// lengthPx resolves a length to pixels with full document context. Units
// without document-level context defer to Length.ToPx.
func (env environment) lengthPx(l Length, fontSize, parentSize float64) float64 {
	switch l.Unit {
	case UnitRem:
		return l.Value * env.rootFontSize
	case UnitVw:
		return l.Value / 100.0 * env.viewportWidth
	case UnitVh:
		return l.Value / 100.0 * env.viewportHeight
	}
	return l.ToPx(fontSize, parentSize)
}
