// Computed style values.
package css

// DefaultFontSize is the root font size in pixels.
const DefaultFontSize = 16.0

// ComputedValues is the flat record of resolved style values for one node.
// Color-valued fields are pointers so that "not set" is distinguishable from
// any concrete color; optional lengths work the same way.
type ComputedValues struct {
	Color           *Color
	BackgroundColor *Color
	BackgroundImage BackgroundImage

	FontSize    float64
	FontFamily  string
	FontWeight  string
	FontStyle   FontStyle
	FontVariant FontVariant
	LineHeight  LineHeight

	TextDecoration TextDecoration
	TextAlign      TextAlign
	TextTransform  TextTransform
	WhiteSpace     WhiteSpace
	VerticalAlign  VerticalAlign

	Display    Display
	Visibility Visibility
	Float      Float
	Clear      Clear
	Overflow   Overflow

	Width     *Length
	Height    *Length
	MaxWidth  *Length
	MinWidth  *Length
	MaxHeight *Length
	MinHeight *Length

	Margin  EdgeSizes
	Padding EdgeSizes
	Border  EdgeSizes

	BorderRadius BorderRadius
	BoxSizing    BoxSizing
	BoxShadow    []BoxShadow

	Outline       Outline
	OutlineOffset Length

	Cursor        Cursor
	ZIndex        int
	Opacity       float64
	ListStyleType ListStyleType

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  FlexBasis
	Gap        Gap
}

// DefaultComputed returns the initial values used before any tag defaults,
// inheritance or declarations apply. Color and background are left unset so
// inheritance can distinguish them from explicit values.
func DefaultComputed() *ComputedValues {
	return &ComputedValues{
		FontSize:      DefaultFontSize,
		FontFamily:    "Arial",
		FontWeight:    "normal",
		Display:       DisplayBlock,
		Opacity:       1.0,
		FlexShrink:    1.0,
		ListStyleType: ListStyleNone,
	}
}

// DefaultForTag returns the initial values for an element, adjusted for the
// built-in defaults of its tag name.
func DefaultForTag(tag string) *ComputedValues {
	v := DefaultComputed()

	switch tag {
	case "div", "p", "h1", "h2", "h3", "h4", "h5", "h6",
		"section", "article", "header", "footer", "nav",
		"main", "aside", "blockquote", "ul", "ol", "li":
		v.Display = DisplayBlock
	case "img", "button":
		v.Display = DisplayInlineBlock
	default:
		v.Display = DisplayInline
	}

	switch tag {
	case "h1":
		v.FontSize = 32.0
	case "h2":
		v.FontSize = 24.0
	case "h3":
		v.FontSize = 18.72
	case "h4":
		v.FontSize = 16.0
	case "h5":
		v.FontSize = 13.28
	case "h6":
		v.FontSize = 10.72
	}

	switch tag {
	case "ul", "li":
		v.ListStyleType = ListStyleDisc
	case "ol":
		v.ListStyleType = ListStyleDecimal
	}

	if tag == "a" {
		c := HexColor("#0000EE")
		v.Color = &c
		v.TextDecoration = DecorationUnderline
	}

	if tag == "button" {
		v.Cursor = CursorPointer
		bg := HexColor("#f2f2f2")
		v.BackgroundColor = &bg
		v.Border = UniformEdges(1.0)
	}

	return v
}

// Clone returns a deep copy. Pointer-valued fields are duplicated so that
// mutating the copy never aliases the original.
func (cv *ComputedValues) Clone() *ComputedValues {
	out := *cv
	out.Color = cloneColor(cv.Color)
	out.BackgroundColor = cloneColor(cv.BackgroundColor)
	out.Width = cloneLength(cv.Width)
	out.Height = cloneLength(cv.Height)
	out.MaxWidth = cloneLength(cv.MaxWidth)
	out.MinWidth = cloneLength(cv.MinWidth)
	out.MaxHeight = cloneLength(cv.MaxHeight)
	out.MinHeight = cloneLength(cv.MinHeight)
	out.Outline.Color = cloneColor(cv.Outline.Color)
	if cv.BoxShadow != nil {
		out.BoxShadow = append([]BoxShadow(nil), cv.BoxShadow...)
	}
	return &out
}

func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

func cloneLength(l *Length) *Length {
	if l == nil {
		return nil
	}
	out := *l
	return &out
}

// IsHidden reports whether the node should not be rendered at all.
func (cv *ComputedValues) IsHidden() bool {
	return cv.Display == DisplayNone || cv.Visibility == VisibilityHidden || cv.Visibility == VisibilityCollapse
}

// IsBlockLevel reports whether the node generates a block box.
func (cv *ComputedValues) IsBlockLevel() bool {
	return cv.Display == DisplayBlock || cv.Display == DisplayFlex
}
