// CSS property names.
package css

import "strings"

// Property is a normalized (lowercase) CSS property name. Names outside the
// supported set are preserved as-is and ignored during application.
type Property string

const (
	PropColor           Property = "color"
	PropBackground      Property = "background"
	PropBackgroundColor Property = "background-color"
	PropBackgroundImage Property = "background-image"

	PropFont        Property = "font"
	PropFontSize    Property = "font-size"
	PropFontFamily  Property = "font-family"
	PropFontWeight  Property = "font-weight"
	PropFontStyle   Property = "font-style"
	PropFontVariant Property = "font-variant"
	PropLineHeight  Property = "line-height"

	PropTextDecoration Property = "text-decoration"
	PropTextAlign      Property = "text-align"
	PropTextTransform  Property = "text-transform"
	PropWhiteSpace     Property = "white-space"
	PropVerticalAlign  Property = "vertical-align"

	PropDisplay    Property = "display"
	PropVisibility Property = "visibility"
	PropFloat      Property = "float"
	PropClear      Property = "clear"
	PropOverflow   Property = "overflow"

	PropWidth     Property = "width"
	PropHeight    Property = "height"
	PropMaxWidth  Property = "max-width"
	PropMinWidth  Property = "min-width"
	PropMaxHeight Property = "max-height"
	PropMinHeight Property = "min-height"

	PropMargin        Property = "margin"
	PropMarginTop     Property = "margin-top"
	PropMarginRight   Property = "margin-right"
	PropMarginBottom  Property = "margin-bottom"
	PropMarginLeft    Property = "margin-left"
	PropPadding       Property = "padding"
	PropPaddingTop    Property = "padding-top"
	PropPaddingRight  Property = "padding-right"
	PropPaddingBottom Property = "padding-bottom"
	PropPaddingLeft   Property = "padding-left"

	PropBorderRadius            Property = "border-radius"
	PropBorderTopLeftRadius     Property = "border-top-left-radius"
	PropBorderTopRightRadius    Property = "border-top-right-radius"
	PropBorderBottomLeftRadius  Property = "border-bottom-left-radius"
	PropBorderBottomRightRadius Property = "border-bottom-right-radius"
	PropBoxSizing               Property = "box-sizing"
	PropBoxShadow               Property = "box-shadow"

	PropOutline       Property = "outline"
	PropOutlineWidth  Property = "outline-width"
	PropOutlineStyle  Property = "outline-style"
	PropOutlineColor  Property = "outline-color"
	PropOutlineOffset Property = "outline-offset"

	PropCursor        Property = "cursor"
	PropZIndex        Property = "z-index"
	PropOpacity       Property = "opacity"
	PropListStyleType Property = "list-style-type"

	PropFlexGrow   Property = "flex-grow"
	PropFlexShrink Property = "flex-shrink"
	PropFlexBasis  Property = "flex-basis"
	PropGap        Property = "gap"
)

// ParseProperty normalizes a raw property name.
func ParseProperty(name string) Property {
	return Property(strings.ToLower(strings.TrimSpace(name)))
}
