// Style resolution: the cascade.
// Reference: https://www.w3.org/TR/css-cascade-4/
package css

import (
	"sort"

	"github.com/EthanRStokes/stokes-browser-sub001/dom"
)

// StyleResolver computes final styles for document nodes from an ordered
// list of stylesheets. The user agent stylesheet is always first.
type StyleResolver struct {
	stylesheets []*Stylesheet
	env         environment
}

// NewStyleResolver creates a resolver preloaded with the user agent
// stylesheet.
func NewStyleResolver() *StyleResolver {
	return &StyleResolver{
		stylesheets: []*Stylesheet{UserAgentStylesheet()},
		env:         defaultEnvironment(),
	}
}

// SetRootFontSize sets the font size seeded at the document root and used
// for rem units. Non-positive values are ignored.
func (sr *StyleResolver) SetRootFontSize(px float64) {
	if px > 0 {
		sr.env.rootFontSize = px
	}
}

// SetViewport sets the dimensions used for vw/vh units and as the
// containing-block stand-in for percentages. Non-positive values are
// ignored per dimension.
func (sr *StyleResolver) SetViewport(width, height float64) {
	if width > 0 {
		sr.env.viewportWidth = width
	}
	if height > 0 {
		sr.env.viewportHeight = height
	}
}

// AddStylesheet appends an author stylesheet. Later sheets win specificity
// ties against earlier ones.
func (sr *StyleResolver) AddStylesheet(ss *Stylesheet) {
	sr.stylesheets = append(sr.stylesheets, ss)
}

// ResolveStyles computes the style for one node given its parent's computed
// style (nil for the root). The cascade runs in this order: tag defaults,
// inheritance, matching rules in ascending specificity, important
// declarations, then the inline style attribute.
func (sr *StyleResolver) ResolveStyles(node *dom.Node, parent *ComputedValues) *ComputedValues {
	var computed *ComputedValues
	if node.Type == dom.ElementNode {
		computed = DefaultForTag(node.Tag)
	} else {
		computed = DefaultComputed()
	}

	// Inherited properties: color only when the tag default left it
	// unset, font family and size always. The root starts from the
	// configured root font size.
	if parent != nil {
		if computed.Color == nil {
			computed.Color = cloneColor(parent.Color)
		}
		computed.FontFamily = parent.FontFamily
		computed.FontSize = parent.FontSize
	} else {
		computed.FontSize = sr.env.rootFontSize
	}

	if node.Type != dom.ElementNode {
		return computed
	}

	matched := sr.matchingRules(node)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity() < matched[j].Specificity()
	})

	// Important declarations are deferred and reapplied after the normal
	// pass, still in specificity order among themselves.
	var important []Declaration
	for _, rule := range matched {
		for _, decl := range rule.Declarations {
			if decl.Important {
				important = append(important, decl)
				continue
			}
			applyDeclaration(computed, decl, parent, sr.env)
		}
	}
	for _, decl := range important {
		applyDeclaration(computed, decl, parent, sr.env)
	}

	if style := node.InlineStyle(); style != "" {
		for _, decl := range ParseInline(style) {
			applyDeclaration(computed, decl, parent, sr.env)
		}
	}

	return computed
}

// matchingRules collects rules from all stylesheets whose selector list
// matches the node, preserving sheet and source order.
func (sr *StyleResolver) matchingRules(node *dom.Node) []*Rule {
	var matched []*Rule
	for _, ss := range sr.stylesheets {
		for i := range ss.Rules {
			if ss.Rules[i].Matches(node) {
				matched = append(matched, &ss.Rules[i])
			}
		}
	}
	return matched
}
