// Stylesheet object model: declarations, rules and rule collections.
package css

import "github.com/EthanRStokes/stokes-browser-sub001/dom"

// Declaration is a single property: value pair, optionally marked
// !important.
type Declaration struct {
	Property  Property
	Value     Value
	Important bool
}

// NewDeclaration creates a declaration without the important flag.
func NewDeclaration(property Property, value Value) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rule couples a selector list with its declaration block.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// NewRule creates a rule from selectors and declarations.
func NewRule(selectors []Selector, declarations []Declaration) Rule {
	return Rule{Selectors: selectors, Declarations: declarations}
}

// Specificity returns the highest specificity among the rule's selectors.
func (r *Rule) Specificity() uint32 {
	var max uint32
	for _, s := range r.Selectors {
		if s.Specificity > max {
			max = s.Specificity
		}
	}
	return max
}

// Matches reports whether any of the rule's selectors matches the node.
func (r *Rule) Matches(node *dom.Node) bool {
	for _, s := range r.Selectors {
		if s.Matches(node) {
			return true
		}
	}
	return false
}

// Stylesheet is an ordered collection of rules. Source order is preserved
// because the cascade breaks specificity ties by it.
type Stylesheet struct {
	Rules []Rule
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// AddRule appends a rule.
func (ss *Stylesheet) AddRule(rule Rule) {
	ss.Rules = append(ss.Rules, rule)
}

// Merge appends all rules from another stylesheet.
func (ss *Stylesheet) Merge(other *Stylesheet) {
	ss.Rules = append(ss.Rules, other.Rules...)
}
