// CSS selector parsing and matching.
// Reference: https://www.w3.org/TR/selectors-3/
package css

import (
	"strings"

	"github.com/EthanRStokes/stokes-browser-sub001/dom"
)

// SelectorKind identifies the form of a simple selector.
type SelectorKind int

const (
	SelectorType SelectorKind = iota
	SelectorClass
	SelectorID
	SelectorAttribute
	SelectorUniversal
)

// PseudoClass represents a pseudo-class suffix on a selector.
type PseudoClass int

const (
	PseudoNone PseudoClass = iota
	PseudoLink
	PseudoVisited
	PseudoHover
	PseudoActive
	PseudoFocus
)

// Specificity weights for the flat specificity model.
const (
	specificityID        = 100
	specificityClass     = 10
	specificityAttribute = 10
	specificityPseudo    = 10
	specificityType      = 1
)

// Selector is a single simple selector with a precomputed specificity.
type Selector struct {
	Kind        SelectorKind
	Name        string
	AttrValue   string
	HasValue    bool
	Pseudo      PseudoClass
	Specificity uint32
}

// NewSelector creates a selector with specificity computed from its kind.
func NewSelector(kind SelectorKind, name string) Selector {
	s := Selector{Kind: kind, Name: name}
	s.Specificity = s.computeSpecificity()
	return s
}

func (s Selector) computeSpecificity() uint32 {
	var spec uint32
	switch s.Kind {
	case SelectorID:
		spec = specificityID
	case SelectorClass:
		spec = specificityClass
	case SelectorAttribute:
		spec = specificityAttribute
	case SelectorType:
		spec = specificityType
	case SelectorUniversal:
		spec = 0
	}
	if s.Pseudo != PseudoNone {
		spec += specificityPseudo
	}
	return spec
}

// ParseSelectorList parses a comma-separated selector list. Empty segments
// are dropped.
func ParseSelectorList(text string) []Selector {
	var selectors []Selector
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if sel, ok := ParseSelector(part); ok {
			selectors = append(selectors, sel)
		}
	}
	return selectors
}

// ParseSelector parses a single simple selector. The first character decides
// the kind; anything that is not id, class, attribute or universal syntax is
// treated as a type selector.
func ParseSelector(text string) (Selector, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Selector{}, false
	}

	base := text
	pseudo := PseudoNone
	if colon := strings.IndexByte(text, ':'); colon >= 0 {
		base = text[:colon]
		pseudo = parsePseudoClass(text[colon+1:])
		if base == "" {
			return Selector{}, false
		}
	}

	var sel Selector
	switch {
	case strings.HasPrefix(base, "#"):
		sel = Selector{Kind: SelectorID, Name: base[1:]}
	case strings.HasPrefix(base, "."):
		sel = Selector{Kind: SelectorClass, Name: base[1:]}
	case strings.HasPrefix(base, "[") && strings.HasSuffix(base, "]"):
		content := base[1 : len(base)-1]
		if eq := strings.IndexByte(content, '='); eq >= 0 {
			value := strings.TrimSpace(content[eq+1:])
			value = strings.Trim(value, `"'`)
			sel = Selector{
				Kind:      SelectorAttribute,
				Name:      strings.TrimSpace(content[:eq]),
				AttrValue: value,
				HasValue:  true,
			}
		} else {
			sel = Selector{Kind: SelectorAttribute, Name: content}
		}
	case base == "*":
		sel = Selector{Kind: SelectorUniversal}
	default:
		sel = Selector{Kind: SelectorType, Name: base}
	}

	sel.Pseudo = pseudo
	sel.Specificity = sel.computeSpecificity()
	return sel, true
}

func parsePseudoClass(name string) PseudoClass {
	switch name {
	case "link":
		return PseudoLink
	case "visited":
		return PseudoVisited
	case "hover":
		return PseudoHover
	case "active":
		return PseudoActive
	case "focus":
		return PseudoFocus
	}
	return PseudoNone
}

// Matches reports whether the selector matches the given element node.
// Non-element nodes never match.
func (s Selector) Matches(node *dom.Node) bool {
	if node == nil || node.Type != dom.ElementNode {
		return false
	}

	var base bool
	switch s.Kind {
	case SelectorType:
		base = node.Tag == strings.ToLower(s.Name)
	case SelectorClass:
		base = node.HasClass(s.Name)
	case SelectorID:
		base = node.ID() == s.Name
	case SelectorAttribute:
		if !node.HasAttr(s.Name) {
			base = false
		} else if s.HasValue {
			base = node.Attr(s.Name) == s.AttrValue
		} else {
			base = true
		}
	case SelectorUniversal:
		base = true
	}
	if !base {
		return false
	}

	return s.matchesPseudo(node)
}

// matchesPseudo checks the pseudo-class, if any. :link matches anchors with
// an href; the dynamic pseudo-classes need interaction state that a static
// resolution pass does not have, so they never match.
func (s Selector) matchesPseudo(node *dom.Node) bool {
	switch s.Pseudo {
	case PseudoNone:
		return true
	case PseudoLink:
		return node.Tag == "a" && node.HasAttr("href")
	default:
		return false
	}
}

// String formats the selector as CSS text.
func (s Selector) String() string {
	var base string
	switch s.Kind {
	case SelectorType:
		base = s.Name
	case SelectorClass:
		base = "." + s.Name
	case SelectorID:
		base = "#" + s.Name
	case SelectorAttribute:
		if s.HasValue {
			base = "[" + s.Name + `="` + s.AttrValue + `"]`
		} else {
			base = "[" + s.Name + "]"
		}
	case SelectorUniversal:
		base = "*"
	}
	switch s.Pseudo {
	case PseudoLink:
		return base + ":link"
	case PseudoVisited:
		return base + ":visited"
	case PseudoHover:
		return base + ":hover"
	case PseudoActive:
		return base + ":active"
	case PseudoFocus:
		return base + ":focus"
	}
	return base
}
