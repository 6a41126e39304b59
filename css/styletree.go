// Styled tree construction.
package css

import (
	"github.com/EthanRStokes/stokes-browser-sub001/dom"
)

// StyledNode pairs a document node with its computed style.
type StyledNode struct {
	Node     *dom.Node
	Style    *ComputedValues
	Children []*StyledNode
}

// BuildStyleTree resolves styles for a whole tree in one top-down pass.
// Parents are resolved strictly before their children; text and comment
// nodes share the parent's computed style.
func (sr *StyleResolver) BuildStyleTree(root *dom.Node) *StyledNode {
	return sr.buildStyledNode(root, nil)
}

func (sr *StyleResolver) buildStyledNode(node *dom.Node, parent *ComputedValues) *StyledNode {
	sn := &StyledNode{Node: node}

	switch node.Type {
	case dom.ElementNode, dom.DocumentNode:
		sn.Style = sr.ResolveStyles(node, parent)
	default:
		if parent != nil {
			sn.Style = parent
		} else {
			sn.Style = DefaultComputed()
		}
	}

	for _, child := range node.Children {
		sn.Children = append(sn.Children, sr.buildStyledNode(child, sn.Style))
	}

	return sn
}

// Walk calls fn for this styled node and every descendant, parents first.
func (sn *StyledNode) Walk(fn func(*StyledNode)) {
	fn(sn)
	for _, child := range sn.Children {
		child.Walk(fn)
	}
}

// Find returns the first styled element with the given tag name, or nil.
func (sn *StyledNode) Find(tag string) *StyledNode {
	var found *StyledNode
	sn.Walk(func(n *StyledNode) {
		if found == nil && n.Node.Type == dom.ElementNode && n.Node.Tag == tag {
			found = n
		}
	})
	return found
}
