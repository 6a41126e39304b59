// Package dom provides the document tree consumed by the style engine.
package dom

import "strings"

// NodeType represents the type of a document node.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	DoctypeNode
)

// Node represents a node in the document tree. Elements carry a lowercase
// tag name and a flattened attribute map; text and comment nodes carry their
// raw data.
type Node struct {
	Type       NodeType
	Tag        string
	Attributes map[string]string
	Data       string

	Parent   *Node
	Children []*Node
}

// NewElement creates an element node with the given tag and attributes.
func NewElement(tag string, attrs map[string]string) *Node {
	return &Node{
		Type:       ElementNode,
		Tag:        strings.ToLower(tag),
		Attributes: attrs,
	}
}

// NewText creates a text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// AppendChild adds a child node to the end of this node's children.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// Attr returns the value of the specified attribute, or empty string if not found.
func (n *Node) Attr(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// HasAttr returns true if the node has the specified attribute, even with an
// empty value.
func (n *Node) HasAttr(name string) bool {
	if n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.Attr("id")
}

// Classes returns the class attribute split on whitespace.
func (n *Node) Classes() []string {
	return strings.Fields(n.Attr("class"))
}

// HasClass returns true if the class attribute contains the given token.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// InlineStyle returns the raw style attribute text.
func (n *Node) InlineStyle() string {
	return n.Attr("style")
}

// TextContent returns the text content of the node and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Data
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// Walk calls fn for this node and every descendant, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// ElementsByTag returns all descendant elements with the given tag name,
// in document order.
func (n *Node) ElementsByTag(tag string) []*Node {
	tag = strings.ToLower(tag)
	var out []*Node
	n.Walk(func(node *Node) {
		if node.Type == ElementNode && node.Tag == tag {
			out = append(out, node)
		}
	})
	return out
}
