// HTML parsing built on golang.org/x/net/html.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from a string.
func Parse(content string) (*Node, error) {
	return ParseReader(strings.NewReader(content))
}

// ParseReader parses an HTML document from an io.Reader. The underlying
// parser is error-recovering, so malformed markup still yields a tree; the
// returned error covers reader failures only.
func ParseReader(r io.Reader) (*Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return convertNode(root), nil
}

// convertNode converts a golang.org/x/net/html node into our Node type,
// lowercasing tag names and flattening attributes into a map.
func convertNode(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	node := &Node{Type: convertNodeType(n.Type)}
	switch n.Type {
	case html.ElementNode:
		node.Tag = strings.ToLower(n.Data)
		if len(n.Attr) > 0 {
			node.Attributes = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				node.Attributes[strings.ToLower(a.Key)] = a.Val
			}
		}
	default:
		node.Data = n.Data
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node.AppendChild(convertNode(c))
	}
	return node
}

func convertNodeType(nt html.NodeType) NodeType {
	switch nt {
	case html.DocumentNode:
		return DocumentNode
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	case html.CommentNode:
		return CommentNode
	case html.DoctypeNode:
		return DoctypeNode
	default:
		return CommentNode
	}
}
