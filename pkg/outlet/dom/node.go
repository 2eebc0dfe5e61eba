// Package dom is a small in-memory document used as the mount surface for the
// router. Nodes are elements (with a tag and optional identifier) or text.
package dom

import (
	"html"
	"strings"
)

// Node is an element or, when Tag is empty, a text node.
type Node struct {
	Tag      string
	Text     string
	id       string
	children []*Node
}

// NewElement creates an element node. id may be empty.
func NewElement(tag, id string, children ...*Node) *Node {
	n := &Node{Tag: tag, id: id}
	n.AppendChild(children...)
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// ID returns the element identifier.
func (n *Node) ID() string {
	return n.id
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild appends nodes, skipping nils.
func (n *Node) AppendChild(children ...*Node) {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
}

func (n *Node) replaceChildren(children ...*Node) {
	n.children = nil
	n.AppendChild(children...)
}

// Clear removes all children.
func (n *Node) Clear() {
	n.children = nil
}

// Find returns the first node in document order whose identifier is id,
// including n itself.
func (n *Node) Find(id string) *Node {
	if n.id == id && !n.IsText() {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := &Node{Tag: n.Tag, Text: n.Text, id: n.id}
	for _, c := range n.children {
		out.children = append(out.children, c.Clone())
	}
	return out
}

// TextContent concatenates the text of n and all descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.children {
		c.writeText(b)
	}
}

// HTML serialises n and its descendants.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteString("<")
	b.WriteString(n.Tag)
	if n.id != "" {
		b.WriteString(` id="`)
		b.WriteString(html.EscapeString(n.id))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	for _, c := range n.children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
