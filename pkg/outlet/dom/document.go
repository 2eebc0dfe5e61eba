package dom

import "github.com/BrandonKowalski/outlet/pkg/outlet/router"

// Document is a tree of nodes under a body element.
type Document struct {
	body *Node
}

// NewDocument creates a document whose body holds the given nodes.
func NewDocument(children ...*Node) *Document {
	return &Document{body: NewElement("body", "", children...)}
}

// Body returns the body element.
func (d *Document) Body() *Node {
	return d.body
}

// Element returns the first element with the given identifier, or nil.
func (d *Document) Element(id string) *Node {
	return d.body.Find(id)
}

// GetElementByID implements router.Document.
func (d *Document) GetElementByID(id string) (router.Container, bool) {
	n := d.Element(id)
	if n == nil {
		return nil, false
	}
	return n, true
}

// HTML serialises the body.
func (d *Document) HTML() string {
	return d.body.HTML()
}
