package gramps

import (
	"strings"

	"github.com/beevik/etree"
)

// nsResolver matches elements by local tag within a single XML namespace.
//
// Gramps archives may or may not declare a default namespace on the root
// element. The resolver is built from whatever the root declares, so the
// same traversal code handles both namespaced and plain documents: an
// element matches a tag only when its resolved namespace URI equals the
// document's.
type nsResolver struct {
	uri string
}

// nsForRoot detects the document's default namespace from the root element.
func nsForRoot(root *etree.Element) nsResolver {
	return nsResolver{uri: root.NamespaceURI()}
}

func (n nsResolver) is(el *etree.Element, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == n.uri
}

// child returns the first direct child matching tag, or nil.
func (n nsResolver) child(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if n.is(c, tag) {
			return c
		}
	}
	return nil
}

// children returns all direct children matching tag, in document order.
func (n nsResolver) children(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if n.is(c, tag) {
			out = append(out, c)
		}
	}
	return out
}

// findAll returns every element matching a slash-separated tag path. The
// first segment matches anywhere beneath el, not just among its direct
// children; remaining segments match direct-child chains. "people/person"
// therefore finds person elements inside any people section in the
// document, wherever that section is nested.
func (n nsResolver) findAll(el *etree.Element, path string) []*etree.Element {
	segments := strings.Split(path, "/")
	var out []*etree.Element
	n.walk(el, func(candidate *etree.Element) {
		if !n.is(candidate, segments[0]) {
			return
		}
		out = append(out, n.chain(candidate, segments[1:])...)
	})
	return out
}

// chain follows a direct-child tag chain from el, returning the elements at
// the end of the chain.
func (n nsResolver) chain(el *etree.Element, segments []string) []*etree.Element {
	current := []*etree.Element{el}
	for _, tag := range segments {
		var next []*etree.Element
		for _, e := range current {
			next = append(next, n.children(e, tag)...)
		}
		current = next
	}
	return current
}

// walk visits el and every descendant element in document order.
func (n nsResolver) walk(el *etree.Element, visit func(*etree.Element)) {
	for _, c := range el.ChildElements() {
		visit(c)
		n.walk(c, visit)
	}
}
