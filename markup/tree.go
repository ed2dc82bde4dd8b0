package markup

import (
	"encoding/xml"
	"strings"
)

// Node is a child of an Element: either *Element or CharData.
type Node interface {
	node()
}

// CharData is a run of character data between elements.
type CharData string

func (CharData) node() {}

// Attr is a single attribute. Name.Space holds the namespace URI.
type Attr struct {
	Name  xml.Name
	Value string
}

// Element is an XML element. Name.Space holds the namespace URI, Name.Local
// the tag without prefix.
type Element struct {
	Name     xml.Name
	Attrs    []Attr
	Children []Node
	Line     int // line of the start tag
}

func (*Element) node() {}

// Attr returns the value of the first attribute with the given local name,
// in any namespace.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS returns the value of the attribute with the given namespace URI and
// local name.
func (e *Element) AttrNS(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given local name, or nil.
func (e *Element) Child(local string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name.Local == local {
			return el
		}
	}
	return nil
}

// ChildElements returns the element children in source order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated character data of e and its descendants in
// document order.
func (e *Element) Text() string {
	var sb strings.Builder

	// iterative pre-order walk; children are pushed in reverse
	stack := []Node{e}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := n.(type) {
		case CharData:
			sb.WriteString(string(v))
		case *Element:
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, v.Children[i])
			}
		}
	}
	return sb.String()
}
