package odt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/opendoc/markup"
)

// decoder tracks the element path for error reporting while a part is mapped.
// Mapping methods call `defer d.enter(e)()` on entry.
type decoder struct {
	path []string
}

func (d *decoder) enter(e *markup.Element) func() {
	d.path = append(d.path, e.Name.Local)
	return func() { d.path = d.path[:len(d.path)-1] }
}

func (d *decoder) fail(e *markup.Element, attr string, err error) error {
	return &markup.DecodeError{
		Path:    strings.Join(d.path, "/"),
		Element: e.Name.Local,
		Attr:    attr,
		Line:    e.Line,
		Err:     err,
	}
}

// optional returns the attribute with the given local name, or nil.
func optional(e *markup.Element, name string) *string {
	if v, ok := e.Attr(name); ok {
		return &v
	}
	return nil
}

// optionalNS matches an attribute by namespace URI, falling back to the
// conventional prefix for parts that never declare it.
func optionalNS(e *markup.Element, space, prefix, name string) *string {
	if v, ok := e.AttrNS(space, name); ok {
		return &v
	}
	if v, ok := e.AttrNS(prefix, name); ok {
		return &v
	}
	return nil
}

func withDefault(e *markup.Element, name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

func (d *decoder) required(e *markup.Element, name string) (string, error) {
	v, ok := e.Attr(name)
	if !ok {
		return "", d.fail(e, name, markup.ErrMissingAttr)
	}
	return v, nil
}

func (d *decoder) parseUint(e *markup.Element, name, v string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, d.fail(e, name, fmt.Errorf("%w: %q", markup.ErrInvalidAttr, v))
	}
	return uint32(n), nil
}

// uintAttr reads a non-negative integer attribute, returning def when absent.
func (d *decoder) uintAttr(e *markup.Element, name string, def uint32) (uint32, error) {
	v, ok := e.Attr(name)
	if !ok {
		return def, nil
	}
	return d.parseUint(e, name, v)
}

func (d *decoder) optionalUint(e *markup.Element, name string) (*uint32, error) {
	v, ok := e.Attr(name)
	if !ok {
		return nil, nil
	}
	n, err := d.parseUint(e, name, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (d *decoder) requiredUint(e *markup.Element, name string) (uint32, error) {
	v, err := d.required(e, name)
	if err != nil {
		return 0, err
	}
	return d.parseUint(e, name, v)
}

// childText returns the text of the first child element named local, or nil.
func childText(e *markup.Element, local string) *string {
	c := e.Child(local)
	if c == nil {
		return nil
	}
	s := c.Text()
	return &s
}

// children maps every child element named local, in source order.
func children[T any](e *markup.Element, local string, fn func(*markup.Element) (T, error)) ([]T, error) {
	if e == nil {
		return nil, nil
	}
	var out []T
	for _, c := range e.Children {
		el, ok := c.(*markup.Element)
		if !ok || el.Name.Local != local {
			continue
		}
		v, err := fn(el)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// elements maps every child element through dispatch, in source order.
// Character data is ignored.
func elements[T any](e *markup.Element, dispatch func(*markup.Element) (T, error)) ([]T, error) {
	var out []T
	for _, c := range e.Children {
		el, ok := c.(*markup.Element)
		if !ok {
			continue
		}
		v, err := dispatch(el)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// mixed maps child elements and character data into one sequence in source
// order. Elements named skip are left for a separate collection.
func mixed[T any](e *markup.Element, skip string, text func(string) T, dispatch func(*markup.Element) (T, error)) ([]T, error) {
	var out []T
	for _, c := range e.Children {
		switch n := c.(type) {
		case markup.CharData:
			out = append(out, text(string(n)))
		case *markup.Element:
			if n.Name.Local == skip {
				continue
			}
			v, err := dispatch(n)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func unrecognized(e *markup.Element) *Unrecognized {
	return &Unrecognized{Space: e.Name.Space, Name: e.Name.Local}
}

func textInline(s string) Inline { return &Text{Value: s} }
