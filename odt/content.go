// Package odt decodes OpenDocument content and styles parts into a typed,
// order-preserving document tree.
package odt

import (
	"fmt"

	"github.com/tsawler/opendoc/markup"
)

// Option configures how a part is parsed.
type Option = markup.Option

// WithMaxDepth limits element nesting; deeper parts fail with markup.ErrTooDeep.
func WithMaxDepth(n int) Option { return markup.WithMaxDepth(n) }

// DecodeContent decodes a content part (content.xml).
//
// Elements outside the modelled subset decode to *Unrecognized. Malformed
// markup and missing required attributes return a *markup.DecodeError.
func DecodeContent(data []byte, opts ...Option) (*DocumentContent, error) {
	root, err := markup.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	var d decoder
	return d.documentContent(root)
}

func (d *decoder) documentContent(e *markup.Element) (*DocumentContent, error) {
	defer d.enter(e)()
	if e.Name.Local != "document-content" {
		return nil, d.fail(e, "", fmt.Errorf("%w: %s", markup.ErrUnexpectedRoot, e.Name.Local))
	}

	bodyEl := e.Child("body")
	if bodyEl == nil {
		return nil, d.fail(e, "", fmt.Errorf("%w: body", markup.ErrMissingElement))
	}
	body, err := d.body(bodyEl)
	if err != nil {
		return nil, err
	}

	faces, err := children(e.Child("font-face-decls"), "font-face", d.fontFace)
	if err != nil {
		return nil, err
	}

	var auto AutomaticStyles
	if a := e.Child("automatic-styles"); a != nil {
		if auto, err = d.automaticStyles(a); err != nil {
			return nil, err
		}
	}

	return &DocumentContent{Body: body, FontFaces: faces, AutomaticStyles: auto}, nil
}

func (d *decoder) body(e *markup.Element) (Body, error) {
	defer d.enter(e)()
	text := e.Child("text")
	if text == nil {
		return Body{}, nil
	}
	defer d.enter(text)()
	items, err := elements(text, d.block)
	if err != nil {
		return Body{}, err
	}
	return Body{Items: items}, nil
}

func (d *decoder) fontFace(e *markup.Element) (FontFace, error) {
	return FontFace{
		Name:          optional(e, "name"),
		Family:        optional(e, "font-family"),
		GenericFamily: optional(e, "font-family-generic"),
		Pitch:         optional(e, "font-pitch"),
	}, nil
}

func (d *decoder) block(e *markup.Element) (Block, error) {
	switch e.Name.Local {
	case "p":
		return d.paragraph(e)
	case "h":
		return d.heading(e)
	case "table":
		return d.table(e)
	case "list":
		return d.list(e)
	case "table-of-content":
		return d.tableOfContents(e)
	default:
		return unrecognized(e), nil
	}
}

func (d *decoder) paragraph(e *markup.Element) (*Paragraph, error) {
	defer d.enter(e)()
	items, annotations, err := d.inlines(e)
	if err != nil {
		return nil, err
	}
	return &Paragraph{StyleName: optional(e, "style-name"), Items: items, Annotations: annotations}, nil
}

func (d *decoder) heading(e *markup.Element) (*Heading, error) {
	defer d.enter(e)()
	level, err := d.uintAttr(e, "outline-level", 0)
	if err != nil {
		return nil, err
	}
	items, annotations, err := d.inlines(e)
	if err != nil {
		return nil, err
	}
	return &Heading{
		StyleName:    optional(e, "style-name"),
		OutlineLevel: level,
		Items:        items,
		Annotations:  annotations,
	}, nil
}

// inlines maps paragraph-like content, collecting annotations apart from the
// inline sequence.
func (d *decoder) inlines(e *markup.Element) (Inlines, []Annotation, error) {
	items, err := mixed(e, "annotation", textInline, d.inline)
	if err != nil {
		return nil, nil, err
	}
	annotations, err := children(e, "annotation", d.annotation)
	if err != nil {
		return nil, nil, err
	}
	return items, annotations, nil
}

func (d *decoder) annotation(e *markup.Element) (Annotation, error) {
	defer d.enter(e)()
	paras, err := children(e, "p", d.paragraph)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{
		Creator:    childText(e, "creator"),
		Date:       childText(e, "date"),
		Paragraphs: paras,
	}, nil
}

func (d *decoder) inline(e *markup.Element) (Inline, error) {
	switch e.Name.Local {
	case "span":
		return d.span(e)
	case "a":
		return d.link(e)
	case "s":
		defer d.enter(e)()
		n, err := d.uintAttr(e, "c", 1)
		if err != nil {
			return nil, err
		}
		return &Space{Count: n}, nil
	case "tab":
		return &Tab{}, nil
	case "line-break":
		return &LineBreak{}, nil
	case "soft-page-break":
		return &SoftPageBreak{}, nil
	case "bookmark", "bookmark-start", "bookmark-end":
		return d.bookmark(e)
	case "change-start", "change-end":
		return d.change(e)
	case "rect":
		return d.rect(e)
	case "frame":
		return d.frame(e), nil
	case "g":
		return d.group(e)
	case "custom-shape":
		return d.customShape(e)
	default:
		return unrecognized(e), nil
	}
}

func (d *decoder) span(e *markup.Element) (*Span, error) {
	defer d.enter(e)()
	items, annotations, err := d.inlines(e)
	if err != nil {
		return nil, err
	}
	return &Span{StyleName: optional(e, "style-name"), Items: items, Annotations: annotations}, nil
}

func (d *decoder) link(e *markup.Element) (*Link, error) {
	defer d.enter(e)()
	href, err := d.required(e, "href")
	if err != nil {
		return nil, err
	}
	items, err := mixed(e, "", textInline, d.inline)
	if err != nil {
		return nil, err
	}
	return &Link{Href: href, StyleName: optional(e, "style-name"), Items: items}, nil
}

func (d *decoder) bookmark(e *markup.Element) (Inline, error) {
	defer d.enter(e)()
	name, err := d.required(e, "name")
	if err != nil {
		return nil, err
	}
	switch e.Name.Local {
	case "bookmark-start":
		return &BookmarkStart{Name: name}, nil
	case "bookmark-end":
		return &BookmarkEnd{Name: name}, nil
	default:
		return &Bookmark{Name: name}, nil
	}
}

func (d *decoder) change(e *markup.Element) (Inline, error) {
	defer d.enter(e)()
	id, err := d.required(e, "change-id")
	if err != nil {
		return nil, err
	}
	if e.Name.Local == "change-end" {
		return &ChangeEnd{ChangeID: id}, nil
	}
	return &ChangeStart{ChangeID: id}, nil
}

func (d *decoder) frame(e *markup.Element) *Frame {
	f := &Frame{
		Name:        optional(e, "name"),
		Description: childText(e, "desc"),
	}
	if obj := e.Child("object"); obj != nil {
		f.Object = optional(obj, "href")
	}
	if img := e.Child("image"); img != nil {
		f.Image = optional(img, "href")
	}
	return f
}

func (d *decoder) rect(e *markup.Element) (*Rect, error) {
	defer d.enter(e)()
	width, err := d.required(e, "rel-width")
	if err != nil {
		return nil, err
	}
	return &Rect{Width: width}, nil
}

func (d *decoder) group(e *markup.Element) (*Group, error) {
	defer d.enter(e)()
	style, err := d.required(e, "style-name")
	if err != nil {
		return nil, err
	}
	shapes, err := children(e, "custom-shape", d.customShape)
	if err != nil {
		return nil, err
	}
	return &Group{StyleName: style, Shapes: shapes}, nil
}

func (d *decoder) customShape(e *markup.Element) (*CustomShape, error) {
	defer d.enter(e)()
	style, err := d.required(e, "style-name")
	if err != nil {
		return nil, err
	}
	items, err := elements(e, d.shapeContent)
	if err != nil {
		return nil, err
	}
	return &CustomShape{
		X:         withDefault(e, "x", ""),
		Y:         withDefault(e, "y", ""),
		Width:     withDefault(e, "width", ""),
		Height:    withDefault(e, "height", ""),
		StyleName: style,
		Items:     items,
	}, nil
}

func (d *decoder) shapeContent(e *markup.Element) (ShapeContent, error) {
	switch e.Name.Local {
	case "enhanced-geometry":
		return d.enhancedGeometry(e)
	case "p":
		return d.paragraph(e)
	default:
		return unrecognized(e), nil
	}
}

func (d *decoder) enhancedGeometry(e *markup.Element) (*EnhancedGeometry, error) {
	defer d.enter(e)()
	eqs, err := children(e, "equation", d.equation)
	if err != nil {
		return nil, err
	}
	g := &EnhancedGeometry{
		Equations:   eqs,
		Path2:       optionalNS(e, nsDrawOOo, "drawooo", "enhanced-path"),
		SubViewSize: withDefault(e, "sub-view-size", ""),
	}
	if p := optionalNS(e, nsDraw, "draw", "enhanced-path"); p != nil {
		g.Path = *p
	}
	return g, nil
}

func (d *decoder) equation(e *markup.Element) (Equation, error) {
	defer d.enter(e)()
	name, err := d.required(e, "name")
	if err != nil {
		return Equation{}, err
	}
	formula, err := d.required(e, "formula")
	if err != nil {
		return Equation{}, err
	}
	return Equation{Name: name, Formula: formula}, nil
}

func (d *decoder) list(e *markup.Element) (*List, error) {
	defer d.enter(e)()
	items, err := children(e, "list-item", d.listItem)
	if err != nil {
		return nil, err
	}
	return &List{
		ID:                optional(e, "id"),
		ContinueNumbering: optional(e, "continue-numbering"),
		ContinueList:      optional(e, "continue-list"),
		StyleName:         optional(e, "style-name"),
		Items:             items,
	}, nil
}

func (d *decoder) listItem(e *markup.Element) (ListItem, error) {
	defer d.enter(e)()
	items, err := elements(e, d.listContent)
	if err != nil {
		return ListItem{}, err
	}
	return ListItem{Items: items}, nil
}

func (d *decoder) listContent(e *markup.Element) (ListContent, error) {
	switch e.Name.Local {
	case "p":
		return d.paragraph(e)
	case "list":
		return d.list(e)
	default:
		return unrecognized(e), nil
	}
}

func (d *decoder) tableOfContents(e *markup.Element) (*TableOfContents, error) {
	defer d.enter(e)()
	toc := &TableOfContents{Name: optional(e, "name")}
	body := e.Child("index-body")
	if body == nil {
		return toc, nil
	}
	defer d.enter(body)()

	for _, c := range body.ChildElements() {
		if c.Name.Local == "p" {
			p, err := d.paragraph(c)
			if err != nil {
				return nil, err
			}
			toc.Paragraphs = append(toc.Paragraphs, p)
			continue
		}
		// index-title and similar wrappers hold their paragraphs one level down
		paras, err := children(c, "p", d.paragraph)
		if err != nil {
			return nil, err
		}
		toc.Paragraphs = append(toc.Paragraphs, paras...)
	}
	return toc, nil
}
