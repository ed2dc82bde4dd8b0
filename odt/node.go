package odt

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind names the variant of a union member.
type Kind string

// Variant kinds.
const (
	KindParagraph        Kind = "paragraph"
	KindHeading          Kind = "heading"
	KindTable            Kind = "table"
	KindList             Kind = "list"
	KindTableOfContents  Kind = "table-of-contents"
	KindText             Kind = "text"
	KindSpan             Kind = "span"
	KindLink             Kind = "link"
	KindSpace            Kind = "space"
	KindTab              Kind = "tab"
	KindLineBreak        Kind = "line-break"
	KindSoftPageBreak    Kind = "soft-page-break"
	KindBookmark         Kind = "bookmark"
	KindBookmarkStart    Kind = "bookmark-start"
	KindBookmarkEnd      Kind = "bookmark-end"
	KindChangeStart      Kind = "change-start"
	KindChangeEnd        Kind = "change-end"
	KindRect             Kind = "rect"
	KindFrame            Kind = "frame"
	KindGroup            Kind = "group"
	KindCustomShape      Kind = "custom-shape"
	KindEnhancedGeometry Kind = "enhanced-geometry"
	KindUnrecognized     Kind = "unrecognized"
)

// Block is a block-level item of a body, table cell or similar container:
// *Paragraph, *Heading, *Table, *List, *TableOfContents or *Unrecognized.
type Block interface {
	Kind() Kind
	isBlock()
}

// Inline is an item of paragraph content: *Text, *Span, *Link, *Space, *Tab,
// *LineBreak, *SoftPageBreak, *Bookmark, *BookmarkStart, *BookmarkEnd,
// *ChangeStart, *ChangeEnd, *Rect, *Frame, *Group, *CustomShape or
// *Unrecognized.
type Inline interface {
	Kind() Kind
	isInline()
}

// ListContent is an item of a list item: *Paragraph, *List or *Unrecognized.
type ListContent interface {
	Kind() Kind
	isListContent()
}

// ShapeContent is an item of a custom shape: *EnhancedGeometry, *Paragraph or
// *Unrecognized.
type ShapeContent interface {
	Kind() Kind
	isShapeContent()
}

// Blocks is an ordered sequence of block-level items.
type Blocks []Block

// Inlines is an ordered sequence of inline items.
type Inlines []Inline

// ListContents is an ordered sequence of list item contents.
type ListContents []ListContent

// ShapeContents is an ordered sequence of custom shape contents.
type ShapeContents []ShapeContent

type kinded interface {
	Kind() Kind
}

type taggedJSON struct {
	Type  Kind `json:"type"`
	Value any  `json:"value"`
}

// marshalTagged writes each item as {"type": kind, "value": item} so the
// variant survives serialization.
func marshalTagged[T kinded](items []T) ([]byte, error) {
	out := make([]taggedJSON, len(items))
	for i, it := range items {
		out[i] = taggedJSON{Type: it.Kind(), Value: it}
	}
	return json.Marshal(out)
}

func (b Blocks) MarshalJSON() ([]byte, error)        { return marshalTagged(b) }
func (in Inlines) MarshalJSON() ([]byte, error)      { return marshalTagged(in) }
func (lc ListContents) MarshalJSON() ([]byte, error) { return marshalTagged(lc) }
func (sc ShapeContents) MarshalJSON() ([]byte, error) {
	return marshalTagged(sc)
}

// Unrecognized stands in for any element outside the modelled subset.
type Unrecognized struct {
	Space string `json:"space,omitempty"` // namespace URI (or prefix when undeclared)
	Name  string `json:"name"`            // local tag name
}

func (*Unrecognized) Kind() Kind      { return KindUnrecognized }
func (*Unrecognized) isBlock()        {}
func (*Unrecognized) isInline()       {}
func (*Unrecognized) isListContent()  {}
func (*Unrecognized) isShapeContent() {}
