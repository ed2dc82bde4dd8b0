package odt

import (
	"strings"
	"unicode/utf8"
)

// Node is any variant of the content tree.
type Node interface {
	Kind() Kind
}

// Walk visits blocks depth-first in document order, descending into inline
// content, annotations, list items, table cells and shapes. Returning false
// from fn skips the children of that node.
func Walk(blocks Blocks, fn func(Node) bool) {
	for _, b := range blocks {
		walkNode(b, fn)
	}
}

func walkNode(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Paragraph:
		walkInlines(v.Items, fn)
		walkAnnotations(v.Annotations, fn)
	case *Heading:
		walkInlines(v.Items, fn)
		walkAnnotations(v.Annotations, fn)
	case *Span:
		walkInlines(v.Items, fn)
		walkAnnotations(v.Annotations, fn)
	case *Link:
		walkInlines(v.Items, fn)
	case *Table:
		for _, row := range v.Rows {
			for _, cell := range row.Cells {
				Walk(cell.Items, fn)
			}
		}
	case *List:
		for _, item := range v.Items {
			for _, c := range item.Items {
				walkNode(c, fn)
			}
		}
	case *TableOfContents:
		for _, p := range v.Paragraphs {
			walkNode(p, fn)
		}
	case *Group:
		for _, s := range v.Shapes {
			walkNode(s, fn)
		}
	case *CustomShape:
		for _, c := range v.Items {
			walkNode(c, fn)
		}
	}
}

func walkInlines(items Inlines, fn func(Node) bool) {
	for _, in := range items {
		walkNode(in, fn)
	}
}

func walkAnnotations(annotations []Annotation, fn func(Node) bool) {
	for _, a := range annotations {
		for _, p := range a.Paragraphs {
			walkNode(p, fn)
		}
	}
}

// maxSpaceRun caps how many spaces PlainText writes for one text:s element.
const maxSpaceRun = 1024

// PlainText returns the text of an inline sequence with spaces, tabs and line
// breaks expanded. A space run longer than maxSpaceRun is truncated. Shapes
// and annotations contribute nothing.
func PlainText(items Inlines) string {
	var sb strings.Builder
	writeText(&sb, items)
	return sb.String()
}

func writeText(sb *strings.Builder, items Inlines) {
	for _, in := range items {
		switch v := in.(type) {
		case *Text:
			sb.WriteString(v.Value)
		case *Space:
			sb.WriteString(strings.Repeat(" ", int(min(v.Count, maxSpaceRun))))
		case *Tab:
			sb.WriteByte('\t')
		case *LineBreak:
			sb.WriteByte('\n')
		case *Span:
			writeText(sb, v.Items)
		case *Link:
			writeText(sb, v.Items)
		}
	}
}

// textLen counts the characters PlainText would produce, with space runs at
// their full length, without building the text.
func textLen(items Inlines) int {
	n := 0
	for _, in := range items {
		switch v := in.(type) {
		case *Text:
			n += utf8.RuneCountInString(v.Value)
		case *Space:
			n += int(v.Count)
		case *Tab, *LineBreak:
			n++
		case *Span:
			n += textLen(v.Items)
		case *Link:
			n += textLen(v.Items)
		}
	}
	return n
}

// Stats summarizes a content tree.
type Stats struct {
	Paragraphs   int            `json:"paragraphs"`
	Headings     int            `json:"headings"`
	Tables       int            `json:"tables"`
	Lists        int            `json:"lists"`
	Links        int            `json:"links"`
	Frames       int            `json:"frames"`
	Shapes       int            `json:"shapes"`
	Annotations  int            `json:"annotations"`
	Characters   int            `json:"characters"`
	Unrecognized map[string]int `json:"unrecognized,omitempty"` // by local name
}

// Collect walks the body and counts its nodes.
func Collect(body Body) Stats {
	var s Stats
	Walk(body.Items, func(n Node) bool {
		switch v := n.(type) {
		case *Paragraph:
			s.Paragraphs++
			s.Annotations += len(v.Annotations)
			s.Characters += textLen(v.Items)
		case *Heading:
			s.Headings++
			s.Annotations += len(v.Annotations)
			s.Characters += textLen(v.Items)
		case *Span:
			s.Annotations += len(v.Annotations)
		case *Table:
			s.Tables++
		case *List:
			s.Lists++
		case *Link:
			s.Links++
		case *Frame:
			s.Frames++
		case *Rect, *Group, *CustomShape:
			s.Shapes++
		case *Unrecognized:
			if s.Unrecognized == nil {
				s.Unrecognized = make(map[string]int)
			}
			s.Unrecognized[v.Name]++
		}
		return true
	})
	return s
}
