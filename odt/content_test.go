package odt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/opendoc/markup"
)

const nsText = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"

// contentXML wraps body markup in a content part with the usual namespace
// declarations.
func contentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content
    xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
    xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
    xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
    xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
    xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
    xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
    xmlns:drawooo="http://openoffice.org/2010/draw"
    office:version="1.3">
  <office:body>
    <office:text>
` + body + `
    </office:text>
  </office:body>
</office:document-content>`
}

func decodeBody(t *testing.T, body string) Blocks {
	t.Helper()
	doc, err := DecodeContent([]byte(contentXML(body)))
	require.NoError(t, err)
	return doc.Body.Items
}

func firstParagraph(t *testing.T, body string) *Paragraph {
	t.Helper()
	items := decodeBody(t, body)
	require.NotEmpty(t, items)
	p, ok := items[0].(*Paragraph)
	require.True(t, ok, "first block is %T", items[0])
	return p
}

func strPtr(s string) *string { return &s }

func TestMixedContentOrder(t *testing.T) {
	p := firstParagraph(t, `<text:p>A<text:span>B</text:span>C</text:p>`)

	want := Inlines{
		&Text{Value: "A"},
		&Span{Items: Inlines{&Text{Value: "B"}}},
		&Text{Value: "C"},
	}
	assert.Equal(t, want, p.Items)
	assert.Nil(t, p.StyleName)
}

func TestInlineVariants(t *testing.T) {
	p := firstParagraph(t, `<text:p text:style-name="P1">one<text:s/>two<text:s text:c="3"/><text:tab/><text:line-break/><text:soft-page-break/>`+
		`<text:bookmark text:name="b0"/><text:bookmark-start text:name="b1"/>mid<text:bookmark-end text:name="b1"/>`+
		`<text:change-start text:change-id="ct1"/><text:change-end text:change-id="ct1"/>`+
		`<text:a xlink:type="simple" xlink:href="https://example.com" text:style-name="Internet_20_link">site</text:a></text:p>`)

	want := Inlines{
		&Text{Value: "one"},
		&Space{Count: 1},
		&Text{Value: "two"},
		&Space{Count: 3},
		&Tab{},
		&LineBreak{},
		&SoftPageBreak{},
		&Bookmark{Name: "b0"},
		&BookmarkStart{Name: "b1"},
		&Text{Value: "mid"},
		&BookmarkEnd{Name: "b1"},
		&ChangeStart{ChangeID: "ct1"},
		&ChangeEnd{ChangeID: "ct1"},
		&Link{Href: "https://example.com", StyleName: strPtr("Internet_20_link"), Items: Inlines{&Text{Value: "site"}}},
	}
	assert.Equal(t, want, p.Items)
	assert.Equal(t, strPtr("P1"), p.StyleName)
	assert.Equal(t, "one two   \t\nmidsite", PlainText(p.Items))
}

func TestTextKeptVerbatim(t *testing.T) {
	p := firstParagraph(t, `<text:p>  leading <text:span>&amp; inner</text:span>  </text:p>`)

	require.Len(t, p.Items, 3)
	assert.Equal(t, &Text{Value: "  leading "}, p.Items[0])
	assert.Equal(t, &Text{Value: "  "}, p.Items[2])
	assert.Equal(t, "  leading & inner  ", PlainText(p.Items))
}

func TestUnknownElementsTolerated(t *testing.T) {
	items := decodeBody(t, `<text:p>before<draw:future-shape draw:x="1"><draw:inner/></draw:future-shape>after</text:p>
<text:section text:name="S1"><text:p>hidden</text:p></text:section>
<text:p>last</text:p>`)

	require.Len(t, items, 3)

	p := items[0].(*Paragraph)
	assert.Equal(t, Inlines{
		&Text{Value: "before"},
		&Unrecognized{Space: nsDraw, Name: "future-shape"},
		&Text{Value: "after"},
	}, p.Items)

	assert.Equal(t, &Unrecognized{Space: nsText, Name: "section"}, items[1])
	assert.Equal(t, KindUnrecognized, items[1].Kind())
	assert.Equal(t, KindParagraph, items[2].Kind())
}

func TestDefaults(t *testing.T) {
	items := decodeBody(t, `<table:table table:name="T">
  <table:table-column table:style-name="T.A"/>
  <table:table-column table:number-columns-repeated="4"/>
  <table:table-row><table:table-cell/></table:table-row>
</table:table>`)

	tbl := items[0].(*Table)
	require.Len(t, tbl.Columns, 2)
	assert.Equal(t, uint32(0), tbl.Columns[0].Repeat)
	assert.Equal(t, strPtr("T.A"), tbl.Columns[0].StyleName)
	assert.Equal(t, uint32(4), tbl.Columns[1].Repeat)
	assert.Equal(t, 5, tbl.ColumnCount())

	cell := tbl.Rows[0].Cells[0]
	assert.Equal(t, uint32(0), cell.ColSpan)
	assert.Equal(t, uint32(0), cell.RowSpan)
	assert.False(t, cell.Covered)
	assert.Empty(t, cell.Items)
}

func TestTable(t *testing.T) {
	items := decodeBody(t, `<table:table table:name="Table1" table:style-name="Table1">
  <table:table-columns>
    <table:table-column table:number-columns-repeated="2"/>
  </table:table-columns>
  <table:table-header-rows>
    <table:table-row>
      <table:table-cell><text:p>H1</text:p></table:table-cell>
      <table:table-cell><text:p>H2</text:p></table:table-cell>
    </table:table-row>
  </table:table-header-rows>
  <table:table-row table:style-name="R1">
    <table:table-cell table:number-columns-spanned="2" table:number-rows-spanned="1">
      <text:p>wide</text:p>
      <table:table table:name="Inner"><table:table-row><table:table-cell><text:p>nested</text:p></table:table-cell></table:table-row></table:table>
    </table:table-cell>
    <table:covered-table-cell/>
  </table:table-row>
</table:table>`)

	tbl := items[0].(*Table)
	assert.Equal(t, strPtr("Table1"), tbl.Name)
	assert.Equal(t, 2, tbl.ColumnCount())
	require.Len(t, tbl.Rows, 2)

	assert.True(t, tbl.Rows[0].Header)
	assert.False(t, tbl.Rows[1].Header)
	assert.Equal(t, strPtr("R1"), tbl.Rows[1].StyleName)

	row := tbl.Rows[1]
	require.Len(t, row.Cells, 2)
	assert.Equal(t, uint32(2), row.Cells[0].ColSpan)
	assert.Equal(t, uint32(1), row.Cells[0].RowSpan)
	assert.True(t, row.Cells[1].Covered)
	assert.Equal(t, 3, row.Span())
	assert.Equal(t, 3, tbl.Width())

	require.Len(t, row.Cells[0].Items, 2)
	inner, ok := row.Cells[0].Items[1].(*Table)
	require.True(t, ok)
	assert.Equal(t, strPtr("Inner"), inner.Name)
}

func TestLists(t *testing.T) {
	items := decodeBody(t, `<text:list xml:id="list1" text:style-name="L1" text:continue-numbering="true">
  <text:list-item><text:p>first</text:p></text:list-item>
  <text:list-item>
    <text:p>second</text:p>
    <text:list><text:list-item><text:p>inner</text:p></text:list-item></text:list>
    <text:h>odd</text:h>
  </text:list-item>
</text:list>`)

	l := items[0].(*List)
	assert.Equal(t, strPtr("list1"), l.ID)
	assert.Equal(t, strPtr("L1"), l.StyleName)
	assert.Equal(t, strPtr("true"), l.ContinueNumbering)
	assert.Nil(t, l.ContinueList)
	require.Len(t, l.Items, 2)

	second := l.Items[1].Items
	require.Len(t, second, 3)
	assert.Equal(t, KindParagraph, second[0].Kind())
	assert.Equal(t, KindList, second[1].Kind())
	assert.Equal(t, &Unrecognized{Space: nsText, Name: "h"}, second[2])
}

func TestHeadingAndTOC(t *testing.T) {
	items := decodeBody(t, `<text:table-of-content text:name="Table of Contents1">
  <text:table-of-content-source/>
  <text:index-body>
    <text:index-title text:name="t"><text:p text:style-name="Contents_20_Heading">Contents</text:p></text:index-title>
    <text:p text:style-name="Contents_20_1">Intro<text:tab/>1</text:p>
  </text:index-body>
</text:table-of-content>
<text:h text:style-name="Heading_20_1" text:outline-level="1">Intro</text:h>
<text:h>Plain</text:h>`)

	require.Len(t, items, 3)
	toc := items[0].(*TableOfContents)
	assert.Equal(t, strPtr("Table of Contents1"), toc.Name)
	require.Len(t, toc.Paragraphs, 2)
	assert.Equal(t, "Contents", PlainText(toc.Paragraphs[0].Items))
	assert.Equal(t, "Intro\t1", PlainText(toc.Paragraphs[1].Items))

	h := items[1].(*Heading)
	assert.Equal(t, uint32(1), h.OutlineLevel)
	assert.Equal(t, strPtr("Heading_20_1"), h.StyleName)
	assert.Equal(t, uint32(0), items[2].(*Heading).OutlineLevel)
}

func TestAnnotations(t *testing.T) {
	p := firstParagraph(t, `<text:p>a<office:annotation><dc:creator>Ann</dc:creator><dc:date>2024-01-02T03:04:05</dc:date><text:p>note</text:p></office:annotation>b<text:span>c<office:annotation><text:p>inner</text:p></office:annotation></text:span></text:p>`)

	require.Len(t, p.Items, 3)
	assert.Equal(t, &Text{Value: "a"}, p.Items[0])
	assert.Equal(t, &Text{Value: "b"}, p.Items[1])

	require.Len(t, p.Annotations, 1)
	ann := p.Annotations[0]
	assert.Equal(t, strPtr("Ann"), ann.Creator)
	assert.Equal(t, strPtr("2024-01-02T03:04:05"), ann.Date)
	require.Len(t, ann.Paragraphs, 1)
	assert.Equal(t, "note", PlainText(ann.Paragraphs[0].Items))

	span := p.Items[2].(*Span)
	assert.Equal(t, Inlines{&Text{Value: "c"}}, span.Items)
	require.Len(t, span.Annotations, 1)
	assert.Nil(t, span.Annotations[0].Creator)
}

func TestDrawingShapes(t *testing.T) {
	p := firstParagraph(t, `<text:p><draw:rect style:rel-width="100%"/><draw:frame draw:name="Object1"><draw:object xlink:href="./Object 1"/><draw:image xlink:href="./ObjectReplacements/Object 1"/><svg:desc>chart</svg:desc></draw:frame>`+
		`<draw:g draw:style-name="gr1"><draw:custom-shape draw:style-name="gr2" svg:x="0.0012in" svg:y="0in" svg:width="1in" svg:height="2in">`+
		`<text:p>label</text:p>`+
		`<draw:enhanced-geometry draw:enhanced-path="M 0 0 Z" drawooo:enhanced-path="M 1 1 Z" drawooo:sub-view-size="10 10">`+
		`<draw:equation draw:name="f0" draw:formula="width/2"/><draw:handle/></draw:enhanced-geometry>`+
		`<svg:title>x</svg:title></draw:custom-shape></draw:g></text:p>`)

	require.Len(t, p.Items, 3)
	assert.Equal(t, &Rect{Width: "100%"}, p.Items[0])
	assert.Equal(t, &Frame{
		Name:        strPtr("Object1"),
		Object:      strPtr("./Object 1"),
		Image:       strPtr("./ObjectReplacements/Object 1"),
		Description: strPtr("chart"),
	}, p.Items[1])

	g := p.Items[2].(*Group)
	assert.Equal(t, "gr1", g.StyleName)
	require.Len(t, g.Shapes, 1)

	shape := g.Shapes[0]
	assert.Equal(t, "0.0012in", shape.X)
	assert.Equal(t, "0in", shape.Y)
	assert.Equal(t, "1in", shape.Width)
	assert.Equal(t, "2in", shape.Height)
	assert.Equal(t, "gr2", shape.StyleName)

	require.Len(t, shape.Items, 3)
	assert.Equal(t, KindParagraph, shape.Items[0].Kind())
	assert.Equal(t, &EnhancedGeometry{
		Equations:   []Equation{{Name: "f0", Formula: "width/2"}},
		Path:        "M 0 0 Z",
		Path2:       strPtr("M 1 1 Z"),
		SubViewSize: "10 10",
	}, shape.Items[1])
	assert.Equal(t, KindUnrecognized, shape.Items[2].Kind())
}

func TestUndeclaredDrawOOoPrefix(t *testing.T) {
	data := `<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0">
<office:body><office:text><text:p><draw:custom-shape draw:style-name="gr1"><draw:enhanced-geometry drawooo:enhanced-path="M 2 2"/></draw:custom-shape></text:p></office:text></office:body>
</office:document-content>`

	doc, err := DecodeContent([]byte(data))
	require.NoError(t, err)

	p := doc.Body.Items[0].(*Paragraph)
	shape := p.Items[0].(*CustomShape)
	geom := shape.Items[0].(*EnhancedGeometry)
	assert.Equal(t, "", geom.Path)
	assert.Equal(t, strPtr("M 2 2"), geom.Path2)
	assert.Equal(t, "", geom.SubViewSize)
	assert.Empty(t, shape.X)
}

func TestRequiredAttributes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		element string
		attr    string
		path    string
	}{
		{
			name:    "custom shape style",
			body:    `<text:p><draw:custom-shape svg:x="1in"/></text:p>`,
			element: "custom-shape",
			attr:    "style-name",
			path:    "document-content/body/text/p/custom-shape",
		},
		{
			name:    "group style",
			body:    `<text:p><draw:g/></text:p>`,
			element: "g",
			attr:    "style-name",
			path:    "document-content/body/text/p/g",
		},
		{
			name:    "bookmark name",
			body:    `<text:p><text:span><text:bookmark/></text:span></text:p>`,
			element: "bookmark",
			attr:    "name",
			path:    "document-content/body/text/p/span/bookmark",
		},
		{
			name:    "change id",
			body:    `<text:p><text:change-start/></text:p>`,
			element: "change-start",
			attr:    "change-id",
			path:    "document-content/body/text/p/change-start",
		},
		{
			name:    "link href",
			body:    `<text:p><text:a>x</text:a></text:p>`,
			element: "a",
			attr:    "href",
			path:    "document-content/body/text/p/a",
		},
		{
			name:    "rect width",
			body:    `<text:p><draw:rect/></text:p>`,
			element: "rect",
			attr:    "rel-width",
			path:    "document-content/body/text/p/rect",
		},
		{
			name:    "equation formula",
			body:    `<text:p><draw:custom-shape draw:style-name="s"><draw:enhanced-geometry><draw:equation draw:name="f0"/></draw:enhanced-geometry></draw:custom-shape></text:p>`,
			element: "equation",
			attr:    "formula",
			path:    "document-content/body/text/p/custom-shape/enhanced-geometry/equation",
		},
		{
			name:    "in table cell",
			body:    `<table:table><table:table-row><table:table-cell><text:p><draw:custom-shape/></text:p></table:table-cell></table:table-row></table:table>`,
			element: "custom-shape",
			attr:    "style-name",
			path:    "document-content/body/text/table/table-row/table-cell/p/custom-shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeContent([]byte(contentXML(tt.body)))
			require.Error(t, err)
			assert.Nil(t, doc)

			var derr *markup.DecodeError
			require.True(t, errors.As(err, &derr), "got %T", err)
			assert.ErrorIs(t, err, markup.ErrMissingAttr)
			assert.Equal(t, tt.element, derr.Element)
			assert.Equal(t, tt.attr, derr.Attr)
			assert.Equal(t, tt.path, derr.Path)
			assert.Positive(t, derr.Line)
			assert.Contains(t, err.Error(), tt.attr)
		})
	}
}

func TestInvalidNumericAttribute(t *testing.T) {
	_, err := DecodeContent([]byte(contentXML(`<text:p><text:s text:c="many"/></text:p>`)))

	var derr *markup.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, markup.ErrInvalidAttr)
	assert.Equal(t, "s", derr.Element)
	assert.Equal(t, "c", derr.Attr)
}

func TestMalformedContent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"mismatched tags", contentXML(`<text:p><text:span>x</text:p></text:span>`), nil},
		{"truncated", contentXML(`<text:p>x</text:p>`)[:200], nil},
		{"empty", "", markup.ErrNoRoot},
		{"wrong root", `<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"/>`, markup.ErrUnexpectedRoot},
		{"missing body", `<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"/>`, markup.ErrMissingElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeContent([]byte(tt.data))
			assert.Nil(t, doc)

			var derr *markup.DecodeError
			require.ErrorAs(t, err, &derr)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestBodyWithoutText(t *testing.T) {
	doc, err := DecodeContent([]byte(`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0">
  <office:body><office:spreadsheet/></office:body>
</office:document-content>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Body.Items)
	assert.Empty(t, doc.FontFaces)
}

func TestFontFacesAndAutomaticStyles(t *testing.T) {
	data := `<office:document-content
    xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
    xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
    xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
    xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
    xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0">
  <office:font-face-decls>
    <style:font-face style:name="Liberation Serif" svg:font-family="'Liberation Serif'" style:font-family-generic="roman" style:font-pitch="variable"/>
    <style:font-face style:name="Courier New"/>
  </office:font-face-decls>
  <office:automatic-styles>
    <style:style style:name="P1" style:family="paragraph" style:parent-style-name="Standard">
      <style:paragraph-properties fo:break-before="page" fo:text-align="center"/>
      <style:text-properties fo:font-weight="bold" style:font-name="Courier New"/>
    </style:style>
    <text:list-style style:name="L1">
      <text:list-level-style-number text:level="1" style:num-format="1" style:num-suffix="."/>
    </text:list-style>
  </office:automatic-styles>
  <office:body><office:text><text:p text:style-name="P1">x</text:p></office:text></office:body>
</office:document-content>`

	doc, err := DecodeContent([]byte(data))
	require.NoError(t, err)

	require.Len(t, doc.FontFaces, 2)
	assert.Equal(t, FontFace{
		Name:          strPtr("Liberation Serif"),
		Family:        strPtr("'Liberation Serif'"),
		GenericFamily: strPtr("roman"),
		Pitch:         strPtr("variable"),
	}, doc.FontFaces[0])
	assert.Equal(t, FontFace{Name: strPtr("Courier New")}, doc.FontFaces[1])

	require.Len(t, doc.AutomaticStyles.Styles, 1)
	s := doc.AutomaticStyles.Styles[0]
	assert.Equal(t, strPtr("P1"), s.Name)
	assert.Equal(t, strPtr("paragraph"), s.Family)
	assert.Equal(t, strPtr("Standard"), s.ParentStyleName)
	require.NotNil(t, s.ParagraphProperties)
	assert.Equal(t, strPtr("page"), s.ParagraphProperties.BreakBefore)
	assert.Equal(t, strPtr("center"), s.ParagraphProperties.TextAlign)
	require.NotNil(t, s.TextProperties)
	assert.Equal(t, strPtr("bold"), s.TextProperties.FontWeight)
	assert.Equal(t, strPtr("Courier New"), s.TextProperties.FontName)
	assert.Nil(t, s.GraphicProperties)

	require.Len(t, doc.AutomaticStyles.ListStyles, 1)
	assert.Equal(t, "1", doc.AutomaticStyles.ListStyles[0].Numbers[0].NumFormat)
}

func TestDecodeIdempotent(t *testing.T) {
	data := []byte(contentXML(`<text:p>A<text:span text:style-name="T1">B<text:s text:c="2"/></text:span>C<draw:unknown/></text:p>
<text:list><text:list-item><text:p>x</text:p></text:list-item></text:list>`))

	first, err := DecodeContent(data)
	require.NoError(t, err)
	second, err := DecodeContent(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMaxDepth(t *testing.T) {
	body := `<text:p>` + strings.Repeat(`<text:span>`, 50) + `x` + strings.Repeat(`</text:span>`, 50) + `</text:p>`
	data := []byte(contentXML(body))

	_, err := DecodeContent(data)
	require.NoError(t, err)

	_, err = DecodeContent(data, WithMaxDepth(20))
	assert.ErrorIs(t, err, markup.ErrTooDeep)
}

func TestDeeplyNestedLists(t *testing.T) {
	const depth = 500
	body := strings.Repeat(`<text:list><text:list-item>`, depth) + `<text:p>deep</text:p>` +
		strings.Repeat(`</text:list-item></text:list>`, depth)

	items := decodeBody(t, body)
	require.Len(t, items, 1)

	levels := 0
	var current ListContent = items[0].(*List)
	for {
		l, ok := current.(*List)
		if !ok {
			break
		}
		levels++
		current = l.Items[0].Items[0]
	}
	assert.Equal(t, depth, levels)
	assert.Equal(t, "deep", PlainText(current.(*Paragraph).Items))
}

func TestMarshalJSON(t *testing.T) {
	p := firstParagraph(t, `<text:p>A<text:span>B</text:span><text:s/><draw:x/></text:p>`)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"items":[
		{"type":"text","value":{"value":"A"}},
		{"type":"span","value":{"items":[{"type":"text","value":{"value":"B"}}]}},
		{"type":"space","value":{"count":1}},
		{"type":"unrecognized","value":{"space":"urn:oasis:names:tc:opendocument:xmlns:drawing:1.0","name":"x"}}
	]}`, string(data))
}
