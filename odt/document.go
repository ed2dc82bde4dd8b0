package odt

// Namespaces told apart for attributes sharing a local name.
const (
	nsDraw    = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsDrawOOo = "http://openoffice.org/2010/draw"
)

// DocumentContent is the decoded content part (content.xml).
type DocumentContent struct {
	Body            Body            `json:"body"`
	FontFaces       []FontFace      `json:"fontFaces,omitempty"`
	AutomaticStyles AutomaticStyles `json:"automaticStyles"`
}

// Body holds the block-level items of office:body/office:text.
type Body struct {
	Items Blocks `json:"items"`
}

// FontFace is a style:font-face declaration.
type FontFace struct {
	Name          *string `json:"name,omitempty"`
	Family        *string `json:"family,omitempty"`
	GenericFamily *string `json:"genericFamily,omitempty"`
	Pitch         *string `json:"pitch,omitempty"`
}

// Paragraph is a text:p element.
type Paragraph struct {
	StyleName   *string      `json:"styleName,omitempty"`
	Items       Inlines      `json:"items"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (*Paragraph) Kind() Kind      { return KindParagraph }
func (*Paragraph) isBlock()        {}
func (*Paragraph) isListContent()  {}
func (*Paragraph) isShapeContent() {}

// Heading is a text:h element. OutlineLevel is 0 when not given.
type Heading struct {
	StyleName    *string      `json:"styleName,omitempty"`
	OutlineLevel uint32       `json:"outlineLevel,omitempty"`
	Items        Inlines      `json:"items"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

func (*Heading) Kind() Kind { return KindHeading }
func (*Heading) isBlock()   {}

// Annotation is an office:annotation (comment) attached to a paragraph or span.
type Annotation struct {
	Creator    *string      `json:"creator,omitempty"`
	Date       *string      `json:"date,omitempty"`
	Paragraphs []*Paragraph `json:"paragraphs,omitempty"`
}

// List is a text:list element.
type List struct {
	ID                *string    `json:"id,omitempty"`
	ContinueNumbering *string    `json:"continueNumbering,omitempty"`
	ContinueList      *string    `json:"continueList,omitempty"`
	StyleName         *string    `json:"styleName,omitempty"`
	Items             []ListItem `json:"items"`
}

func (*List) Kind() Kind     { return KindList }
func (*List) isBlock()       {}
func (*List) isListContent() {}

// ListItem is a text:list-item element.
type ListItem struct {
	Items ListContents `json:"items"`
}

// TableOfContents is a text:table-of-content element; Paragraphs are the
// entries of its index body.
type TableOfContents struct {
	Name       *string      `json:"name,omitempty"`
	Paragraphs []*Paragraph `json:"paragraphs"`
}

func (*TableOfContents) Kind() Kind { return KindTableOfContents }
func (*TableOfContents) isBlock()   {}
