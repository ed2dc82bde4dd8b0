package odt

// Text is character data between inline elements, kept verbatim.
type Text struct {
	Value string `json:"value"`
}

func (*Text) Kind() Kind { return KindText }
func (*Text) isInline()  {}

// Span is a text:span element.
type Span struct {
	StyleName   *string      `json:"styleName,omitempty"`
	Items       Inlines      `json:"items"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (*Span) Kind() Kind { return KindSpan }
func (*Span) isInline()  {}

// Link is a text:a hyperlink.
type Link struct {
	Href      string  `json:"href"`
	StyleName *string `json:"styleName,omitempty"`
	Items     Inlines `json:"items"`
}

func (*Link) Kind() Kind { return KindLink }
func (*Link) isInline()  {}

// Space is a text:s run of Count spaces (1 when unspecified).
type Space struct {
	Count uint32 `json:"count"`
}

func (*Space) Kind() Kind { return KindSpace }
func (*Space) isInline()  {}

// Tab is a text:tab.
type Tab struct{}

func (*Tab) Kind() Kind { return KindTab }
func (*Tab) isInline()  {}

// LineBreak is a text:line-break.
type LineBreak struct{}

func (*LineBreak) Kind() Kind { return KindLineBreak }
func (*LineBreak) isInline()  {}

// SoftPageBreak is a text:soft-page-break.
type SoftPageBreak struct{}

func (*SoftPageBreak) Kind() Kind { return KindSoftPageBreak }
func (*SoftPageBreak) isInline()  {}

// Bookmark is a text:bookmark anchor.
type Bookmark struct {
	Name string `json:"name"`
}

func (*Bookmark) Kind() Kind { return KindBookmark }
func (*Bookmark) isInline()  {}

// BookmarkStart opens a named bookmark range.
type BookmarkStart struct {
	Name string `json:"name"`
}

func (*BookmarkStart) Kind() Kind { return KindBookmarkStart }
func (*BookmarkStart) isInline()  {}

// BookmarkEnd closes a named bookmark range.
type BookmarkEnd struct {
	Name string `json:"name"`
}

func (*BookmarkEnd) Kind() Kind { return KindBookmarkEnd }
func (*BookmarkEnd) isInline()  {}

// ChangeStart marks the start of a tracked change region.
type ChangeStart struct {
	ChangeID string `json:"changeId"`
}

func (*ChangeStart) Kind() Kind { return KindChangeStart }
func (*ChangeStart) isInline()  {}

// ChangeEnd marks the end of a tracked change region.
type ChangeEnd struct {
	ChangeID string `json:"changeId"`
}

func (*ChangeEnd) Kind() Kind { return KindChangeEnd }
func (*ChangeEnd) isInline()  {}
