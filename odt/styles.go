package odt

import (
	"fmt"

	"github.com/tsawler/opendoc/markup"
)

// DocumentStyles is the decoded styles part (styles.xml).
type DocumentStyles struct {
	Styles          OfficeStyles    `json:"styles"`
	AutomaticStyles AutomaticStyles `json:"automaticStyles"`
}

// OfficeStyles is the office:styles collection of named styles.
type OfficeStyles struct {
	ListStyles []ListStyle `json:"listStyles,omitempty"`
	Styles     []Style     `json:"styles,omitempty"`
}

// AutomaticStyles is an office:automatic-styles collection.
type AutomaticStyles struct {
	Styles     []Style     `json:"styles,omitempty"`
	ListStyles []ListStyle `json:"listStyles,omitempty"`
}

// Style is a style:style definition.
type Style struct {
	Name                *string              `json:"name,omitempty"`
	Family              *string              `json:"family,omitempty"` // paragraph, text, graphic, table...
	DisplayName         *string              `json:"displayName,omitempty"`
	ParentStyleName     *string              `json:"parentStyleName,omitempty"`
	ListStyleName       *string              `json:"listStyleName,omitempty"`
	DefaultOutlineLevel *string              `json:"defaultOutlineLevel,omitempty"`
	TextProperties      *TextProperties      `json:"textProperties,omitempty"`
	ParagraphProperties *ParagraphProperties `json:"paragraphProperties,omitempty"`
	GraphicProperties   *GraphicProperties   `json:"graphicProperties,omitempty"`
}

// TextProperties is style:text-properties.
type TextProperties struct {
	FontName         *string `json:"fontName,omitempty"`   // 'Courier New' | 'Arial'
	FontFamily       *string `json:"fontFamily,omitempty"` // fo:font-family
	FontWeight       *string `json:"fontWeight,omitempty"` // 'bold'
	FontStyle        *string `json:"fontStyle,omitempty"`  // 'italic'
	UnderlineStyle   *string `json:"underlineStyle,omitempty"`
	LineThroughStyle *string `json:"lineThroughStyle,omitempty"`
	FontSize         *string `json:"fontSize,omitempty"`
	Color            *string `json:"color,omitempty"`
	BackgroundColor  *string `json:"backgroundColor,omitempty"`
}

// ParagraphProperties is style:paragraph-properties.
type ParagraphProperties struct {
	BreakBefore  *string `json:"breakBefore,omitempty"` // 'auto', 'page'
	BreakAfter   *string `json:"breakAfter,omitempty"`
	MarginLeft   *string `json:"marginLeft,omitempty"`
	MarginRight  *string `json:"marginRight,omitempty"`
	MarginTop    *string `json:"marginTop,omitempty"`
	MarginBottom *string `json:"marginBottom,omitempty"`
	TextIndent   *string `json:"textIndent,omitempty"`
	TextAlign    *string `json:"textAlign,omitempty"` // start, end, center, justify
}

// GraphicProperties is style:graphic-properties.
type GraphicProperties struct {
	StrokeColor    *string `json:"strokeColor,omitempty"`
	StrokeWidth    *string `json:"strokeWidth,omitempty"`
	StrokeLinejoin *string `json:"strokeLinejoin,omitempty"`
	Stroke         *string `json:"stroke,omitempty"`
	Fill           *string `json:"fill,omitempty"`
	FillColor      *string `json:"fillColor,omitempty"`
}

// ListStyle is a text:list-style definition.
type ListStyle struct {
	Name    *string       `json:"name,omitempty"`
	Bullets []BulletLevel `json:"bullets,omitempty"`
	Numbers []NumberLevel `json:"numbers,omitempty"`
}

// BulletLevel is a text:list-level-style-bullet. Level is 1-based.
type BulletLevel struct {
	Level      uint32  `json:"level"`
	BulletChar *string `json:"bulletChar,omitempty"`
	NumPrefix  *string `json:"numPrefix,omitempty"`
	NumSuffix  *string `json:"numSuffix,omitempty"`
}

// NumberLevel is a text:list-level-style-number. Level is 1-based.
type NumberLevel struct {
	Level      uint32  `json:"level"`
	StartValue *uint32 `json:"startValue,omitempty"`
	NumFormat  string  `json:"numFormat"` // "1", "a", "A", "i", "I"
	NumPrefix  *string `json:"numPrefix,omitempty"`
	NumSuffix  *string `json:"numSuffix,omitempty"`
}

// DecodeStyles decodes a styles part (styles.xml).
func DecodeStyles(data []byte, opts ...Option) (*DocumentStyles, error) {
	root, err := markup.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	var d decoder
	return d.documentStyles(root)
}

func (d *decoder) documentStyles(e *markup.Element) (*DocumentStyles, error) {
	defer d.enter(e)()
	if e.Name.Local != "document-styles" {
		return nil, d.fail(e, "", fmt.Errorf("%w: %s", markup.ErrUnexpectedRoot, e.Name.Local))
	}

	var (
		out DocumentStyles
		err error
	)
	if s := e.Child("styles"); s != nil {
		if out.Styles, err = d.officeStyles(s); err != nil {
			return nil, err
		}
	}
	if a := e.Child("automatic-styles"); a != nil {
		if out.AutomaticStyles, err = d.automaticStyles(a); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (d *decoder) officeStyles(e *markup.Element) (OfficeStyles, error) {
	defer d.enter(e)()
	var out OfficeStyles
	for _, c := range e.ChildElements() {
		switch c.Name.Local {
		case "style":
			out.Styles = append(out.Styles, d.style(c))
		case "list-style":
			ls, err := d.listStyle(c)
			if err != nil {
				return OfficeStyles{}, err
			}
			out.ListStyles = append(out.ListStyles, ls)
		}
	}
	return out, nil
}

func (d *decoder) automaticStyles(e *markup.Element) (AutomaticStyles, error) {
	defer d.enter(e)()
	var out AutomaticStyles
	for _, c := range e.ChildElements() {
		switch c.Name.Local {
		case "style":
			out.Styles = append(out.Styles, d.style(c))
		case "list-style":
			ls, err := d.listStyle(c)
			if err != nil {
				return AutomaticStyles{}, err
			}
			out.ListStyles = append(out.ListStyles, ls)
		}
	}
	return out, nil
}

func (d *decoder) style(e *markup.Element) Style {
	s := Style{
		Name:            optional(e, "name"),
		Family:          optional(e, "family"),
		DisplayName:     optional(e, "display-name"),
		ParentStyleName: optional(e, "parent-style-name"),
		ListStyleName:   optional(e, "list-style-name"),

		DefaultOutlineLevel: optional(e, "default-outline-level"),
	}
	if p := e.Child("text-properties"); p != nil {
		s.TextProperties = &TextProperties{
			FontName:         optional(p, "font-name"),
			FontFamily:       optional(p, "font-family"),
			FontWeight:       optional(p, "font-weight"),
			FontStyle:        optional(p, "font-style"),
			UnderlineStyle:   optional(p, "text-underline-style"),
			LineThroughStyle: optional(p, "text-line-through-style"),
			FontSize:         optional(p, "font-size"),
			Color:            optional(p, "color"),
			BackgroundColor:  optional(p, "background-color"),
		}
	}
	if p := e.Child("paragraph-properties"); p != nil {
		s.ParagraphProperties = &ParagraphProperties{
			BreakBefore:  optional(p, "break-before"),
			BreakAfter:   optional(p, "break-after"),
			MarginLeft:   optional(p, "margin-left"),
			MarginRight:  optional(p, "margin-right"),
			MarginTop:    optional(p, "margin-top"),
			MarginBottom: optional(p, "margin-bottom"),
			TextIndent:   optional(p, "text-indent"),
			TextAlign:    optional(p, "text-align"),
		}
	}
	if p := e.Child("graphic-properties"); p != nil {
		s.GraphicProperties = &GraphicProperties{
			StrokeColor:    optional(p, "stroke-color"),
			StrokeWidth:    optional(p, "stroke-width"),
			StrokeLinejoin: optional(p, "stroke-linejoin"),
			Stroke:         optional(p, "stroke"),
			Fill:           optional(p, "fill"),
			FillColor:      optional(p, "fill-color"),
		}
	}
	return s
}

func (d *decoder) listStyle(e *markup.Element) (ListStyle, error) {
	defer d.enter(e)()
	bullets, err := children(e, "list-level-style-bullet", d.bulletLevel)
	if err != nil {
		return ListStyle{}, err
	}
	numbers, err := children(e, "list-level-style-number", d.numberLevel)
	if err != nil {
		return ListStyle{}, err
	}
	return ListStyle{Name: optional(e, "name"), Bullets: bullets, Numbers: numbers}, nil
}

func (d *decoder) bulletLevel(e *markup.Element) (BulletLevel, error) {
	defer d.enter(e)()
	level, err := d.requiredUint(e, "level")
	if err != nil {
		return BulletLevel{}, err
	}
	return BulletLevel{
		Level:      level,
		BulletChar: optional(e, "bullet-char"),
		NumPrefix:  optional(e, "num-prefix"),
		NumSuffix:  optional(e, "num-suffix"),
	}, nil
}

func (d *decoder) numberLevel(e *markup.Element) (NumberLevel, error) {
	defer d.enter(e)()
	level, err := d.requiredUint(e, "level")
	if err != nil {
		return NumberLevel{}, err
	}
	start, err := d.optionalUint(e, "start-value")
	if err != nil {
		return NumberLevel{}, err
	}
	format, err := d.required(e, "num-format")
	if err != nil {
		return NumberLevel{}, err
	}
	return NumberLevel{
		Level:      level,
		StartValue: start,
		NumFormat:  format,
		NumPrefix:  optional(e, "num-prefix"),
		NumSuffix:  optional(e, "num-suffix"),
	}, nil
}
