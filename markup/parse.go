package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxDepth is the element nesting limit used when none is configured.
const DefaultMaxDepth = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

type config struct {
	maxDepth int
}

// Option configures Parse.
type Option func(*config)

// WithMaxDepth limits element nesting. Values below 1 select DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Parse reads a complete XML document and returns its root element.
func Parse(data []byte, opts ...Option) (*Element, error) {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDepth < 1 {
		cfg.maxDepth = DefaultMaxDepth
	}

	src, transcoded := newSource(data)
	dec := xml.NewDecoder(src)
	dec.Strict = true
	dec.CharsetReader = charsetReader(transcoded)

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapSyntax(stack, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			if root != nil && len(stack) == 0 {
				return nil, &DecodeError{Element: t.Name.Local, Line: line, Err: ErrMultipleRoots}
			}
			if len(stack) >= cfg.maxDepth {
				return nil, &DecodeError{
					Path:    pathOf(stack, t.Name.Local),
					Element: t.Name.Local,
					Line:    line,
					Err:     ErrTooDeep,
				}
			}

			el := &Element{Name: t.Name, Attrs: convertAttrs(t.Attr), Line: line}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			// text outside the root element carries no content
			if len(stack) == 0 {
				continue
			}
			appendCharData(stack[len(stack)-1], t)
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &DecodeError{
			Path:    pathOf(stack[:len(stack)-1], top.Name.Local),
			Element: top.Name.Local,
			Line:    top.Line,
			Err:     io.ErrUnexpectedEOF,
		}
	}
	if root == nil {
		return nil, &DecodeError{Err: ErrNoRoot}
	}
	return root, nil
}

// newSource strips a UTF-8 byte order mark and transcodes UTF-16 input to
// UTF-8. The second result reports whether transcoding happened.
func newSource(data []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return bytes.NewReader(data[len(bomUTF8):]), false
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(bytes.NewReader(data), dec), true
	default:
		return bytes.NewReader(data), false
	}
}

// charsetReader resolves the encoding named in the XML declaration. Input
// already transcoded from UTF-16 is passed through unchanged.
func charsetReader(transcoded bool) func(string, io.Reader) (io.Reader, error) {
	return func(label string, input io.Reader) (io.Reader, error) {
		if transcoded && strings.HasPrefix(strings.ToLower(label), "utf-16") {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}
}

// convertAttrs copies attributes, dropping namespace declarations.
func convertAttrs(in []xml.Attr) []Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(in))
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, Attr{Name: a.Name, Value: a.Value})
	}
	return out
}

// appendCharData adds text to el, merging with a preceding text child.
func appendCharData(el *Element, data xml.CharData) {
	if n := len(el.Children); n > 0 {
		if prev, ok := el.Children[n-1].(CharData); ok {
			el.Children[n-1] = prev + CharData(data)
			return
		}
	}
	el.Children = append(el.Children, CharData(data))
}

func wrapSyntax(stack []*Element, err error) error {
	derr := &DecodeError{Err: err}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		derr.Element = top.Name.Local
		derr.Path = pathOf(stack[:len(stack)-1], top.Name.Local)
	}
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		derr.Line = serr.Line
	}
	return derr
}

func pathOf(stack []*Element, leaf string) string {
	parts := make([]string, 0, len(stack)+1)
	for _, el := range stack {
		parts = append(parts, el.Name.Local)
	}
	parts = append(parts, leaf)
	return strings.Join(parts, "/")
}
