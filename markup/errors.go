package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Decode failure causes wrapped by DecodeError.
var (
	ErrNoRoot         = errors.New("markup: no root element")
	ErrMultipleRoots  = errors.New("markup: more than one root element")
	ErrTooDeep        = errors.New("markup: element nesting exceeds limit")
	ErrMissingAttr    = errors.New("markup: missing required attribute")
	ErrInvalidAttr    = errors.New("markup: invalid attribute value")
	ErrMissingElement = errors.New("markup: missing required element")
	ErrUnexpectedRoot = errors.New("markup: unexpected root element")
)

// DecodeError reports a part that is not well-formed, or a well-formed part
// lacking something the schema requires.
type DecodeError struct {
	Path    string // slash-separated local names from the root to Element
	Element string // local name of the offending element
	Attr    string // local name of the offending attribute, if any
	Line    int
	Err     error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("decode")
	if e.Element != "" {
		fmt.Fprintf(&sb, " element %q", e.Element)
	}
	if e.Attr != "" {
		fmt.Fprintf(&sb, " attribute %q", e.Attr)
	}
	sb.WriteString(": ")
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString("invalid input")
	}
	if e.Path != "" || e.Line > 0 {
		sb.WriteString(" (")
		if e.Path != "" {
			sb.WriteString("at ")
			sb.WriteString(e.Path)
		}
		if e.Line > 0 {
			if e.Path != "" {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "line %d", e.Line)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }
