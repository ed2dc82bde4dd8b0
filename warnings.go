package opendoc

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue found while loading a package.
type Warning struct {
	Member  string // archive member concerned, if any
	Message string
}

func (w Warning) String() string {
	if w.Member == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Member, w.Message)
}

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
