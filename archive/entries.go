package archive

import (
	"path"
	"sort"
	"strings"
)

// Well-known member names.
const (
	ContentMember = "content.xml"
	StylesMember  = "styles.xml"
)

// Entries maps member paths to their uncompressed bytes.
type Entries map[string][]byte

// Content returns the main content part.
func (e Entries) Content() ([]byte, bool) {
	b, ok := e[ContentMember]
	return b, ok
}

// Styles returns the main styles part.
func (e Entries) Styles() ([]byte, bool) {
	b, ok := e[StylesMember]
	return b, ok
}

// Names returns all member names in sorted order.
func (e Entries) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pictures returns the names of image members in sorted order.
func (e Entries) Pictures() []string {
	return e.filter(func(name string) bool {
		ext := strings.ToLower(path.Ext(name))
		return ext == ".png" || ext == ".jpg"
	})
}

// Objects returns the content parts of embedded objects, such as
// "Object 1/content.xml", in sorted order.
func (e Entries) Objects() []string {
	return e.filter(func(name string) bool {
		return strings.HasSuffix(name, "/"+ContentMember)
	})
}

// Size returns the total number of bytes held.
func (e Entries) Size() uint64 {
	var n uint64
	for _, b := range e {
		n += uint64(len(b))
	}
	return n
}

func (e Entries) filter(keep func(string) bool) []string {
	var out []string
	for _, name := range e.Names() {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}
