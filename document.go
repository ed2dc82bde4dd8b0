package opendoc

import (
	"sync"

	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/format"
	"github.com/tsawler/opendoc/odt"
	"github.com/tsawler/opendoc/pictures"
)

// Document is a loaded package.
type Document struct {
	Filename string // empty for FromBytes
	Format   format.Format
	Entries  archive.Entries
	Content  *odt.DocumentContent
	Styles   *odt.DocumentStyles // nil when the package has no styles.xml

	resolverOnce sync.Once
	resolver     *odt.StyleResolver
}

// Resolver returns the style resolver for the document, built on first use.
func (d *Document) Resolver() *odt.StyleResolver {
	d.resolverOnce.Do(func() {
		d.resolver = odt.NewStyleResolver(d.Content, d.Styles)
	})
	return d.resolver
}

// Stats counts the nodes of the body. It is zero when content failed to decode.
func (d *Document) Stats() odt.Stats {
	if d.Content == nil {
		return odt.Stats{}
	}
	return odt.Collect(d.Content.Body)
}

// Pictures inspects the embedded images. See pictures.InspectAll.
func (d *Document) Pictures() ([]pictures.Info, error) {
	return pictures.InspectAll(d.Entries)
}
