package opendoc

import (
	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/markup"
	"github.com/tsawler/opendoc/odt"
)

// loadOptions holds the configuration of a Loader.
type loadOptions struct {
	limits   archive.Limits
	maxDepth int
}

func defaultOptions() loadOptions {
	return loadOptions{
		limits:   archive.DefaultLimits(),
		maxDepth: markup.DefaultMaxDepth,
	}
}

// clone returns a copy. Every field is a value, so a plain copy suffices.
func (o loadOptions) clone() loadOptions {
	return o
}

func (o loadOptions) archiveOptions() []archive.Option {
	return []archive.Option{archive.WithLimits(o.limits)}
}

func (o loadOptions) decodeOptions() []odt.Option {
	return []odt.Option{odt.WithMaxDepth(o.maxDepth)}
}
