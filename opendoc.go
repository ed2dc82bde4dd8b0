// Package opendoc provides a fluent API for reading OpenDocument packages.
//
// Basic usage:
//
//	doc, warnings, err := opendoc.Open("report.odt").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", opendoc.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := opendoc.Open("report.odt").
//	    Limits(archive.Limits{MaxTotalSize: 64 << 20}).
//	    MaxDepth(512).
//	    Document()
//
// The archive, markup and odt packages are available for lower-level use.
package opendoc

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/internal/logger"
	"github.com/tsawler/opendoc/markup"
)

// ErrNoContent is returned for a package without a content.xml member.
var ErrNoContent = errors.New("opendoc: package has no content.xml")

// ContainerError reports a zip archive that could not be read.
type ContainerError = archive.ContainerError

// DecodeError reports a malformed or schema-violating XML part.
type DecodeError = markup.DecodeError

// Open returns a Loader for the package at filename. The file is read when a
// terminal method is called.
//
// Example:
//
//	entries, err := opendoc.Open("report.odt").Entries()
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns a Loader for a package already in memory. The slice is
// not copied and must not be modified while the Loader is in use.
func FromBytes(data []byte) *Loader {
	return &Loader{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// SetLogger installs the logger used by every opendoc package. Logging is
// discarded until this is called; nil restores that default.
func SetLogger(l logrus.FieldLogger) {
	logger.Set(l)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	entries := opendoc.Must(opendoc.Open("report.odt").Entries())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is like Must for Document. It discards warnings.
//
// Example:
//
//	doc := opendoc.MustDocument(opendoc.Open("report.odt").Document())
func MustDocument(doc *Document, _ []Warning, err error) *Document {
	if err != nil {
		panic(err)
	}
	return doc
}
