package opendoc

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/format"
	"github.com/tsawler/opendoc/internal/logger"
	"github.com/tsawler/opendoc/odt"
)

// Loader provides a fluent interface for reading an OpenDocument package.
// Each configuration method returns a new Loader, so a Loader can be shared
// between goroutines and chains never affect each other.
type Loader struct {
	// Source
	filename string
	data     []byte
	hasData  bool

	options loadOptions
}

// clone returns a copy with its own options. The source bytes are shared.
func (l *Loader) clone() *Loader {
	return &Loader{
		filename: l.filename,
		data:     l.data,
		hasData:  l.hasData,
		options:  l.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Loader instance)
// ============================================================================

// Limits bounds archive extraction. Zero fields keep their defaults.
//
// Example:
//
//	doc, _, err := opendoc.Open("big.odt").Limits(archive.Limits{MaxMembers: 100}).Document()
func (l *Loader) Limits(limits archive.Limits) *Loader {
	n := l.clone()
	n.options.limits = limits
	return n
}

// MaxDepth limits XML element nesting in the decoded parts. Values below 1
// select markup.DefaultMaxDepth.
func (l *Loader) MaxDepth(depth int) *Loader {
	n := l.clone()
	n.options.maxDepth = depth
	return n
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Entries extracts the allow-listed members without decoding them.
func (l *Loader) Entries() (archive.Entries, error) {
	data, err := l.read()
	if err != nil {
		return nil, err
	}
	return archive.Extract(data, l.options.archiveOptions()...)
}

// Document extracts the package and decodes content.xml and styles.xml.
//
// A package without content.xml fails with ErrNoContent. A missing
// styles.xml only produces a warning and leaves Styles nil. When a part fails
// to decode, the returned Document still carries every part that succeeded
// and the error joins the failures, each prefixed with its member name.
func (l *Loader) Document() (*Document, []Warning, error) {
	data, err := l.read()
	if err != nil {
		return nil, nil, err
	}

	entries, err := archive.Extract(data, l.options.archiveOptions()...)
	if err != nil {
		return nil, nil, err
	}

	doc := &Document{Filename: l.filename, Entries: entries}
	var warnings []Warning

	doc.Format, warnings = l.detect(data, warnings)

	content, ok := entries.Content()
	if !ok {
		return nil, warnings, ErrNoContent
	}

	styles, hasStyles := entries.Styles()
	if !hasStyles {
		logger.Get().WithField("member", archive.StylesMember).Warn("package has no styles part")
		warnings = append(warnings, Warning{Member: archive.StylesMember, Message: "missing; style resolution uses content styles only"})
	}

	opts := l.options.decodeOptions()
	var (
		g                     errgroup.Group
		contentErr, stylesErr error
	)
	g.Go(func() error {
		doc.Content, contentErr = decodePart(archive.ContentMember, content, func() (*odt.DocumentContent, error) {
			return odt.DecodeContent(content, opts...)
		})
		return contentErr
	})
	if hasStyles {
		g.Go(func() error {
			doc.Styles, stylesErr = decodePart(archive.StylesMember, styles, func() (*odt.DocumentStyles, error) {
				return odt.DecodeStyles(styles, opts...)
			})
			return stylesErr
		})
	}
	// a zero Group never cancels, so both parts run; Wait only reports the
	// first failure and the join reports each
	if err := g.Wait(); err != nil {
		return doc, warnings, errors.Join(contentErr, stylesErr)
	}
	return doc, warnings, nil
}

// decodePart times one decode and prefixes any error with the member name.
func decodePart[T any](member string, data []byte, decode func() (T, error)) (T, error) {
	start := time.Now()
	v, err := decode()

	log := logger.Get().WithFields(logrus.Fields{
		"part":    member,
		"bytes":   len(data),
		"elapsed": time.Since(start),
	})
	if err != nil {
		log.WithError(err).Warn("part decode failed")
		return v, fmt.Errorf("%s: %w", member, err)
	}
	log.Debug("part decoded")
	return v, nil
}

// detect identifies the package flavour from its mimetype member, falling
// back to the file extension. Detection never fails the load.
func (l *Loader) detect(data []byte, warnings []Warning) (format.Format, []Warning) {
	f, err := format.DetectFromBytes(data)
	if err != nil {
		warnings = append(warnings, Warning{Member: "mimetype", Message: err.Error()})
	}
	if f == format.Unknown && l.filename != "" {
		f = format.Detect(l.filename)
	}

	switch {
	case f == format.Unknown:
		warnings = append(warnings, Warning{Message: "unknown package format"})
	case !f.IsText():
		warnings = append(warnings, Warning{Message: fmt.Sprintf("%s package: only text bodies are modelled", f)})
	}
	return f, warnings
}

func (l *Loader) read() ([]byte, error) {
	if l.hasData {
		return l.data, nil
	}
	if l.filename == "" {
		return nil, fmt.Errorf("opendoc: no filename specified")
	}
	data, err := os.ReadFile(l.filename)
	if err != nil {
		return nil, fmt.Errorf("opendoc: %w", err)
	}
	return data, nil
}
