// Package archive extracts the members of an OpenDocument zip container that
// the document decoders need.
//
// Only an allow-list of members is read: the main content and styles parts,
// the content parts of embedded objects and PNG/JPEG pictures. Everything
// else (manifest, settings, thumbnails, the mimetype marker) is skipped.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gobwas/glob"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"

	"github.com/tsawler/opendoc/internal/logger"
)

// Compression methods registered in addition to Store and Deflate.
const (
	MethodZstd uint16 = zstd.ZipMethodWinZip // 93
	MethodXZ   uint16 = 95
)

// AllowList is the set of member patterns Extract reads. Patterns use '/' as
// the separator, so "*" stays within one path segment and "**" spans any.
var AllowList = []string{
	ContentMember,
	StylesMember,
	"**/" + ContentMember,
	"**.png",
	"**.jpg",
}

var allowed = compileAllowList(AllowList)

func compileAllowList(patterns []string) []glob.Glob {
	out := make([]glob.Glob, len(patterns))
	for i, p := range patterns {
		out[i] = glob.MustCompile(p, '/')
	}
	return out
}

// Allowed reports whether a member name matches the allow-list.
func Allowed(name string) bool {
	for _, g := range allowed {
		if g.Match(name) {
			return true
		}
	}
	return false
}

type config struct {
	limits Limits
}

// Option configures Extract.
type Option func(*config)

// WithLimits sets the resource limits. Zero fields keep their defaults.
func WithLimits(l Limits) Option {
	return func(c *config) { c.limits = l }
}

// Extract reads the allow-listed members of a zip archive held in memory.
//
// A missing content.xml is not an error here; callers check Entries.Content.
// Malformed archives, corrupt members, unsupported compression methods and
// exceeded limits return a *ContainerError.
func Extract(data []byte, opts ...Option) (Entries, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	limits := cfg.limits.withDefaults()

	start := time.Now()
	log := logger.Get()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && zr != nil) {
		// nothing is written to disk, so insecure names are harmless
		return nil, &ContainerError{Op: "open", Err: err}
	}
	registerDecompressors(zr)

	if len(zr.File) > limits.MaxMembers {
		return nil, &ContainerError{
			Op:  "limit",
			Err: fmt.Errorf("%w: %d members, max %d", ErrLimitExceeded, len(zr.File), limits.MaxMembers),
		}
	}

	entries := make(Entries)
	var total uint64

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !Allowed(f.Name) {
			continue
		}
		if _, dup := entries[f.Name]; dup {
			log.WithField("member", f.Name).Warn("duplicate archive member ignored")
			continue
		}

		b, err := readMember(f, limits.MaxMemberSize)
		if err != nil {
			return nil, err
		}

		total += uint64(len(b))
		if total > limits.MaxTotalSize {
			return nil, &ContainerError{
				Op:     "limit",
				Member: f.Name,
				Err:    fmt.Errorf("%w: total size exceeds %d bytes", ErrLimitExceeded, limits.MaxTotalSize),
			}
		}

		entries[f.Name] = b
		log.WithFields(logrus.Fields{
			"member": f.Name,
			"bytes":  len(b),
		}).Debug("extracted archive member")
	}

	log.WithFields(logrus.Fields{
		"members": len(entries),
		"bytes":   total,
		"elapsed": time.Since(start),
	}).Debug("archive extracted")

	return entries, nil
}

func readMember(f *zip.File, max uint64) ([]byte, error) {
	if f.UncompressedSize64 > max {
		return nil, &ContainerError{
			Op:     "limit",
			Member: f.Name,
			Err:    fmt.Errorf("%w: %d bytes, max %d", ErrLimitExceeded, f.UncompressedSize64, max),
		}
	}

	rc, err := f.Open()
	if err != nil {
		return nil, &ContainerError{Op: "read", Member: f.Name, Err: err}
	}
	defer rc.Close()

	// the header may understate the size; never read more than max+1 bytes
	capped := int64(math.MaxInt64)
	if max < math.MaxInt64 {
		capped = int64(max) + 1
	}
	b, err := io.ReadAll(io.LimitReader(rc, capped))
	if err != nil {
		return nil, &ContainerError{Op: "read", Member: f.Name, Err: err}
	}
	if uint64(len(b)) > max {
		return nil, &ContainerError{
			Op:     "limit",
			Member: f.Name,
			Err:    fmt.Errorf("%w: more than %d bytes", ErrLimitExceeded, max),
		}
	}
	return b, nil
}

func registerDecompressors(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	zr.RegisterDecompressor(MethodZstd, zstd.ZipDecompressor())
	zr.RegisterDecompressor(MethodXZ, func(r io.Reader) io.ReadCloser {
		xr, err := xz.NewReader(r)
		if err != nil {
			return errReader{err}
		}
		return io.NopCloser(xr)
	})
}

// errReader fails every read with a fixed error.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return nil }
