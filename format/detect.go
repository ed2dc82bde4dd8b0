// Package format identifies the OpenDocument flavour of a package.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents an OpenDocument package type.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// OTT indicates an OpenDocument Text template (.ott).
	OTT
	// ODS indicates an OpenDocument Spreadsheet (.ods).
	ODS
	// ODP indicates an OpenDocument Presentation (.odp).
	ODP
	// ODG indicates an OpenDocument Drawing (.odg).
	ODG
	// ODF indicates an OpenDocument Formula (.odf).
	ODF
	// ODC indicates an OpenDocument Chart (.odc).
	ODC
)

var formats = []struct {
	format   Format
	name     string
	ext      string
	mimeType string
}{
	{ODT, "ODT", ".odt", "application/vnd.oasis.opendocument.text"},
	{OTT, "OTT", ".ott", "application/vnd.oasis.opendocument.text-template"},
	{ODS, "ODS", ".ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{ODP, "ODP", ".odp", "application/vnd.oasis.opendocument.presentation"},
	{ODG, "ODG", ".odg", "application/vnd.oasis.opendocument.graphics"},
	{ODF, "ODF", ".odf", "application/vnd.oasis.opendocument.formula"},
	{ODC, "ODC", ".odc", "application/vnd.oasis.opendocument.chart"},
}

// String returns the string representation of the format.
func (f Format) String() string {
	for _, def := range formats {
		if def.format == f {
			return def.name
		}
	}
	return "Unknown"
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	for _, def := range formats {
		if def.format == f {
			return def.ext
		}
	}
	return ""
}

// MimeType returns the media type stored in the package's mimetype member.
func (f Format) MimeType() string {
	for _, def := range formats {
		if def.format == f {
			return def.mimeType
		}
	}
	return ""
}

// IsText reports whether the package holds a text document, the only kind
// whose body the odt package models.
func (f Format) IsText() bool {
	return f == ODT || f == OTT
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, def := range formats {
		if def.ext == ext {
			return def.format
		}
	}
	return Unknown
}

// FromMimeType maps a mimetype member's content to a format.
func FromMimeType(mimeType string) Format {
	mimeType = strings.TrimSpace(mimeType)
	for _, def := range formats {
		if def.mimeType == mimeType {
			return def.format
		}
	}
	return Unknown
}

// DetectFromBytes inspects an in-memory package.
func DetectFromBytes(data []byte) (Format, error) {
	return DetectFromReader(bytes.NewReader(data), int64(len(data)))
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection: it reads the
// package's mimetype member. Input that is not a zip archive is Unknown.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}

	// ZIP magic: PK\x03\x04
	if n < 4 || magic[0] != 0x50 || magic[1] != 0x4B || magic[2] != 0x03 || magic[3] != 0x04 {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Unknown, err
		}
		data, err := io.ReadAll(io.LimitReader(rc, 256))
		rc.Close()
		if err != nil {
			return Unknown, err
		}
		return FromMimeType(string(data)), nil
	}

	return Unknown, nil
}
