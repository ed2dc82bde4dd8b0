// Package pictures reads the dimensions of images embedded in a package.
package pictures

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // for processing gif images
	_ "image/jpeg" // for processing jpeg images
	_ "image/png"  // for processing png images
	"net/http"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"  // for mis-named bmp members
	_ "golang.org/x/image/tiff" // for mis-named tiff members
	_ "golang.org/x/image/webp" // for mis-named webp members

	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/internal/logger"
)

// Info describes one embedded image. Format is the decoder that recognised
// the data, which need not match the member's extension.
type Info struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"` // bytes
}

// Inspect decodes the image header of data.
func Inspect(name string, data []byte) (Info, error) {
	info := Info{
		Name:        name,
		ContentType: http.DetectContentType(data),
		Size:        len(data),
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return info, fmt.Errorf("picture %q: %w", name, err)
	}

	info.Format = format
	info.Width = config.Width
	info.Height = config.Height
	return info, nil
}

// InspectAll inspects every picture member of entries in name order. Members
// that cannot be decoded are left out and reported in the joined error.
func InspectAll(entries archive.Entries) ([]Info, error) {
	var (
		infos []Info
		errs  []error
	)
	for _, name := range entries.Pictures() {
		info, err := Inspect(name, entries[name])
		if err != nil {
			logger.Get().WithFields(logrus.Fields{
				"member": name,
				"bytes":  len(entries[name]),
			}).WithError(err).Warn("undecodable picture")
			errs = append(errs, err)
			continue
		}
		infos = append(infos, info)
	}
	return infos, errors.Join(errs...)
}
