// Package source supplies raw authored markup to the validators from
// inline strings, files, or arbitrary readers.
package source

import (
	"io"
	"net/url"
)

// Loader is an interface used to load input for the validators.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
