package source

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FromDisk implements the Loader interface for local files.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a new loader for the file at path. The file is opened
// lazily by GetReader, so a missing file surfaces there rather than here.
func NewFromDisk(path string) (*FromDisk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrContentNotAvailable)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	return &FromDisk{
		path:      abs,
		sourceURL: &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)},
	}, nil
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentNotAvailable, err)
	}
	return f, nil
}

func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromDisk) String() string {
	return fmt.Sprintf("source.FromDisk{Path: %s}", l.path)
}
