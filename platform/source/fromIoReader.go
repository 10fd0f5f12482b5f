package source

import (
	"fmt"
	"io"
	"net/url"
)

// FromIoReader implements the Loader interface for arbitrary readers, e.g.
// stdin.
type FromIoReader struct {
	reader    io.Reader
	sourceURL *url.URL
}

// NewFromIoReader creates a new loader wrapping r. The name tags the source
// URL for logging; it defaults to "anonymous".
func NewFromIoReader(r io.Reader, name string) (*FromIoReader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrContentNotAvailable)
	}
	if name == "" {
		name = "anonymous"
	}

	u, err := url.Parse("reader://inline/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromIoReader{
		reader:    r,
		sourceURL: u,
	}, nil
}

func (l *FromIoReader) GetReader() (io.ReadCloser, error) {
	if rc, ok := l.reader.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(l.reader), nil
}

func (l *FromIoReader) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("source.FromIoReader{URL: %s}", l.sourceURL)
}
