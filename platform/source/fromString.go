package source

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mathblock/go-texcheck/internal/helpers"
)

// FromString implements the Loader interface for inline string content.
// Empty content is allowed here: the empty-input policy belongs to the
// validators, not to the loader.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a new loader from string content.
func NewFromString(content string) (*FromString, error) {
	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromString) String() string {
	return fmt.Sprintf("source.FromString{Chars: %d}", len(l.content))
}
