package widget

import (
	"embed"
	"fmt"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

//go:embed assets/widget.html
var assets embed.FS

const embeddedPath = "assets/widget.html"

// Store serves the widget HTML document. The document is loaded once and
// cached for the lifetime of the process; there is no invalidation.
type Store struct {
	// overridePath, when set, is read from disk instead of the embedded asset.
	overridePath string

	once sync.Once
	html string
	err  error
}

func NewStore(overridePath string) *Store {
	return &Store{overridePath: overridePath}
}

// HTML returns the widget document, loading it on first use.
func (s *Store) HTML() (string, error) {
	s.once.Do(s.load)
	return s.html, s.err
}

func (s *Store) load() {
	if s.overridePath != "" {
		content, err := os.ReadFile(s.overridePath)
		if err != nil {
			s.err = fmt.Errorf("failed to read widget HTML from %s: %w", s.overridePath, err)
			return
		}
		log.Infof("Loaded widget HTML from file: %s", s.overridePath)
		s.html = string(content)
		return
	}

	content, err := assets.ReadFile(embeddedPath)
	if err != nil {
		s.err = fmt.Errorf("failed to read embedded widget HTML: %w", err)
		return
	}
	s.html = string(content)
}
