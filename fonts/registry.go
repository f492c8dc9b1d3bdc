package fonts

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/agiangrant/skinned/theme"
)

var log = logrus.WithField("component", "fonts")

// ErrNotFound is returned for a name with no registered font.
var ErrNotFound = errors.New("font not found")

// Registry resolves theme font names. It implements theme.FontResolver.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]theme.Font
}

// NewRegistry returns a registry holding "basic" only.
func NewRegistry() *Registry {
	return &Registry{fonts: map[string]theme.Font{"basic": Basic()}}
}

// GoFonts returns a registry with the Go font family registered as
// "sans", "bold", "italic", "bolditalic" and "mono", plus "basic".
func GoFonts() (*Registry, error) {
	r := NewRegistry()
	for name, ttf := range map[string][]byte{
		"sans":       goregular.TTF,
		"bold":       gobold.TTF,
		"italic":     goitalic.TTF,
		"bolditalic": gobolditalic.TTF,
		"mono":       gomono.TTF,
	} {
		f, err := Parse(name, ttf)
		if err != nil {
			return nil, err
		}
		r.Register(name, f)
	}
	return r, nil
}

// Register adds or replaces a font.
func (r *Registry) Register(name string, f theme.Font) {
	r.mu.Lock()
	r.fonts[name] = f
	r.mu.Unlock()
}

// Font returns the font registered under name.
func (r *Registry) Font(name string) (theme.Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.fonts))
}
