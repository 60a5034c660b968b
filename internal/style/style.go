// Package style maps card identities to images. A style is chosen per
// screen; the same cards can be skinned by several styles without
// touching their identity.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arcanaland/cardtable/internal/card"
)

// ErrMissingAsset means a style has no image for a declared identity.
var ErrMissingAsset = errors.New("missing visual asset")

// ImageRef is an opaque image handle a painter resolves.
type ImageRef string

// Placeholder is drawn for anything a painter cannot resolve.
const Placeholder ImageRef = "placeholder"

// Visual is what a painter needs to draw one card.
type Visual struct {
	Image  ImageRef
	Width  int
	Height int
}

// Style is a visual mapping for card identities.
type Style interface {
	Name() string
	Face(identity string) (ImageRef, bool)
	Back() ImageRef
	Size() (w, h int)
}

// Render returns the visual for m under s. A masked card always gets the
// back image, whatever its identity.
func Render(m card.Model, s Style) Visual {
	w, h := s.Size()
	v := Visual{Image: s.Back(), Width: w, Height: h}
	if m.IsMasked() {
		return v
	}
	if ref, ok := s.Face(m.Identity()); ok {
		v.Image = ref
		return v
	}
	v.Image = Placeholder
	return v
}

// ConfigurationError lists the identities a style could not map.
type ConfigurationError struct {
	Style   string
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	shown := e.Missing
	more := ""
	if len(shown) > 5 {
		more = fmt.Sprintf(" and %d more", len(shown)-5)
		shown = shown[:5]
	}
	return fmt.Sprintf("style %s: %v: %s%s", e.Style, e.Err, strings.Join(shown, ", "), more)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Registry holds the styles validated for a set of identities.
type Registry struct {
	styles map[string]Style
	warned map[string]bool
	log    zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		styles: make(map[string]Style),
		warned: make(map[string]bool),
		log:    log,
	}
}

// Register adds s after checking it has a back and a face for every
// identity.
func (r *Registry) Register(s Style, identities []string) error {
	name := s.Name()
	if _, ok := r.styles[name]; ok {
		return fmt.Errorf("style already registered: %s", name)
	}
	var missing []string
	if s.Back() == "" {
		missing = append(missing, "card back")
	}
	for _, id := range identities {
		if _, ok := s.Face(id); !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &ConfigurationError{Style: name, Missing: missing, Err: ErrMissingAsset}
	}
	r.styles[name] = s
	r.log.Debug().Str("style", name).Int("identities", len(identities)).Msg("style registered")
	return nil
}

func (r *Registry) Get(name string) (Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// Visual renders m under the named style. An unknown style yields the
// placeholder so the frame still draws.
func (r *Registry) Visual(styleName string, m card.Model) Visual {
	s, ok := r.styles[styleName]
	if !ok {
		if !r.warned[styleName] {
			r.warned[styleName] = true
			r.log.Error().Str("style", styleName).Msg("unknown style, drawing placeholders")
		}
		return Visual{Image: Placeholder}
	}
	return Render(m, s)
}

// Refs lists every image a style can produce, back first, for preloading.
func Refs(s Style, identities []string) []ImageRef {
	out := []ImageRef{s.Back()}
	seen := map[ImageRef]bool{s.Back(): true}
	for _, id := range identities {
		ref, ok := s.Face(id)
		if !ok || seen[ref] {
			continue
		}
		seen[ref] = true
		out = append(out, ref)
	}
	return out
}
