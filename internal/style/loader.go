package style

import (
	"fmt"
	"math"

	"github.com/arcanaland/cardtable/internal/deck"
)

// Loader locates images for a style. It may touch the filesystem and is
// only called while building a style, never while drawing.
type Loader interface {
	Face(style, identity string) (ImageRef, error)
	Back(style string) (ImageRef, error)
}

// DeckLoader serves images from tarot deck directories keyed by deck id.
type DeckLoader struct {
	decks map[string]*deck.Deck
}

func NewDeckLoader(decks ...*deck.Deck) *DeckLoader {
	l := &DeckLoader{decks: make(map[string]*deck.Deck, len(decks))}
	for _, d := range decks {
		l.decks[d.ID] = d
	}
	return l
}

func (l *DeckLoader) deck(style string) (*deck.Deck, error) {
	d, ok := l.decks[style]
	if !ok {
		return nil, fmt.Errorf("no deck for style %s: %w", style, ErrMissingAsset)
	}
	return d, nil
}

func (l *DeckLoader) Face(style, identity string) (ImageRef, error) {
	d, err := l.deck(style)
	if err != nil {
		return "", err
	}
	path, err := d.FindCardImage(identity)
	if err != nil {
		return "", fmt.Errorf("%s: %w", identity, ErrMissingAsset)
	}
	return ImageRef(path), nil
}

func (l *DeckLoader) Back(style string) (ImageRef, error) {
	d, err := l.deck(style)
	if err != nil {
		return "", err
	}
	path, err := d.FindCardBack()
	if err != nil {
		return "", fmt.Errorf("card back: %v: %w", err, ErrMissingAsset)
	}
	return ImageRef(path), nil
}

// Mapped is a style resolved ahead of time into a lookup table.
type Mapped struct {
	name  string
	faces map[string]ImageRef
	back  ImageRef
	w, h  int
}

// Load resolves every identity through l. Missing images are collected
// into a single ConfigurationError.
func Load(name string, l Loader, identities []string, w, h int) (*Mapped, error) {
	m := &Mapped{name: name, faces: make(map[string]ImageRef, len(identities)), w: w, h: h}
	var missing []string

	back, err := l.Back(name)
	if err != nil {
		missing = append(missing, "card back")
	}
	m.back = back

	for _, id := range identities {
		ref, err := l.Face(name, id)
		if err != nil {
			missing = append(missing, id)
			continue
		}
		m.faces[id] = ref
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Style: name, Missing: missing, Err: ErrMissingAsset}
	}
	return m, nil
}

func (m *Mapped) Name() string { return m.name }

func (m *Mapped) Face(identity string) (ImageRef, bool) {
	ref, ok := m.faces[identity]
	return ref, ok
}

func (m *Mapped) Back() ImageRef { return m.back }

func (m *Mapped) Size() (int, int) { return m.w, m.h }

// ForDeck loads the style for a deck directory, sized to height h with the
// deck's aspect ratio.
func ForDeck(d *deck.Deck, h int) (*Mapped, error) {
	w := int(math.Round(float64(h) * d.AspectRatio))
	return Load(d.ID, NewDeckLoader(d), d.Identities(), w, h)
}
