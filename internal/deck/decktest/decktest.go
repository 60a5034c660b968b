// Package decktest writes small tarot deck directories for tests.
package decktest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/deck"
)

const DeckToml = `[deck]
id = "test-deck"
name = "Test Deck"
version = "1.0.0"
schema_version = "1.0"
aspect_ratio = 0.6

[card_backs]
default = "classic"

[card_backs.variants.classic]
name = "Classic"
image = "card_backs/classic.png"
`

const NamesToml = `[major_arcana]
"00" = "Le Mat"

[major_arcana.alt_text]
"00" = "A traveller at a cliff edge."

[minor_arcana.cups]
ace = "Ace of Chalices"

[minor_arcana.cups.alt_text]
ace = "A hand holding a chalice."
`

// Options tweak the generated deck.
type Options struct {
	// Missing identities get no face image.
	Missing []string
	// NoBack skips card_backs/classic.png.
	NoBack bool
	// DeckToml replaces the default deck.toml.
	DeckToml string
}

// Write creates a deck under dir and returns its path.
func Write(t testing.TB, dir string, opts Options) string {
	t.Helper()
	root := filepath.Join(dir, "test-deck")
	tomlText := opts.DeckToml
	if tomlText == "" {
		tomlText = DeckToml
	}
	writeFile(t, filepath.Join(root, "deck.toml"), []byte(tomlText))
	writeFile(t, filepath.Join(root, "names", "en.toml"), []byte(NamesToml))
	if !opts.NoBack {
		writePNG(t, filepath.Join(root, "card_backs", "classic.png"), color.RGBA{R: 20, G: 20, B: 120, A: 255})
	}

	missing := make(map[string]bool, len(opts.Missing))
	for _, id := range opts.Missing {
		missing[id] = true
	}
	for _, id := range card.TarotIdentities() {
		if missing[id] {
			continue
		}
		path, err := deck.BuildCardPath(filepath.Join(root, "h750"), strings.Split(id, "."), ".png")
		if err != nil {
			t.Fatalf("build path: %v", err)
		}
		writePNG(t, path, color.RGBA{R: 200, G: 180, B: 40, A: 255})
	}
	return root
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writePNG(t testing.TB, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
