package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtable/internal/deck/decktest"
	"github.com/arcanaland/cardtable/internal/validator"
)

func TestCompleteDeckIsValid(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{})
	res, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Contains(t, res.Warnings, "no ANSI art directories found (ansi32/, ansi256/)")
}

func TestMissingFacesAreErrors(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{Missing: []string{"major_arcana.07"}})
	res, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Contains(t, res.Errors, "missing card images: major_arcana.07")
}

func TestMissingBackIsAnError(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{NoBack: true})
	res, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Contains(t, res.Errors, "card back image not found: card_backs/classic.png")
	assert.Contains(t, res.Errors, "no usable card back image")
	assert.Contains(t, res.Warnings, "card_backs directory not found")
}

func TestRequiredDeckFields(t *testing.T) {
	toml := `[deck]
schema_version = "2.0"
`
	path := decktest.Write(t, t.TempDir(), decktest.Options{DeckToml: toml})
	res, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Contains(t, res.Errors, "deck.id is required in deck.toml")
	assert.Contains(t, res.Errors, "deck.name is required in deck.toml")
	assert.Contains(t, res.Errors, "deck.version is required in deck.toml")
	assert.Contains(t, res.Errors, "unsupported schema_version: 2.0 (supported: 1.0)")
}

func TestUnreadableDeck(t *testing.T) {
	_, err := validator.NewValidator(t.TempDir()).Validate()
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.toml"), []byte("[deck"), 0644))
	_, err = validator.NewValidator(dir).Validate()
	assert.Error(t, err)
}

func TestPartialAnsiArtWarns(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{})
	dir := filepath.Join(path, "ansi32", "major_arcana")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00.ansi"), []byte("x"), 0644))

	res, err := validator.NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, "missing ANSI art for 77 cards")
}
