package style_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/deck"
	"github.com/arcanaland/cardtable/internal/deck/decktest"
	"github.com/arcanaland/cardtable/internal/style"
)

func TestMaskedCardsAlwaysShowTheBack(t *testing.T) {
	s := style.Plain{W: 7, H: 5}
	for _, enc := range card.TarotDeck() {
		c := card.New(enc, true)
		v := style.Render(c, s)
		assert.Equal(t, s.Back(), v.Image)
		assert.NotContains(t, string(v.Image), enc.Identity())
	}
}

func TestToggleChangesOnlyTheImage(t *testing.T) {
	s := style.Plain{W: 7, H: 5}
	c := card.New(card.Tarot{Arcana: card.MajorArcana, Number: "16"}, true)

	masked := style.Render(c, s)
	c.Reveal()
	open := style.Render(c, s)
	c.Mask()
	again := style.Render(c, s)

	assert.NotEqual(t, masked.Image, open.Image)
	assert.Equal(t, masked, again)
	assert.Equal(t, masked.Width, open.Width)
	assert.Equal(t, "major_arcana.16", c.Identity())

	label, ok := style.PlainLabel(open.Image)
	require.True(t, ok)
	assert.Equal(t, "XVI", label)
	_, ok = style.PlainLabel(masked.Image)
	assert.False(t, ok)
	assert.True(t, style.IsPlainBack(masked.Image))
}

func TestRegisterFailsFastOnMissingFaces(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{
		Missing: []string{"major_arcana.03", "minor_arcana.cups.two"},
	})
	d, err := deck.LoadDeck(path)
	require.NoError(t, err)

	_, err = style.ForDeck(d, 120)
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrMissingAsset))

	var cfgErr *style.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "test-deck", cfgErr.Style)
	assert.Equal(t, []string{"major_arcana.03", "minor_arcana.cups.two"}, cfgErr.Missing)
}

func TestRegisterMissingBack(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{NoBack: true})
	d, err := deck.LoadDeck(path)
	require.NoError(t, err)

	_, err = style.ForDeck(d, 120)
	var cfgErr *style.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"card back"}, cfgErr.Missing)
}

func TestDeckStyleRendersPaths(t *testing.T) {
	path := decktest.Write(t, t.TempDir(), decktest.Options{})
	d, err := deck.LoadDeck(path)
	require.NoError(t, err)

	s, err := style.ForDeck(d, 100)
	require.NoError(t, err)
	reg := style.NewRegistry(zerolog.Nop())
	require.NoError(t, reg.Register(s, d.Identities()))
	assert.Error(t, reg.Register(s, d.Identities()), "duplicate style")

	c := card.New(card.Tarot{Arcana: card.MinorArcana, Suit: "swords", Rank: "ace"}, false)
	v := reg.Visual("test-deck", c)
	assert.True(t, strings.HasSuffix(string(v.Image), "ace.png"))
	assert.Equal(t, 60, v.Width)
	assert.Equal(t, 100, v.Height)

	c.Mask()
	v = reg.Visual("test-deck", c)
	assert.True(t, strings.HasSuffix(string(v.Image), "classic.png"))

	refs := style.Refs(s, d.Identities())
	assert.Len(t, refs, 79)
}

func TestUnknownStyleFallsBackToPlaceholder(t *testing.T) {
	reg := style.NewRegistry(zerolog.Nop())
	v := reg.Visual("nope", card.New(card.Opaque("x"), false))
	assert.Equal(t, style.Placeholder, v.Image)
}

func TestConfigurationErrorTruncatesList(t *testing.T) {
	err := &style.ConfigurationError{
		Style:   "s",
		Missing: []string{"a", "b", "c", "d", "e", "f", "g"},
		Err:     style.ErrMissingAsset,
	}
	assert.Equal(t, "style s: missing visual asset: a, b, c, d, e and 2 more", err.Error())
}

func TestRegisterChecksIdentitySet(t *testing.T) {
	reg := style.NewRegistry(zerolog.Nop())
	err := reg.Register(style.Plain{W: 1, H: 1}, []string{"ok", ""})
	assert.ErrorIs(t, err, style.ErrMissingAsset)
	require.NoError(t, reg.Register(style.Plain{W: 1, H: 1}, card.TarotIdentities()))
	_, ok := reg.Get("plain")
	assert.True(t, ok)
}

func TestDecodeScalesDeckImages(t *testing.T) {
	d, err := deck.LoadDeck(decktest.Write(t, t.TempDir(), decktest.Options{}))
	require.NoError(t, err)
	s, err := style.ForDeck(d, 100)
	require.NoError(t, err)

	files := style.Files(s, d.Identities())
	require.Len(t, files, 79)

	img, err := style.Decode(files[0], 60, 100)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	img, err = style.Decode(files[1], 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = style.Decode("missing.png", 1, 1)
	assert.Error(t, err)

	assert.Empty(t, style.Files(style.Plain{W: 1, H: 1}, card.TarotIdentities()))
}
