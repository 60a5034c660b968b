package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskRevealKeepsIdentity(t *testing.T) {
	c := New(Opaque("joker"), true)
	require.True(t, c.IsMasked())

	c.Reveal()
	assert.False(t, c.IsMasked())
	assert.Equal(t, "joker", c.Identity())

	c.Mask()
	assert.True(t, c.IsMasked())
	assert.Equal(t, "joker", c.Identity())

	c.Flip()
	assert.False(t, c.IsMasked())
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	a := New(Opaque("x"), false)
	b := New(Opaque("x"), false)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPileTakeTransfersOwnership(t *testing.T) {
	a, b, c := New(Opaque("a"), false), New(Opaque("b"), false), New(Opaque("c"), false)
	src := NewPile(a, b, c)
	dst := NewPile()

	got, err := src.Take(1)
	require.NoError(t, err)
	dst.Put(got)

	assert.Same(t, b, got)
	assert.Equal(t, 2, src.Len())
	assert.Same(t, c, src.Top())
	assert.Same(t, b, dst.Top())

	_, err = src.Take(5)
	assert.Error(t, err)
	_, err = NewPile().TakeTop()
	assert.Error(t, err)
}

func TestPileModelsIsAView(t *testing.T) {
	a := New(Opaque("a"), true)
	p := NewPile(a)
	models := p.Models()
	require.Len(t, models, 1)
	models[0] = nil
	assert.Same(t, a, p.At(0))
	assert.Nil(t, p.At(3))
}

func TestShuffleKeepsCards(t *testing.T) {
	var cards []*Card
	for _, id := range TarotIdentities() {
		cards = append(cards, New(Opaque(id), true))
	}
	p := NewPile(cards...)
	p.Shuffle(rand.New(rand.NewSource(7)))

	require.Equal(t, len(cards), p.Len())
	seen := map[*Card]bool{}
	for i := 0; i < p.Len(); i++ {
		seen[p.At(i)] = true
	}
	assert.Len(t, seen, len(cards))
}

func TestTarotIdentities(t *testing.T) {
	ids := TarotIdentities()
	require.Len(t, ids, 78)
	assert.Equal(t, "major_arcana.00", ids[0])
	assert.Equal(t, "major_arcana.21", ids[21])
	assert.Equal(t, "minor_arcana.wands.ace", ids[22])
	assert.Equal(t, "minor_arcana.pentacles.king", ids[77])
}

func TestParseTarot(t *testing.T) {
	tests := []struct {
		id      string
		want    Tarot
		wantErr bool
	}{
		{id: "major_arcana.13", want: Tarot{Arcana: MajorArcana, Number: "13"}},
		{id: "minor_arcana.cups.queen", want: Tarot{Arcana: MinorArcana, Suit: "cups", Rank: "queen"}},
		{id: "major_arcana.22", wantErr: true},
		{id: "major_arcana.7", wantErr: true},
		{id: "minor_arcana.coins.ace", wantErr: true},
		{id: "minor_arcana.cups.jack", wantErr: true},
		{id: "spades.ace", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseTarot(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.Identity())
		})
	}
}

func TestTarotShort(t *testing.T) {
	assert.Equal(t, "XIII", Tarot{Arcana: MajorArcana, Number: "13"}.Short())
	assert.Equal(t, "0", Tarot{Arcana: MajorArcana, Number: "00"}.Short())
	assert.Equal(t, "10C", Tarot{Arcana: MinorArcana, Suit: "cups", Rank: "ten"}.Short())
	assert.Equal(t, "QS", Tarot{Arcana: MinorArcana, Suit: "swords", Rank: "queen"}.Short())
	assert.Equal(t, "AW", Tarot{Arcana: MinorArcana, Suit: "wands", Rank: "ace"}.Short())
}
