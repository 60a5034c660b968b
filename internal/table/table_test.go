package table

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/dnd"
)

func newTable(t *testing.T) *Table {
	t.Helper()
	return New(TarotSource, nil, zerolog.Nop())
}

func move(from string, fs dnd.Selector, to string, ts dnd.Selector) dnd.Move {
	return dnd.Move{
		From: dnd.Payload{Field: from, Selector: fs},
		To:   dnd.Payload{Field: to, Selector: ts},
	}
}

func TestNewTableDealsFaceDown(t *testing.T) {
	tb := newTable(t)
	deck := tb.Pile(Deck)
	require.Equal(t, 78, deck.Len())
	for i := 0; i < deck.Len(); i++ {
		assert.True(t, deck.At(i).IsMasked())
	}
	for _, id := range []string{Hand, Spread, Discard} {
		assert.Equal(t, 0, tb.Pile(id).Len(), id)
	}
	assert.Nil(t, tb.Pile("nope"))
}

func TestMoveTransfersTopCard(t *testing.T) {
	tb := newTable(t)
	top := tb.Pile(Deck).Top()

	require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Hand, dnd.Player(0, 0))))
	assert.Equal(t, 77, tb.Pile(Deck).Len())
	assert.Same(t, top, tb.Pile(Hand).At(0))
	assert.False(t, top.IsMasked(), "cards are revealed in the hand")

	require.NoError(t, tb.MoveCard(move(Hand, dnd.Player(0, 0), Spread, dnd.Index(0))))
	assert.True(t, top.IsMasked(), "spread cards go down face down")
}

func TestMoveKeepsCardInstance(t *testing.T) {
	tb := newTable(t)
	id := tb.Pile(Deck).Top().ID

	require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Spread, dnd.Index(0))))
	require.NoError(t, tb.MoveCard(move(Spread, dnd.Index(0), Hand, dnd.Player(0, 0))))
	assert.Equal(t, id, tb.Pile(Hand).At(0).ID)
	assert.Equal(t, 0, tb.Pile(Spread).Len())
	for i := 0; i < tb.Pile(Deck).Len(); i++ {
		assert.NotEqual(t, id, tb.Pile(Deck).At(i).ID)
	}
}

func TestRejectedMovesLeavePilesAlone(t *testing.T) {
	tb := newTable(t)
	require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Discard, dnd.Stack())))

	tests := []struct {
		name string
		mv   dnd.Move
	}{
		{"same field", move(Deck, dnd.Stack(), Deck, dnd.Stack())},
		{"unknown field", move("table", dnd.Index(0), Hand, dnd.Player(0, 0))},
		{"from discard", move(Discard, dnd.Stack(), Hand, dnd.Player(0, 0))},
		{"out of range", move(Spread, dnd.Index(4), Hand, dnd.Player(0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tb.MoveCard(tt.mv)
			require.ErrorIs(t, err, dnd.ErrMoveRejected)
			assert.Equal(t, 77, tb.Pile(Deck).Len())
			assert.Equal(t, 1, tb.Pile(Discard).Len())
			assert.Equal(t, 0, tb.Pile(Hand).Len())
		})
	}
}

func TestCapacityLimits(t *testing.T) {
	tb := newTable(t)
	for i := 0; i < MaxHand; i++ {
		require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Hand, dnd.Player(0, i))))
	}
	err := tb.MoveCard(move(Deck, dnd.Stack(), Hand, dnd.Player(0, MaxHand)))
	assert.ErrorIs(t, err, dnd.ErrMoveRejected)
	assert.Contains(t, err.Error(), "at most 7")

	for i := 0; i < MaxSpread; i++ {
		require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Spread, dnd.Index(i))))
	}
	err = tb.MoveCard(move(Deck, dnd.Stack(), Spread, dnd.Index(MaxSpread)))
	assert.ErrorIs(t, err, dnd.ErrMoveRejected)
	assert.Equal(t, 78-MaxHand-MaxSpread, tb.Pile(Deck).Len())
}

func TestResetGathersCards(t *testing.T) {
	tb := New(TarotSource, rand.New(rand.NewSource(1)), zerolog.Nop())
	deck := tb.Pile(Deck)
	require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Hand, dnd.Player(0, 0))))

	tb.Reset()
	assert.Same(t, deck, tb.Pile(Deck), "piles keep their identity")
	assert.Equal(t, 78, deck.Len())
	assert.Equal(t, 0, tb.Pile(Hand).Len())
}

func TestFlip(t *testing.T) {
	tb := New(func() *card.Pile { return card.NewPile(card.New(card.Opaque("x"), true)) }, nil, zerolog.Nop())
	require.NoError(t, tb.MoveCard(move(Deck, dnd.Stack(), Spread, dnd.Index(0))))

	require.NoError(t, tb.Flip(Spread, 0))
	assert.False(t, tb.Pile(Spread).At(0).IsMasked())
	assert.Error(t, tb.Flip(Spread, 1))
	assert.Error(t, tb.Flip("nope", 0))
}
