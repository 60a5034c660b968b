// Package table is the demo game: a tarot table with a draw pile, a hand,
// a three-card spread and a discard pile, plus the screens that play it.
package table

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/dnd"
)

// Field ids.
const (
	Deck    = "deck"
	Hand    = "hand"
	Spread  = "spread"
	Discard = "discard"
)

const (
	MaxHand   = 7
	MaxSpread = 3
)

// Source builds a fresh, face-down draw pile.
type Source func() *card.Pile

// TarotSource builds the 78 tarot cards from their encodings alone.
func TarotSource() *card.Pile {
	p := card.NewPile()
	for _, t := range card.TarotDeck() {
		p.Put(card.New(t, true))
	}
	return p
}

// Table owns every pile on the board. It is the only place cards change
// hands.
type Table struct {
	source Source
	rng    *rand.Rand
	piles  map[string]*card.Pile
	log    zerolog.Logger
}

func New(source Source, rng *rand.Rand, log zerolog.Logger) *Table {
	t := &Table{
		source: source,
		rng:    rng,
		piles: map[string]*card.Pile{
			Deck:    card.NewPile(),
			Hand:    card.NewPile(),
			Spread:  card.NewPile(),
			Discard: card.NewPile(),
		},
		log: log,
	}
	t.Reset()
	return t
}

// Reset empties every pile and refills the draw pile from the source,
// shuffled. Piles keep their identity so fields drawing them stay valid.
func (t *Table) Reset() {
	for _, p := range t.piles {
		p.Clear()
	}
	deck := t.piles[Deck]
	for _, c := range t.source().Clear() {
		c.Mask()
		deck.Put(c)
	}
	if t.rng != nil {
		deck.Shuffle(t.rng)
	}
	t.log.Debug().Int("cards", deck.Len()).Msg("table reset")
}

// Pile returns the pile behind a field id, or nil.
func (t *Table) Pile(id string) *card.Pile {
	return t.piles[id]
}

// MoveCard applies a resolved drag. Illegal moves wrap dnd.ErrMoveRejected
// and leave every pile untouched.
func (t *Table) MoveCard(m dnd.Move) error {
	from, to := t.piles[m.From.Field], t.piles[m.To.Field]
	if from == nil || to == nil {
		return fmt.Errorf("%w: unknown field in %s", dnd.ErrMoveRejected, m)
	}
	if m.From.Field == m.To.Field {
		return fmt.Errorf("%w: card is already in the %s", dnd.ErrMoveRejected, m.From.Field)
	}
	if m.From.Field == Discard {
		return fmt.Errorf("%w: discarded cards stay discarded", dnd.ErrMoveRejected)
	}
	switch m.To.Field {
	case Hand:
		if to.Len() >= MaxHand {
			return fmt.Errorf("%w: hand holds at most %d cards", dnd.ErrMoveRejected, MaxHand)
		}
	case Spread:
		if to.Len() >= MaxSpread {
			return fmt.Errorf("%w: spread is full", dnd.ErrMoveRejected)
		}
	}

	i, err := index(m.From.Selector, from)
	if err != nil {
		return fmt.Errorf("%w: %v", dnd.ErrMoveRejected, err)
	}
	c, err := from.Take(i)
	if err != nil {
		return fmt.Errorf("%w: %v", dnd.ErrMoveRejected, err)
	}

	switch m.To.Field {
	case Hand:
		c.Reveal()
	case Deck, Spread:
		c.Mask()
	}
	to.Put(c)
	t.log.Debug().Str("card", c.Identity()).Str("card_id", c.ID.String()).Stringer("move", m).Msg("card moved")
	return nil
}

// Flip turns over the card at index i of a field.
func (t *Table) Flip(field string, i int) error {
	p := t.piles[field]
	if p == nil {
		return fmt.Errorf("unknown field %s", field)
	}
	c := p.At(i)
	if c == nil {
		return fmt.Errorf("no card at %d in %s", i, field)
	}
	c.Flip()
	return nil
}

// index maps a source selector to a pile index.
func index(s dnd.Selector, p *card.Pile) (int, error) {
	switch s.Kind {
	case dnd.KindStack:
		if p.Len() == 0 {
			return 0, fmt.Errorf("pile is empty")
		}
		return p.Len() - 1, nil
	case dnd.KindPlayer:
		return s.Card, nil
	case dnd.KindIndex:
		return s.Index, nil
	default:
		return 0, fmt.Errorf("unsupported selector %s", s)
	}
}
