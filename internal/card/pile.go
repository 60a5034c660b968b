package card

import (
	"fmt"
	"math/rand"
)

// Pile is an ordered sequence of cards. Index 0 is the bottom of a stack
// or the leftmost card of a row; the last index is the top or rightmost.
type Pile struct {
	cards []*Card
}

func NewPile(cards ...*Card) *Pile {
	p := &Pile{}
	p.cards = append(p.cards, cards...)
	return p
}

func (p *Pile) Len() int { return len(p.cards) }

// At returns the card at index i, or nil when out of range.
func (p *Pile) At(i int) *Card {
	if i < 0 || i >= len(p.cards) {
		return nil
	}
	return p.cards[i]
}

// Top returns the last card, or nil for an empty pile.
func (p *Pile) Top() *Card {
	return p.At(len(p.cards) - 1)
}

// Models returns a read view for drawing. The slice is a copy; the cards
// are not.
func (p *Pile) Models() []Model {
	out := make([]Model, len(p.cards))
	for i, c := range p.cards {
		out[i] = c
	}
	return out
}

// Put appends c on top of the pile.
func (p *Pile) Put(c *Card) {
	if c == nil {
		return
	}
	p.cards = append(p.cards, c)
}

// Take removes and returns the card at index i, transferring ownership to
// the caller.
func (p *Pile) Take(i int) (*Card, error) {
	if i < 0 || i >= len(p.cards) {
		return nil, fmt.Errorf("index %d out of range for pile of %d", i, len(p.cards))
	}
	c := p.cards[i]
	p.cards = append(p.cards[:i], p.cards[i+1:]...)
	return c, nil
}

// TakeTop removes and returns the top card.
func (p *Pile) TakeTop() (*Card, error) {
	return p.Take(len(p.cards) - 1)
}

// Clear removes every card and returns them in order.
func (p *Pile) Clear() []*Card {
	out := p.cards
	p.cards = nil
	return out
}

// Shuffle reorders the pile in place using rng.
func (p *Pile) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}
