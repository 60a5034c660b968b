package card

import "github.com/google/uuid"

// Encoding is the game-defined identity of a card (suit and rank, an
// opaque id, a tarot canonical id). Implementations must be pure.
type Encoding interface {
	Identity() string
}

// Model is anything that can be laid out on a field: an identity plus a
// face-up/face-down flag.
type Model interface {
	Encoding
	IsMasked() bool
}

// Card is the concrete card owned by exactly one Pile at a time.
type Card struct {
	ID       uuid.UUID
	Encoding Encoding
	masked   bool
}

// New creates a card with a fresh instance id.
func New(enc Encoding, masked bool) *Card {
	return &Card{ID: uuid.New(), Encoding: enc, masked: masked}
}

func (c *Card) Identity() string {
	if c.Encoding == nil {
		return ""
	}
	return c.Encoding.Identity()
}

func (c *Card) IsMasked() bool { return c.masked }

// Reveal turns the card face up.
func (c *Card) Reveal() { c.masked = false }

// Mask turns the card face down.
func (c *Card) Mask() { c.masked = true }

// Flip toggles visibility.
func (c *Card) Flip() { c.masked = !c.masked }

// Opaque is an encoding whose identity is the string itself.
type Opaque string

func (o Opaque) Identity() string { return string(o) }
