// Package dnd holds the drag-and-drop protocol between fields and the
// game state: selectors, payloads and the coordinator that pairs a drag
// with a drop.
package dnd

import "fmt"

// Kind tags a Selector variant.
type Kind uint8

const (
	KindIndex Kind = iota
	KindPlayer
	KindStack
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindPlayer:
		return "player"
	case KindStack:
		return "stack"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the declared variants.
func (k Kind) Valid() bool { return k <= KindStack }

// Selector locates a card in the game's own state. Fields produce and
// consume selectors without interpreting them.
type Selector struct {
	Kind   Kind
	Player int // KindPlayer
	Card   int // KindPlayer
	Index  int // KindIndex
}

// Player selects card c of player p.
func Player(p, c int) Selector { return Selector{Kind: KindPlayer, Player: p, Card: c} }

// Stack selects the top of the stack named by the field carrying it.
func Stack() Selector { return Selector{Kind: KindStack} }

// Index selects a generic position.
func Index(i int) Selector { return Selector{Kind: KindIndex, Index: i} }

func (s Selector) String() string {
	switch s.Kind {
	case KindPlayer:
		return fmt.Sprintf("Player(%d,%d)", s.Player, s.Card)
	case KindStack:
		return "Stack"
	case KindIndex:
		return fmt.Sprintf("Index(%d)", s.Index)
	default:
		return s.Kind.String()
	}
}

// Payload is what travels through the host drag channel: a selector plus
// the id of the field that produced it.
type Payload struct {
	Field    string
	Selector Selector
}

func (p Payload) String() string {
	return p.Field + ":" + p.Selector.String()
}

// Move is one resolved (source, destination) pair.
type Move struct {
	From Payload
	To   Payload
}

func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}
