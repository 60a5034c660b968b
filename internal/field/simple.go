package field

import (
	"slices"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/ui"
)

type Mode int

const (
	// Stack overlays every card at the origin; only the top one moves.
	Stack Mode = iota
	// Horizontal lays cards left to right at a fixed spacing.
	Horizontal
)

func (m Mode) String() string {
	if m == Horizontal {
		return "horizontal"
	}
	return "stack"
}

// Role decides which selectors a field produces for its cards.
type Role struct {
	kind   dnd.Kind
	player int
}

// RoleIndex produces Index(i) for card i.
func RoleIndex() Role { return Role{kind: dnd.KindIndex} }

// RolePlayer produces Player(p, i) for card i.
func RolePlayer(p int) Role { return Role{kind: dnd.KindPlayer, player: p} }

// RoleStack produces Stack() for the top card.
func RoleStack() Role { return Role{kind: dnd.KindStack} }

func (r Role) selector(i int) dnd.Selector {
	switch r.kind {
	case dnd.KindPlayer:
		return dnd.Player(r.player, i)
	case dnd.KindStack:
		return dnd.Stack()
	default:
		return dnd.Index(i)
	}
}

// Options configures a Simple field.
type Options struct {
	Mode    Mode
	Origin  ui.Point
	CardW   float64
	CardH   float64
	Spacing float64 // Horizontal only
	Role    Role
	Accepts []dnd.Kind
}

// Simple is the default field: a stack or a horizontal row over a pile
// owned by the game state.
type Simple struct {
	id   string
	pile *card.Pile
	opts Options
}

// NewSimple returns a field that lays out pile.
func NewSimple(id string, pile *card.Pile, opts Options) *Simple {
	if opts.Spacing <= 0 {
		opts.Spacing = opts.CardW
	}
	return &Simple{id: id, pile: pile, opts: opts}
}

func (f *Simple) ID() string { return f.id }

func (f *Simple) Mode() Mode { return f.opts.Mode }

func (f *Simple) Cards() []card.Model {
	if f.pile == nil {
		return nil
	}
	return f.pile.Models()
}

func (f *Simple) Produces() dnd.Kind { return f.opts.Role.kind }

func (f *Simple) Accepted() []dnd.Kind { return f.opts.Accepts }

func (f *Simple) accepts(k dnd.Kind) bool {
	return slices.Contains(f.opts.Accepts, k)
}

// Draw lays out the cards, announces a drag on an eligible card and
// reports an accepted drop on the field area.
func (f *Simple) Draw(h Host) Layout {
	l := f.layout()

	for i := range l.Slots {
		s := l.Slots[i]
		if !s.Draggable || !h.DragStarted(s.Hit) {
			continue
		}
		p := dnd.Payload{Field: f.id, Selector: f.opts.Role.selector(s.Index)}
		h.SetDragPayload(p)
		l.Drag = &p
		break
	}

	if released, ok := h.ReleasePayload(l.Area, f.accepts); ok {
		l.Drop = &Drop{Source: released, Target: f.dropPayload(len(l.Slots))}
	}
	return l
}

func (f *Simple) dropPayload(n int) dnd.Payload {
	return dnd.Payload{Field: f.id, Selector: f.opts.Role.selector(n)}
}

func (f *Simple) layout() Layout {
	cards := f.Cards()
	l := Layout{Field: f.id, Mode: f.opts.Mode, Slots: make([]Slot, len(cards))}
	o, w, h := f.opts.Origin, f.opts.CardW, f.opts.CardH
	footprint := ui.Rect{X: o.X, Y: o.Y, W: w, H: h}

	switch f.opts.Mode {
	case Horizontal:
		l.Area = footprint
		for i, c := range cards {
			area := ui.Rect{X: o.X + float64(i)*f.opts.Spacing, Y: o.Y, W: w, H: h}
			hit := area
			if i < len(cards)-1 && f.opts.Spacing < w {
				hit.W = f.opts.Spacing
			}
			l.Slots[i] = Slot{Index: i, Card: c, Area: area, Hit: hit, Draggable: true}
			l.Area = l.Area.Union(area)
		}
	default:
		l.Area = footprint
		for i, c := range cards {
			top := i == len(cards)-1
			s := Slot{Index: i, Card: c, Area: footprint, Draggable: top}
			if top {
				s.Hit = footprint
			}
			l.Slots[i] = s
		}
	}
	return l
}
