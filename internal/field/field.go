// Package field defines the contract for on-screen card containers and
// the default stack/row implementation.
//
// A field borrows its cards from the game state for the duration of a
// draw. Drawing announces drags and reports drops; it never changes which
// cards a field holds.
package field

import (
	"fmt"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/ui"
)

// Host is the drag channel a field talks to while drawing.
type Host interface {
	ui.DragSource
	ui.DropTarget
}

// Widget is any card container.
type Widget interface {
	ID() string
	Cards() []card.Model
	Draw(h Host) Layout
	// Produces is the selector kind the field announces on drag.
	Produces() dnd.Kind
	// Accepted lists the selector kinds the field takes drops from.
	Accepted() []dnd.Kind
}

// Slot is one card placed by a layout.
type Slot struct {
	Index     int
	Card      card.Model
	Area      ui.Rect
	Hit       ui.Rect
	Draggable bool
}

// Drop is a released payload that landed on a field, with the selector
// the field offers as destination.
type Drop struct {
	Source dnd.Payload
	Target dnd.Payload
}

// Layout is the drawable result of a draw call.
type Layout struct {
	Field string
	Mode  Mode
	Area  ui.Rect
	Slots []Slot

	// Drag is set when a drag started on one of the slots.
	Drag *dnd.Payload
	// Drop is set when an accepted payload was released over Area.
	Drop *Drop
}

func (l Layout) Bounds() ui.Rect { return l.Area }

// Static is a host with no pointer activity, for drawing previews.
var Static Host = static{}

type static struct{}

func (static) DragStarted(ui.Rect) bool { return false }
func (static) SetDragPayload(dnd.Payload) {}
func (static) ReleasePayload(ui.Rect, func(dnd.Kind) bool) (dnd.Payload, bool) {
	return dnd.Payload{}, false
}

// Board is an ordered set of fields drawn in registration order.
type Board struct {
	fields []Widget
	byID   map[string]Widget
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{byID: make(map[string]Widget)}
}

// Add registers w after checking the selector kinds it declares.
func (b *Board) Add(w Widget) error {
	if w == nil {
		return fmt.Errorf("nil field")
	}
	id := w.ID()
	if id == "" {
		return fmt.Errorf("field id is required")
	}
	if _, exists := b.byID[id]; exists {
		return fmt.Errorf("duplicate field id: %s", id)
	}
	if !w.Produces().Valid() {
		return fmt.Errorf("field %s produces undeclared selector kind %s", id, w.Produces())
	}
	for _, k := range w.Accepted() {
		if !k.Valid() {
			return fmt.Errorf("field %s accepts undeclared selector kind %s", id, k)
		}
	}
	b.fields = append(b.fields, w)
	b.byID[id] = w
	return nil
}

// Field returns the field registered under id.
func (b *Board) Field(id string) (Widget, bool) {
	w, ok := b.byID[id]
	return w, ok
}

// Fields returns the fields in drawing order.
func (b *Board) Fields() []Widget {
	return append([]Widget(nil), b.fields...)
}

// Draw draws every field in order against h.
func (b *Board) Draw(h Host) []Layout {
	out := make([]Layout, 0, len(b.fields))
	for _, f := range b.fields {
		out = append(out, f.Draw(h))
	}
	return out
}

// Floating is a card carried by the pointer, drawn above every field.
type Floating struct {
	Card card.Model
	Area ui.Rect
}

func (f Floating) Bounds() ui.Rect { return f.Area }
