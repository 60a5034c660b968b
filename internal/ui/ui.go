// Package ui contains the geometry and drawable primitives screens hand to
// a host painter, and the input contract hosts provide each frame.
//
// Nothing here draws pixels or cells; painters live in the host packages.
package ui

import "github.com/arcanaland/cardtable/internal/dnd"

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned area. Coordinates are host units: pixels for a
// canvas host, cells for a terminal host.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Drawable is anything a screen places in its scene.
type Drawable interface {
	Bounds() Rect
}

// Label is a line of text anchored at its top-left corner. Its bounds are
// measured in characters.
type Label struct {
	Text string
	At   Point
}

func (l Label) Bounds() Rect {
	return Rect{X: l.At.X, Y: l.At.Y, W: float64(len(l.Text)), H: 1}
}

// Button is a clickable labelled area. Hot is set when the pointer is over
// it.
type Button struct {
	Text string
	Area Rect
	Hot  bool
}

func (b Button) Bounds() Rect { return b.Area }

// Input is what a screen reads during its update.
type Input interface {
	DragSource
	DropTarget
	// GestureEnded reports that the pointer was released this frame.
	GestureEnded() bool
	// Clicked reports a press and release inside area without a drag.
	Clicked(area Rect) bool
	Position() Point
	// Dragging returns the payload currently carried by the pointer.
	Dragging() (dnd.Payload, bool)
}

// DragSource is the drag half of the host drag channel.
type DragSource interface {
	// DragStarted reports that a drag gesture began on area this frame.
	DragStarted(area Rect) bool
	SetDragPayload(p dnd.Payload)
}

// DropTarget is the release half of the host drag channel.
type DropTarget interface {
	// ReleasePayload returns the payload released over area this frame
	// when accepts allows its selector kind. A payload is handed out once.
	ReleasePayload(area Rect, accepts func(dnd.Kind) bool) (dnd.Payload, bool)
}
