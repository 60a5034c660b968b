// Package gesture turns raw per-frame pointer samples into the drag
// channel fields talk to, with an explicit end-of-gesture signal.
package gesture

import (
	"math"

	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/ui"
)

// DefaultThreshold is the pointer travel, in host units, below which a
// press and release is a click rather than a drag.
const DefaultThreshold = 6

// Sample is the pointer state a host reads once per frame.
type Sample struct {
	X, Y float64
	Down bool
}

// Tracker implements ui.Input. Call Begin before the frame's update and
// End after it.
type Tracker struct {
	threshold float64

	pos     ui.Point
	pressAt ui.Point
	down    bool

	pressed  bool
	released bool

	dragging   bool
	dragBegins bool
	payload    *dnd.Payload
}

// NewTracker returns a tracker with the given drag threshold.
func NewTracker(threshold float64) *Tracker {
	if threshold < 0 {
		threshold = 0
	}
	return &Tracker{threshold: threshold}
}

// Begin records this frame's sample and derives the gesture edges.
func (t *Tracker) Begin(s Sample) {
	t.pos = ui.Point{X: s.X, Y: s.Y}
	t.pressed = s.Down && !t.down
	t.released = !s.Down && t.down
	t.dragBegins = false

	if t.pressed {
		t.pressAt = t.pos
		t.dragging = false
		t.payload = nil
	}
	if s.Down && !t.pressed && !t.dragging && t.travel() >= t.threshold {
		t.dragging = true
		t.dragBegins = true
	}
	t.down = s.Down
}

// End closes the frame. A released gesture drops whatever payload nobody
// took.
func (t *Tracker) End() {
	if t.released {
		t.dragging = false
		t.payload = nil
	}
	t.pressed, t.released, t.dragBegins = false, false, false
}

func (t *Tracker) travel() float64 {
	return math.Hypot(t.pos.X-t.pressAt.X, t.pos.Y-t.pressAt.Y)
}

// DragStarted reports whether a drag began this frame from a press inside area.
func (t *Tracker) DragStarted(area ui.Rect) bool {
	return t.dragBegins && t.payload == nil && area.Contains(t.pressAt)
}

// SetDragPayload attaches the dragged card to the current gesture.
func (t *Tracker) SetDragPayload(p dnd.Payload) {
	if !t.dragging {
		return
	}
	t.payload = &p
}

// ReleasePayload hands the payload to the area it was released over.
func (t *Tracker) ReleasePayload(area ui.Rect, accepts func(dnd.Kind) bool) (dnd.Payload, bool) {
	if !t.released || t.payload == nil || !area.Contains(t.pos) {
		return dnd.Payload{}, false
	}
	if accepts != nil && !accepts(t.payload.Selector.Kind) {
		return dnd.Payload{}, false
	}
	p := *t.payload
	t.payload = nil
	return p, true
}

// GestureEnded reports whether the button was released this frame.
func (t *Tracker) GestureEnded() bool { return t.released }

// Clicked reports a press and release inside area without a drag.
func (t *Tracker) Clicked(area ui.Rect) bool {
	return t.released && !t.dragging && area.Contains(t.pressAt) && area.Contains(t.pos)
}

// Position is the pointer position this frame.
func (t *Tracker) Position() ui.Point { return t.pos }

// Dragging returns the payload carried by the pointer, if any.
func (t *Tracker) Dragging() (dnd.Payload, bool) {
	if !t.dragging || t.payload == nil {
		return dnd.Payload{}, false
	}
	return *t.payload, true
}

// Grab is the offset of the pointer from where the gesture was pressed.
func (t *Tracker) Grab() ui.Point {
	return ui.Point{X: t.pos.X - t.pressAt.X, Y: t.pos.Y - t.pressAt.Y}
}
