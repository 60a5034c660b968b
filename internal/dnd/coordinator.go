package dnd

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrMoveRejected is wrapped by Mover implementations that decline a move.
var ErrMoveRejected = errors.New("move rejected")

// Mover is the game-state hook that owns legality.
type Mover interface {
	MoveCard(m Move) error
}

// MoverFunc adapts a function to Mover.
type MoverFunc func(m Move) error

func (f MoverFunc) MoveCard(m Move) error { return f(m) }

// Phase is the coordinator state.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Resolved
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Coordinator holds the drag and drop slots for one screen. It is driven
// from a single frame loop and is not safe for concurrent use.
type Coordinator struct {
	drag *Payload
	drop *Payload
	log  zerolog.Logger
}

// NewCoordinator returns an idle coordinator.
func NewCoordinator(log zerolog.Logger) *Coordinator {
	return &Coordinator{log: log}
}

// Phase reports the current state.
func (c *Coordinator) Phase() Phase {
	switch {
	case c.drag != nil && c.drop != nil:
		return Resolved
	case c.drag != nil:
		return Dragging
	default:
		return Idle
	}
}

// Drag returns the in-progress drag, if any.
func (c *Coordinator) Drag() (Payload, bool) {
	if c.drag == nil {
		return Payload{}, false
	}
	return *c.drag, true
}

// DropTarget returns the detected drop target, if any.
func (c *Coordinator) DropTarget() (Payload, bool) {
	if c.drop == nil {
		return Payload{}, false
	}
	return *c.drop, true
}

// BeginDrag moves Idle to Dragging. A second announcement within the same
// gesture is ignored.
func (c *Coordinator) BeginDrag(p Payload) {
	if c.Phase() != Idle {
		c.log.Debug().Stringer("payload", p).Stringer("phase", c.Phase()).Msg("drag start ignored")
		return
	}
	c.drag = &p
	c.log.Debug().Stringer("payload", p).Msg("drag started")
}

// Drop moves Dragging to Resolved when released matches the stored drag.
// Anything else is a stale gesture and is ignored.
func (c *Coordinator) Drop(released, target Payload) bool {
	if c.Phase() != Dragging || *c.drag != released {
		c.log.Debug().Stringer("released", released).Stringer("target", target).Msg("stale drop ignored")
		return false
	}
	c.drop = &target
	c.log.Debug().Stringer("target", target).Msg("drop detected")
	return true
}

// EndGesture cancels a drag that finished without a drop. It leaves a
// Resolved pair for Resolve.
func (c *Coordinator) EndGesture() {
	if c.Phase() != Dragging {
		return
	}
	c.log.Debug().Stringer("payload", *c.drag).Msg("drag cancelled")
	c.drag = nil
}

// Resolve delivers the resolved pair to m exactly once and clears both
// slots whatever m returns. It reports whether a move was delivered.
func (c *Coordinator) Resolve(m Mover) (Move, bool, error) {
	if c.Phase() != Resolved {
		return Move{}, false, nil
	}
	mv := Move{From: *c.drag, To: *c.drop}
	c.drag, c.drop = nil, nil

	err := m.MoveCard(mv)
	if err != nil {
		c.log.Info().Err(err).Stringer("move", mv).Msg("move not applied")
	} else {
		c.log.Debug().Stringer("move", mv).Msg("move applied")
	}
	return mv, true, err
}

// Reset clears both slots.
func (c *Coordinator) Reset() {
	c.drag, c.drop = nil, nil
}
