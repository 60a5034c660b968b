package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/ui"
)

var (
	source = ui.Rect{X: 0, Y: 0, W: 50, H: 50}
	target = ui.Rect{X: 100, Y: 0, W: 50, H: 50}
	all    = func(dnd.Kind) bool { return true }
)

func frame(t *Tracker, s Sample, body func()) {
	t.Begin(s)
	if body != nil {
		body()
	}
	t.End()
}

func TestSmallMovementIsAClick(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	frame(tr, Sample{X: 10, Y: 10, Down: true}, func() {
		assert.False(t, tr.DragStarted(source))
	})
	frame(tr, Sample{X: 12, Y: 11, Down: true}, func() {
		assert.False(t, tr.DragStarted(source))
	})
	frame(tr, Sample{X: 12, Y: 11}, func() {
		assert.True(t, tr.Clicked(source))
		assert.True(t, tr.GestureEnded())
	})
}

func TestDragAndReleaseOverTarget(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	p := dnd.Payload{Field: "src", Selector: dnd.Index(0)}

	frame(tr, Sample{X: 10, Y: 10, Down: true}, nil)
	frame(tr, Sample{X: 40, Y: 10, Down: true}, func() {
		require.True(t, tr.DragStarted(source))
		assert.False(t, tr.DragStarted(target), "drag belongs to where it was pressed")
		tr.SetDragPayload(p)
		assert.False(t, tr.DragStarted(source), "payload already claimed")
	})
	frame(tr, Sample{X: 90, Y: 10, Down: true}, func() {
		assert.False(t, tr.DragStarted(source), "drag start is reported once")
		got, ok := tr.Dragging()
		require.True(t, ok)
		assert.Equal(t, p, got)
		assert.Equal(t, ui.Point{X: 80, Y: 0}, tr.Grab())
	})
	frame(tr, Sample{X: 120, Y: 10}, func() {
		_, ok := tr.ReleasePayload(source, all)
		assert.False(t, ok)
		got, ok := tr.ReleasePayload(target, all)
		require.True(t, ok)
		assert.Equal(t, p, got)
		_, ok = tr.ReleasePayload(target, all)
		assert.False(t, ok, "payload is handed out once")
		assert.True(t, tr.GestureEnded())
		assert.False(t, tr.Clicked(target))
	})

	_, ok := tr.Dragging()
	assert.False(t, ok)
}

func TestReleaseOutsideEndsGesture(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	frame(tr, Sample{X: 10, Y: 10, Down: true}, nil)
	frame(tr, Sample{X: 30, Y: 30, Down: true}, func() {
		tr.SetDragPayload(dnd.Payload{Field: "src"})
	})
	frame(tr, Sample{X: 300, Y: 300}, func() {
		assert.True(t, tr.GestureEnded())
		_, ok := tr.ReleasePayload(target, all)
		assert.False(t, ok)
	})

	// next gesture starts clean
	frame(tr, Sample{X: 120, Y: 10, Down: true}, nil)
	frame(tr, Sample{X: 120, Y: 10}, func() {
		_, ok := tr.ReleasePayload(target, all)
		assert.False(t, ok)
		assert.True(t, tr.Clicked(target))
	})
}

func TestReleaseRespectsAcceptedKinds(t *testing.T) {
	tr := NewTracker(0)
	frame(tr, Sample{X: 10, Y: 10, Down: true}, nil)
	frame(tr, Sample{X: 11, Y: 10, Down: true}, func() {
		require.True(t, tr.DragStarted(source))
		tr.SetDragPayload(dnd.Payload{Field: "src", Selector: dnd.Player(0, 1)})
	})
	frame(tr, Sample{X: 110, Y: 10}, func() {
		_, ok := tr.ReleasePayload(target, func(k dnd.Kind) bool { return k == dnd.KindStack })
		assert.False(t, ok)
		_, ok = tr.ReleasePayload(target, func(k dnd.Kind) bool { return k == dnd.KindPlayer })
		assert.True(t, ok)
	})
}

func TestPayloadIgnoredWithoutDrag(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	frame(tr, Sample{X: 10, Y: 10, Down: true}, func() {
		tr.SetDragPayload(dnd.Payload{Field: "src"})
	})
	_, ok := tr.Dragging()
	assert.False(t, ok)
}
