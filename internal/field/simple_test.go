package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/ui"
)

// fakeHost starts a drag wherever press lands and releases its payload at
// release.
type fakeHost struct {
	press    *ui.Point
	release  *ui.Point
	payload  *dnd.Payload
	announce []dnd.Payload
}

func (h *fakeHost) DragStarted(area ui.Rect) bool {
	return h.press != nil && area.Contains(*h.press)
}

func (h *fakeHost) SetDragPayload(p dnd.Payload) {
	h.payload = &p
	h.announce = append(h.announce, p)
}

func (h *fakeHost) ReleasePayload(area ui.Rect, accepts func(dnd.Kind) bool) (dnd.Payload, bool) {
	if h.release == nil || h.payload == nil || !area.Contains(*h.release) || !accepts(h.payload.Selector.Kind) {
		return dnd.Payload{}, false
	}
	p := *h.payload
	h.payload = nil
	return p, true
}

func pileOf(n int) *card.Pile {
	p := card.NewPile()
	for i := 0; i < n; i++ {
		p.Put(card.New(card.Opaque(string(rune('a'+i))), false))
	}
	return p
}

func stackField(n int) *Simple {
	return NewSimple("A", pileOf(n), Options{
		Mode:    Stack,
		Origin:  ui.Point{X: 10, Y: 10},
		CardW:   70,
		CardH:   100,
		Role:    RoleIndex(),
		Accepts: []dnd.Kind{dnd.KindIndex},
	})
}

func rowField(n int) *Simple {
	return NewSimple("B", pileOf(n), Options{
		Mode:    Horizontal,
		Origin:  ui.Point{X: 200, Y: 10},
		CardW:   70,
		CardH:   100,
		Spacing: 30,
		Role:    RoleIndex(),
		Accepts: []dnd.Kind{dnd.KindIndex, dnd.KindStack},
	})
}

func TestStackOnlyTopIsDraggable(t *testing.T) {
	l := stackField(4).Draw(Static)
	require.Len(t, l.Slots, 4)
	for i, s := range l.Slots {
		assert.Equal(t, i == 3, s.Draggable, "slot %d", i)
		assert.Equal(t, ui.Rect{X: 10, Y: 10, W: 70, H: 100}, s.Area)
	}
	assert.Equal(t, ui.Rect{X: 10, Y: 10, W: 70, H: 100}, l.Area)
}

func TestHorizontalAllDraggableWithVisibleStrips(t *testing.T) {
	l := rowField(3).Draw(Static)
	require.Len(t, l.Slots, 3)
	for _, s := range l.Slots {
		assert.True(t, s.Draggable)
	}
	assert.Equal(t, ui.Rect{X: 200, Y: 10, W: 30, H: 100}, l.Slots[0].Hit)
	assert.Equal(t, ui.Rect{X: 230, Y: 10, W: 30, H: 100}, l.Slots[1].Hit)
	assert.Equal(t, ui.Rect{X: 260, Y: 10, W: 70, H: 100}, l.Slots[2].Hit)
	assert.Equal(t, ui.Rect{X: 200, Y: 10, W: 130, H: 100}, l.Area)
}

func TestEmptyRowStillHasDropArea(t *testing.T) {
	l := rowField(0).Draw(Static)
	assert.Empty(t, l.Slots)
	assert.Equal(t, ui.Rect{X: 200, Y: 10, W: 70, H: 100}, l.Area)
}

func TestDrawIsIdempotent(t *testing.T) {
	for _, f := range []*Simple{stackField(3), rowField(5)} {
		before := f.Cards()
		first := f.Draw(Static)
		second := f.Draw(Static)
		assert.Equal(t, first, second)
		assert.Equal(t, before, f.Cards())
	}
}

func TestStackDragAnnouncesTopIndex(t *testing.T) {
	f := stackField(3)
	h := &fakeHost{press: &ui.Point{X: 20, Y: 20}}
	l := f.Draw(h)
	require.NotNil(t, l.Drag)
	assert.Equal(t, dnd.Payload{Field: "A", Selector: dnd.Index(2)}, *l.Drag)
	assert.Len(t, h.announce, 1)
	assert.Equal(t, 3, f.pile.Len())
}

func TestRowDragPicksVisibleCard(t *testing.T) {
	f := rowField(3)
	h := &fakeHost{press: &ui.Point{X: 245, Y: 50}}
	l := f.Draw(h)
	require.NotNil(t, l.Drag)
	assert.Equal(t, dnd.Index(1), l.Drag.Selector)
}

func TestDropReportsWithoutMutating(t *testing.T) {
	src := stackField(3)
	dst := rowField(0)
	h := &fakeHost{press: &ui.Point{X: 20, Y: 20}}
	src.Draw(h)

	h.press = nil
	h.release = &ui.Point{X: 210, Y: 50}
	l := dst.Draw(h)
	require.NotNil(t, l.Drop)
	assert.Equal(t, dnd.Payload{Field: "A", Selector: dnd.Index(2)}, l.Drop.Source)
	assert.Equal(t, dnd.Payload{Field: "B", Selector: dnd.Index(0)}, l.Drop.Target)
	assert.Equal(t, 3, src.pile.Len())
	assert.Equal(t, 0, dst.pile.Len())
}

func TestDropOfUnacceptedKindIsNotTaken(t *testing.T) {
	dst := NewSimple("deck", pileOf(1), Options{
		Mode: Stack, CardW: 10, CardH: 10, Role: RoleStack(),
	})
	payload := dnd.Payload{Field: "hand", Selector: dnd.Player(0, 0)}
	h := &fakeHost{release: &ui.Point{X: 1, Y: 1}, payload: &payload}
	l := dst.Draw(h)
	assert.Nil(t, l.Drop)
	assert.NotNil(t, h.payload)
}

func TestRolesProduceSelectors(t *testing.T) {
	hand := NewSimple("hand", pileOf(2), Options{
		Mode: Horizontal, CardW: 10, CardH: 10, Role: RolePlayer(1), Accepts: []dnd.Kind{dnd.KindStack},
	})
	h := &fakeHost{press: &ui.Point{X: 15, Y: 5}}
	l := hand.Draw(h)
	require.NotNil(t, l.Drag)
	assert.Equal(t, dnd.Player(1, 1), l.Drag.Selector)

	deck := NewSimple("deck", pileOf(2), Options{Mode: Stack, CardW: 10, CardH: 10, Role: RoleStack()})
	h = &fakeHost{press: &ui.Point{X: 5, Y: 5}}
	l = deck.Draw(h)
	require.NotNil(t, l.Drag)
	assert.Equal(t, dnd.Stack(), l.Drag.Selector)
	assert.Equal(t, dnd.KindStack, deck.Produces())
}

func TestBoardRegistration(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Add(stackField(1)))
	require.NoError(t, b.Add(rowField(1)))
	assert.Error(t, b.Add(stackField(1)), "duplicate id")
	assert.Error(t, b.Add(NewSimple("", pileOf(0), Options{})))
	assert.Error(t, b.Add(NewSimple("bad", pileOf(0), Options{Accepts: []dnd.Kind{dnd.Kind(7)}})))
	assert.Error(t, b.Add(NewSimple("bad2", pileOf(0), Options{Role: Role{kind: dnd.Kind(5)}})))

	got, ok := b.Field("B")
	require.True(t, ok)
	assert.Equal(t, "B", got.ID())
	assert.Len(t, b.Draw(Static), 2)
	assert.Len(t, b.Fields(), 2)
}
