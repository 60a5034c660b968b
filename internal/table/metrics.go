package table

import (
	"github.com/arcanaland/cardtable/internal/ui"
)

// Metrics sizes the board in host units.
type Metrics struct {
	CardW, CardH float64
	Gap          float64
	Line         float64
	ButtonW      float64
	ButtonH      float64
	// Overlap is the horizontal step between hand cards.
	Overlap float64
}

// PixelMetrics sizes the board for a canvas with cards of w by h pixels.
func PixelMetrics(w, h int) Metrics {
	return Metrics{
		CardW:   float64(w),
		CardH:   float64(h),
		Gap:     16,
		Line:    16,
		ButtonW: 96,
		ButtonH: 28,
		Overlap: float64(w) / 2,
	}
}

// CellMetrics sizes the board for a terminal grid.
func CellMetrics() Metrics {
	return Metrics{CardW: 6, CardH: 4, Gap: 3, Line: 1, ButtonW: 10, ButtonH: 3, Overlap: 3}
}

func (m Metrics) top() float64 { return m.Line*2 + m.Gap }

func (m Metrics) deckAt() ui.Point { return ui.Point{X: m.Gap, Y: m.top()} }

func (m Metrics) discardAt() ui.Point {
	return ui.Point{X: m.Gap*2 + m.CardW, Y: m.top()}
}

func (m Metrics) spreadAt() ui.Point {
	return ui.Point{X: m.Gap*4 + m.CardW*2, Y: m.top()}
}

func (m Metrics) handAt() ui.Point {
	return ui.Point{X: m.Gap, Y: m.top() + m.CardH + m.Gap*2 + m.Line}
}

func (m Metrics) buttonsY() float64 {
	return m.handAt().Y + m.CardH + m.Gap + m.Line
}

// caption places a label under a field.
func (m Metrics) caption(at ui.Point) ui.Point {
	return ui.Point{X: at.X, Y: at.Y + m.CardH + m.Line/4}
}

// Size is the smallest canvas that shows the whole board.
func (m Metrics) Size() ui.Rect {
	w := m.spreadAt().X + MaxSpread*(m.CardW+m.Gap)
	if hand := m.handAt().X + (MaxHand-1)*m.Overlap + m.CardW + m.Gap; hand > w {
		w = hand
	}
	return ui.Rect{W: w, H: m.buttonsY() + m.ButtonH + m.Gap + m.Line*2}
}
