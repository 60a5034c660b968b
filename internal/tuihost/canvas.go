package tuihost

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/field"
	"github.com/arcanaland/cardtable/internal/style"
	"github.com/arcanaland/cardtable/internal/ui"
)

type ink uint8

const (
	inkNone ink = iota
	inkText
	inkDim
	inkFace
	inkBack
	inkMissing
	inkButton
	inkHot
)

var palette = map[ink]lipgloss.Style{
	inkNone:    lipgloss.NewStyle(),
	inkText:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
	inkDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
	inkFace:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#f5e0dc")),
	inkBack:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Background(lipgloss.Color("#45475a")),
	inkMissing: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	inkButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
	inkHot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
}

// Canvas is a fixed grid of cells, each with a rune and an ink.
type Canvas struct {
	w, h  int
	runes []rune
	inks  []ink
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h, runes: make([]rune, w*h), inks: make([]ink, w*h)}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

func (c *Canvas) set(x, y int, r rune, k ink) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.inks[y*c.w+x] = k
}

// Text writes s from (x, y) rightwards, clipped to the canvas.
func (c *Canvas) Text(x, y int, s string, k ink) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, k)
	}
}

// Box fills r with fill and outlines it.
func (c *Canvas) Box(r ui.Rect, fill rune, k ink) {
	x0, y0 := cell(r.X), cell(r.Y)
	x1, y1 := x0+cell(r.W)-1, y0+cell(r.H)-1
	if x1 < x0 || y1 < y0 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := fill
			switch {
			case (x == x0 || x == x1) && (y == y0 || y == y1):
				ch = corner(x == x0, y == y0)
			case y == y0 || y == y1:
				ch = '─'
			case x == x0 || x == x1:
				ch = '│'
			}
			c.set(x, y, ch, k)
		}
	}
}

func corner(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	default:
		return '┘'
	}
}

func cell(v float64) int { return int(math.Round(v)) }

// String returns the grid without colour, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.WriteString(strings.TrimRight(string(c.runes[y*c.w:(y+1)*c.w]), " "))
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the grid with lipgloss colours, batching runs of the
// same ink.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := y * c.w
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.inks[row+x] == c.inks[row+start] {
				continue
			}
			run := string(c.runes[row+start : row+x])
			b.WriteString(palette[c.inks[row+start]].Render(run))
			start = x
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Painter draws scenes onto a canvas with one style.
type Painter struct {
	Styles *style.Registry
	Style  string
}

// Paint draws the scene in order on a fresh w by h canvas.
func (p Painter) Paint(scene []ui.Drawable, w, h int) *Canvas {
	c := NewCanvas(w, h)
	for _, d := range scene {
		switch v := d.(type) {
		case field.Layout:
			if len(v.Slots) == 0 {
				c.Box(v.Area, ' ', inkDim)
			}
			for _, s := range v.Slots {
				p.card(c, s.Card, s.Area)
			}
		case field.Floating:
			p.card(c, v.Card, v.Area)
		case ui.Button:
			k := inkButton
			if v.Hot {
				k = inkHot
			}
			c.Box(v.Area, ' ', k)
			a := v.Area
			c.Text(cell(a.X+(a.W-float64(len(v.Text)))/2), cell(a.Y+a.H/2-0.5), v.Text, k)
		case ui.Label:
			c.Text(cell(v.At.X), cell(v.At.Y), v.Text, inkText)
		}
	}
	return c
}

func (p Painter) card(c *Canvas, m card.Model, area ui.Rect) {
	v := p.Styles.Visual(p.Style, m)
	switch {
	case style.IsPlainBack(v.Image):
		c.Box(area, '░', inkBack)
	default:
		label, ok := style.PlainLabel(v.Image)
		if !ok {
			c.Box(area, ' ', inkMissing)
			c.Text(cell(area.X)+1, cell(area.Y)+1, "?", inkMissing)
			return
		}
		c.Box(area, ' ', inkFace)
		c.Text(cell(area.X)+1, cell(area.Y)+1, label, inkFace)
	}
}
