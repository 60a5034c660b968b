// Package ebitenhost runs the shell in an Ebiten window and paints its
// scenes.
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/field"
	"github.com/arcanaland/cardtable/internal/gesture"
	"github.com/arcanaland/cardtable/internal/screen"
	"github.com/arcanaland/cardtable/internal/style"
	"github.com/arcanaland/cardtable/internal/ui"
)

var (
	colorTable     = color.NRGBA{24, 64, 44, 255}
	colorSlot      = color.NRGBA{40, 90, 64, 255}
	colorText      = color.NRGBA{239, 229, 182, 255}
	colorButton    = color.NRGBA{60, 60, 80, 255}
	colorButtonHot = color.NRGBA{90, 90, 120, 255}
	colorFace      = color.NRGBA{245, 240, 225, 255}
	colorBack      = color.NRGBA{70, 40, 110, 255}
	colorInk       = color.NRGBA{30, 30, 30, 255}
	colorMissing   = color.NRGBA{120, 120, 120, 255}
)

// Options configures the window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Style     string
	Threshold float64
}

// Game implements ebiten.Game over a screen.Shell.
type Game struct {
	shell   *screen.Shell
	tracker *gesture.Tracker
	styles  *style.Registry
	opts    Options
	images  map[style.ImageRef]*ebiten.Image
	scene   []ui.Drawable
	log     zerolog.Logger
}

func New(shell *screen.Shell, styles *style.Registry, opts Options, log zerolog.Logger) *Game {
	return &Game{
		shell:   shell,
		tracker: gesture.NewTracker(opts.Threshold),
		styles:  styles,
		opts:    opts,
		images:  make(map[style.ImageRef]*ebiten.Image),
		log:     log,
	}
}

// Preload decodes every image file the active style can produce, scaled
// to the card size. Files that fail to decode are drawn as placeholders.
func (g *Game) Preload(identities []string) {
	s, ok := g.styles.Get(g.opts.Style)
	if !ok {
		return
	}
	w, h := s.Size()
	for _, ref := range style.Files(s, identities) {
		img, err := style.Decode(ref, w, h)
		if err != nil {
			g.log.Warn().Err(err).Msg("image not preloaded")
			continue
		}
		g.images[ref] = ebiten.NewImageFromImage(img)
	}
	g.log.Debug().Int("images", len(g.images)).Str("style", s.Name()).Msg("images preloaded")
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	g.tracker.Begin(gesture.Sample{
		X:    float64(x),
		Y:    float64(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})
	f, err := g.shell.Update(g.tracker, ui.Rect{W: float64(g.opts.Width), H: float64(g.opts.Height)})
	g.tracker.End()
	if err != nil {
		g.log.Error().Err(err).Msg("frame failed")
	}
	if f != nil {
		g.scene = f.Scene()
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(colorTable)
	for _, d := range g.scene {
		switch v := d.(type) {
		case field.Layout:
			g.drawLayout(dst, v)
		case field.Floating:
			g.drawCard(dst, v.Card, v.Area)
		case ui.Button:
			g.drawButton(dst, v)
		case ui.Label:
			text.Draw(dst, v.Text, basicfont.Face7x13, int(v.At.X), int(v.At.Y)+13, colorText)
		default:
			g.log.Debug().Str("type", fmt.Sprintf("%T", d)).Msg("drawable skipped")
		}
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), g.opts.Width-60, g.opts.Height-16)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) drawLayout(dst *ebiten.Image, l field.Layout) {
	a := l.Area
	vector.StrokeRect(dst, float32(a.X)-2, float32(a.Y)-2, float32(a.W)+4, float32(a.H)+4, 1, colorSlot, false)
	for _, s := range l.Slots {
		g.drawCard(dst, s.Card, s.Area)
	}
}

func (g *Game) drawCard(dst *ebiten.Image, m card.Model, area ui.Rect) {
	v := g.styles.Visual(g.opts.Style, m)
	x, y, w, h := float32(area.X), float32(area.Y), float32(area.W), float32(area.H)

	if img, ok := g.images[v.Image]; ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(area.W/float64(b.Dx()), area.H/float64(b.Dy()))
		op.GeoM.Translate(area.X, area.Y)
		dst.DrawImage(img, op)
		return
	}

	switch {
	case style.IsPlainBack(v.Image):
		vector.DrawFilledRect(dst, x, y, w, h, colorBack, false)
		vector.StrokeRect(dst, x+4, y+4, w-8, h-8, 1, colorText, false)
	default:
		label, ok := style.PlainLabel(v.Image)
		fill := colorFace
		if !ok {
			label, fill = "?", colorMissing
		}
		vector.DrawFilledRect(dst, x, y, w, h, fill, false)
		text.Draw(dst, label, basicfont.Face7x13, int(area.X)+6, int(area.Y)+16, colorInk)
	}
	vector.StrokeRect(dst, x, y, w, h, 1, colorInk, false)
}

func (g *Game) drawButton(dst *ebiten.Image, b ui.Button) {
	fill := colorButton
	if b.Hot {
		fill = colorButtonHot
	}
	a := b.Area
	vector.DrawFilledRect(dst, float32(a.X), float32(a.Y), float32(a.W), float32(a.H), fill, false)
	tx := int(a.X + (a.W-float64(len(b.Text)*7))/2)
	ty := int(a.Y+a.H/2) + 5
	text.Draw(dst, b.Text, basicfont.Face7x13, tx, ty, colorText)
}

// Run opens the window and blocks until it is closed or Escape is
// pressed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
