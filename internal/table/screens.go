package table

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arcanaland/cardtable/internal/dnd"
	"github.com/arcanaland/cardtable/internal/field"
	"github.com/arcanaland/cardtable/internal/screen"
	"github.com/arcanaland/cardtable/internal/ui"
)

// Screen names.
const (
	ScreenMain = "main"
	ScreenGame = "game"
)

// Menu is the title screen with a single Start button.
type Menu struct {
	title string
	m     Metrics
}

func NewMenu(title string, m Metrics) *Menu {
	return &Menu{title: title, m: m}
}

func (s *Menu) start() ui.Rect {
	return ui.Rect{X: s.m.Gap, Y: s.m.Gap + s.m.Line*2, W: s.m.ButtonW, H: s.m.ButtonH}
}

func (s *Menu) Update(f *screen.Frame) error {
	f.Draw(ui.Label{Text: s.title, At: ui.Point{X: s.m.Gap, Y: s.m.Gap}})

	btn := ui.Button{Text: "Start", Area: s.start()}
	btn.Hot = btn.Area.Contains(f.Input.Position())
	f.Draw(btn)

	if f.Input.Clicked(btn.Area) {
		f.Navigate(ScreenGame)
	}
	return nil
}

// Game is the table screen. Each frame it draws the fields, forwards their
// drag and drop events to the coordinator and resolves finished moves
// against the table.
type Game struct {
	table  *Table
	board  *field.Board
	drag   *dnd.Coordinator
	m      Metrics
	status string
	log    zerolog.Logger
}

func NewGame(t *Table, m Metrics, log zerolog.Logger) (*Game, error) {
	g := &Game{
		table: t,
		board: field.NewBoard(),
		drag:  dnd.NewCoordinator(log.With().Str("component", "dnd").Logger()),
		m:     m,
		log:   log,
	}

	fields := []*field.Simple{
		field.NewSimple(Deck, t.Pile(Deck), field.Options{
			Mode:    field.Stack,
			Origin:  m.deckAt(),
			CardW:   m.CardW,
			CardH:   m.CardH,
			Role:    field.RoleStack(),
			Accepts: []dnd.Kind{dnd.KindIndex, dnd.KindPlayer},
		}),
		field.NewSimple(Discard, t.Pile(Discard), field.Options{
			Mode:    field.Stack,
			Origin:  m.discardAt(),
			CardW:   m.CardW,
			CardH:   m.CardH,
			Role:    field.RoleStack(),
			Accepts: []dnd.Kind{dnd.KindIndex, dnd.KindPlayer, dnd.KindStack},
		}),
		field.NewSimple(Spread, t.Pile(Spread), field.Options{
			Mode:    field.Horizontal,
			Origin:  m.spreadAt(),
			CardW:   m.CardW,
			CardH:   m.CardH,
			Spacing: m.CardW + m.Gap,
			Role:    field.RoleIndex(),
			Accepts: []dnd.Kind{dnd.KindStack, dnd.KindPlayer},
		}),
		field.NewSimple(Hand, t.Pile(Hand), field.Options{
			Mode:    field.Horizontal,
			Origin:  m.handAt(),
			CardW:   m.CardW,
			CardH:   m.CardH,
			Spacing: m.Overlap,
			Role:    field.RolePlayer(0),
			Accepts: []dnd.Kind{dnd.KindStack, dnd.KindIndex},
		}),
	}
	for _, f := range fields {
		if err := g.board.Add(f); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Enter drops any gesture left over from a previous visit.
func (g *Game) Enter() {
	g.drag.Reset()
	g.status = ""
}

// Status is the last move or rejection reason shown under the board.
func (g *Game) Status() string { return g.status }

// Step runs one frame of drag and drop: draw the fields in order, forward
// their events, cancel a drag the gesture left behind, then resolve.
func Step(in ui.Input, board *field.Board, c *dnd.Coordinator, m dnd.Mover) ([]field.Layout, dnd.Move, bool, error) {
	layouts := board.Draw(in)
	for _, l := range layouts {
		if l.Drag != nil {
			c.BeginDrag(*l.Drag)
		}
		if l.Drop != nil {
			c.Drop(l.Drop.Source, l.Drop.Target)
		}
	}
	if in.GestureEnded() {
		c.EndGesture()
	}
	mv, moved, err := c.Resolve(m)
	return layouts, mv, moved, err
}

func (g *Game) Update(f *screen.Frame) error {
	layouts, mv, moved, err := Step(f.Input, g.board, g.drag, g.table)
	if moved {
		switch {
		case err == nil:
			g.status = mv.String()
		case errors.Is(err, dnd.ErrMoveRejected):
			g.status = err.Error()
		default:
			return err
		}
		layouts = g.board.Draw(field.Static)
	} else if err := g.flip(f.Input, layouts); err != nil {
		return err
	}

	g.paint(f, layouts)
	g.buttons(f)
	return nil
}

// flip turns over a spread card that was clicked.
func (g *Game) flip(in ui.Input, layouts []field.Layout) error {
	for _, l := range layouts {
		if l.Field != Spread {
			continue
		}
		for _, s := range l.Slots {
			if in.Clicked(s.Hit) {
				return g.table.Flip(Spread, s.Index)
			}
		}
	}
	return nil
}

func (g *Game) paint(f *screen.Frame, layouts []field.Layout) {
	f.Draw(ui.Label{Text: "cardtable", At: ui.Point{X: g.m.Gap, Y: g.m.Gap / 2}})

	held, holding := g.drag.Drag()
	var floating *field.Floating
	for _, l := range layouts {
		origin := ui.Point{X: l.Area.X, Y: l.Area.Y}
		caption := ui.Label{Text: fmt.Sprintf("%s (%d)", l.Field, len(l.Slots)), At: g.m.caption(origin)}

		if holding && held.Field == l.Field {
			if i := slotFor(l, held.Selector); i >= 0 {
				pos := f.Input.Position()
				floating = &field.Floating{
					Card: l.Slots[i].Card,
					Area: ui.Rect{X: pos.X - g.m.CardW/2, Y: pos.Y - g.m.CardH/2, W: g.m.CardW, H: g.m.CardH},
				}
				l.Slots = append(l.Slots[:i:i], l.Slots[i+1:]...)
			}
		}
		f.Draw(l, caption)
	}
	if floating != nil {
		f.Draw(*floating)
	}
}

func (g *Game) buttons(f *screen.Frame) {
	y := g.m.buttonsY()
	menu := ui.Button{Text: "Menu", Area: ui.Rect{X: g.m.Gap, Y: y, W: g.m.ButtonW, H: g.m.ButtonH}}
	reset := ui.Button{Text: "Deal", Area: ui.Rect{X: g.m.Gap*2 + g.m.ButtonW, Y: y, W: g.m.ButtonW, H: g.m.ButtonH}}

	pos := f.Input.Position()
	menu.Hot = menu.Area.Contains(pos)
	reset.Hot = reset.Area.Contains(pos)
	f.Draw(menu, reset, ui.Label{Text: g.status, At: ui.Point{X: g.m.Gap, Y: y + g.m.ButtonH + g.m.Line/2}})

	switch {
	case f.Input.Clicked(menu.Area):
		f.Navigate(ScreenMain)
	case f.Input.Clicked(reset.Area):
		g.table.Reset()
		g.drag.Reset()
		g.status = "new deal"
		g.log.Info().Msg("new deal")
	}
}

// slotFor finds the slot a selector names in a layout, or -1.
func slotFor(l field.Layout, s dnd.Selector) int {
	i := -1
	switch s.Kind {
	case dnd.KindStack:
		i = len(l.Slots) - 1
	case dnd.KindPlayer:
		i = s.Card
	case dnd.KindIndex:
		i = s.Index
	}
	if i < 0 || i >= len(l.Slots) {
		return -1
	}
	return i
}

// Mount registers the menu and game screens on sh and starts on the menu.
func Mount(sh *screen.Shell, t *Table, m Metrics, title string, log zerolog.Logger) (*Game, error) {
	game, err := NewGame(t, m, log)
	if err != nil {
		return nil, err
	}
	if err := sh.Register(ScreenMain, NewMenu(title, m)); err != nil {
		return nil, err
	}
	if err := sh.Register(ScreenGame, game); err != nil {
		return nil, err
	}
	if err := sh.Start(ScreenMain); err != nil {
		return nil, err
	}
	return game, nil
}
