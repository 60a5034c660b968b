// Package tuihost runs the shell inside a bubbletea program. Every mouse
// message is one frame.
package tuihost

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/arcanaland/cardtable/internal/gesture"
	"github.com/arcanaland/cardtable/internal/screen"
	"github.com/arcanaland/cardtable/internal/style"
	"github.com/arcanaland/cardtable/internal/ui"
)

// pixelsPerCell is the width of a terminal cell in drag-threshold pixels.
const pixelsPerCell = 6

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model wrapping a shell.
type Model struct {
	shell   *screen.Shell
	tracker *gesture.Tracker
	painter Painter

	width, height int
	pos           ui.Point
	down          bool
	scene         []ui.Drawable
	log           zerolog.Logger
}

// CellThreshold converts a drag threshold in pixels to terminal cells.
func CellThreshold(px float64) float64 { return px / pixelsPerCell }

// New returns a model driving shell. threshold is in cells.
func New(shell *screen.Shell, styles *style.Registry, styleName string, threshold float64, log zerolog.Logger) *Model {
	return &Model{
		shell:   shell,
		tracker: gesture.NewTracker(threshold),
		painter: Painter{Styles: styles, Style: styleName},
		width:   80,
		height:  24,
		log:     log,
	}
}

func (m *Model) Init() tea.Cmd {
	m.frame()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.frame()
	case tea.MouseMsg:
		last := m.pos
		m.pos = ui.Point{X: float64(msg.X), Y: float64(msg.Y)}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			if m.down {
				// The release of the last gesture never arrived; end it
				// where the pointer was last seen.
				m.pos = last
				m.down = false
				m.frame()
				m.pos = ui.Point{X: float64(msg.X), Y: float64(msg.Y)}
			}
			m.down = true
		case tea.MouseActionRelease:
			m.down = false
		}
		m.frame()
	}
	return m, nil
}

// frame runs the shell with the current pointer state. A frame that
// switches screens is followed by one more so the new screen is shown
// without waiting for the next event.
func (m *Model) frame() {
	before := m.shell.Active()
	m.step()
	if m.shell.Active() != before {
		m.step()
	}
}

func (m *Model) step() {
	m.tracker.Begin(gesture.Sample{X: m.pos.X, Y: m.pos.Y, Down: m.down})
	f, err := m.shell.Update(m.tracker, ui.Rect{W: float64(m.width), H: float64(m.height - 1)})
	m.tracker.End()
	if err != nil {
		m.log.Error().Err(err).Msg("frame failed")
	}
	if f != nil {
		m.scene = f.Scene()
	}
}

func (m *Model) View() string {
	canvas := m.painter.Paint(m.scene, m.width, m.height-1)
	help := keys.Quit.Help()
	return canvas.Render() + "\n" + palette[inkDim].Render(help.Key+" "+help.Desc+" · drag cards with the mouse")
}

// Run starts the program on the alternate screen with mouse motion
// reporting, and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
