// Package screen runs named screens one frame at a time and switches
// between them when a screen asks to.
package screen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/arcanaland/cardtable/internal/ui"
)

var (
	ErrUnknownScreen   = errors.New("unknown screen")
	ErrDuplicateScreen = errors.New("screen already registered")
	ErrNotStarted      = errors.New("no active screen")
)

// Screen is one UI state. Update is called once per frame while the screen
// is active.
type Screen interface {
	Update(f *Frame) error
}

// Enterer is implemented by screens that reset state when they become
// active.
type Enterer interface {
	Enter()
}

// Frame is the scratch value a screen works against for one frame.
type Frame struct {
	Input ui.Input
	Size  ui.Rect

	scene []ui.Drawable
	next  string
}

// Draw appends drawables to the frame's scene in paint order.
func (f *Frame) Draw(d ...ui.Drawable) {
	f.scene = append(f.scene, d...)
}

func (f *Frame) Scene() []ui.Drawable { return f.scene }

// Navigate asks the shell to switch to name after this frame.
func (f *Frame) Navigate(name string) { f.next = name }

// Next is the pending target, empty once the shell has handled it.
func (f *Frame) Next() string { return f.next }

// Shell owns the registered screens and dispatches frames to the active
// one.
type Shell struct {
	screens map[string]Screen
	active  string
	log     zerolog.Logger
}

func NewShell(log zerolog.Logger) *Shell {
	return &Shell{screens: make(map[string]Screen), log: log}
}

func (s *Shell) Register(name string, sc Screen) error {
	if name == "" || sc == nil {
		return fmt.Errorf("screen name and value are required")
	}
	if _, ok := s.screens[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScreen, name)
	}
	s.screens[name] = sc
	return nil
}

// Start designates the initial screen.
func (s *Shell) Start(initial string) error {
	if err := s.activate(initial); err != nil {
		return err
	}
	s.log.Info().Str("screen", initial).Msg("shell started")
	return nil
}

func (s *Shell) Active() string { return s.active }

// Names returns the registered screen names, sorted.
func (s *Shell) Names() []string {
	names := make([]string, 0, len(s.screens))
	for n := range s.screens {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Update runs the active screen for one frame, then applies any
// navigation it requested. The returned frame holds the scene to paint.
func (s *Shell) Update(in ui.Input, size ui.Rect) (*Frame, error) {
	sc, ok := s.screens[s.active]
	if !ok {
		return nil, ErrNotStarted
	}
	f := &Frame{Input: in, Size: size}
	err := sc.Update(f)
	if err != nil {
		err = fmt.Errorf("screen %s: %w", s.active, err)
	}

	if f.next != "" {
		target := f.next
		f.next = ""
		if navErr := s.activate(target); navErr != nil {
			return f, errors.Join(err, navErr)
		}
		s.log.Debug().Str("screen", target).Msg("screen switched")
	}
	return f, err
}

func (s *Shell) activate(name string) error {
	sc, ok := s.screens[name]
	if !ok {
		if hint := s.closest(name); hint != "" {
			return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownScreen, name, hint)
		}
		return fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	s.active = name
	if e, ok := sc.(Enterer); ok {
		e.Enter()
	}
	return nil
}

func (s *Shell) closest(name string) string {
	best, bestDist := "", 3
	for _, n := range s.Names() {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
