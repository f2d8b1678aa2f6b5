package picker

import (
	"errors"
	"fmt"
	"unicode"

	"muscle-overlay/internal/landmark"

	"github.com/rs/zerolog"
)

var (
	// ErrNoGroupSelected is returned for a click before any group was chosen.
	ErrNoGroupSelected = errors.New("select a muscle group first")

	// ErrNoLandmarks is returned for a click when the session has no landmarks.
	ErrNoLandmarks = errors.New("no landmarks to pick from")
)

// View is redrawn after every event that changes the session.
type View interface {
	Redraw(s *Session)
}

// Controller processes picker events one at a time. Each mutating event is
// persisted through the session store and redrawn before Handle returns.
type Controller struct {
	view View
	log  zerolog.Logger
}

// NewController creates a controller. view may be nil.
func NewController(view View, log zerolog.Logger) *Controller {
	return &Controller{view: view, log: log}
}

// Handle applies ev to s. ErrNoGroupSelected and ErrNoLandmarks leave the
// session unchanged and are recoverable; persistence failures are returned
// wrapped. Events after a quit are ignored.
func (c *Controller) Handle(s *Session, ev Event) error {
	if s.done {
		return nil
	}

	switch ev.Kind {
	case EventClick:
		return c.click(s, ev)
	case EventKey:
		return c.key(s, ev.Key)
	default:
		return fmt.Errorf("unsupported event kind %d", ev.Kind)
	}
}

func (c *Controller) click(s *Session, ev Event) error {
	if s.current == "" {
		return ErrNoGroupSelected
	}

	idx := s.Landmarks.Nearest(ev.Point)
	if idx == landmark.NoIndex {
		return ErrNoLandmarks
	}

	if err := s.Store.Append(s.current, idx); err != nil {
		return err
	}
	c.log.Info().Str("session", s.ID).Int("index", idx).Str("group", s.current).Msg("Added landmark")
	c.redraw(s)
	return nil
}

func (c *Controller) key(s *Session, r rune) error {
	switch unicode.ToLower(r) {
	case 'q', KeyEscape:
		s.done = true
		c.log.Info().Str("session", s.ID).Msg("Exiting")
		return nil

	case 'u':
		if s.current == "" {
			return nil
		}
		removed, ok, err := s.Store.Undo(s.current)
		if err != nil {
			return err
		}
		if ok {
			c.log.Info().Str("session", s.ID).Int("index", removed).Str("group", s.current).Msg("Undo")
		}
		c.redraw(s)
		return nil

	case 'c':
		if s.current == "" {
			return nil
		}
		if err := s.Store.Clear(s.current); err != nil {
			return err
		}
		c.log.Info().Str("session", s.ID).Str("group", s.current).Msg("Cleared group")
		c.redraw(s)
		return nil

	case 'r':
		if err := s.Store.Reset(); err != nil {
			return err
		}
		c.log.Info().Str("session", s.ID).Msg("Reset all groups")
		c.redraw(s)
		return nil
	}

	group, ok := s.Keymap[r]
	if !ok {
		return nil
	}
	s.current = group
	c.log.Info().Str("session", s.ID).Str("group", group).Msg("Selected group")
	c.redraw(s)
	return nil
}

func (c *Controller) redraw(s *Session) {
	if c.view != nil {
		c.view.Redraw(s)
	}
}

// Help lists the key bindings for a keymap.
func Help(km Keymap) []string {
	var lines []string
	for r := '1'; r <= '9'; r++ {
		if g, ok := km[r]; ok {
			lines = append(lines, fmt.Sprintf("%c = %s", r, g))
		}
	}
	return append(lines,
		"U = Undo last point",
		"C = Clear current muscle",
		"R = Reset all muscles",
		"Q = Quit",
	)
}
