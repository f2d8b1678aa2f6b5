// Package picker implements the interactive landmark picker as an explicit
// state machine driven by key and click events, independent of any window
// toolkit.
package picker

import (
	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/muscle"

	"github.com/google/uuid"
)

// State is the picker selection state.
type State int

const (
	NoGroupSelected State = iota
	GroupSelected
)

func (s State) String() string {
	switch s {
	case NoGroupSelected:
		return "NoGroupSelected"
	case GroupSelected:
		return "GroupSelected"
	default:
		return "Unknown"
	}
}

// Keymap maps digit keys to group names.
type Keymap map[rune]string

// NewKeymap binds '1'..'9' to the first nine groups in order.
func NewKeymap(groups []string) Keymap {
	km := make(Keymap, len(groups))
	for i, g := range groups {
		if i >= 9 {
			break
		}
		km[rune('1'+i)] = g
	}
	return km
}

// Session is the mutable state of one picking session. It is owned by the
// caller and passed to every Controller.Handle call.
type Session struct {
	ID        string
	Landmarks landmark.Set
	Store     *muscle.Store
	Keymap    Keymap

	current string
	done    bool
}

// NewSession starts a session in the NoGroupSelected state.
func NewSession(lm landmark.Set, store *muscle.Store, keymap Keymap) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Landmarks: lm,
		Store:     store,
		Keymap:    keymap,
	}
}

// State returns the selection state.
func (s *Session) State() State {
	if s.current == "" {
		return NoGroupSelected
	}
	return GroupSelected
}

// Current returns the selected group, or "" if none.
func (s *Session) Current() string {
	return s.current
}

// Done reports whether the session received a quit event.
func (s *Session) Done() bool {
	return s.done
}
