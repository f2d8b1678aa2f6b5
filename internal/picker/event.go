package picker

import (
	"fmt"

	"muscle-overlay/pkg/geometry"
)

// KeyEscape is the rune delivered for the Escape key.
const KeyEscape rune = 27

// EventKind identifies an input event.
type EventKind int

const (
	EventKey EventKind = iota
	EventClick
)

// Event is one user input. Point is in image pixel coordinates.
type Event struct {
	Kind  EventKind
	Key   rune
	Point geometry.PointInt
}

// Key returns a key press event.
func Key(r rune) Event {
	return Event{Kind: EventKey, Key: r}
}

// Click returns a left click event at image pixel (x, y).
func Click(x, y int) Event {
	return Event{Kind: EventClick, Point: geometry.Pt(x, y)}
}

func (e Event) String() string {
	switch e.Kind {
	case EventKey:
		return fmt.Sprintf("key %q", e.Key)
	case EventClick:
		return fmt.Sprintf("click (%d,%d)", e.Point.X, e.Point.Y)
	default:
		return "unknown event"
	}
}
