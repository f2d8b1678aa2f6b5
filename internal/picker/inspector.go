package picker

import (
	"unicode"

	"muscle-overlay/internal/landmark"

	"github.com/rs/zerolog"
)

// Inspection is the state of a landmark inspection session: clicks select
// the nearest landmark without recording anything.
type Inspection struct {
	Landmarks landmark.Set
	Selected  int

	done bool
}

// NewInspection starts an inspection with nothing selected.
func NewInspection(lm landmark.Set) *Inspection {
	return &Inspection{Landmarks: lm, Selected: landmark.NoIndex}
}

// Done reports whether the inspection received a quit event.
func (in *Inspection) Done() bool {
	return in.done
}

// InspectView is redrawn when the selected landmark changes.
type InspectView interface {
	Redraw(in *Inspection)
}

// Inspector reports the landmark index nearest to each click.
type Inspector struct {
	view InspectView
	log  zerolog.Logger
}

// NewInspector creates an inspector. view may be nil.
func NewInspector(view InspectView, log zerolog.Logger) *Inspector {
	return &Inspector{view: view, log: log}
}

// Handle applies ev to in.
func (i *Inspector) Handle(in *Inspection, ev Event) error {
	if in.done {
		return nil
	}

	switch ev.Kind {
	case EventKey:
		if r := unicode.ToLower(ev.Key); r == 'q' || r == KeyEscape {
			in.done = true
		}
		return nil

	case EventClick:
		idx := in.Landmarks.Nearest(ev.Point)
		if idx == landmark.NoIndex {
			return ErrNoLandmarks
		}
		in.Selected = idx
		p := in.Landmarks[idx]
		i.log.Info().Int("index", idx).Int("x", p.X).Int("y", p.Y).Msg("Clicked landmark")
		if i.view != nil {
			i.view.Redraw(in)
		}
	}
	return nil
}
