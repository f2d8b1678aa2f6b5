package mainwindow

import (
	"fmt"
	"image"

	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/picker"

	"fyne.io/fyne/v2/widget"
)

// SessionView redraws picked points of a picker session in a window.
type SessionView struct {
	win   *MainWindow
	base  image.Image
	style picker.MarkerStyle
}

// NewSessionView creates a view drawing markers over base.
func NewSessionView(win *MainWindow, base image.Image) *SessionView {
	return &SessionView{win: win, base: base, style: win.Style()}
}

// Redraw implements picker.View.
func (v *SessionView) Redraw(s *picker.Session) {
	v.win.SetImage(picker.RenderMarkers(v.base, s.Landmarks, picker.SessionMarkers(s), v.style))
	v.win.SetStatus(SessionStatus(s), StatusImportance(s))
}

// StatusImportance colors the status bar like the markers: the selected
// group's ring color, or the picked ring color while nothing is selected.
func StatusImportance(s *picker.Session) widget.Importance {
	if s.State() == picker.NoGroupSelected {
		return widget.WarningImportance
	}
	return widget.HighImportance
}

// SessionStatus describes the selection and point counts for the status bar.
func SessionStatus(s *picker.Session) string {
	if s.Current() == "" {
		return fmt.Sprintf("No muscle selected (press 1-%d) | %d points", len(s.Keymap), s.Store.Mapping().Len())
	}
	m := s.Store.Mapping()
	return fmt.Sprintf("Selected: %s (%d points) | %d points total",
		s.Current(), len(m.Indices(s.Current())), m.Len())
}

// InspectionView highlights the selected landmark of an inspection.
type InspectionView struct {
	win   *MainWindow
	base  image.Image
	style picker.MarkerStyle
}

// NewInspectionView creates a view drawing the highlight over base.
func NewInspectionView(win *MainWindow, base image.Image) *InspectionView {
	return &InspectionView{win: win, base: base, style: win.Style()}
}

// Redraw implements picker.InspectView.
func (v *InspectionView) Redraw(in *picker.Inspection) {
	v.win.SetImage(picker.RenderMarkers(v.base, in.Landmarks, picker.Markers{Highlight: in.Selected}, v.style))
	if in.Selected == landmark.NoIndex {
		v.win.SetStatus(fmt.Sprintf("%d landmarks | click to find the nearest index", in.Landmarks.Len()), widget.MediumImportance)
		return
	}
	p := in.Landmarks[in.Selected]
	v.win.SetStatus(fmt.Sprintf("Landmark %d at (%d, %d)", in.Selected, p.X, p.Y), widget.HighImportance)
}
