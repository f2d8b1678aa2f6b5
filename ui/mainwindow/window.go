// Package mainwindow provides the picker and inspector window.
package mainwindow

import (
	"image"

	"muscle-overlay/internal/picker"
	"muscle-overlay/pkg/geometry"
	"muscle-overlay/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const zoomStep = 1.25

// MainWindow shows an annotated face image and turns taps and typed keys
// into picker events.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	canvas    *canvas.ImageCanvas
	statusBar *widget.Label
	style     picker.MarkerStyle

	onEvent func(ev picker.Event)
}

// New creates a window sized width x height showing img fitted to it.
func New(fyneApp fyne.App, title string, img image.Image, width, height int) *MainWindow {
	style := picker.DefaultMarkerStyle()
	fyneApp.Settings().SetTheme(NewTheme(style))
	win := fyneApp.NewWindow(title)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		style:  style,
	}

	mw.setupUI()
	mw.setupEventHandlers()

	mw.canvas.SetImage(img)
	mw.canvas.FitTo(float32(width), float32(height))
	mw.Resize(fyne.NewSize(float32(width), float32(height)))

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewImageCanvas()
	mw.statusBar = widget.NewLabel("Ready")

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		container.NewScroll(mw.canvas),    // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.canvas.SetZoom(mw.canvas.GetZoom() / zoomStep)
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.canvas.SetZoom(mw.canvas.GetZoom() * zoomStep)
	})
	fitBtn := widget.NewButton("Fit", func() {
		size := mw.Canvas().Size()
		mw.canvas.FitTo(size.Width, size.Height-80)
	})
	actualBtn := widget.NewButton("1:1", func() {
		mw.canvas.SetZoom(1.0)
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
		actualBtn,
	)
}

// setupEventHandlers forwards clicks and keys to the event callback.
func (mw *MainWindow) setupEventHandlers() {
	mw.canvas.OnLeftClick(func(x, y float64) {
		p := geometry.NewPoint2D(x, y).Trunc()
		mw.dispatch(picker.Click(p.X, p.Y))
	})

	mw.Canvas().SetOnTypedRune(func(r rune) {
		mw.dispatch(picker.Key(r))
	})

	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.dispatch(picker.Key(picker.KeyEscape))
		}
	})
}

func (mw *MainWindow) dispatch(ev picker.Event) {
	if mw.onEvent != nil {
		mw.onEvent(ev)
	}
}

// OnEvent sets the callback that receives every input event. Events are
// delivered one at a time on the UI goroutine.
func (mw *MainWindow) OnEvent(callback func(ev picker.Event)) {
	mw.onEvent = callback
}

// SetImage replaces the displayed image.
func (mw *MainWindow) SetImage(img image.Image) {
	mw.canvas.SetImage(img)
}

// SetStatus updates the status bar.
func (mw *MainWindow) SetStatus(text string, importance widget.Importance) {
	mw.statusBar.Importance = importance
	mw.statusBar.SetText(text)
}

// Style returns the marker style the window theme was built from.
func (mw *MainWindow) Style() picker.MarkerStyle {
	return mw.style
}

// Quit closes the window and stops the application.
func (mw *MainWindow) Quit() {
	mw.Close()
	mw.app.Quit()
}
