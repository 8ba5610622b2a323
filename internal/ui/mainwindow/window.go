package mainwindow

import (
	"strconv"

	"mousemove/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	labelStart = "Start"
	labelStop  = "Stop"
)

// Controller starts and stops the idle monitor.
type Controller interface {
	Start(config model.MonitorConfig) bool
	Stop()
	Running() bool
}

// Window is the main MouseMove window.
type Window struct {
	window     fyne.Window
	toggle     *widget.Button
	interval   *widget.Entry
	idle       *widget.Entry
	controller Controller
}

// New creates the main window. Closing it hides it to the tray.
func New(app fyne.App, title string, controller Controller) *Window {
	window := app.NewWindow(title)

	interval := widget.NewEntry()
	interval.SetText(formatSeconds(model.DefaultIntervalSeconds))

	idle := widget.NewEntry()
	idle.SetText(formatSeconds(0))
	idle.Disable()

	toggle := widget.NewButton(labelStart, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Idle monitor", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Interval (sec)"), interval),
		container.NewGridWithColumns(2, widget.NewLabel("Idle (sec)"), idle),
	)
	buttons := container.NewHBox(layout.NewSpacer(), toggle)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(300, 160))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	win := &Window{
		window:     window,
		toggle:     toggle,
		interval:   interval,
		idle:       idle,
		controller: controller,
	}
	toggle.OnTapped = win.Toggle

	return win
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Hide sends the window to the tray.
func (win *Window) Hide() {
	win.window.Hide()
}

// Window exposes the underlying fyne window.
func (win *Window) Window() fyne.Window {
	return win.window
}

// Toggle starts the monitor with the entered interval, or stops it.
// A bad interval is replaced in the entry by the default.
func (win *Window) Toggle() {
	seconds, _ := model.ParseIntervalSeconds(win.interval.Text)
	win.interval.SetText(formatSeconds(seconds))

	if win.controller.Running() {
		win.controller.Stop()
		return
	}
	win.controller.Start(model.NewMonitorConfig(seconds))
}

// SetRunning switches the button label.
func (win *Window) SetRunning(running bool) {
	if running {
		win.toggle.SetText(labelStop)
		return
	}
	win.toggle.SetText(labelStart)
}

// SetIdleSeconds shows the last measured idle time.
func (win *Window) SetIdleSeconds(seconds uint32) {
	win.idle.SetText(formatSeconds(seconds))
}

func formatSeconds(seconds uint32) string {
	return strconv.FormatUint(uint64(seconds), 10)
}
