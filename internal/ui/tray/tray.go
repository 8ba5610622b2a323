package tray

import (
	"fmt"

	"mousemove/internal/core/monitor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/systray"
)

const menuTitle = "MouseMove"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnQuit   func()
}

type systemTray interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Manager handles system tray state.
type Manager struct {
	app         systemTray
	statusItem  *fyne.MenuItem
	showItem    *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	setTooltip  func(string)
	running     bool
	idleSeconds uint32
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	return newManager(app, callbacks, systray.SetTooltip)
}

func newManager(app systemTray, callbacks Callbacks, setTooltip func(string)) *Manager {
	manager := &Manager{
		app:        app,
		callbacks:  callbacks,
		setTooltip: setTooltip,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show "+menuTitle, func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refresh()
	return manager
}

// HandleEvent applies a monitor event to the tray.
func (manager *Manager) HandleEvent(event monitor.Event) {
	switch event.Type {
	case monitor.EventStateChange:
		manager.SetRunning(event.State == monitor.StateRunning)
	case monitor.EventIdle:
		manager.SetIdleSeconds(event.IdleSeconds)
	}
}

// SetRunning updates the toggle label and icon.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if !running {
		manager.idleSeconds = 0
	}
	manager.refresh()
}

// SetIdleSeconds updates the status label.
func (manager *Manager) SetIdleSeconds(seconds uint32) {
	manager.idleSeconds = seconds
	manager.refresh()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refresh() {
	status := "stopped"
	toggle := "Start"
	icon := theme.VisibilityOffIcon()
	if manager.running {
		status = fmt.Sprintf("idle %ds", manager.idleSeconds)
		toggle = "Stop"
		icon = theme.VisibilityIcon()
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.toggleItem.Label = toggle

	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.toggleItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
	manager.app.SetSystemTrayIcon(icon)
	if manager.setTooltip != nil {
		manager.setTooltip(fmt.Sprintf("%s (%s)", menuTitle, status))
	}
}
