package main

import (
	"log"

	"mousemove/internal/core/monitor"
	"mousemove/internal/platform"
	"mousemove/internal/ui/mainwindow"
	"mousemove/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "MouseMove"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.mousemove.app")
	fyneApp.SetIcon(theme.VisibilityIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	idleMonitor := monitor.New(platform.NewInputDriver(), monitor.Config{
		Dispatch: fyne.DoAndWait,
	})
	defer idleMonitor.Close()

	mainWindow := mainwindow.New(fyneApp, appName, idleMonitor)
	idleMonitor.SetView(mainWindow)

	// Clicking the tray icon restores the hidden window.
	desktopApp.SetSystemTrayWindow(mainWindow.Window())

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShow:   mainWindow.Show,
		OnToggle: mainWindow.Toggle,
		OnQuit: func() {
			idleMonitor.Close()
			fyneApp.Quit()
		},
	})

	events := idleMonitor.Subscribe(8)
	go func() {
		for event := range events {
			fyne.Do(func() {
				trayManager.HandleEvent(event)
			})
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
}
