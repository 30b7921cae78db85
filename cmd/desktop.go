package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"zenfocus/internal/alert"
	"zenfocus/internal/config"
	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/platform"
	"zenfocus/internal/storage"
	"zenfocus/internal/ui/panel"
	"zenfocus/internal/ui/popup"
	"zenfocus/internal/ui/preferences"
	"zenfocus/internal/ui/shell"
	"zenfocus/internal/ui/tray"
	"zenfocus/resources"
)

func runDesktop(ctx context.Context, opts *rootOptions) error {
	guard, err := platform.AcquireSingleInstance(config.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	manager, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg := manager.Config()

	settingsStore := storage.NewSettingsStore(config.AppName)
	settings := loadSettings(settingsStore)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := newEngine(cfg)
	stopHistory := startHistory(ctx, cfg, engine)

	fyneApp := app.NewWithID("com.zenfocus.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoActive))
	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		log.Printf("system tray unsupported on this platform")
	}

	host := shell.New(fyneApp, engine, shell.Config{
		Popup:          popup.Config{SmallWidth: cfg.Popup.SmallWidth},
		StartMinimized: settings.StartMinimized,
		HideOnClose:    hasTray,
	})

	chime := alert.NewChime(cfg.Alert.Volume)
	dispatcher := alert.NewDispatcher(
		chime,
		alert.NewFyneNotifier(fyneApp),
		alert.NewDialogPermission(settingsStore, host.Window()),
		alert.Message{Title: cfg.Alert.Title, Body: cfg.Alert.Body},
	)
	dispatcher.SetToneEnabled(settings.ChimeEnabled)
	engine.SetHooks(focustimer.Hooks{
		OnFinish:      dispatcher.OnFinish,
		EnsureVisible: host.EnsureVisible,
	})

	manager.Watch(func(updated config.Config) {
		dispatcher.SetMessage(alert.Message{Title: updated.Alert.Title, Body: updated.Alert.Body})
		chime.SetVolume(updated.Alert.Volume)
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		dispatcher.SetToneEnabled(updated.ChimeEnabled)
		dispatcher.SetPermission(alert.ParsePermission(updated.Notifications))
		if err := settingsStore.Save(updated); err != nil {
			log.Printf("Warning: failed to save preferences: %v", err)
		}
	})

	if hasTray {
		host.SetTray(tray.New(desktopApp, engine.Presets(), tray.Callbacks{
			OnShow:   host.Focus,
			OnToggle: func() { report("toggle", panel.Toggle(engine)) },
			OnReset:  func() { report("reset", engine.Reset()) },
			OnPreset: func(minutes int) { report("select preset", engine.SelectPreset(minutes)) },
			OnDetach: host.Detach,
			OnPreferences: func() {
				// The permission dialog saves its answer behind the form's back.
				switch dispatcher.Permission() {
				case alert.PermissionGranted:
					settings.Notifications = preferences.NotificationsGranted
				case alert.PermissionDenied:
					settings.Notifications = preferences.NotificationsDenied
				}
				prefsWindow.UpdateSettings(settings)
				prefsWindow.Show()
			},
			OnQuit: fyneApp.Quit,
		}))
	}

	host.Listen(engine.Subscribe(eventBuffer))
	go engine.Watch(ctx)

	fyneApp.Lifecycle().SetOnStarted(func() {
		dispatcher.Init(ctx)
		if settings.OpenDetached {
			host.Detach()
		}
	})
	host.Show()
	fyneApp.Run()

	cancel()
	dispatcher.Wait()
	err = engine.Close()
	stopHistory()
	return err
}
