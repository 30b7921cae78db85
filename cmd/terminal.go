package main

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/spf13/cobra"

	"zenfocus/internal/alert"
	"zenfocus/internal/config"
	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/storage"
	"zenfocus/internal/ui/preferences"
	"zenfocus/internal/ui/terminal"
)

func newTerminalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "terminal",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd.Context(), opts)
		},
	}
}

func runTerminal(ctx context.Context, opts *rootOptions) error {
	if opts.logPath == "" {
		// stderr shares the screen with the program.
		log.SetOutput(io.Discard)
	}

	manager, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg := manager.Config()
	settings := loadSettings(storage.NewSettingsStore(config.AppName))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := newEngine(cfg)
	stopHistory := startHistory(ctx, cfg, engine)

	// Banners are part of the program, so only an explicit refusal silences them.
	permission := alert.StaticPermission(alert.PermissionGranted)
	if settings.Notifications == preferences.NotificationsDenied {
		permission = alert.StaticPermission(alert.PermissionDenied)
	}

	surface := terminal.NewSurface()
	chime := alert.NewChime(cfg.Alert.Volume)
	dispatcher := alert.NewDispatcher(chime, surface, permission,
		alert.Message{Title: cfg.Alert.Title, Body: cfg.Alert.Body})
	dispatcher.SetToneEnabled(settings.ChimeEnabled)
	dispatcher.Init(ctx)
	engine.SetHooks(focustimer.Hooks{
		OnFinish:      dispatcher.OnFinish,
		EnsureVisible: surface.EnsureVisible,
	})

	manager.Watch(func(updated config.Config) {
		dispatcher.SetMessage(alert.Message{Title: updated.Alert.Title, Body: updated.Alert.Body})
		chime.SetVolume(updated.Alert.Volume)
	})

	go engine.Watch(ctx)
	runErr := terminal.Run(ctx, terminal.NewModel(engine, engine.Subscribe(eventBuffer), surface))

	cancel()
	dispatcher.Wait()
	closeErr := engine.Close()
	stopHistory()
	return errors.Join(runErr, closeErr)
}
