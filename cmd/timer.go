package main

import (
	"context"
	"log"

	"zenfocus/internal/config"
	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/core/ticks"
	"zenfocus/internal/storage"
	"zenfocus/internal/storage/sqlite"
	"zenfocus/internal/ui/preferences"
)

func newEngine(cfg config.Config) *focustimer.Engine {
	source := ticks.New(cfg.TickMode(), nil, config.TickInterval)
	return focustimer.New(cfg.TimerConfig(), source, focustimer.Options{})
}

func loadSettings(store *storage.SettingsStore) preferences.Settings {
	settings, err := store.Load()
	if err != nil {
		log.Printf("Warning: failed to load preferences, using defaults: %v", err)
		return preferences.DefaultSettings()
	}
	return settings
}

// startHistory records engine events into the history database until the
// engine is closed. The returned function waits for the recorder and closes
// the database.
func startHistory(ctx context.Context, cfg config.Config, engine *focustimer.Engine) func() {
	if !cfg.History.Enabled {
		return func() {}
	}
	store := sqlite.NewHistoryStore(cfg.History.DatabasePath)
	if err := store.Init(ctx); err != nil {
		log.Printf("Warning: session history disabled: %v", err)
		return func() {}
	}

	events := engine.Subscribe(eventBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		storage.Record(context.WithoutCancel(ctx), events, store)
	}()
	return func() {
		<-done
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close history database: %v", err)
		}
	}
}

func report(action string, err error) {
	if err != nil {
		log.Printf("focus timer: %s: %v", action, err)
	}
}
