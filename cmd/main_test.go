package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenfocus/internal/storage"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "zenfocus", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"terminal", "history"}, names)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log"))

	history, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)
	limit := history.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "20", limit.DefValue)
}

func TestHistoryCmd_PrintsRecentEntries(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "history.db")
	require.NoError(t, os.WriteFile(configPath, []byte("history:\n  database_path: "+dbPath+"\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath, "history", "--limit", "5"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No sessions recorded yet.")
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	err := printHistory(&out, []storage.Entry{
		{ID: 2, At: at.Add(30 * time.Minute), Kind: storage.KindFinished, PresetMinutes: 30},
		{ID: 1, At: at, Kind: storage.KindStarted, PresetMinutes: 30, RemainingSeconds: 1800},
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "EVENT")
	assert.Contains(t, string(lines[1]), "2026-03-14 10:00:00")
	assert.Contains(t, string(lines[1]), "finished")
	assert.Contains(t, string(lines[2]), "30:00")
}

func TestSetupLogging(t *testing.T) {
	writer, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(writer)
		log.SetFlags(flags)
	})

	closer, err := setupLogging("")
	require.NoError(t, err)
	assert.Nil(t, closer)

	path := filepath.Join(t.TempDir(), "logs", "zenfocus.log")
	closer, err = setupLogging(path)
	require.NoError(t, err)
	require.NotNil(t, closer)

	log.Print("hello")
	require.NoError(t, closer.Close())
	log.SetOutput(writer)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "main_test.go")
}
