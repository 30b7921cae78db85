package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"zenfocus/internal/platform"
	"zenfocus/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ChimeEnabled   *bool  `yaml:"chime_enabled"`
	StartMinimized bool   `yaml:"start_minimized"`
	OpenDetached   bool   `yaml:"open_detached"`
	Notifications  string `yaml:"notifications,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	chimeEnabled := settings.ChimeEnabled
	fileData := yamlSettings{
		ChimeEnabled:   &chimeEnabled,
		StartMinimized: settings.StartMinimized,
		OpenDetached:   settings.OpenDetached,
		Notifications:  settings.Notifications,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	switch fileData.Notifications {
	case preferences.NotificationsGranted, preferences.NotificationsDenied:
		settings.Notifications = fileData.Notifications
	}

	settings.StartMinimized = fileData.StartMinimized
	settings.OpenDetached = fileData.OpenDetached
}

// SettingsStore serializes settings updates for one application.
type SettingsStore struct {
	appName string
	mu      sync.Mutex
}

func NewSettingsStore(appName string) *SettingsStore {
	return &SettingsStore{appName: appName}
}

func (store *SettingsStore) Load() (preferences.Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return LoadSettings(store.appName)
}

func (store *SettingsStore) Save(settings preferences.Settings) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return SaveSettings(store.appName, settings)
}

// LoadNotificationPermission returns the stored notification answer.
func (store *SettingsStore) LoadNotificationPermission() (string, error) {
	settings, err := store.Load()
	return settings.Notifications, err
}

// SaveNotificationPermission stores the notification answer and keeps the
// other preferences.
func (store *SettingsStore) SaveNotificationPermission(value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	settings, err := LoadSettings(store.appName)
	if err != nil {
		return err
	}
	settings.Notifications = value
	return SaveSettings(store.appName, settings)
}
