// Package config loads application configuration with viper.
package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"zenfocus/internal/core/model"
	"zenfocus/internal/core/ticks"
	"zenfocus/internal/platform"
)

// AppName names the config directory, env prefix and lock file.
const AppName = "zenfocus"

// TickInterval is the fixed tick period. Each tick is one elapsed second.
const TickInterval = time.Second

const (
	minVolume = -10
	maxVolume = 2
)

type TickConfig struct {
	Mode       string        `mapstructure:"mode"`
	StallAfter time.Duration `mapstructure:"stall_after"`
}

type AlertConfig struct {
	Volume float64 `mapstructure:"volume"`
	Title  string  `mapstructure:"title"`
	Body   string  `mapstructure:"body"`
}

type PopupConfig struct {
	SmallWidth float32 `mapstructure:"small_width"`
}

type HistoryConfig struct {
	DatabasePath string `mapstructure:"database_path"`
	Enabled      bool   `mapstructure:"enabled"`
}

type Config struct {
	Presets              []int         `mapstructure:"presets"`
	DefaultPresetMinutes int           `mapstructure:"default_preset_minutes"`
	Tick                 TickConfig    `mapstructure:"tick"`
	Alert                AlertConfig   `mapstructure:"alert"`
	Popup                PopupConfig   `mapstructure:"popup"`
	History              HistoryConfig `mapstructure:"history"`
}

// TimerConfig converts the loaded values to the engine configuration.
func (cfg Config) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Presets:        model.PresetsFromMinutes(cfg.Presets),
		DefaultMinutes: cfg.DefaultPresetMinutes,
		TickInterval:   TickInterval,
		StallAfter:     cfg.Tick.StallAfter,
	}
}

// TickMode returns the configured tick source implementation.
func (cfg Config) TickMode() ticks.Mode {
	mode, err := ticks.ParseMode(cfg.Tick.Mode)
	if err != nil {
		return ticks.ModeWorker
	}
	return mode
}

// Manager owns a viper instance and the last validated Config.
type Manager struct {
	viper *viper.Viper

	mu      sync.Mutex
	current Config
}

// Load reads configuration from configPath, or from the default search
// path when configPath is empty. A missing file in the search path is not
// an error.
func Load(configPath string) (*Manager, error) {
	instance := viper.New()
	if configPath != "" {
		instance.SetConfigFile(configPath)
	} else {
		instance.SetConfigName("config")
		instance.SetConfigType("yaml")
		instance.AddConfigPath(".")
		instance.AddConfigPath("$HOME/.config/" + AppName)
		instance.AddConfigPath("/etc/" + AppName + "/")
	}

	instance.SetEnvPrefix(strings.ToUpper(AppName))
	instance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	instance.AutomaticEnv()
	setDefaults(instance)

	if err := instance.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Println("Config file not found, using defaults.")
	}

	if instance.IsSet("tick.interval") {
		log.Printf("Warning: tick.interval is ignored, the timer ticks every %s", TickInterval)
	}

	manager := &Manager{viper: instance}
	if _, err := manager.reload(); err != nil {
		return nil, err
	}
	return manager, nil
}

// Config returns the current configuration.
func (manager *Manager) Config() Config {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	cfg := manager.current
	cfg.Presets = append([]int(nil), manager.current.Presets...)
	return cfg
}

// ConfigFile returns the file in use, or an empty string when running on defaults.
func (manager *Manager) ConfigFile() string {
	return manager.viper.ConfigFileUsed()
}

// Watch reloads the file on change and passes the new configuration to onChange.
func (manager *Manager) Watch(onChange func(Config)) {
	if manager.ConfigFile() == "" {
		return
	}
	manager.viper.OnConfigChange(func(event fsnotify.Event) {
		cfg, err := manager.reload()
		if err != nil {
			log.Printf("Warning: ignoring config change in %s: %v", event.Name, err)
			return
		}
		log.Printf("Configuration reloaded from %s", event.Name)
		if onChange != nil {
			onChange(cfg)
		}
	})
	manager.viper.WatchConfig()
}

func (manager *Manager) reload() (Config, error) {
	var cfg Config
	if err := manager.viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	normalize(&cfg)

	manager.mu.Lock()
	manager.current = cfg
	manager.mu.Unlock()
	return cfg, nil
}

func setDefaults(instance *viper.Viper) {
	instance.SetDefault("presets", []int{30, 45, 60})
	instance.SetDefault("default_preset_minutes", 30)
	instance.SetDefault("tick.mode", string(ticks.ModeWorker))
	instance.SetDefault("tick.stall_after", "5s")
	instance.SetDefault("alert.volume", 0)
	instance.SetDefault("alert.title", "Time is up!")
	instance.SetDefault("alert.body", "Nice work. Take a short break.")
	instance.SetDefault("popup.small_width", 220)
	instance.SetDefault("history.database_path", defaultHistoryPath())
	instance.SetDefault("history.enabled", true)
}

func defaultHistoryPath() string {
	dir, err := platform.ConfigDir(AppName)
	if err != nil {
		return AppName + "-history.db"
	}
	return filepath.Join(dir, "history.db")
}

func normalize(cfg *Config) {
	presets := model.PresetsFromMinutes(cfg.Presets)
	if len(presets) == 0 {
		log.Printf("Warning: no valid presets in %v, using 30/45/60", cfg.Presets)
		presets = model.DefaultPresets()
	}
	cfg.Presets = cfg.Presets[:0]
	for _, preset := range presets {
		cfg.Presets = append(cfg.Presets, preset.Minutes)
	}

	timer := model.TimerConfig{Presets: presets}
	if _, ok := timer.Find(cfg.DefaultPresetMinutes); !ok {
		log.Printf("Warning: default_preset_minutes %d is not a preset, using %d", cfg.DefaultPresetMinutes, presets[0].Minutes)
		cfg.DefaultPresetMinutes = presets[0].Minutes
	}

	if _, err := ticks.ParseMode(cfg.Tick.Mode); err != nil {
		log.Printf("Warning: %v, defaulting to %q", err, ticks.ModeWorker)
		cfg.Tick.Mode = string(ticks.ModeWorker)
	}
	if cfg.Tick.StallAfter < 2*TickInterval {
		log.Printf("Warning: tick.stall_after too low, setting to %s", 5*TickInterval)
		cfg.Tick.StallAfter = 5 * TickInterval
	}

	if cfg.Alert.Volume < minVolume || cfg.Alert.Volume > maxVolume {
		log.Printf("Warning: alert.volume %.1f out of range, clamping", cfg.Alert.Volume)
		cfg.Alert.Volume = min(max(cfg.Alert.Volume, minVolume), maxVolume)
	}
	if strings.TrimSpace(cfg.Alert.Title) == "" {
		cfg.Alert.Title = "Time is up!"
	}

	if cfg.Popup.SmallWidth <= 0 {
		cfg.Popup.SmallWidth = 220
	}
	if cfg.History.DatabasePath == "" {
		cfg.History.DatabasePath = defaultHistoryPath()
	}
}
