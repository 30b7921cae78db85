package model

import (
	"fmt"
	"time"
)

// Preset is one selectable focus duration.
type Preset struct {
	Label   string
	Minutes int
}

// Seconds returns the preset length in seconds.
func (preset Preset) Seconds() int {
	return preset.Minutes * 60
}

// TimerConfig contains runtime settings for the focus timer engine.
type TimerConfig struct {
	Presets        []Preset
	DefaultMinutes int

	TickInterval time.Duration
	StallAfter   time.Duration
}

// DefaultPresets returns the built-in 30/45/60 minute presets.
func DefaultPresets() []Preset {
	return PresetsFromMinutes([]int{30, 45, 60})
}

// PresetsFromMinutes builds labelled presets, skipping non-positive and duplicate values.
func PresetsFromMinutes(minutes []int) []Preset {
	presets := make([]Preset, 0, len(minutes))
	seen := make(map[int]bool, len(minutes))
	for _, value := range minutes {
		if value <= 0 || seen[value] {
			continue
		}
		seen[value] = true
		presets = append(presets, Preset{Label: presetLabel(value), Minutes: value})
	}
	return presets
}

// Find returns the preset with the given length.
func (config TimerConfig) Find(minutes int) (Preset, bool) {
	for _, preset := range config.Presets {
		if preset.Minutes == minutes {
			return preset, true
		}
	}
	return Preset{}, false
}

func presetLabel(minutes int) string {
	if minutes%60 == 0 {
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d min", minutes)
}
