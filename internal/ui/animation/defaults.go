package animation

import "time"

// DefaultConfig returns a slow breathing pulse for the compact badge.
func DefaultConfig() Config {
	return Config{
		Period:   2 * time.Second,
		Steps:    20,
		MinLevel: 0.5,
		MaxLevel: 1,
		Rest: Range{
			Min: 0,
			Max: 0,
		},
	}
}
