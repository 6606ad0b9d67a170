package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// StationConfig is the operator-facing configuration for the game
// station module. It only covers the presentation layer around the
// opponent engine; solver behavior is not configurable.
type StationConfig struct {
	// DefaultDifficulty is used when a client does not request one.
	DefaultDifficulty string `json:"default_difficulty"`
	// BotMinDelayMs / BotMaxDelayMs clamp the drawn thinking delays,
	// in milliseconds. Zero disables the respective clamp.
	BotMinDelayMs int `json:"bot_min_delay_ms"`
	BotMaxDelayMs int `json:"bot_max_delay_ms"`
}

var (
	cfg      *StationConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadStationConfig loads the station configuration from the given path.
func LoadStationConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read station config: %w", err)
			return
		}

		var c StationConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal station config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetStationConfig returns the global station configuration, or nil if
// none was loaded.
func GetStationConfig() *StationConfig {
	return cfg
}

// DefaultDifficulty returns the configured default difficulty name, or
// "medium" when unset.
func DefaultDifficulty() string {
	if cfg == nil || cfg.DefaultDifficulty == "" {
		return "medium"
	}
	return cfg.DefaultDifficulty
}

// ClampDelay applies the configured delay bounds to a drawn thinking
// delay.
func ClampDelay(d time.Duration) time.Duration {
	if cfg == nil {
		return d
	}
	if cfg.BotMinDelayMs > 0 {
		if min := time.Duration(cfg.BotMinDelayMs) * time.Millisecond; d < min {
			d = min
		}
	}
	if cfg.BotMaxDelayMs > 0 {
		if max := time.Duration(cfg.BotMaxDelayMs) * time.Millisecond; d > max {
			d = max
		}
	}
	return d
}
