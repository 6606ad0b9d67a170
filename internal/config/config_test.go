package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// The package holds one process-wide configuration behind a sync.Once,
// so the whole lifecycle is exercised in a single test: defaults before
// loading, the load itself, and the idempotence of repeat loads.
func TestStationConfigLifecycle(t *testing.T) {
	if GetStationConfig() != nil {
		t.Fatalf("config loaded before any LoadStationConfig call")
	}
	if got := DefaultDifficulty(); got != "medium" {
		t.Fatalf("DefaultDifficulty() with no config = %q, want medium", got)
	}
	if got := ClampDelay(5 * time.Second); got != 5*time.Second {
		t.Fatalf("ClampDelay with no config altered the delay: %v", got)
	}

	path := filepath.Join(t.TempDir(), "station.json")
	body := `{"default_difficulty": "hard", "bot_min_delay_ms": 500, "bot_max_delay_ms": 2000}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := LoadStationConfig(path); err != nil {
		t.Fatalf("LoadStationConfig: %v", err)
	}

	c := GetStationConfig()
	if c == nil {
		t.Fatalf("config still nil after load")
	}
	if c.DefaultDifficulty != "hard" || c.BotMinDelayMs != 500 || c.BotMaxDelayMs != 2000 {
		t.Fatalf("loaded config = %+v", c)
	}
	if got := DefaultDifficulty(); got != "hard" {
		t.Errorf("DefaultDifficulty() = %q, want hard", got)
	}

	if got := ClampDelay(100 * time.Millisecond); got != 500*time.Millisecond {
		t.Errorf("ClampDelay(100ms) = %v, want raised to 500ms", got)
	}
	if got := ClampDelay(3 * time.Second); got != 2*time.Second {
		t.Errorf("ClampDelay(3s) = %v, want capped at 2s", got)
	}
	if got := ClampDelay(time.Second); got != time.Second {
		t.Errorf("ClampDelay(1s) = %v, want unchanged", got)
	}

	// Repeat loads are no-ops: the first load wins, even against a
	// missing path.
	if err := LoadStationConfig(filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Errorf("second LoadStationConfig returned %v", err)
	}
	if got := DefaultDifficulty(); got != "hard" {
		t.Errorf("second load disturbed the config: DefaultDifficulty() = %q", got)
	}
}
