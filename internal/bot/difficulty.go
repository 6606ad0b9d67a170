package bot

import (
	"fmt"
	"time"
)

// Difficulty is the shared four-level play-strength scale. Ordering is
// total: each level plays at least as strongly as the one before it.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExpert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts a wire string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "expert":
		return DifficultyExpert, nil
	default:
		return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// thinkingDelays maps each difficulty to its cosmetic delay range.
// Expert sits below Hard on purpose: an expert reads the position
// faster, it does not deliberate longer.
var thinkingDelays = [4][2]time.Duration{
	DifficultyEasy:   {400 * time.Millisecond, 900 * time.Millisecond},
	DifficultyMedium: {700 * time.Millisecond, 1500 * time.Millisecond},
	DifficultyHard:   {1000 * time.Millisecond, 2200 * time.Millisecond},
	DifficultyExpert: {600 * time.Millisecond, 1200 * time.Millisecond},
}

// ThinkingDelayRange returns the bounds the caller should draw from
// when pacing move application. The delay is pure presentation: it is
// applied after the move is computed and never bounds the computation.
func ThinkingDelayRange(d Difficulty) (min, max time.Duration) {
	if d < DifficultyEasy || d > DifficultyExpert {
		d = DifficultyMedium
	}
	return thinkingDelays[d][0], thinkingDelays[d][1]
}
