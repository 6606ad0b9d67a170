package bot

import (
	"fmt"
	"math"
	"math/rand/v2"

	botinternal "gamestation/internal/bot/internal"
	"gamestation/internal/domain"
)

// NavSolver plays the grid survival game. Medium chases the goal
// greedily; Hard and Expert add a one-ply mobility lookahead so they
// stop walking into corners they cannot leave.
type NavSolver struct {
	Level Difficulty

	rng *rand.Rand
}

// NewNavSolver returns a navigation solver for the given difficulty.
func NewNavSolver(level Difficulty) *NavSolver {
	return &NavSolver{Level: level, rng: newRNG()}
}

// NewNavSolverSeeded returns a navigation solver with reproducible
// randomness.
func NewNavSolverSeeded(level Difficulty, seed uint64) *NavSolver {
	return &NavSolver{Level: level, rng: seededRNG(seed)}
}

// ChooseDirection picks the next direction of travel. Reversing in
// place is never considered. When every remaining direction crashes,
// the current direction comes back unchanged; the controller detects
// the resulting collision as the loss condition.
func (s *NavSolver) ChooseDirection(state domain.NavState, current domain.Direction) domain.Direction {
	legal := botinternal.LegalDirections(state, current)
	if len(legal) == 0 {
		return current
	}

	switch s.Level {
	case DifficultyEasy:
		if s.rng.Float64() < DefaultTuning.NavEasyRandomChance {
			return legal[s.rng.IntN(len(legal))]
		}
		return greedyDirection(state, legal)

	case DifficultyMedium:
		return greedyDirection(state, legal)

	default: // Hard, Expert
		weights := DefaultTuning.Nav
		if s.Level != DifficultyExpert {
			// The contested-goal race bonus is Expert-only.
			weights.RaceBonus = 0
		}

		best := legal[0]
		bestScore := math.MinInt
		for _, d := range legal {
			if score := botinternal.ScoreDirection(state, d, weights); score > bestScore {
				bestScore = score
				best = d
			}
		}
		return best
	}
}

// greedyDirection minimizes the Manhattan distance from the new head
// to the goal. Ties resolve to the first-enumerated direction.
func greedyDirection(state domain.NavState, legal []domain.Direction) domain.Direction {
	best := legal[0]
	bestDist := math.MaxInt
	for _, d := range legal {
		if dist := domain.Manhattan(state.Head().Move(d), state.Goal); dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// CalculateMove implements Brain for NavState states, using the
// snapshot's heading as the current direction.
func (s *NavSolver) CalculateMove(state domain.State) (Move, error) {
	nav, ok := state.(domain.NavState)
	if !ok {
		return nil, fmt.Errorf("navigation solver: unsupported state %T", state)
	}
	if len(nav.Me) == 0 {
		return nil, fmt.Errorf("%w: navigation solver called with an empty path", ErrIllegalState)
	}
	return DirectionMove{Direction: s.ChooseDirection(nav, nav.Heading)}, nil
}
