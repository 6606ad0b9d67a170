package bot

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Agent is one AI opponent for a session: a drawn personality, a
// difficulty, and a solver per game. Agents hold no game state; every
// move is computed from the snapshot the controller passes in.
type Agent struct {
	ID          string
	Personality Personality
	Level       Difficulty

	Grid *GridSolver
	Nav  *NavSolver
	Hand *HandSolver

	rng *rand.Rand
}

// NewAgent creates an agent for the given difficulty with a randomly
// drawn personality.
func NewAgent(level Difficulty) *Agent {
	return newAgent(level, newRNG())
}

// NewAgentSeeded creates an agent whose personality draw, solver
// randomness, and delay draws are reproducible.
func NewAgentSeeded(level Difficulty, seed uint64) *Agent {
	a := newAgent(level, seededRNG(seed))
	a.Grid = NewGridSolverSeeded(level, seed+1)
	a.Nav = NewNavSolverSeeded(level, seed+2)
	a.Hand = NewHandSolverSeeded(level, seed+3)
	return a
}

func newAgent(level Difficulty, rng *rand.Rand) *Agent {
	return &Agent{
		ID:          uuid.NewString(),
		Personality: randomPersonality(rng, level),
		Level:       level,
		Grid:        NewGridSolver(level),
		Nav:         NewNavSolver(level),
		Hand:        NewHandSolver(level),
		rng:         rng,
	}
}

// ThinkingDelay draws a cosmetic delay from the difficulty's range.
// The caller schedules move application after this delay; the move
// itself is already computed by then.
func (a *Agent) ThinkingDelay() time.Duration {
	min, max := ThinkingDelayRange(a.Level)
	if max <= min {
		return min
	}
	return min + time.Duration(a.rng.Int64N(int64(max-min)))
}
