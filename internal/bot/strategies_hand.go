package bot

import (
	"fmt"
	"math/rand/v2"
	"sort"

	botinternal "gamestation/internal/bot/internal"
	"gamestation/internal/domain"
)

// HandSolver plays the card-matching game. A hand with no playable
// card always resolves to a draw; drawing is never weighed against
// playing.
type HandSolver struct {
	Level Difficulty

	rng *rand.Rand
}

// NewHandSolver returns a hand solver for the given difficulty.
func NewHandSolver(level Difficulty) *HandSolver {
	return &HandSolver{Level: level, rng: newRNG()}
}

// NewHandSolverSeeded returns a hand solver with reproducible
// randomness.
func NewHandSolverSeeded(level Difficulty, seed uint64) *HandSolver {
	return &HandSolver{Level: level, rng: seededRNG(seed)}
}

type scoredCard struct {
	index int
	score float64
}

// ChooseAction picks a card to play, or a draw when nothing is legal.
// For a wild play the returned color is advisory: the majority color
// of the remaining hand, or a random one on Easy.
func (s *HandSolver) ChooseAction(state domain.HandState) CardMove {
	legal := state.LegalIndexes()
	if len(legal) == 0 {
		return CardMove{Draw: true}
	}

	var idx int
	switch s.Level {
	case DifficultyEasy:
		// Easy ignores scoring entirely.
		idx = legal[s.rng.IntN(len(legal))]

	case DifficultyMedium:
		scored := s.scoreLegal(state, legal, DefaultTuning.HandMediumJitter)
		window := DefaultTuning.HandMediumWindow
		if len(scored) < window {
			window = len(scored)
		}
		idx = scored[s.rng.IntN(window)].index

	default: // Hard, Expert
		scored := s.scoreLegal(state, legal, 0)
		idx = scored[0].index
	}

	card := state.Hand[idx]
	color := card.Color
	if card.IsWild() {
		if s.Level == DifficultyEasy {
			color = domain.PlayableColors[s.rng.IntN(len(domain.PlayableColors))]
		} else {
			color = botinternal.BestColor(state.Hand, idx)
		}
	}
	return CardMove{Index: idx, Card: card, Color: color}
}

// scoreLegal rates every legal card, highest first. The sort is stable
// so equal scores keep hand order.
func (s *HandSolver) scoreLegal(state domain.HandState, legal []int, jitter float64) []scoredCard {
	scored := make([]scoredCard, 0, len(legal))
	for _, i := range legal {
		score := botinternal.ScoreCard(state.Hand[i], state.OpponentCards, DefaultTuning.Cards)
		if jitter > 0 {
			score += (s.rng.Float64()*2 - 1) * jitter
		}
		scored = append(scored, scoredCard{index: i, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

// CalculateMove implements Brain for HandState states.
func (s *HandSolver) CalculateMove(state domain.State) (Move, error) {
	hand, ok := state.(domain.HandState)
	if !ok {
		return nil, fmt.Errorf("hand solver: unsupported state %T", state)
	}
	return s.ChooseAction(hand), nil
}
