package bot

import "fmt"

// Game identifies which of the station's games a brain plays.
type Game int

const (
	GameTicTacToe Game = iota
	GameSnake
	GameUno
)

func (g Game) String() string {
	switch g {
	case GameTicTacToe:
		return "tictactoe"
	case GameSnake:
		return "snake"
	case GameUno:
		return "uno"
	default:
		return fmt.Sprintf("game(%d)", int(g))
	}
}

// ParseGame converts a wire string into a Game.
func ParseGame(s string) (Game, error) {
	switch s {
	case "tictactoe":
		return GameTicTacToe, nil
	case "snake":
		return GameSnake, nil
	case "uno":
		return GameUno, nil
	default:
		return GameTicTacToe, fmt.Errorf("unknown game %q", s)
	}
}

// NewBrain creates the solver for the given game with the difficulty
// injected.
func NewBrain(game Game, level Difficulty) (Brain, error) {
	switch game {
	case GameTicTacToe:
		return NewGridSolver(level), nil
	case GameSnake:
		return NewNavSolver(level), nil
	case GameUno:
		return NewHandSolver(level), nil
	default:
		return nil, fmt.Errorf("unknown game: %d", game)
	}
}

// NewBrainSeeded is NewBrain with reproducible randomness.
func NewBrainSeeded(game Game, level Difficulty, seed uint64) (Brain, error) {
	switch game {
	case GameTicTacToe:
		return NewGridSolverSeeded(level, seed), nil
	case GameSnake:
		return NewNavSolverSeeded(level, seed), nil
	case GameUno:
		return NewHandSolverSeeded(level, seed), nil
	default:
		return nil, fmt.Errorf("unknown game: %d", game)
	}
}
