package bot

import (
	"fmt"
	"math/rand/v2"

	botinternal "gamestation/internal/bot/internal"
	"gamestation/internal/domain"
)

// GridSolver plays the 3x3 grid game. Expert runs a full minimax
// search; the lower levels blend tactics and deliberate imperfection.
type GridSolver struct {
	Level Difficulty

	rng *rand.Rand
}

// NewGridSolver returns a grid solver for the given difficulty.
func NewGridSolver(level Difficulty) *GridSolver {
	return &GridSolver{Level: level, rng: newRNG()}
}

// NewGridSolverSeeded returns a grid solver with reproducible
// randomness.
func NewGridSolverSeeded(level Difficulty, seed uint64) *GridSolver {
	return &GridSolver{Level: level, rng: seededRNG(seed)}
}

// ChooseCell picks the board index to mark. The board must have at
// least one empty cell; calling on a full board is a contract breach
// and returns ErrIllegalState.
func (s *GridSolver) ChooseCell(board domain.Board) (int, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return 0, fmt.Errorf("%w: grid solver called on a full board", ErrIllegalState)
	}

	switch s.Level {
	case DifficultyEasy:
		// Mostly random, with occasional flashes of competence.
		if s.rng.Float64() < DefaultTuning.GridEasyRandomChance {
			return empty[s.rng.IntN(len(empty))], nil
		}
		return s.tacticalCell(board, empty), nil

	case DifficultyMedium:
		return s.tacticalCell(board, empty), nil

	case DifficultyHard:
		// Full search, but a rare blunder keeps Hard beatable.
		if s.rng.Float64() < DefaultTuning.GridHardBlunderChance {
			return empty[s.rng.IntN(len(empty))], nil
		}
		return botinternal.BestCell(board), nil

	default: // Expert
		return botinternal.BestCell(board), nil
	}
}

// tacticalCell is the Medium ladder: take a win, block a loss, take
// the center, take a random open corner, take anything.
func (s *GridSolver) tacticalCell(board domain.Board, empty []int) int {
	if cell := board.WinningCell(domain.CellMine); cell >= 0 {
		return cell
	}
	if cell := board.WinningCell(domain.CellTheirs); cell >= 0 {
		return cell
	}
	if board[domain.CenterCell] == domain.CellEmpty {
		return domain.CenterCell
	}

	var corners []int
	for _, c := range domain.CornerCells {
		if board[c] == domain.CellEmpty {
			corners = append(corners, c)
		}
	}
	if len(corners) > 0 {
		return corners[s.rng.IntN(len(corners))]
	}
	return empty[s.rng.IntN(len(empty))]
}

// CalculateMove implements Brain for Board states.
func (s *GridSolver) CalculateMove(state domain.State) (Move, error) {
	board, ok := state.(domain.Board)
	if !ok {
		return nil, fmt.Errorf("grid solver: unsupported state %T", state)
	}
	cell, err := s.ChooseCell(board)
	if err != nil {
		return nil, err
	}
	return CellMove{Index: cell}, nil
}
