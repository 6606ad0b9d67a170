package bot

import (
	"errors"

	"gamestation/internal/domain"
)

// ErrIllegalState is returned when a solver is invoked on a state with
// zero legal moves where the calling contract guarantees at least one
// exists. Callers must check terminal conditions before asking for a
// move.
var ErrIllegalState = errors.New("illegal state")

// Move is the decision made by the AI for one turn. Exactly one
// concrete type exists per game.
type Move interface {
	isMove()
}

// CellMove is the grid-game decision: the board index to mark.
type CellMove struct {
	Index int
}

// DirectionMove is the survival-game decision.
type DirectionMove struct {
	Direction domain.Direction
}

// CardMove is the matching-game decision: either draw a card, or play
// the card at Index. Color is the active color after the play; for a
// wild card it carries the chosen color, otherwise the card's own.
type CardMove struct {
	Draw  bool
	Index int
	Card  domain.Card
	Color domain.Color
}

func (CellMove) isMove()      {}
func (DirectionMove) isMove() {}
func (CardMove) isMove()      {}

// Brain is the capability all game solvers implement. Each solver
// accepts the state variant of its own game and rejects the others, so
// a session controller can hold any opponent behind the same type.
type Brain interface {
	CalculateMove(state domain.State) (Move, error)
}
