package domain

// State is the sealed set of game snapshots the opponent engine
// accepts: Board, NavState, or HandState. Snapshots are value types;
// the engine never retains or mutates a caller's copy.
type State interface {
	isGameState()
}
