package domain

// Cell is the state of a single square on the 3x3 board, from the
// engine's point of view: the engine's own marks vs the opponent's.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellMine
	CellTheirs
)

// Board is the 3x3 grid in row-major order (index 0 = top-left).
type Board [9]Cell

// CenterCell is the board index of the center square.
const CenterCell = 4

// CornerCells lists the four corner indexes in enumeration order.
var CornerCells = [4]int{0, 2, 6, 8}

// Lines lists the 8 winning triples: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner returns the side holding three-in-a-row, if any.
func (b Board) Winner() (Cell, bool) {
	for _, line := range Lines {
		c := b[line[0]]
		if c != CellEmpty && b[line[1]] == c && b[line[2]] == c {
			return c, true
		}
	}
	return CellEmpty, false
}

// Full reports whether no empty squares remain.
func (b Board) Full() bool {
	for _, c := range b {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// Terminal reports whether the game is over (a win or a full board).
func (b Board) Terminal() bool {
	if _, ok := b.Winner(); ok {
		return true
	}
	return b.Full()
}

// EmptyCells returns the indexes of all empty squares in board order.
func (b Board) EmptyCells() []int {
	var cells []int
	for i, c := range b {
		if c == CellEmpty {
			cells = append(cells, i)
		}
	}
	return cells
}

// WinningCell returns the index of an empty square that would complete
// three-in-a-row for the given side, or -1 if none exists.
func (b Board) WinningCell(side Cell) int {
	for _, line := range Lines {
		count, empty := 0, -1
		for _, i := range line {
			switch b[i] {
			case side:
				count++
			case CellEmpty:
				empty = i
			}
		}
		if count == 2 && empty >= 0 {
			return empty
		}
	}
	return -1
}

func (Board) isGameState() {}
