package domain

import "testing"

func TestBoard_Winner(t *testing.T) {
	// Row, column, and diagonal wins for both sides.
	cases := []struct {
		name  string
		board Board
		want  Cell
	}{
		{
			name:  "top row mine",
			board: Board{CellMine, CellMine, CellMine, CellTheirs, CellTheirs, 0, 0, 0, 0},
			want:  CellMine,
		},
		{
			name:  "left column theirs",
			board: Board{CellTheirs, CellMine, 0, CellTheirs, CellMine, 0, CellTheirs, 0, CellMine},
			want:  CellTheirs,
		},
		{
			name:  "main diagonal mine",
			board: Board{CellMine, CellTheirs, 0, CellTheirs, CellMine, 0, 0, 0, CellMine},
			want:  CellMine,
		},
		{
			name:  "anti diagonal theirs",
			board: Board{CellMine, 0, CellTheirs, CellMine, CellTheirs, 0, CellTheirs, 0, 0},
			want:  CellTheirs,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			winner, ok := tc.board.Winner()
			if !ok {
				t.Fatalf("expected a winner on %v", tc.board)
			}
			if winner != tc.want {
				t.Errorf("winner = %v, want %v", winner, tc.want)
			}
		})
	}
}

func TestBoard_NoWinner(t *testing.T) {
	// A full drawn board has no winner but is terminal.
	board := Board{
		CellMine, CellTheirs, CellMine,
		CellMine, CellTheirs, CellTheirs,
		CellTheirs, CellMine, CellMine,
	}
	if _, ok := board.Winner(); ok {
		t.Errorf("drawn board should have no winner")
	}
	if !board.Full() {
		t.Errorf("board should be full")
	}
	if !board.Terminal() {
		t.Errorf("full board should be terminal")
	}
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{CellMine, 0, CellTheirs, 0, 0, 0, 0, 0, CellMine}
	got := board.EmptyCells()
	want := []int{1, 3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EmptyCells = %v, want %v", got, want)
		}
	}
}

func TestBoard_WinningCell(t *testing.T) {
	// Mine holds 0 and 1; cell 2 completes the row.
	board := Board{CellMine, CellMine, 0, CellTheirs, 0, 0, CellTheirs, 0, 0}
	if got := board.WinningCell(CellMine); got != 2 {
		t.Errorf("WinningCell(mine) = %d, want 2", got)
	}
	// Theirs has no two-in-a-row with an open third cell.
	if got := board.WinningCell(CellTheirs); got != -1 {
		t.Errorf("WinningCell(theirs) = %d, want -1", got)
	}
}

func TestBoard_WinningCellBlockedLine(t *testing.T) {
	// Two-in-a-row whose third cell is taken must not count.
	board := Board{CellMine, CellMine, CellTheirs, 0, 0, 0, 0, 0, 0}
	if got := board.WinningCell(CellMine); got != -1 {
		t.Errorf("WinningCell = %d, want -1 for a blocked line", got)
	}
}
