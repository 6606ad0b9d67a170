package bot

import (
	"testing"

	"gamestation/internal/domain"
)

func TestNewBrain_RoutesEachGame(t *testing.T) {
	cases := []struct {
		game  Game
		state domain.State
		check func(t *testing.T, m Move)
	}{
		{
			game:  GameTicTacToe,
			state: domain.Board{},
			check: func(t *testing.T, m Move) {
				cell, ok := m.(CellMove)
				if !ok {
					t.Fatalf("tictactoe returned %T, want CellMove", m)
				}
				if cell.Index < 0 || cell.Index > 8 {
					t.Fatalf("cell index %d out of range", cell.Index)
				}
			},
		},
		{
			game: GameSnake,
			state: domain.NavState{
				Width: 5, Height: 5,
				Me:      []domain.Point{{X: 2, Y: 2}},
				Goal:    domain.Point{X: 4, Y: 2},
				Heading: domain.DirRight,
			},
			check: func(t *testing.T, m Move) {
				if _, ok := m.(DirectionMove); !ok {
					t.Fatalf("snake returned %T, want DirectionMove", m)
				}
			},
		},
		{
			game: GameUno,
			state: domain.HandState{
				Hand:        []domain.Card{{Color: domain.ColorRed, Kind: domain.KindNumber, Value: 4}},
				Top:         domain.Card{Color: domain.ColorRed, Kind: domain.KindNumber, Value: 9},
				ActiveColor: domain.ColorRed,
			},
			check: func(t *testing.T, m Move) {
				card, ok := m.(CardMove)
				if !ok {
					t.Fatalf("uno returned %T, want CardMove", m)
				}
				if card.Draw {
					t.Fatalf("uno drew with a legal card in hand")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.game.String(), func(t *testing.T) {
			brain, err := NewBrainSeeded(tc.game, DifficultyExpert, 7)
			if err != nil {
				t.Fatalf("NewBrainSeeded: %v", err)
			}
			move, err := brain.CalculateMove(tc.state)
			if err != nil {
				t.Fatalf("CalculateMove: %v", err)
			}
			tc.check(t, move)
		})
	}

	if _, err := NewBrain(Game(42), DifficultyMedium); err == nil {
		t.Errorf("NewBrain accepted an unknown game")
	}
}

func TestBrain_RejectsForeignState(t *testing.T) {
	brain, err := NewBrainSeeded(GameTicTacToe, DifficultyMedium, 3)
	if err != nil {
		t.Fatalf("NewBrainSeeded: %v", err)
	}
	if _, err := brain.CalculateMove(domain.HandState{}); err == nil {
		t.Errorf("grid solver accepted a hand state")
	}
}

func TestParseGame_RoundTrip(t *testing.T) {
	for _, g := range []Game{GameTicTacToe, GameSnake, GameUno} {
		parsed, err := ParseGame(g.String())
		if err != nil {
			t.Fatalf("ParseGame(%q): %v", g.String(), err)
		}
		if parsed != g {
			t.Errorf("round trip %v -> %v", g, parsed)
		}
	}
	if _, err := ParseGame("chess"); err == nil {
		t.Errorf("ParseGame accepted an unknown game")
	}
}

func TestAgentSeeded_IsReproducible(t *testing.T) {
	a := NewAgentSeeded(DifficultyHard, 99)
	b := NewAgentSeeded(DifficultyHard, 99)

	if a.Personality != b.Personality {
		t.Errorf("same seed drew %q and %q", a.Personality.Name, b.Personality.Name)
	}
	if a.ID == b.ID {
		t.Errorf("agent IDs should be unique even under the same seed")
	}

	board := domain.Board{}
	board[4] = domain.CellTheirs
	for i := 0; i < 10; i++ {
		am, err := a.Grid.CalculateMove(board)
		if err != nil {
			t.Fatalf("CalculateMove: %v", err)
		}
		bm, err := b.Grid.CalculateMove(board)
		if err != nil {
			t.Fatalf("CalculateMove: %v", err)
		}
		if am != bm {
			t.Fatalf("seeded agents diverged: %+v vs %+v", am, bm)
		}
	}
}

func TestAgent_ThinkingDelayStaysInRange(t *testing.T) {
	for _, level := range allLevels {
		agent := NewAgentSeeded(level, 11)
		min, max := ThinkingDelayRange(level)
		for i := 0; i < 100; i++ {
			d := agent.ThinkingDelay()
			if d < min || d > max {
				t.Fatalf("%v delay %v outside [%v, %v]", level, d, min, max)
			}
		}
	}
}

func TestAgent_PersonalityMatchesLevel(t *testing.T) {
	for _, level := range allLevels {
		agent := NewAgent(level)
		if agent.Personality.Difficulty != level.String() {
			t.Errorf("%v agent drew a %q personality", level, agent.Personality.Difficulty)
		}
		if agent.ID == "" {
			t.Errorf("%v agent has no ID", level)
		}
	}
}
