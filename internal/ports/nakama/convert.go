package nakama

import (
	"fmt"

	"gamestation/internal/bot"
	"gamestation/internal/config"
	"gamestation/internal/domain"
)

// Wire payloads for the move RPCs. Board cells and card fields travel
// as small JSON values so any client can call the engine without a
// schema dependency.

type ticTacToeMoveRequest struct {
	// Board is the 3x3 grid in row-major order: 0 empty, 1 AI, 2 opponent.
	Board      []int  `json:"board"`
	Difficulty string `json:"difficulty"`
}

type ticTacToeMoveResponse struct {
	Cell    int   `json:"cell"`
	DelayMs int64 `json:"delay_ms"`
}

type snakeMoveRequest struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Me         []domain.Point `json:"me"`
	Opponent   []domain.Point `json:"opponent"`
	Goal       domain.Point   `json:"goal"`
	Heading    string         `json:"heading"`
	Difficulty string         `json:"difficulty"`
}

type snakeMoveResponse struct {
	Direction string `json:"direction"`
	DelayMs   int64  `json:"delay_ms"`
}

type cardPayload struct {
	Color string `json:"color"`
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

type unoMoveRequest struct {
	Hand          []cardPayload `json:"hand"`
	Top           cardPayload   `json:"top"`
	ActiveColor   string        `json:"active_color"`
	OpponentCards int           `json:"opponent_cards"`
	Difficulty    string        `json:"difficulty"`
}

type unoMoveResponse struct {
	Draw    bool   `json:"draw"`
	Index   int    `json:"index"`
	Color   string `json:"color,omitempty"`
	DelayMs int64  `json:"delay_ms"`
}

type opponentProfileRequest struct {
	Difficulty string `json:"difficulty"`
}

type opponentProfileResponse struct {
	Name        string `json:"name"`
	AvatarIndex int    `json:"avatar_index"`
	Tagline     string `json:"tagline"`
	Difficulty  string `json:"difficulty"`
	MinDelayMs  int64  `json:"min_delay_ms"`
	MaxDelayMs  int64  `json:"max_delay_ms"`
}

// parseDifficulty resolves the requested difficulty, falling back to
// the configured default when the request leaves it empty.
func parseDifficulty(s string) (bot.Difficulty, error) {
	if s == "" {
		s = config.DefaultDifficulty()
	}
	return bot.ParseDifficulty(s)
}

func boardFromWire(cells []int) (domain.Board, error) {
	var board domain.Board
	if len(cells) != len(board) {
		return board, fmt.Errorf("board must have %d cells, got %d", len(board), len(cells))
	}
	for i, c := range cells {
		if c < 0 || c > int(domain.CellTheirs) {
			return board, fmt.Errorf("cell %d has invalid state %d", i, c)
		}
		board[i] = domain.Cell(c)
	}
	return board, nil
}

func navStateFromWire(req snakeMoveRequest) (domain.NavState, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return domain.NavState{}, fmt.Errorf("invalid grid extent %dx%d", req.Width, req.Height)
	}
	if len(req.Me) == 0 {
		return domain.NavState{}, fmt.Errorf("ai path is empty")
	}
	heading, err := domain.ParseDirection(req.Heading)
	if err != nil {
		return domain.NavState{}, err
	}
	return domain.NavState{
		Width:    req.Width,
		Height:   req.Height,
		Me:       req.Me,
		Opponent: req.Opponent,
		Goal:     req.Goal,
		Heading:  heading,
	}, nil
}

func cardFromWire(p cardPayload) (domain.Card, error) {
	color, err := domain.ParseColor(p.Color)
	if err != nil {
		return domain.Card{}, err
	}
	kind, err := domain.ParseKind(p.Kind)
	if err != nil {
		return domain.Card{}, err
	}
	if kind == domain.KindNumber && (p.Value < 0 || p.Value > 9) {
		return domain.Card{}, fmt.Errorf("number card value %d out of range", p.Value)
	}
	return domain.Card{Color: color, Kind: kind, Value: p.Value}, nil
}

func handStateFromWire(req unoMoveRequest) (domain.HandState, error) {
	hand := make([]domain.Card, 0, len(req.Hand))
	for i, p := range req.Hand {
		card, err := cardFromWire(p)
		if err != nil {
			return domain.HandState{}, fmt.Errorf("hand card %d: %w", i, err)
		}
		hand = append(hand, card)
	}
	top, err := cardFromWire(req.Top)
	if err != nil {
		return domain.HandState{}, fmt.Errorf("discard top: %w", err)
	}
	active, err := domain.ParseColor(req.ActiveColor)
	if err != nil {
		return domain.HandState{}, fmt.Errorf("active color: %w", err)
	}
	if req.OpponentCards < 0 {
		return domain.HandState{}, fmt.Errorf("opponent card count %d is negative", req.OpponentCards)
	}
	return domain.HandState{
		Hand:          hand,
		Top:           top,
		ActiveColor:   active,
		OpponentCards: req.OpponentCards,
	}, nil
}
