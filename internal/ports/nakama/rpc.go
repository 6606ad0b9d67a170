package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"gamestation/internal/bot"
	"gamestation/internal/config"
)

// The move RPCs are thin: unmarshal the snapshot, invoke the matching
// solver, and hand back the move plus a drawn thinking delay. Turn
// sequencing, win detection, and applying the move stay with the
// caller.

// RpcTicTacToeMoveFn computes a grid-game move.
//
// Payload: {"board": [9 cells], "difficulty": "easy|medium|hard|expert"}
// Returns: {"cell": index, "delay_ms": cosmetic delay}
func RpcTicTacToeMoveFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req ticTacToeMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("invalid payload: %w", err)
	}

	level, err := parseDifficulty(req.Difficulty)
	if err != nil {
		return "", err
	}
	board, err := boardFromWire(req.Board)
	if err != nil {
		return "", err
	}

	cell, err := bot.NewGridSolver(level).ChooseCell(board)
	if err != nil {
		logger.Error("RpcTicTacToeMove: %v", err)
		return "", err
	}

	return marshalResponse(ticTacToeMoveResponse{
		Cell:    cell,
		DelayMs: drawDelayMs(level),
	})
}

// RpcSnakeMoveFn computes a survival-game direction.
//
// Payload: {"width","height","me","opponent","goal","heading","difficulty"}
// Returns: {"direction": "up|down|left|right", "delay_ms": cosmetic delay}
func RpcSnakeMoveFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req snakeMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("invalid payload: %w", err)
	}

	level, err := parseDifficulty(req.Difficulty)
	if err != nil {
		return "", err
	}
	state, err := navStateFromWire(req)
	if err != nil {
		return "", err
	}

	dir := bot.NewNavSolver(level).ChooseDirection(state, state.Heading)

	return marshalResponse(snakeMoveResponse{
		Direction: dir.String(),
		DelayMs:   drawDelayMs(level),
	})
}

// RpcUnoMoveFn computes a card-game action.
//
// Payload: {"hand","top","active_color","opponent_cards","difficulty"}
// Returns: {"draw", "index", "color", "delay_ms"}
func RpcUnoMoveFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req unoMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("invalid payload: %w", err)
	}

	level, err := parseDifficulty(req.Difficulty)
	if err != nil {
		return "", err
	}
	state, err := handStateFromWire(req)
	if err != nil {
		return "", err
	}

	action := bot.NewHandSolver(level).ChooseAction(state)

	resp := unoMoveResponse{
		Draw:    action.Draw,
		Index:   action.Index,
		DelayMs: drawDelayMs(level),
	}
	if !action.Draw {
		resp.Color = action.Color.String()
	}
	return marshalResponse(resp)
}

// RpcOpponentProfileFn draws a personality for the requested
// difficulty so the client can present the upcoming opponent.
func RpcOpponentProfileFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req opponentProfileRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", fmt.Errorf("invalid payload: %w", err)
		}
	}

	level, err := parseDifficulty(req.Difficulty)
	if err != nil {
		return "", err
	}

	p := bot.RandomPersonality(level)
	minDelay, maxDelay := bot.ThinkingDelayRange(level)

	return marshalResponse(opponentProfileResponse{
		Name:        p.Name,
		AvatarIndex: p.AvatarIndex,
		Tagline:     p.Tagline,
		Difficulty:  p.Difficulty,
		MinDelayMs:  minDelay.Milliseconds(),
		MaxDelayMs:  maxDelay.Milliseconds(),
	})
}

// RegisterRPCs registers all game-station RPCs with the initializer.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcTicTacToeMove:   RpcTicTacToeMoveFn,
		RpcSnakeMove:       RpcSnakeMoveFn,
		RpcUnoMove:         RpcUnoMoveFn,
		RpcOpponentProfile: RpcOpponentProfileFn,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return fmt.Errorf("failed to register rpc %s: %w", id, err)
		}
	}
	return nil
}

// drawDelayMs draws a thinking delay for the difficulty and applies
// the configured clamp. The client schedules move application after
// this delay; the move above is already final.
func drawDelayMs(level bot.Difficulty) int64 {
	minDelay, maxDelay := bot.ThinkingDelayRange(level)
	d := minDelay
	if maxDelay > minDelay {
		d += time.Duration(rand.Int64N(int64(maxDelay - minDelay)))
	}
	return config.ClampDelay(d).Milliseconds()
}

func marshalResponse(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(data), nil
}
