package nakama

const (
	// RpcTicTacToeMove computes a grid-game move for the AI opponent.
	RpcTicTacToeMove = "ai_move_tictactoe"
	// RpcSnakeMove computes a survival-game direction for the AI opponent.
	RpcSnakeMove = "ai_move_snake"
	// RpcUnoMove computes a card-game action for the AI opponent.
	RpcUnoMove = "ai_move_uno"
	// RpcOpponentProfile draws a cosmetic opponent personality and its
	// thinking-delay range for a difficulty.
	RpcOpponentProfile = "ai_opponent_profile"

	// envStationConfig is the Nakama runtime env key holding the
	// station config file path.
	envStationConfig = "station_config"
)
