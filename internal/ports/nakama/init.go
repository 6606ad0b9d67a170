package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"gamestation/internal/config"
)

// InitModule wires the game-station RPCs and bot accounts into the
// Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if path := env[envStationConfig]; path != "" {
			if err := config.LoadStationConfig(path); err != nil {
				logger.Warn("InitModule: station config not loaded, using defaults: %v", err)
			}
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := ProvisionPersonalities(ctx, nk, logger); err != nil {
		return err
	}

	logger.Info("Game station AI module loaded.")
	return nil
}
