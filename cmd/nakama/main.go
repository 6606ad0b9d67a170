package main

import (
	"context"
	"database/sql"

	"gamestation/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule is the symbol Nakama loads from the plugin. It defers to
// the adapter package so the entry point stays import-only.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is never called; Nakama loads this package as a plugin and only
// uses InitModule. It exists so the package links as a normal binary.
func main() {}
