package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/yourusername/tienlen-rules/internal/api"
	"github.com/yourusername/tienlen-rules/internal/config"
)

// InitModule is the entry point for the Nakama Go Runtime.
// Table rules come from the runtime env (tienlen_triples_enabled, tienlen_straight_detection).
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	startTime := time.Now()
	logger.Info("TienLen rules module initializing...")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromEnv(env)
	if err != nil {
		logger.Error("Invalid rules config: %v", err)
		return err
	}
	logger.WithFields(map[string]interface{}{
		"triples_enabled":    cfg.TriplesEnabled,
		"straight_detection": cfg.StraightDetection,
	}).Info("Rules config loaded")

	if err := api.NewRPC(cfg.Options()).Register(initializer); err != nil {
		return err
	}

	logger.Info("TienLen rules module initialized in %dms", time.Since(startTime).Milliseconds())
	return nil
}

// main is a dummy function to allow 'go build' to pass without flags.
// Nakama plugins are built as shared objects, but having main() helps with tooling.
func main() {}
