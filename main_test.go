package main

import (
	"context"
	"database/sql"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/tienlen-rules/internal/api"
	"github.com/yourusername/tienlen-rules/internal/config"
	"github.com/yourusername/tienlen-rules/internal/logging"
)

type recordingInitializer struct {
	runtime.Initializer
	rpcs []string
}

func (r *recordingInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	r.rpcs = append(r.rpcs, id)
	return nil
}

func TestInitModuleRegistersRPCs(t *testing.T) {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, map[string]string{
		"tienlen_straight_detection": "runs",
	})
	initializer := &recordingInitializer{}

	err := InitModule(ctx, logging.NewZapLogger(zap.NewNop()), nil, nil, initializer)
	require.NoError(t, err)
	assert.Equal(t, []string{api.RpcValidateTurn, api.RpcClassifyHand}, initializer.rpcs)
}

func TestInitModuleRejectsBadConfig(t *testing.T) {
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, map[string]string{
		"tienlen_straight_detection": "zigzag",
	})

	err := InitModule(ctx, logging.NewZapLogger(zap.NewNop()), nil, nil, &recordingInitializer{})
	assert.ErrorIs(t, err, config.ErrInvalidStraightMode)
}
