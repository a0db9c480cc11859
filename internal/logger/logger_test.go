package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		log := zap.New(core).Sugar()
		ctx := WithContext(context.Background(), log)

		FromContext(ctx).Infow("refreshed", "symbol", "AAPL")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "refreshed", entry.Message)
		require.Equal(t, "AAPL", entry.ContextMap()["symbol"])
	})
}
