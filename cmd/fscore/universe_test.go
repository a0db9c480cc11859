package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUniverse(t *testing.T) {
	t.Run("normalizes symbols", func(t *testing.T) {
		in := "symbol,name\n aapl ,Apple\nMSFT,Microsoft\nAAPL,Apple\n,blank\n"
		symbols, err := parseUniverse(strings.NewReader(in))
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT"}, symbols)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := parseUniverse(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestNewScheduler(t *testing.T) {
	noop := func(ctx context.Context) error { return nil }

	t.Run("valid specs", func(t *testing.T) {
		c, err := newScheduler(context.Background(), "0 6 * * *", "@weekly", noop, noop)
		require.NoError(t, err)
		require.Len(t, c.Entries(), 2)
	})

	t.Run("empty spec disables the job", func(t *testing.T) {
		c, err := newScheduler(context.Background(), "0 6 * * *", "", noop, noop)
		require.NoError(t, err)
		require.Len(t, c.Entries(), 1)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := newScheduler(context.Background(), "every day", "", noop, noop)
		require.ErrorContains(t, err, "invalid refresh schedule")
	})
}
