package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYear(t *testing.T) {
	t.Run("december statement", func(t *testing.T) {
		require.Equal(t, 2022, FiscalYear(date(2022, 12, 31)))
	})
	t.Run("early year statement belongs to prior year", func(t *testing.T) {
		require.Equal(t, 2022, FiscalYear(date(2023, 1, 28)))
		require.Equal(t, 2022, FiscalYear(date(2023, 3, 31)))
	})
	t.Run("late year statement belongs to same year", func(t *testing.T) {
		require.Equal(t, 2023, FiscalYear(date(2023, 9, 30)))
	})
	t.Run("ignores time of day", func(t *testing.T) {
		require.Equal(t, 2022, FiscalYear(time.Date(2022, 12, 31, 23, 59, 0, 0, time.UTC)))
	})
}

func TestCurrentFiscalYear(t *testing.T) {
	require.Equal(t, 2025, CurrentFiscalYear(date(2026, 10, 14)))
	require.Equal(t, 2025, CurrentFiscalYear(date(2026, 1, 1)))
	require.Equal(t, 2026, CurrentFiscalYear(date(2026, 12, 31)))
}
