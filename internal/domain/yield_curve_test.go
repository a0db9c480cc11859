package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYieldCurve_GetRate(t *testing.T) {
	yc := YieldCurve{Rates: map[int]float64{
		3:  0.04,
		12: 0.05,
		24: 0.07,
	}}

	t.Run("exact", func(t *testing.T) {
		r, err := yc.GetRate(12)
		require.NoError(t, err)
		require.Equal(t, 0.05, r)
	})
	t.Run("interpolated", func(t *testing.T) {
		r, err := yc.GetRate(18)
		require.NoError(t, err)
		require.InDelta(t, 0.06, r, 1e-12)
	})
	t.Run("clamped", func(t *testing.T) {
		r, err := yc.GetRate(1)
		require.NoError(t, err)
		require.Equal(t, 0.04, r)

		r, err = yc.GetRate(360)
		require.NoError(t, err)
		require.Equal(t, 0.07, r)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := YieldCurve{}.GetRate(12)
		require.Error(t, err)
	})
}
