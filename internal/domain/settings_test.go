package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDataSettings_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultDataSettings().Validate())
	})

	t.Run("risk aversion out of range", func(t *testing.T) {
		s := DefaultDataSettings()
		s.RiskAversion = 0
		require.ErrorContains(t, s.Validate(), "RiskAversion")

		s.RiskAversion = 1.5
		require.ErrorContains(t, s.Validate(), "RiskAversion")
	})

	t.Run("small positive risk aversion is allowed", func(t *testing.T) {
		s := DefaultDataSettings()
		s.RiskAversion = 0.001
		require.NoError(t, s.Validate())
	})

	t.Run("unknown objective", func(t *testing.T) {
		s := DefaultDataSettings()
		s.Objective = "max_return"
		require.ErrorContains(t, s.Validate(), "Objective")
	})

	t.Run("unknown estimation method", func(t *testing.T) {
		s := DefaultDataSettings()
		s.EstimationMethod = "rf"
		require.ErrorContains(t, s.Validate(), "EstimationMethod")
	})

	t.Run("threshold above max score", func(t *testing.T) {
		s := DefaultDataSettings()
		s.FScoreThreshold = 10
		require.ErrorContains(t, s.Validate(), "FScoreThreshold")
	})

	t.Run("non positive investment", func(t *testing.T) {
		s := DefaultDataSettings()
		s.InvestmentAmount = decimal.Zero
		require.ErrorContains(t, s.Validate(), "investment amount")
	})
}
