package calculator

import (
	"math"
	"testing"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLinearRegressor(t *testing.T) {
	t.Run("recovers exact coefficients", func(t *testing.T) {
		x := [][]float64{}
		y := []float64{}
		for i := 0; i < 10; i++ {
			a, b := float64(i), float64(i*i%7)
			x = append(x, []float64{a, b})
			y = append(y, 1+2*a-3*b)
		}

		model, err := NewLinearRegressor().Fit(x, y)
		require.NoError(t, err)
		require.InDelta(t, 1+2*4-3*5, model.Predict([]float64{4, 5}), 1e-6)
		require.InDelta(t, 1.0, model.Predict([]float64{0, 0}), 1e-6)
	})

	t.Run("rejects mismatched input", func(t *testing.T) {
		_, err := NewLinearRegressor().Fit([][]float64{{1}}, []float64{1, 2})
		require.ErrorIs(t, err, ErrInsufficientData)

		_, err = NewLinearRegressor().Fit([][]float64{{1, 2}, {1}}, []float64{1, 2})
		require.Error(t, err)
	})
}

func TestMLPRegressor(t *testing.T) {
	x := [][]float64{}
	y := []float64{}
	for i := 0; i < 21; i++ {
		v := -1 + float64(i)*0.1
		x = append(x, []float64{v})
		y = append(y, 0.5*v)
	}

	mse := func(m RegressionModel) float64 {
		var sum float64
		for i := range x {
			d := m.Predict(x[i]) - y[i]
			sum += d * d
		}
		return sum / float64(len(x))
	}
	var variance float64
	for _, v := range y {
		variance += v * v
	}
	variance /= float64(len(y))

	t.Run("fits a linear relation", func(t *testing.T) {
		model, err := NewMLPRegressor().Fit(x, y)
		require.NoError(t, err)
		require.Less(t, mse(model), 0.1*variance)
	})

	t.Run("fixed seed is deterministic", func(t *testing.T) {
		a, err := NewMLPRegressor().Fit(x, y)
		require.NoError(t, err)
		b, err := NewMLPRegressor().Fit(x, y)
		require.NoError(t, err)
		require.Equal(t, a.Predict([]float64{0.33}), b.Predict([]float64{0.33}))
	})
}

func TestLedoitWolfEstimator(t *testing.T) {
	t.Run("shrinks towards scaled identity", func(t *testing.T) {
		x := mat.NewDense(6, 2, []float64{
			0.01, 0.02,
			-0.02, -0.01,
			0.03, 0.01,
			0.00, 0.02,
			-0.01, -0.03,
			0.02, 0.00,
		})
		cov, shrinkage := ShrunkCovariance(x)
		require.GreaterOrEqual(t, shrinkage, 0.0)
		require.LessOrEqual(t, shrinkage, 1.0)
		require.InDelta(t, cov.At(0, 1), cov.At(1, 0), 1e-15)
		require.Greater(t, cov.At(0, 0), 0.0)

		// the trace is preserved by shrinkage to mu*I
		var emp mat.SymDense
		n, _ := x.Dims()
		centered := mat.DenseCopyOf(x)
		for j := 0; j < 2; j++ {
			col := mat.Col(nil, j, x)
			var mean float64
			for _, v := range col {
				mean += v
			}
			mean /= float64(n)
			for i := 0; i < n; i++ {
				centered.Set(i, j, centered.At(i, j)-mean)
			}
		}
		emp.SymOuterK(1/float64(n), centered.T())
		require.InDelta(t, emp.At(0, 0)+emp.At(1, 1), cov.At(0, 0)+cov.At(1, 1), 1e-12)
	})

	t.Run("annualizes daily returns", func(t *testing.T) {
		prices := mat.NewDense(5, 2, []float64{
			100, 50,
			101, 49,
			99, 51,
			102, 50,
			103, 52,
		})
		cov, err := NewLedoitWolfEstimator().Estimate(prices)
		require.NoError(t, err)

		returns, err := Returns(prices)
		require.NoError(t, err)
		daily, _ := ShrunkCovariance(returns)
		require.InDelta(t, daily.At(0, 0)*TradingDaysPerYear, cov.At(0, 0), 1e-12)
	})

	t.Run("flat prices are singular", func(t *testing.T) {
		prices := mat.NewDense(3, 2, []float64{
			10, 20,
			10, 20,
			10, 20,
		})
		_, err := NewLedoitWolfEstimator().Estimate(prices)
		require.ErrorIs(t, err, ErrSingularCovariance)
	})

	t.Run("one price date is not enough", func(t *testing.T) {
		_, err := NewLedoitWolfEstimator().Estimate(mat.NewDense(1, 2, []float64{10, 20}))
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}

func diagCov(vars ...float64) *mat.SymDense {
	cov := mat.NewSymDense(len(vars), nil)
	for i, v := range vars {
		cov.SetSym(i, i, v)
	}
	return cov
}

func sumWeights(w map[string]float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func TestEfficientFrontier(t *testing.T) {
	solver := NewEfficientFrontier()

	t.Run("min volatility favors the quieter asset", func(t *testing.T) {
		w, err := solver.Optimize(FrontierInput{
			Symbols:         []string{"A", "B"},
			ExpectedReturns: []float64{0.1, 0.1},
			Covariance:      diagCov(0.04, 0.01),
			Objective:       domain.ObjectiveMinVolatility,
		})
		require.NoError(t, err)
		// inverse variance weights are 0.2 / 0.8
		require.InDelta(t, 0.2, w["A"], 0.01)
		require.InDelta(t, 0.8, w["B"], 0.01)
		require.InDelta(t, 1.0, sumWeights(w), 1e-4)
	})

	t.Run("max sharpe is long only and fully invested", func(t *testing.T) {
		w, err := solver.Optimize(FrontierInput{
			Symbols:         []string{"A", "B", "C"},
			ExpectedReturns: []float64{0.15, 0.08, 0.01},
			Covariance:      diagCov(0.04, 0.02, 0.03),
			Objective:       domain.ObjectiveMaxSharpe,
			RiskFreeRate:    0.02,
		})
		require.NoError(t, err)
		for _, v := range w {
			require.GreaterOrEqual(t, v, 0.0)
		}
		require.InDelta(t, 1.0, sumWeights(w), 1e-4)
		require.Greater(t, w["A"], w["C"])
	})

	t.Run("max sharpe needs a return above the risk-free rate", func(t *testing.T) {
		_, err := solver.Optimize(FrontierInput{
			Symbols:         []string{"A", "B"},
			ExpectedReturns: []float64{0.01, 0.015},
			Covariance:      diagCov(0.04, 0.02),
			Objective:       domain.ObjectiveMaxSharpe,
			RiskFreeRate:    0.02,
		})
		require.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("quadratic utility with high risk aversion", func(t *testing.T) {
		w, err := solver.Optimize(FrontierInput{
			Symbols:         []string{"A", "B"},
			ExpectedReturns: []float64{0.1, 0.1},
			Covariance:      diagCov(0.04, 0.04),
			Objective:       domain.ObjectiveMaxQuadraticUtility,
			RiskAversion:    1,
		})
		require.NoError(t, err)
		require.InDelta(t, 0.5, w["A"], 0.01)
		require.InDelta(t, 0.5, w["B"], 0.01)
	})

	t.Run("single security", func(t *testing.T) {
		w, err := solver.Optimize(FrontierInput{
			Symbols:         []string{"A"},
			ExpectedReturns: []float64{0.1},
			Covariance:      diagCov(0.04),
			Objective:       domain.ObjectiveMinVolatility,
		})
		require.NoError(t, err)
		require.Equal(t, map[string]float64{"A": 1}, w)
	})

	t.Run("empty universe", func(t *testing.T) {
		_, err := solver.Optimize(FrontierInput{Objective: domain.ObjectiveMinVolatility})
		require.ErrorIs(t, err, ErrInfeasible)
	})
}

func TestCleanWeights(t *testing.T) {
	w := CleanWeights([]string{"A", "B", "C"}, []float64{0.7, 0.29995, 0.00005})
	require.Equal(t, 0.0, w["C"])
	require.InDelta(t, 1.0, w["A"]+w["B"], 2e-5)
}

func TestGreedyAllocator(t *testing.T) {
	allocator := NewGreedyAllocator()

	t.Run("exact split", func(t *testing.T) {
		out, err := allocator.Allocate(
			map[string]float64{"A": 0.6, "B": 0.4},
			map[string]decimal.Decimal{"A": decimal.NewFromInt(50), "B": decimal.NewFromInt(25)},
			decimal.NewFromInt(1000),
		)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 12, "B": 16}, out.Shares)
		require.True(t, out.LeftoverCash.GreaterThanOrEqual(decimal.Zero))
		require.True(t, out.LeftoverCash.LessThan(decimal.NewFromInt(50)))
	})

	t.Run("unaffordable deficit moves to the next security", func(t *testing.T) {
		out, err := allocator.Allocate(
			map[string]float64{"A": 0.5, "B": 0.5, "C": 0},
			map[string]decimal.Decimal{"A": decimal.NewFromInt(30), "B": decimal.NewFromInt(7)},
			decimal.NewFromInt(100),
		)
		require.NoError(t, err)
		// first pass buys 1 A and 7 B; A no longer fits so the next share
		// goes to B, after which B is over target
		require.Equal(t, map[string]int{"A": 1, "B": 8, "C": 0}, out.Shares)
		require.True(t, out.LeftoverCash.Equal(decimal.NewFromInt(14)))
	})

	t.Run("leftover is less than any share price", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			weights  map[string]float64
			price    int64
			shares   map[string]int
			leftover int64
		}{
			{
				name:     "two equal weights",
				weights:  map[string]float64{"A": 0.5, "B": 0.5},
				price:    300,
				shares:   map[string]int{"A": 2, "B": 1},
				leftover: 100,
			},
			{
				name:     "three equal weights",
				weights:  map[string]float64{"A": 1.0 / 3, "B": 1.0 / 3, "C": 1.0 / 3},
				price:    90,
				shares:   map[string]int{"A": 4, "B": 4, "C": 3},
				leftover: 10,
			},
		} {
			t.Run(tc.name, func(t *testing.T) {
				prices := map[string]decimal.Decimal{}
				for symbol := range tc.weights {
					prices[symbol] = decimal.NewFromInt(tc.price)
				}
				out, err := allocator.Allocate(tc.weights, prices, decimal.NewFromInt(1000))
				require.NoError(t, err)
				require.Equal(t, tc.shares, out.Shares)
				require.True(t, out.LeftoverCash.Equal(decimal.NewFromInt(tc.leftover)))
				require.True(t, out.LeftoverCash.LessThan(decimal.NewFromInt(tc.price)))
			})
		}
	})

	t.Run("missing price", func(t *testing.T) {
		_, err := allocator.Allocate(
			map[string]float64{"A": 1},
			map[string]decimal.Decimal{},
			decimal.NewFromInt(100),
		)
		require.Error(t, err)
	})
}

func TestCalculateMetrics(t *testing.T) {
	days := []time.Time{}
	priceMap := map[time.Time]map[string]decimal.Decimal{}
	for i := 0; i < 5; i++ {
		d := util.NewDate(2024, 1, 2+i)
		days = append(days, d)
		priceMap[d] = map[string]decimal.Decimal{"A": decimal.NewFromFloat(100 * math.Pow(1.01, float64(i)))}
	}

	out, err := CalculateMetrics(domain.TargetPortfolio{
		Shares:       map[string]int{"A": 10},
		LeftoverCash: decimal.Zero,
	}, days, priceMap, 0.02)
	require.NoError(t, err)
	require.Greater(t, out.AnnualizedReturn, 0.0)
	require.InDelta(t, 0.0, out.AnnualizedStdev, 1e-6)

	_, err = CalculateMetrics(domain.TargetPortfolio{Shares: map[string]int{"B": 1}}, days, priceMap, 0)
	require.Error(t, err)
}
