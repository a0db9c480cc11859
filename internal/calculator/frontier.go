package calculator

import (
	"errors"
	"fmt"
	"math"

	"fscoreportfolio/internal/domain"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

var ErrInfeasible = errors.New("optimization problem is infeasible")

const (
	weightCutoff   = 1e-4
	weightDecimals = 5
)

type FrontierInput struct {
	Symbols         []string
	ExpectedReturns []float64
	Covariance      *mat.SymDense
	Objective       domain.Objective
	L2Gamma         float64
	RiskAversion    float64
	RiskFreeRate    float64
}

// FrontierSolver picks long-only weights summing to one.
type FrontierSolver interface {
	Optimize(in FrontierInput) (map[string]float64, error)
}

// EfficientFrontier optimizes over softmax-parameterized weights, which keeps
// every candidate long-only and fully invested without penalty terms.
type EfficientFrontier struct{}

func NewEfficientFrontier() EfficientFrontier {
	return EfficientFrontier{}
}

func softmax(z []float64) []float64 {
	maxZ := math.Inf(-1)
	for _, v := range z {
		maxZ = math.Max(maxZ, v)
	}
	out := make([]float64, len(z))
	var sum float64
	for i, v := range z {
		out[i] = math.Exp(v - maxZ)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func portfolioStats(w, mu []float64, cov *mat.SymDense) (ret, variance, l2 float64) {
	for i := range w {
		ret += w[i] * mu[i]
		l2 += w[i] * w[i]
		for j := range w {
			variance += w[i] * w[j] * cov.At(i, j)
		}
	}
	return ret, variance, l2
}

func objectiveFunc(in FrontierInput) (func(w []float64) float64, error) {
	mu, cov, gamma := in.ExpectedReturns, in.Covariance, in.L2Gamma
	switch in.Objective {
	case domain.ObjectiveMaxSharpe:
		feasible := false
		for _, r := range mu {
			if r > in.RiskFreeRate {
				feasible = true
				break
			}
		}
		if !feasible {
			return nil, fmt.Errorf("%w: no expected return exceeds the risk-free rate %.4f", ErrInfeasible, in.RiskFreeRate)
		}
		return func(w []float64) float64 {
			ret, variance, l2 := portfolioStats(w, mu, cov)
			return -(ret-in.RiskFreeRate)/math.Sqrt(math.Max(variance, 1e-12)) + gamma*l2
		}, nil
	case domain.ObjectiveMinVolatility:
		return func(w []float64) float64 {
			_, variance, l2 := portfolioStats(w, mu, cov)
			return variance + gamma*l2
		}, nil
	case domain.ObjectiveMaxQuadraticUtility:
		delta := in.RiskAversion
		if delta <= 0 {
			return nil, fmt.Errorf("%w: risk aversion must be positive", ErrInfeasible)
		}
		return func(w []float64) float64 {
			ret, variance, l2 := portfolioStats(w, mu, cov)
			return -(ret - delta/2*variance) + gamma*l2
		}, nil
	}
	return nil, fmt.Errorf("unknown objective %q", in.Objective)
}

func converged(s optimize.Status) bool {
	return s == optimize.Success || s == optimize.GradientThreshold || s == optimize.FunctionConvergence
}

func (EfficientFrontier) Optimize(in FrontierInput) (map[string]float64, error) {
	n := len(in.Symbols)
	if n == 0 {
		return nil, fmt.Errorf("%w: no securities", ErrInfeasible)
	}
	if len(in.ExpectedReturns) != n || in.Covariance == nil || in.Covariance.SymmetricDim() != n {
		return nil, fmt.Errorf("expected returns and covariance do not match %d securities", n)
	}

	f, err := objectiveFunc(in)
	if err != nil {
		return nil, err
	}

	var w []float64
	if n == 1 {
		w = []float64{1}
	} else {
		problem := optimize.Problem{
			Func: func(z []float64) float64 {
				return f(softmax(z))
			},
			Grad: func(grad, z []float64) {
				fd.Gradient(grad, func(z []float64) float64 { return f(softmax(z)) }, z, nil)
			},
		}
		initial := make([]float64, n)

		result, err := optimize.Minimize(problem, initial, nil, &optimize.BFGS{})
		if err != nil || !converged(result.Status) {
			result, err = optimize.Minimize(problem, initial, nil, &optimize.NelderMead{})
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInfeasible, err.Error())
			}
		}
		w = softmax(result.X)
	}

	for _, v := range w {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: solver returned NaN weights", ErrInfeasible)
		}
	}

	return CleanWeights(in.Symbols, w), nil
}

// CleanWeights zeroes weights below the cutoff, renormalizes and rounds.
func CleanWeights(symbols []string, w []float64) map[string]float64 {
	var sum float64
	for _, v := range w {
		if v >= weightCutoff {
			sum += v
		}
	}
	scale := math.Pow(10, weightDecimals)
	out := make(map[string]float64, len(symbols))
	for i, s := range symbols {
		v := 0.0
		if w[i] >= weightCutoff && sum > 0 {
			v = math.Round(w[i]/sum*scale) / scale
		}
		out[s] = v
	}
	return out
}
