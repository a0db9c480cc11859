package calculator

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const TradingDaysPerYear = 252

var ErrSingularCovariance = errors.New("covariance matrix is singular")

// CovarianceEstimator turns a date x security price matrix into an
// annualized covariance of returns.
type CovarianceEstimator interface {
	Estimate(prices *mat.Dense) (*mat.SymDense, error)
}

// LedoitWolfEstimator shrinks the sample covariance of daily percentage
// returns towards a scaled identity with the Ledoit-Wolf optimal intensity.
type LedoitWolfEstimator struct {
	Frequency int
}

func NewLedoitWolfEstimator() LedoitWolfEstimator {
	return LedoitWolfEstimator{Frequency: TradingDaysPerYear}
}

// Returns converts consecutive prices into percentage changes.
func Returns(prices *mat.Dense) (*mat.Dense, error) {
	rows, cols := prices.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("%w: need at least 2 price dates, got %d", ErrInsufficientData, rows)
	}
	out := mat.NewDense(rows-1, cols, nil)
	for t := 1; t < rows; t++ {
		for j := 0; j < cols; j++ {
			prev := prices.At(t-1, j)
			if prev == 0 {
				return nil, fmt.Errorf("zero price in column %d on row %d", j, t-1)
			}
			out.Set(t-1, j, prices.At(t, j)/prev-1)
		}
	}
	return out, nil
}

// ShrunkCovariance returns the Ledoit-Wolf covariance of the observations
// in x (rows are samples) and the shrinkage intensity used.
func ShrunkCovariance(x *mat.Dense) (*mat.SymDense, float64) {
	n, p := x.Dims()
	centered := mat.DenseCopyOf(x)
	for j := 0; j < p; j++ {
		var mean float64
		for i := 0; i < n; i++ {
			mean += centered.At(i, j)
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			centered.Set(i, j, centered.At(i, j)-mean)
		}
	}

	var emp mat.Dense
	emp.Mul(centered.T(), centered)
	emp.Scale(1/float64(n), &emp)

	var trace float64
	for j := 0; j < p; j++ {
		trace += emp.At(j, j)
	}
	mu := trace / float64(p)

	squared := mat.NewDense(n, p, nil)
	squared.MulElem(centered, centered)
	var sq mat.Dense
	sq.Mul(squared.T(), squared)

	var betaSum, deltaSum float64
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			betaSum += sq.At(i, j)
			e := emp.At(i, j)
			deltaSum += e * e
		}
	}

	beta := (betaSum/float64(n) - deltaSum) / float64(n)
	delta := deltaSum - 2*mu*trace + float64(p)*mu*mu
	beta /= float64(p)
	delta /= float64(p)
	if beta > delta {
		beta = delta
	}
	shrinkage := 0.0
	if delta > 0 {
		shrinkage = beta / delta
	}

	out := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			v := (1 - shrinkage) * emp.At(i, j)
			if i == j {
				v += shrinkage * mu
			}
			out.SetSym(i, j, v)
		}
	}
	return out, shrinkage
}

func (e LedoitWolfEstimator) Estimate(prices *mat.Dense) (*mat.SymDense, error) {
	returns, err := Returns(prices)
	if err != nil {
		return nil, err
	}
	cov, _ := ShrunkCovariance(returns)

	freq := e.Frequency
	if freq <= 0 {
		freq = TradingDaysPerYear
	}
	cov.ScaleSym(float64(freq), cov)

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, ErrSingularCovariance
	}
	return cov, nil
}
