package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var ErrInsufficientData = errors.New("insufficient data")

// Regressor fits a model mapping feature rows to a scalar target.
type Regressor interface {
	Fit(x [][]float64, y []float64) (RegressionModel, error)
}

type RegressionModel interface {
	Predict(x []float64) float64
}

func validateTrainingSet(x [][]float64, y []float64) (int, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d feature rows for %d targets", ErrInsufficientData, len(x), len(y))
	}
	width := len(x[0])
	for i, row := range x {
		if len(row) != width {
			return 0, fmt.Errorf("feature row %d has %d columns, expected %d", i, len(row), width)
		}
	}
	return width, nil
}

// LinearRegressor is ordinary least squares with an intercept. Ridge adds
// an L2 penalty on the coefficients so collinear features stay solvable.
type LinearRegressor struct {
	Ridge float64
}

func NewLinearRegressor() LinearRegressor {
	return LinearRegressor{Ridge: 1e-8}
}

type linearModel struct {
	intercept float64
	coef      []float64
}

func (m linearModel) Predict(x []float64) float64 {
	out := m.intercept
	for i, c := range m.coef {
		out += c * x[i]
	}
	return out
}

func (r LinearRegressor) Fit(x [][]float64, y []float64) (RegressionModel, error) {
	width, err := validateTrainingSet(x, y)
	if err != nil {
		return nil, err
	}
	n, p := len(x), width+1

	design := mat.NewDense(n, p, nil)
	for i, row := range x {
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}
	target := mat.NewVecDense(n, y)

	var gram mat.Dense
	gram.Mul(design.T(), design)
	for j := 1; j < p; j++ {
		gram.Set(j, j, gram.At(j, j)+r.Ridge)
	}
	var moment mat.VecDense
	moment.MulVec(design.T(), target)

	var beta mat.VecDense
	if err := beta.SolveVec(&gram, &moment); err != nil {
		return nil, fmt.Errorf("failed to solve normal equations: %w", err)
	}

	coef := make([]float64, width)
	for j := range coef {
		coef[j] = beta.AtVec(j + 1)
	}
	return linearModel{intercept: beta.AtVec(0), coef: coef}, nil
}

// MLPRegressor is a single hidden layer tanh network trained by full-batch
// gradient descent with momentum. Seed fixes the initial weights.
type MLPRegressor struct {
	Hidden       int
	Epochs       int
	LearningRate float64
	Momentum     float64
	L2           float64
	Seed         int64
}

func NewMLPRegressor() MLPRegressor {
	return MLPRegressor{
		Hidden:       16,
		Epochs:       2000,
		LearningRate: 0.05,
		Momentum:     0.9,
		L2:           1e-4,
		Seed:         42,
	}
}

type mlpModel struct {
	w1 *mat.Dense // inputs x hidden
	b1 []float64
	w2 []float64
	b2 float64
}

func (m mlpModel) hidden(x []float64) []float64 {
	_, h := m.w1.Dims()
	out := make([]float64, h)
	for j := 0; j < h; j++ {
		z := m.b1[j]
		for i, v := range x {
			z += v * m.w1.At(i, j)
		}
		out[j] = math.Tanh(z)
	}
	return out
}

func (m mlpModel) Predict(x []float64) float64 {
	out := m.b2
	for j, a := range m.hidden(x) {
		out += a * m.w2[j]
	}
	return out
}

func (r MLPRegressor) Fit(x [][]float64, y []float64) (RegressionModel, error) {
	width, err := validateTrainingSet(x, y)
	if err != nil {
		return nil, err
	}
	hidden := r.Hidden
	if hidden <= 0 {
		hidden = 16
	}
	n := float64(len(x))
	rng := rand.New(rand.NewSource(r.Seed))

	scale := 1 / math.Sqrt(float64(width))
	m := mlpModel{
		w1: mat.NewDense(width, hidden, nil),
		b1: make([]float64, hidden),
		w2: make([]float64, hidden),
	}
	for i := 0; i < width; i++ {
		for j := 0; j < hidden; j++ {
			m.w1.Set(i, j, rng.NormFloat64()*scale)
		}
	}
	for j := range m.w2 {
		m.w2[j] = rng.NormFloat64() / math.Sqrt(float64(hidden))
	}

	vW1 := mat.NewDense(width, hidden, nil)
	vB1 := make([]float64, hidden)
	vW2 := make([]float64, hidden)
	var vB2 float64

	for epoch := 0; epoch < r.Epochs; epoch++ {
		gW1 := mat.NewDense(width, hidden, nil)
		gB1 := make([]float64, hidden)
		gW2 := make([]float64, hidden)
		var gB2 float64

		for k, row := range x {
			a := m.hidden(row)
			pred := m.b2
			for j := range a {
				pred += a[j] * m.w2[j]
			}
			errOut := 2 * (pred - y[k]) / n
			gB2 += errOut
			for j := range a {
				gW2[j] += errOut * a[j]
				dz := errOut * m.w2[j] * (1 - a[j]*a[j])
				gB1[j] += dz
				for i, v := range row {
					gW1.Set(i, j, gW1.At(i, j)+dz*v)
				}
			}
		}

		for j := 0; j < hidden; j++ {
			vW2[j] = r.Momentum*vW2[j] - r.LearningRate*(gW2[j]+r.L2*m.w2[j])
			m.w2[j] += vW2[j]
			vB1[j] = r.Momentum*vB1[j] - r.LearningRate*gB1[j]
			m.b1[j] += vB1[j]
			for i := 0; i < width; i++ {
				v := r.Momentum*vW1.At(i, j) - r.LearningRate*(gW1.At(i, j)+r.L2*m.w1.At(i, j))
				vW1.Set(i, j, v)
				m.w1.Set(i, j, m.w1.At(i, j)+v)
			}
		}
		vB2 = r.Momentum*vB2 - r.LearningRate*gB2
		m.b2 += vB2
	}

	for _, v := range m.w2 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("mlp training diverged")
		}
	}
	return m, nil
}
