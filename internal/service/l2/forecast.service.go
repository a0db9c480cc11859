package l2_service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fscoreportfolio/internal/calculator"
	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"

	"github.com/montanaflynn/stats"
)

// minTrainingRows is the smallest training set a window is fitted on.
const minTrainingRows = 2

type ForecastInput struct {
	Method domain.EstimationMethod
	// Backcast predicts every year after the first instead of only the
	// latest one.
	Backcast bool
}

// ExpectedReturns maps fiscal year to symbol to the forecast return from
// that year's close to the next year's close.
type ExpectedReturns map[int]map[string]float64

type ForecastService interface {
	ExpectedReturns(ctx context.Context, in ForecastInput) (ExpectedReturns, error)
}

type forecastServiceHandler struct {
	ScoreRepository repository.ScoreRepository
	PriceRepository repository.PriceRepository
	Regressors      map[domain.EstimationMethod]calculator.Regressor
}

func NewForecastService(
	scoreRepository repository.ScoreRepository,
	priceRepository repository.PriceRepository,
	regressors map[domain.EstimationMethod]calculator.Regressor,
) ForecastService {
	return forecastServiceHandler{
		ScoreRepository: scoreRepository,
		PriceRepository: priceRepository,
		Regressors:      regressors,
	}
}

// ForecastRow holds the model features of one security in one fiscal year.
type ForecastRow struct {
	Symbol     string
	FiscalYear int
	Features   []*float64
	Close      *float64
	NextClose  *float64
}

func featureVector(s model.Score) []*float64 {
	return []*float64{
		s.Roa,
		s.CashRatio,
		s.DeltaCash,
		s.DeltaRoa,
		s.Accruals,
		s.DeltaLongLevRatio,
		s.DeltaCurrentLevRatio,
		s.DeltaShares,
		s.DeltaGrossMargin,
		s.DeltaAssetTurnover,
	}
}

// BuildForecastRows joins the latest score of each (symbol, fiscal year)
// with that year's and the following year's close.
func BuildForecastRows(scores []model.Score, closes map[string]map[int]float64) []ForecastRow {
	type key struct {
		symbol string
		year   int
	}
	latest := map[key]model.Score{}
	for _, s := range scores {
		k := key{s.Symbol, int(s.FiscalYear)}
		if existing, ok := latest[k]; !ok || s.AsOfDate.After(existing.AsOfDate) {
			latest[k] = s
		}
	}

	rows := make([]ForecastRow, 0, len(latest))
	for k, s := range latest {
		row := ForecastRow{
			Symbol:     k.symbol,
			FiscalYear: k.year,
			Features:   featureVector(s),
		}
		if c, ok := closes[k.symbol][k.year]; ok {
			row.Close = &c
		}
		if c, ok := closes[k.symbol][k.year+1]; ok {
			row.NextClose = &c
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Symbol != rows[j].Symbol {
			return rows[i].Symbol < rows[j].Symbol
		}
		return rows[i].FiscalYear < rows[j].FiscalYear
	})
	return rows
}

func (r ForecastRow) complete() bool {
	if r.Close == nil {
		return false
	}
	for _, f := range r.Features {
		if f == nil {
			return false
		}
	}
	return true
}

type zStats struct {
	mean, std float64
}

func newZStats(values []float64) zStats {
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)
	return zStats{mean: mean, std: std}
}

func (z zStats) score(v float64) float64 {
	if z.std == 0 {
		return 0
	}
	return (v - z.mean) / z.std
}

func (z zStats) rescore(v float64) float64 {
	return v*z.std + z.mean
}

// PredictYear fits on complete rows before target whose next close is known
// and forecasts the target year's return for every complete target row.
// Feature columns are z-scored across the training window; the next close
// is z-scored per security.
func PredictYear(rows []ForecastRow, target int, regressor calculator.Regressor) (map[string]float64, error) {
	training := []ForecastRow{}
	predicting := []ForecastRow{}
	for _, r := range rows {
		if !r.complete() {
			continue
		}
		switch {
		case r.FiscalYear < target && r.NextClose != nil:
			training = append(training, r)
		case r.FiscalYear == target:
			predicting = append(predicting, r)
		}
	}
	if len(training) < minTrainingRows {
		return nil, fmt.Errorf("%w: %d training rows before %d", calculator.ErrInsufficientData, len(training), target)
	}
	if len(predicting) == 0 {
		return map[string]float64{}, nil
	}

	width := len(training[0].Features)
	featureStats := make([]zStats, width)
	for j := 0; j < width; j++ {
		col := make([]float64, len(training))
		for i, r := range training {
			col[i] = *r.Features[j]
		}
		featureStats[j] = newZStats(col)
	}

	nextBySymbol := map[string][]float64{}
	for _, r := range training {
		nextBySymbol[r.Symbol] = append(nextBySymbol[r.Symbol], *r.NextClose)
	}
	targetStats := map[string]zStats{}
	for symbol, values := range nextBySymbol {
		targetStats[symbol] = newZStats(values)
	}

	normalize := func(r ForecastRow) []float64 {
		out := make([]float64, width)
		for j, f := range r.Features {
			out[j] = featureStats[j].score(*f)
		}
		return out
	}

	x := make([][]float64, len(training))
	y := make([]float64, len(training))
	for i, r := range training {
		x[i] = normalize(r)
		y[i] = targetStats[r.Symbol].score(*r.NextClose)
	}

	model, err := regressor.Fit(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to fit forecast model for %d: %w", target, err)
	}

	out := map[string]float64{}
	for _, r := range predicting {
		ts, ok := targetStats[r.Symbol]
		if !ok || *r.Close == 0 {
			continue
		}
		next := ts.rescore(model.Predict(normalize(r)))
		out[r.Symbol] = (next - *r.Close) / *r.Close
	}
	return out, nil
}

func (h forecastServiceHandler) ExpectedReturns(ctx context.Context, in ForecastInput) (ExpectedReturns, error) {
	log := logger.FromContext(ctx)
	regressor, ok := h.Regressors[in.Method]
	if !ok {
		return nil, fmt.Errorf("no regressor for estimation method %q", in.Method)
	}

	scores, err := h.ScoreRepository.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	closes, err := h.PriceRepository.YearEndCloses(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get year end closes: %w", err)
	}

	rows := BuildForecastRows(scores, closes)
	if len(rows) == 0 {
		return ExpectedReturns{}, nil
	}
	minYear, maxYear := rows[0].FiscalYear, rows[0].FiscalYear
	for _, r := range rows {
		if r.FiscalYear < minYear {
			minYear = r.FiscalYear
		}
		if r.FiscalYear > maxYear {
			maxYear = r.FiscalYear
		}
	}

	years := []int{maxYear}
	if in.Backcast {
		years = []int{}
		for y := minYear + 1; y <= maxYear; y++ {
			years = append(years, y)
		}
	}

	out := ExpectedReturns{}
	for _, year := range years {
		predicted, err := PredictYear(rows, year, regressor)
		if errors.Is(err, calculator.ErrInsufficientData) {
			log.Warnw("skipping forecast year", "fiscalYear", year, "error", err.Error())
			continue
		}
		if err != nil {
			return nil, err
		}
		out[year] = predicted
	}

	log.Infow("forecast expected returns", "method", in.Method, "years", len(out))
	return out, nil
}
