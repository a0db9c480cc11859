package l3_service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"fscoreportfolio/internal/calculator"
	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
	l2_service "fscoreportfolio/internal/service/l2"
	"fscoreportfolio/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

var ErrNoCandidates = errors.New("no security passes the score threshold with a forecast")

const (
	defaultRiskFreeRate = 0.02
	riskFreeRateMonths  = 12
)

type OptimizeInput struct {
	Settings domain.DataSettings
	// Backcast also allocates every earlier forecast year and measures how
	// that allocation did over the following year. Only the latest year is
	// persisted.
	Backcast bool
}

type BackcastResult struct {
	Portfolio domain.TargetPortfolio
	// Realized is nil when the following year has no usable prices.
	Realized *calculator.CalculateMetricsResult
}

type OptimizeResult struct {
	Run       model.OptimizationRun
	Portfolio domain.TargetPortfolio
	Backcast  map[int]BackcastResult
}

type OptimizerService interface {
	Optimize(ctx context.Context, in OptimizeInput) (*OptimizeResult, error)
}

type optimizerServiceHandler struct {
	SecurityRepository        repository.SecurityRepository
	ScoreRepository           repository.ScoreRepository
	PriceRepository           repository.PriceRepository
	PortfolioRepository       repository.PortfolioRepository
	OptimizationRunRepository repository.OptimizationRunRepository
	RiskFreeRateRepository    repository.RiskFreeRateRepository
	ForecastService           l2_service.ForecastService
	CovarianceEstimator       calculator.CovarianceEstimator
	FrontierSolver            calculator.FrontierSolver
	DiscreteAllocator         calculator.DiscreteAllocator

	mu *sync.Mutex
}

func NewOptimizerService(
	securityRepository repository.SecurityRepository,
	scoreRepository repository.ScoreRepository,
	priceRepository repository.PriceRepository,
	portfolioRepository repository.PortfolioRepository,
	optimizationRunRepository repository.OptimizationRunRepository,
	riskFreeRateRepository repository.RiskFreeRateRepository,
	forecastService l2_service.ForecastService,
	covarianceEstimator calculator.CovarianceEstimator,
	frontierSolver calculator.FrontierSolver,
	discreteAllocator calculator.DiscreteAllocator,
) OptimizerService {
	return optimizerServiceHandler{
		SecurityRepository:        securityRepository,
		ScoreRepository:           scoreRepository,
		PriceRepository:           priceRepository,
		PortfolioRepository:       portfolioRepository,
		OptimizationRunRepository: optimizationRunRepository,
		RiskFreeRateRepository:    riskFreeRateRepository,
		ForecastService:           forecastService,
		CovarianceEstimator:       covarianceEstimator,
		FrontierSolver:            frontierSolver,
		DiscreteAllocator:         discreteAllocator,
		mu:                        &sync.Mutex{},
	}
}

// Optimize recomputes the portfolio for the latest forecast year and swaps
// it in. A failed run is recorded and leaves the stored portfolio untouched.
func (h optimizerServiceHandler) Optimize(ctx context.Context, in OptimizeInput) (*OptimizeResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	run, err := h.OptimizationRunRepository.Add(nil, model.OptimizationRun{
		Status:           model.OptimizationRunStatus_Running,
		InvestmentAmount: in.Settings.InvestmentAmount.InexactFloat64(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start optimization run: %w", err)
	}

	result, err := h.optimize(ctx, profile, in, run.OptimizationRunID)
	if err != nil {
		run.Status = model.OptimizationRunStatus_Failed
		run.Notes = util.Ptr(err.Error())
		if _, updateErr := h.OptimizationRunRepository.Update(nil, run, postgres.ColumnList{
			table.OptimizationRun.Status,
			table.OptimizationRun.Notes,
		}); updateErr != nil {
			log.Errorw("failed to mark optimization run failed", "runID", run.OptimizationRunID, "error", updateErr.Error())
		}
		return nil, err
	}

	run.Status = model.OptimizationRunStatus_Completed
	run.FiscalYear = util.Ptr(int32(result.Portfolio.FiscalYear))
	run.LeftoverCash = util.Ptr(result.Portfolio.LeftoverCash.InexactFloat64())
	run.NumCandidates = int32(len(result.Portfolio.Weights))
	updated, err := h.OptimizationRunRepository.Update(nil, run, postgres.ColumnList{
		table.OptimizationRun.Status,
		table.OptimizationRun.FiscalYear,
		table.OptimizationRun.LeftoverCash,
		table.OptimizationRun.NumCandidates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete optimization run: %w", err)
	}
	result.Run = *updated

	log.Infow("optimized portfolio",
		"runID", run.OptimizationRunID,
		"fiscalYear", result.Portfolio.FiscalYear,
		"held", len(result.Portfolio.HeldSymbols()),
		"leftoverCash", result.Portfolio.LeftoverCash.StringFixed(2),
	)
	return result, nil
}

func (h optimizerServiceHandler) optimize(ctx context.Context, profile *domain.Profile, in OptimizeInput, runID uuid.UUID) (*OptimizeResult, error) {
	log := logger.FromContext(ctx)

	_, endSpan := profile.StartNewSpan("forecast expected returns")
	expected, err := h.ForecastService.ExpectedReturns(ctx, l2_service.ForecastInput{
		Method:   in.Settings.EstimationMethod,
		Backcast: in.Backcast,
	})
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to forecast expected returns: %w", err)
	}

	// a year whose rows were all incomplete has no predictions
	years := make([]int, 0, len(expected))
	for year, returns := range expected {
		if len(returns) > 0 {
			years = append(years, year)
		}
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: no forecast year", ErrNoCandidates)
	}
	sort.Ints(years)
	latest := years[len(years)-1]

	scores, err := h.ScoreRepository.List(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	scoresByYear := latestScoresByYear(scores)

	out := &OptimizeResult{}
	if in.Backcast {
		out.Backcast = map[int]BackcastResult{}
		_, endSpan := profile.StartNewSpan("backcast allocations")
		for _, year := range years[:len(years)-1] {
			portfolio, err := h.optimizeYear(ctx, year, expected[year], scoresByYear[year], in.Settings, false)
			if err != nil {
				log.Warnw("skipping backcast year", "fiscalYear", year, "error", err.Error())
				continue
			}
			out.Backcast[year] = BackcastResult{
				Portfolio: *portfolio,
				Realized:  h.realize(ctx, *portfolio, year+1),
			}
		}
		endSpan()
	}

	_, endSpan = profile.StartNewSpan("allocate latest year")
	portfolio, err := h.optimizeYear(ctx, latest, expected[latest], scoresByYear[latest], in.Settings, true)
	endSpan()
	if err != nil {
		return nil, err
	}
	out.Portfolio = *portfolio
	if in.Backcast {
		out.Backcast[latest] = BackcastResult{Portfolio: *portfolio}
	}

	_, endSpan = profile.StartNewSpan("persist portfolio")
	defer endSpan()
	if err := h.persist(ctx, *portfolio, runID); err != nil {
		return nil, err
	}
	return out, nil
}

func latestScoresByYear(scores []model.Score) map[int]map[string]model.Score {
	out := map[int]map[string]model.Score{}
	for _, s := range scores {
		year := int(s.FiscalYear)
		if out[year] == nil {
			out[year] = map[string]model.Score{}
		}
		if existing, ok := out[year][s.Symbol]; !ok || s.AsOfDate.After(existing.AsOfDate) {
			out[year][s.Symbol] = s
		}
	}
	return out
}

func candidateSymbols(expected map[string]float64, scores map[string]model.Score, threshold int) []string {
	candidates := []string{}
	for symbol, mu := range expected {
		s, ok := scores[symbol]
		if !ok || int(s.PfScore) < threshold {
			continue
		}
		if math.IsNaN(mu) || math.IsInf(mu, 0) {
			continue
		}
		candidates = append(candidates, symbol)
	}
	sort.Strings(candidates)
	return candidates
}

func (h optimizerServiceHandler) optimizeYear(
	ctx context.Context,
	year int,
	expected map[string]float64,
	scores map[string]model.Score,
	settings domain.DataSettings,
	useLatestCloses bool,
) (*domain.TargetPortfolio, error) {
	candidates := candidateSymbols(expected, scores, settings.FScoreThreshold)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w in %d (threshold %d)", ErrNoCandidates, year, settings.FScoreThreshold)
	}

	prices, err := h.PriceRepository.List(nil, candidates, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), domain.FiscalYearEnd(year))
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %d: %w", year, err)
	}
	matrix, err := pivotPrices(candidates, prices)
	if err != nil {
		return nil, fmt.Errorf("failed to build price matrix for %d: %w", year, err)
	}
	if dropped := len(candidates) - len(matrix.symbols); dropped > 0 {
		logger.FromContext(ctx).Warnw("dropped candidates without prices", "fiscalYear", year, "dropped", dropped)
	}

	cov, err := h.CovarianceEstimator.Estimate(matrix.prices)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate covariance for %d: %w", year, err)
	}

	mu := make([]float64, len(matrix.symbols))
	for i, symbol := range matrix.symbols {
		mu[i] = expected[symbol]
	}
	weights, err := h.FrontierSolver.Optimize(calculator.FrontierInput{
		Symbols:         matrix.symbols,
		ExpectedReturns: mu,
		Covariance:      cov,
		Objective:       settings.Objective,
		L2Gamma:         settings.L2Gamma,
		RiskAversion:    settings.RiskAversion,
		RiskFreeRate:    h.riskFreeRate(ctx, year),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to optimize weights for %d: %w", year, err)
	}

	closes := matrix.lastCloses
	if useLatestCloses {
		closes, err = h.PriceRepository.LatestCloses(nil, matrix.symbols)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest closes: %w", err)
		}
	}
	allocation, err := h.DiscreteAllocator.Allocate(weights, closes, settings.InvestmentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate shares for %d: %w", year, err)
	}

	return &domain.TargetPortfolio{
		FiscalYear:   year,
		Weights:      weights,
		Shares:       allocation.Shares,
		LeftoverCash: allocation.LeftoverCash,
	}, nil
}

type priceMatrix struct {
	symbols []string
	dates   []time.Time
	// prices is dates x symbols
	prices     *mat.Dense
	lastCloses map[string]decimal.Decimal
}

// pivotPrices lays closes out as date x symbol, keeping only the dates on
// which every remaining symbol has a positive close. Symbols with no close
// at all are dropped first.
func pivotPrices(symbols []string, prices []model.SecurityPrice) (*priceMatrix, error) {
	byDate := map[time.Time]map[string]float64{}
	seen := map[string]bool{}
	for _, p := range prices {
		if p.Close == nil || *p.Close <= 0 {
			continue
		}
		d := util.TruncateDate(p.Date)
		if byDate[d] == nil {
			byDate[d] = map[string]float64{}
		}
		byDate[d][p.Symbol] = *p.Close
		seen[p.Symbol] = true
	}

	kept := []string{}
	for _, s := range symbols {
		if seen[s] {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no prices", calculator.ErrInsufficientData)
	}

	dates := []time.Time{}
	for d, row := range byDate {
		complete := true
		for _, s := range kept {
			if _, ok := row[s]; !ok {
				complete = false
				break
			}
		}
		if complete {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no date has a price for every security", calculator.ErrInsufficientData)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	m := mat.NewDense(len(dates), len(kept), nil)
	for i, d := range dates {
		for j, s := range kept {
			m.Set(i, j, byDate[d][s])
		}
	}
	lastCloses := map[string]decimal.Decimal{}
	for _, s := range kept {
		lastCloses[s] = decimal.NewFromFloat(byDate[dates[len(dates)-1]][s])
	}

	return &priceMatrix{
		symbols:    kept,
		dates:      dates,
		prices:     m,
		lastCloses: lastCloses,
	}, nil
}

func (h optimizerServiceHandler) riskFreeRate(ctx context.Context, year int) float64 {
	rate, err := h.RiskFreeRateRepository.GetRate(ctx, domain.FiscalYearEnd(year), riskFreeRateMonths)
	if err != nil {
		logger.FromContext(ctx).Warnw("using default risk-free rate", "fiscalYear", year, "rate", defaultRiskFreeRate, "error", err.Error())
		return defaultRiskFreeRate
	}
	return rate
}

// realize measures a backcast allocation over the given year's prices.
func (h optimizerServiceHandler) realize(ctx context.Context, portfolio domain.TargetPortfolio, year int) *calculator.CalculateMetricsResult {
	log := logger.FromContext(ctx)
	held := portfolio.HeldSymbols()
	if len(held) == 0 {
		return nil
	}
	prices, err := h.PriceRepository.List(nil, held, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), domain.FiscalYearEnd(year))
	if err != nil {
		log.Warnw("failed to list realized prices", "fiscalYear", year, "error", err.Error())
		return nil
	}
	matrix, err := pivotPrices(held, prices)
	if err != nil || len(matrix.symbols) != len(held) || len(matrix.dates) < 2 {
		return nil
	}

	priceMap := map[time.Time]map[string]decimal.Decimal{}
	for i, d := range matrix.dates {
		priceMap[d] = map[string]decimal.Decimal{}
		for j, s := range matrix.symbols {
			priceMap[d][s] = decimal.NewFromFloat(matrix.prices.At(i, j))
		}
	}
	metrics, err := calculator.CalculateMetrics(portfolio, matrix.dates, priceMap, h.riskFreeRate(ctx, year))
	if err != nil {
		log.Warnw("failed to calculate realized metrics", "fiscalYear", year, "error", err.Error())
		return nil
	}
	return metrics
}

// persist gives every known security a row, zero when it is not held.
func (h optimizerServiceHandler) persist(ctx context.Context, portfolio domain.TargetPortfolio, runID uuid.UUID) error {
	securities, err := h.SecurityRepository.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list securities: %w", err)
	}

	rows := make([]model.Portfolio, 0, len(securities))
	for _, s := range securities {
		rows = append(rows, model.Portfolio{
			Symbol:            s.Symbol,
			Allocation:        portfolio.Weights[s.Symbol],
			Shares:            int32(portfolio.Shares[s.Symbol]),
			FiscalYear:        int32(portfolio.FiscalYear),
			OptimizationRunID: runID,
		})
	}
	if err := h.PortfolioRepository.Replace(ctx, rows); err != nil {
		return fmt.Errorf("failed to replace portfolio: %w", err)
	}
	return nil
}
