package l2_service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
)

const annualPeriodType = "12M"

type FScoreService interface {
	// Score recomputes the financial-health score of every annual statement
	// of the given securities. Empty symbols means every security.
	Score(ctx context.Context, symbols []string) ([]model.Score, error)
}

type fScoreServiceHandler struct {
	FundamentalRepository repository.FundamentalRepository
	PriceRepository       repository.PriceRepository
}

func NewFScoreService(
	fundamentalRepository repository.FundamentalRepository,
	priceRepository repository.PriceRepository,
) FScoreService {
	return fScoreServiceHandler{
		FundamentalRepository: fundamentalRepository,
		PriceRepository:       priceRepository,
	}
}

func (h fScoreServiceHandler) Score(ctx context.Context, symbols []string) ([]model.Score, error) {
	fundamentals, err := h.FundamentalRepository.List(nil, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundamentals: %w", err)
	}
	closes, err := h.PriceRepository.YearEndCloses(nil, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get year end closes: %w", err)
	}

	bySymbol := map[string][]model.Fundamental{}
	for _, f := range fundamentals {
		bySymbol[f.Symbol] = append(bySymbol[f.Symbol], f)
	}

	scores := ComputeScores(bySymbol, closes)
	logger.FromContext(ctx).Infow("computed scores", "securities", len(bySymbol), "scores", len(scores))

	return scores, nil
}

// ComputeScores derives one score per annual statement. yearEndCloses is
// keyed by symbol then fiscal year and only feeds pe_ratio.
func ComputeScores(fundamentalsBySymbol map[string][]model.Fundamental, yearEndCloses map[string]map[int]float64) []model.Score {
	symbols := make([]string, 0, len(fundamentalsBySymbol))
	for s := range fundamentalsBySymbol {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	out := []model.Score{}
	for _, symbol := range symbols {
		out = append(out, scoreSecurity(symbol, fundamentalsBySymbol[symbol], yearEndCloses[symbol])...)
	}
	return out
}

// annualHistory keeps one 12M statement per fiscal year, preferring the
// latest as-of date, newest year first.
func annualHistory(rows []model.Fundamental) []model.Fundamental {
	byYear := map[int32]model.Fundamental{}
	for _, f := range rows {
		if f.PeriodType != annualPeriodType {
			continue
		}
		existing, ok := byYear[f.FiscalYear]
		if !ok || f.AsOfDate.After(existing.AsOfDate) ||
			(f.AsOfDate.Equal(existing.AsOfDate) && f.CreatedAt.After(existing.CreatedAt)) {
			byYear[f.FiscalYear] = f
		}
	}

	out := make([]model.Fundamental, 0, len(byYear))
	for _, f := range byYear {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FiscalYear > out[j].FiscalYear
	})
	return out
}

func scoreSecurity(symbol string, rows []model.Fundamental, closes map[int]float64) []model.Score {
	history := annualHistory(rows)

	// prior returns the statement one year older than index i.
	prior := func(i int) *model.Fundamental {
		if i+1 < len(history) && history[i+1].FiscalYear == history[i].FiscalYear-1 {
			return &history[i+1]
		}
		return nil
	}
	turnover := func(i int) *float64 {
		p := prior(i)
		if p == nil {
			return nil
		}
		return ratio(history[i].TotalRevenue, mean(history[i].TotalAssets, p.TotalAssets))
	}

	out := make([]model.Score, 0, len(history))
	for i := range history {
		f := history[i]
		s := model.Score{
			Symbol:     symbol,
			AsOfDate:   f.AsOfDate,
			FiscalYear: f.FiscalYear,
			Roa:        ratio(f.NetIncome, f.CurrentAssets),
			Cash:       finite(f.Cash),
			CashRatio:  ratio(f.Cash, f.CurrentLiabilities),
			Accruals:   ratio(f.Cash, f.CurrentAssets),
			Eps:        ratio(earnings(f), f.SharesOutstanding),
		}
		if c, ok := closes[int(f.FiscalYear)]; ok && s.Eps != nil {
			s.PeRatio = ratio(&c, s.Eps)
		}

		if p := prior(i); p != nil {
			s.DeltaCash = delta(f.Cash, p.Cash)
			s.DeltaRoa = delta(ratio(f.NetIncome, f.CurrentAssets), ratio(p.NetIncome, p.CurrentAssets))
			s.DeltaLongLevRatio = delta(ratio(f.TotalLiabilities, f.TotalAssets), ratio(p.TotalLiabilities, p.TotalAssets))
			s.DeltaCurrentLevRatio = delta(ratio(f.CurrentLiabilities, f.CurrentAssets), ratio(p.CurrentLiabilities, p.CurrentAssets))
			s.DeltaShares = delta(f.SharesOutstanding, p.SharesOutstanding)
			s.DeltaGrossMargin = delta(ratio(f.GrossProfit, f.TotalRevenue), ratio(p.GrossProfit, p.TotalRevenue))
			s.DeltaAssetTurnover = delta(turnover(i), turnover(i+1))
		}

		s.PfScore, s.PfScoreWeighted = pfScore(s)
		out = append(out, s)
	}
	return out
}

type signal struct {
	value     *float64
	favorable func(float64) bool
}

func positive(v float64) bool    { return v > 0 }
func negative(v float64) bool    { return v < 0 }
func nonPositive(v float64) bool { return v <= 0 }

// pfScore counts the favorable signals and, for the weighted variant, sums
// 1+|v| over the same signals. Missing values never count.
func pfScore(s model.Score) (int32, float64) {
	signals := []signal{
		{s.Roa, positive},
		{s.DeltaCash, positive},
		{s.DeltaRoa, positive},
		{s.Accruals, positive},
		{s.DeltaCurrentLevRatio, positive},
		{s.DeltaGrossMargin, positive},
		{s.DeltaAssetTurnover, positive},
		{s.DeltaLongLevRatio, negative},
		{s.DeltaShares, nonPositive},
	}

	var (
		score    int32
		weighted float64
	)
	for _, sig := range signals {
		if sig.value == nil || !sig.favorable(*sig.value) {
			continue
		}
		score++
		weighted += 1 + math.Abs(*sig.value)
	}
	return score, weighted
}

func earnings(f model.Fundamental) *float64 {
	if f.NetIncomeCommonStockholders != nil {
		return f.NetIncomeCommonStockholders
	}
	return f.NetIncome
}

func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	x := *v
	return &x
}

func ratio(numer, denom *float64) *float64 {
	if numer == nil || denom == nil {
		return nil
	}
	r := *numer / *denom
	return finite(&r)
}

// delta is the relative change from prev to curr.
func delta(curr, prev *float64) *float64 {
	if curr == nil || prev == nil {
		return nil
	}
	d := *curr - *prev
	return ratio(&d, prev)
}

func mean(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	m := (*a + *b) / 2
	return finite(&m)
}
