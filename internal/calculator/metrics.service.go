package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fscoreportfolio/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type CalculateMetricsResult struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
}

// CalculateMetrics measures how a fixed share allocation performed over the
// given trading days, holding the leftover cash uninvested.
func CalculateMetrics(portfolio domain.TargetPortfolio, tradingDays []time.Time, totalPriceMap map[time.Time]map[string]decimal.Decimal, riskFreeRate float64) (*CalculateMetricsResult, error) {
	days := append([]time.Time{}, tradingDays...)
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	values, err := portfolioValues(portfolio, days, totalPriceMap)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate portfolio values: %w", err)
	}
	returns, err := calculateReturns(values)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns: %w", err)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(TradingDaysPerYear)

	startValue := values[0].InexactFloat64()
	endValue := values[len(values)-1].InexactFloat64()
	numYears := days[len(days)-1].Sub(days[0]).Hours() / (365 * 24)
	annualizedReturn := math.Pow(endValue/startValue, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = (annualizedReturn - riskFreeRate) / annualizedStdev
	}

	return &CalculateMetricsResult{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
	}, nil
}

func portfolioValues(portfolio domain.TargetPortfolio, days []time.Time, totalPriceMap map[time.Time]map[string]decimal.Decimal) ([]decimal.Decimal, error) {
	if len(days) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 trading days")
	}
	values := make([]decimal.Decimal, 0, len(days))
	for _, t := range days {
		value, err := portfolio.TotalValue(totalPriceMap[t])
		if err != nil {
			return nil, fmt.Errorf("failed to calculate portfolio value on %v: %w", t, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func calculateReturns(values []decimal.Decimal) ([]float64, error) {
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		last := values[i-1]
		if last.IsZero() {
			return nil, fmt.Errorf("portfolio value is zero on day %d", i-1)
		}
		returns = append(returns, values[i].Sub(last).Div(last).InexactFloat64())
	}
	return returns, nil
}
