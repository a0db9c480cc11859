package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TargetPortfolio is the optimizer output for one fiscal year.
type TargetPortfolio struct {
	FiscalYear   int
	Weights      map[string]float64
	Shares       map[string]int
	LeftoverCash decimal.Decimal
}

func (p TargetPortfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol, n := range p.Shares {
		if n > 0 {
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// TotalValue is the market value of the held shares plus leftover cash.
func (p TargetPortfolio) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := p.LeftoverCash
	for symbol, n := range p.Shares {
		if n == 0 {
			continue
		}
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", symbol)
		}
		totalValue = totalValue.Add(price.Mul(decimal.NewFromInt(int64(n))))
	}

	return totalValue, nil
}
