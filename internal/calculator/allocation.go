package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

type Allocation struct {
	Shares       map[string]int
	LeftoverCash decimal.Decimal
}

// DiscreteAllocator converts continuous weights into whole share counts
// that fit within budget.
type DiscreteAllocator interface {
	Allocate(weights map[string]float64, prices map[string]decimal.Decimal, budget decimal.Decimal) (*Allocation, error)
}

// GreedyAllocator buys floor(weight * budget / price) shares of every
// security, then spends the remainder one share at a time on whichever
// affordable security is furthest below its target share of the budget.
type GreedyAllocator struct {
	// MaxSkips bounds how many unaffordable securities are passed over
	// before the remainder is left as cash.
	MaxSkips int
}

func NewGreedyAllocator() GreedyAllocator {
	return GreedyAllocator{MaxSkips: 10}
}

type allocationTarget struct {
	symbol string
	weight float64
	price  decimal.Decimal
}

func (a GreedyAllocator) Allocate(weights map[string]float64, prices map[string]decimal.Decimal, budget decimal.Decimal) (*Allocation, error) {
	if budget.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("budget must be positive, got %s", budget.String())
	}

	targets := []allocationTarget{}
	var totalWeight float64
	for symbol, w := range weights {
		if w <= 0 {
			continue
		}
		price, ok := prices[symbol]
		if !ok || price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("missing or non-positive price for %s", symbol)
		}
		targets = append(targets, allocationTarget{symbol: symbol, weight: w, price: price})
		totalWeight += w
	}
	sort.Slice(targets, func(i, j int) bool {
		if targets[i].weight != targets[j].weight {
			return targets[i].weight > targets[j].weight
		}
		return targets[i].symbol < targets[j].symbol
	})

	out := &Allocation{
		Shares:       map[string]int{},
		LeftoverCash: budget,
	}
	for symbol := range weights {
		out.Shares[symbol] = 0
	}
	if len(targets) == 0 {
		return out, nil
	}

	available := budget
	shares := make([]int64, len(targets))
	for i, t := range targets {
		n := decimal.NewFromFloat(t.weight / totalWeight).Mul(budget).Div(t.price).Floor()
		cost := n.Mul(t.price)
		if cost.GreaterThan(available) {
			n = available.Div(t.price).Floor()
			cost = n.Mul(t.price)
		}
		shares[i] = n.IntPart()
		available = available.Sub(cost)
	}

	maxSkips := a.MaxSkips
	if maxSkips <= 0 {
		maxSkips = 10
	}
	// weights are measured against the whole budget so uninvested cash
	// always shows up as a positive deficit somewhere
	deficit := make([]float64, len(targets))
buy:
	for available.GreaterThan(decimal.Zero) {
		for i, t := range targets {
			current := t.price.Mul(decimal.NewFromInt(shares[i])).Div(budget).InexactFloat64()
			deficit[i] = t.weight/totalWeight - current
		}

		idx := argmax(deficit)
		for skips := 0; deficit[idx] > 0 && targets[idx].price.GreaterThan(available); skips++ {
			if skips == maxSkips {
				break buy
			}
			deficit[idx] = math.Inf(-1)
			idx = argmax(deficit)
		}
		if deficit[idx] <= 0 {
			break
		}
		shares[idx]++
		available = available.Sub(targets[idx].price)
	}

	for i, t := range targets {
		out.Shares[t.symbol] = int(shares[i])
	}
	out.LeftoverCash = available
	return out, nil
}

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
