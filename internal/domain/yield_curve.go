package domain

import (
	"fmt"
	"sort"
	"time"
)

// YieldCurve contains treasury yields at varying durations (months)
// observed on a given day, as decimals (0.05 == 5%).
type YieldCurve struct {
	Date  time.Time
	Rates map[int]float64
}

// GetRate returns the yield for the duration, linearly interpolating
// between the nearest known durations and clamping outside them.
func (yc YieldCurve) GetRate(months int) (float64, error) {
	if v, ok := yc.Rates[months]; ok {
		return v, nil
	}

	keys := []int{}
	for k := range yc.Rates {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if len(keys) == 0 {
		return 0, fmt.Errorf("no rates in yield curve")
	}
	if months < keys[0] {
		return yc.Rates[keys[0]], nil
	}
	if months > keys[len(keys)-1] {
		return yc.Rates[keys[len(keys)-1]], nil
	}

	for i := 0; i < len(keys)-1; i++ {
		lo, hi := keys[i], keys[i+1]
		if months > lo && months < hi {
			frac := float64(months-lo) / float64(hi-lo)
			return yc.Rates[lo] + frac*(yc.Rates[hi]-yc.Rates[lo]), nil
		}
	}

	return 0, fmt.Errorf("unable to compute rate for %d months", months)
}
