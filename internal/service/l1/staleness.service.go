package l1_service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
	"fscoreportfolio/internal/util"
)

type ResolveInput struct {
	Symbols    []string
	MetaLapse  time.Duration
	PriceLapse time.Duration
	Now        time.Time
}

// StaleSymbols lists, per category, the securities that must be fetched.
// Each list is sorted and free of duplicates.
type StaleSymbols struct {
	Meta         []string
	Fundamentals []string
	Prices       []string
	// New holds symbols registered by this resolve.
	New []string
	// LatestPrice is the newest stored price date per symbol.
	LatestPrice map[string]time.Time
}

func (s StaleSymbols) Any() bool {
	return len(s.Meta) > 0 || len(s.Fundamentals) > 0 || len(s.Prices) > 0
}

func (s StaleSymbols) ByCategory(c domain.RecordCategory) []string {
	switch c {
	case domain.RecordCategoryMeta:
		return s.Meta
	case domain.RecordCategoryFundamentals:
		return s.Fundamentals
	case domain.RecordCategoryPrices:
		return s.Prices
	}
	return nil
}

type StalenessService interface {
	Resolve(ctx context.Context, in ResolveInput) (*StaleSymbols, error)
}

type stalenessServiceHandler struct {
	SecurityRepository    repository.SecurityRepository
	FundamentalRepository repository.FundamentalRepository
	PriceRepository       repository.PriceRepository
}

func NewStalenessService(
	securityRepository repository.SecurityRepository,
	fundamentalRepository repository.FundamentalRepository,
	priceRepository repository.PriceRepository,
) StalenessService {
	return stalenessServiceHandler{
		SecurityRepository:    securityRepository,
		FundamentalRepository: fundamentalRepository,
		PriceRepository:       priceRepository,
	}
}

// NormalizeSymbols trims, upper-cases, de-duplicates and sorts symbols.
func NormalizeSymbols(symbols []string) []string {
	set := map[string]bool{}
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (h stalenessServiceHandler) Resolve(ctx context.Context, in ResolveInput) (*StaleSymbols, error) {
	log := logger.FromContext(ctx)
	symbols := NormalizeSymbols(in.Symbols)
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	out := &StaleSymbols{
		Meta:         []string{},
		Fundamentals: []string{},
		Prices:       []string{},
		New:          []string{},
		LatestPrice:  map[string]time.Time{},
	}
	if len(symbols) == 0 {
		return out, nil
	}

	securities, err := h.SecurityRepository.ListBySymbols(nil, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	known := map[string]*time.Time{}
	for _, s := range securities {
		known[s.Symbol] = s.LastUpdated
	}

	for _, s := range symbols {
		if _, ok := known[s]; !ok {
			out.New = append(out.New, s)
		}
	}
	if len(out.New) > 0 {
		if _, err := h.SecurityRepository.Register(nil, out.New); err != nil {
			return nil, fmt.Errorf("failed to register new securities: %w", err)
		}
		log.Infow("registered new securities", "count", len(out.New))
	}

	latestYears, err := h.FundamentalRepository.LatestFiscalYears(nil, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest fiscal years: %w", err)
	}
	latestPrices, err := h.PriceRepository.LatestDates(nil, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price dates: %w", err)
	}

	currentYear := domain.CurrentFiscalYear(now)
	priceCutoff := util.TruncateDate(now).Add(-in.PriceLapse)

	for _, s := range symbols {
		lastUpdated := known[s]
		if lastUpdated == nil || now.Sub(*lastUpdated) > in.MetaLapse {
			out.Meta = append(out.Meta, s)
		}

		if year, ok := latestYears[s]; !ok || year < currentYear {
			out.Fundamentals = append(out.Fundamentals, s)
		}

		latest, ok := latestPrices[s]
		if ok {
			out.LatestPrice[s] = latest
		}
		if !ok || latest.Before(priceCutoff) {
			out.Prices = append(out.Prices, s)
		}
	}

	log.Infow(
		"resolved stale securities",
		"requested", len(symbols),
		"meta", len(out.Meta),
		"fundamentals", len(out.Fundamentals),
		"prices", len(out.Prices),
	)

	return out, nil
}
