package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/pkg/datajockey"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

var ErrFundamentalsProviderNotConfigured = errors.New("fundamentals provider not configured")

// MarketDataRepository is the gateway to the external provider. Records
// come back keyed by provider-native field names.
type MarketDataRepository interface {
	GetMeta(ctx context.Context, symbol string) (domain.RawRecord, error)
	GetFundamentals(ctx context.Context, symbol string) ([]domain.RawRecord, error)
	GetPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.RawRecord, error)
}

type marketDataRepositoryHandler struct {
	DataJockey *datajockey.Client
}

func NewMarketDataRepository(dj *datajockey.Client) MarketDataRepository {
	return marketDataRepositoryHandler{DataJockey: dj}
}

// callWithContext runs a blocking provider call and abandons it when ctx
// is done. The goroutine finishes on its own once the call returns.
func callWithContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

func (h marketDataRepositoryHandler) GetMeta(ctx context.Context, symbol string) (domain.RawRecord, error) {
	q, err := callWithContext(ctx, func() (*finance.Quote, error) {
		return quote.Get(symbol)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	return domain.RawRecord{
		"shortName":        q.ShortName,
		"currency":         q.CurrencyID,
		"fullExchangeName": q.FullExchangeName,
	}, nil
}

func (h marketDataRepositoryHandler) GetFundamentals(ctx context.Context, symbol string) ([]domain.RawRecord, error) {
	if h.DataJockey == nil {
		return nil, ErrFundamentalsProviderNotConfigured
	}
	resp, err := h.DataJockey.GetAssetMetrics(ctx, symbol, datajockey.PeriodAnnual)
	if err != nil {
		return nil, fmt.Errorf("failed to get fundamentals for %s: %w", symbol, err)
	}

	out := []domain.RawRecord{}
	for _, s := range resp.FinancialData.Annual.Statements() {
		r := domain.RawRecord{
			"asOfDate":     domain.FiscalYearEnd(s.Year),
			"periodType":   "12M",
			"currencyCode": resp.Currency,
		}
		for k, v := range s.Values {
			r[k] = v
		}
		out = append(out, r)
	}

	return out, nil
}

func (h marketDataRepositoryHandler) GetPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.RawRecord, error) {
	return callWithContext(ctx, func() ([]domain.RawRecord, error) {
		params := &chart.Params{
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Symbol:   symbol,
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		out := []domain.RawRecord{}
		for iter.Next() {
			bar := iter.Bar()
			out = append(out, domain.RawRecord{
				"Date":      time.Unix(int64(bar.Timestamp), 0).UTC(),
				"Open":      bar.Open,
				"High":      bar.High,
				"Low":       bar.Low,
				"Close":     bar.Close,
				"Adj Close": bar.AdjClose,
				"Volume":    bar.Volume,
			})
		}
		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
		}

		return out, nil
	})
}
