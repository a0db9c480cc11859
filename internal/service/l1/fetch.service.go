package l1_service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
	"fscoreportfolio/internal/util"
)

// FetchError is a per-ticker provider failure. It never aborts the batch.
type FetchError struct {
	Symbol   string
	Category domain.RecordCategory
	Err      error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s for %s: %s", e.Category, e.Symbol, e.Err.Error())
}

func (e FetchError) Unwrap() error {
	return e.Err
}

type FetchInput struct {
	Stale *StaleSymbols
	// PriceStart is the first date requested for securities with no
	// stored prices.
	PriceStart time.Time
	Now        time.Time
}

type FetchResult struct {
	Records map[domain.RecordCategory][]domain.RawRecord
	Failed  []FetchError
	// Removed lists new securities deleted because their fetch failed.
	Removed []string
}

type FetchService interface {
	Fetch(ctx context.Context, in FetchInput) (*FetchResult, error)
}

type fetchServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	SecurityRepository   repository.SecurityRepository
	Concurrency          int
	Timeout              time.Duration
}

func NewFetchService(
	marketDataRepository repository.MarketDataRepository,
	securityRepository repository.SecurityRepository,
	concurrency int,
	timeout time.Duration,
) FetchService {
	if concurrency <= 0 {
		concurrency = 10
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return fetchServiceHandler{
		MarketDataRepository: marketDataRepository,
		SecurityRepository:   securityRepository,
		Concurrency:          concurrency,
		Timeout:              timeout,
	}
}

type fetchJob struct {
	symbol     string
	categories []domain.RecordCategory
	priceStart time.Time
}

type fetchOutcome struct {
	symbol  string
	records map[domain.RecordCategory][]domain.RawRecord
	failed  []FetchError
}

func buildJobs(in FetchInput, now time.Time) []fetchJob {
	bySymbol := map[string]*fetchJob{}
	for _, c := range domain.FetchedCategories {
		for _, s := range in.Stale.ByCategory(c) {
			if _, ok := bySymbol[s]; !ok {
				bySymbol[s] = &fetchJob{symbol: s}
			}
			job := bySymbol[s]
			if c == domain.RecordCategoryPrices {
				start := util.TruncateDate(in.PriceStart)
				if latest, ok := in.Stale.LatestPrice[s]; ok {
					start = util.TruncateDate(latest).AddDate(0, 0, 1)
				}
				if start.After(now) {
					continue
				}
				job.priceStart = start
			}
			job.categories = append(job.categories, c)
		}
	}

	jobs := []fetchJob{}
	for _, j := range bySymbol {
		if len(j.categories) > 0 {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].symbol < jobs[j].symbol
	})
	return jobs
}

func (h fetchServiceHandler) fetchCategory(ctx context.Context, job fetchJob, c domain.RecordCategory, now time.Time) ([]domain.RawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	switch c {
	case domain.RecordCategoryMeta:
		r, err := h.MarketDataRepository.GetMeta(ctx, job.symbol)
		if err != nil {
			return nil, err
		}
		return []domain.RawRecord{r}, nil
	case domain.RecordCategoryFundamentals:
		return h.MarketDataRepository.GetFundamentals(ctx, job.symbol)
	case domain.RecordCategoryPrices:
		return h.MarketDataRepository.GetPrices(ctx, job.symbol, job.priceStart, now)
	}
	return nil, fmt.Errorf("category %s is not fetched from the provider", c)
}

func (h fetchServiceHandler) fetchOne(ctx context.Context, job fetchJob, now time.Time) fetchOutcome {
	out := fetchOutcome{
		symbol:  job.symbol,
		records: map[domain.RecordCategory][]domain.RawRecord{},
	}
	for _, c := range job.categories {
		records, err := h.fetchCategory(ctx, job, c, now)
		if err != nil {
			out.failed = append(out.failed, FetchError{Symbol: job.symbol, Category: c, Err: err})
			continue
		}
		for _, r := range records {
			if r == nil {
				continue
			}
			r[domain.RawSymbolKey] = job.symbol
			out.records[c] = append(out.records[c], r)
		}
	}
	return out
}

// Fetch pulls every stale category of every stale ticker through a bounded
// worker pool. A ticker that was registered by this batch and fails is
// deleted and all of its records discarded.
func (h fetchServiceHandler) Fetch(ctx context.Context, in FetchInput) (*FetchResult, error) {
	log := logger.FromContext(ctx)
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	result := &FetchResult{
		Records: map[domain.RecordCategory][]domain.RawRecord{},
		Failed:  []FetchError{},
		Removed: []string{},
	}
	if in.Stale == nil {
		return result, nil
	}

	jobs := buildJobs(in, now)
	inputCh := make(chan fetchJob, len(jobs))
	for _, j := range jobs {
		inputCh <- j
	}
	close(inputCh)

	outcomes := make(chan fetchOutcome, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < h.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-inputCh:
					if !ok {
						return
					}
					outcomes <- h.fetchOne(ctx, job, now)
				}
			}
		}()
	}
	wg.Wait()
	close(outcomes)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch cancelled: %w", err)
	}

	isNew := map[string]bool{}
	for _, s := range in.Stale.New {
		isNew[s] = true
	}

	all := []fetchOutcome{}
	for o := range outcomes {
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].symbol < all[j].symbol
	})

	for _, o := range all {
		for _, fe := range o.failed {
			log.Warnw("failed to fetch security data", "symbol", fe.Symbol, "category", fe.Category, "error", fe.Err.Error())
		}
		result.Failed = append(result.Failed, o.failed...)

		if len(o.failed) > 0 && isNew[o.symbol] {
			result.Removed = append(result.Removed, o.symbol)
			continue
		}
		for c, records := range o.records {
			result.Records[c] = append(result.Records[c], records...)
		}
	}

	if len(result.Removed) > 0 {
		if err := h.SecurityRepository.Delete(nil, result.Removed); err != nil {
			return nil, fmt.Errorf("failed to remove securities that could not be fetched: %w", err)
		}
		log.Infow("removed new securities with failed fetches", "symbols", result.Removed)
	}

	return result, nil
}
