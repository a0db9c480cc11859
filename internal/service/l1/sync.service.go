package l1_service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
	"fscoreportfolio/internal/util"
)

type ReconcileResult struct {
	FlagsUpdated          int64
	DuplicatesCollapsed   int64
	OrphanedScoresDeleted int64
}

type SyncService interface {
	// Sync persists fetched provider records of one category and returns
	// how many new rows were written.
	Sync(ctx context.Context, category domain.RecordCategory, rows []domain.RawRecord) (int, error)
	// ReplaceScores swaps the stored scores of every symbol in scores.
	ReplaceScores(ctx context.Context, scores []model.Score) (int, error)
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}

type syncServiceHandler struct {
	SecurityRepository    repository.SecurityRepository
	FundamentalRepository repository.FundamentalRepository
	PriceRepository       repository.PriceRepository
	ScoreRepository       repository.ScoreRepository

	locks map[domain.RecordCategory]*sync.Mutex
}

func NewSyncService(
	securityRepository repository.SecurityRepository,
	fundamentalRepository repository.FundamentalRepository,
	priceRepository repository.PriceRepository,
	scoreRepository repository.ScoreRepository,
) SyncService {
	return syncServiceHandler{
		SecurityRepository:    securityRepository,
		FundamentalRepository: fundamentalRepository,
		PriceRepository:       priceRepository,
		ScoreRepository:       scoreRepository,
		locks: map[domain.RecordCategory]*sync.Mutex{
			domain.RecordCategoryMeta:         {},
			domain.RecordCategoryFundamentals: {},
			domain.RecordCategoryPrices:       {},
			domain.RecordCategoryScores:       {},
		},
	}
}

func (h syncServiceHandler) lock(c domain.RecordCategory) func() {
	mu, ok := h.locks[c]
	if !ok {
		return func() {}
	}
	mu.Lock()
	return mu.Unlock
}

func normalizeAll(ctx context.Context, manifest FieldManifest, rows []domain.RawRecord) []NormalizedRecord {
	log := logger.FromContext(ctx)
	out := []NormalizedRecord{}
	skipped := 0
	for _, r := range rows {
		n, err := manifest.Normalize(r)
		if err != nil {
			skipped++
			log.Debugw("skipping record", "category", manifest.Category, "error", err.Error())
			continue
		}
		out = append(out, n)
	}
	if skipped > 0 {
		log.Warnw("skipped malformed records", "category", manifest.Category, "count", skipped)
	}
	return out
}

func (h syncServiceHandler) Sync(ctx context.Context, category domain.RecordCategory, rows []domain.RawRecord) (int, error) {
	unlock := h.lock(category)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var (
		n   int64
		err error
	)
	switch category {
	case domain.RecordCategoryMeta:
		n, err = h.syncMeta(ctx, rows)
	case domain.RecordCategoryFundamentals:
		n, err = h.syncFundamentals(ctx, rows)
	case domain.RecordCategoryPrices:
		n, err = h.syncPrices(ctx, rows)
	default:
		return 0, fmt.Errorf("cannot sync raw records of category %s", category)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to sync %s: %w", category, err)
	}

	logger.FromContext(ctx).Infow("synced records", "category", category, "received", len(rows), "inserted", n)
	return int(n), nil
}

func (h syncServiceHandler) syncMeta(ctx context.Context, rows []domain.RawRecord) (int64, error) {
	bySymbol := map[string]model.Security{}
	for _, r := range normalizeAll(ctx, MetaManifest, rows) {
		bySymbol[r.Symbol] = securityFromRecord(r)
	}

	securities := make([]model.Security, 0, len(bySymbol))
	for _, s := range bySymbol {
		securities = append(securities, s)
	}
	sort.Slice(securities, func(i, j int) bool {
		return securities[i].Symbol < securities[j].Symbol
	})

	return h.SecurityRepository.UpsertMeta(nil, securities)
}

func (h syncServiceHandler) syncFundamentals(ctx context.Context, rows []domain.RawRecord) (int64, error) {
	batch := map[repository.FundamentalKey]model.Fundamental{}
	symbolSet := map[string]bool{}
	for _, r := range normalizeAll(ctx, FundamentalsManifest, rows) {
		f := fundamentalFromRecord(r)
		batch[repository.NewFundamentalKey(f)] = f
		symbolSet[f.Symbol] = true
	}
	if len(batch) == 0 {
		return 0, nil
	}

	existing, err := h.FundamentalRepository.ExistingKeys(nil, sortedKeys(symbolSet))
	if err != nil {
		return 0, err
	}

	toInsert := []model.Fundamental{}
	for key, f := range batch {
		if !existing[key] {
			toInsert = append(toInsert, f)
		}
	}
	if len(toInsert) == 0 {
		return 0, nil
	}
	sort.Slice(toInsert, func(i, j int) bool {
		if toInsert[i].Symbol != toInsert[j].Symbol {
			return toInsert[i].Symbol < toInsert[j].Symbol
		}
		return toInsert[i].AsOfDate.Before(toInsert[j].AsOfDate)
	})

	return h.FundamentalRepository.AddMany(nil, toInsert)
}

type priceKey struct {
	symbol string
	date   string
}

func (h syncServiceHandler) syncPrices(ctx context.Context, rows []domain.RawRecord) (int64, error) {
	batch := map[priceKey]model.SecurityPrice{}
	symbolSet := map[string]bool{}
	var minDate, maxDate time.Time
	for _, r := range normalizeAll(ctx, PricesManifest, rows) {
		p := priceFromRecord(r)
		batch[priceKey{symbol: p.Symbol, date: util.DateKey(p.Date)}] = p
		symbolSet[p.Symbol] = true
		if minDate.IsZero() || p.Date.Before(minDate) {
			minDate = p.Date
		}
		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}
	if len(batch) == 0 {
		return 0, nil
	}

	existing, err := h.PriceRepository.ExistingDates(nil, sortedKeys(symbolSet), minDate, maxDate)
	if err != nil {
		return 0, err
	}

	toInsert := []model.SecurityPrice{}
	for key, p := range batch {
		if !existing[key.symbol][key.date] {
			toInsert = append(toInsert, p)
		}
	}
	if len(toInsert) == 0 {
		return 0, nil
	}
	sort.Slice(toInsert, func(i, j int) bool {
		if toInsert[i].Symbol != toInsert[j].Symbol {
			return toInsert[i].Symbol < toInsert[j].Symbol
		}
		return toInsert[i].Date.Before(toInsert[j].Date)
	})

	return h.PriceRepository.AddMany(nil, toInsert)
}

func (h syncServiceHandler) ReplaceScores(ctx context.Context, scores []model.Score) (int, error) {
	unlock := h.lock(domain.RecordCategoryScores)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := h.ScoreRepository.ReplaceMany(nil, scores)
	if err != nil {
		return 0, fmt.Errorf("failed to sync scores: %w", err)
	}
	return int(n), nil
}

// Reconcile recomputes availability flags and removes duplicate or
// orphaned rows after a batch of syncs.
func (h syncServiceHandler) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := &ReconcileResult{}

	collapsed, err := h.FundamentalRepository.CollapseDuplicates(nil)
	if err != nil {
		return nil, err
	}
	out.DuplicatesCollapsed = collapsed

	orphans, err := h.ScoreRepository.DeleteOrphans(nil)
	if err != nil {
		return nil, err
	}
	out.OrphanedScoresDeleted = orphans

	flags, err := h.SecurityRepository.RefreshAvailability(nil)
	if err != nil {
		return nil, err
	}
	out.FlagsUpdated = flags

	logger.FromContext(ctx).Infow(
		"reconciled records",
		"duplicatesCollapsed", collapsed,
		"orphanedScores", orphans,
		"flagsUpdated", flags,
	)

	return out, nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
