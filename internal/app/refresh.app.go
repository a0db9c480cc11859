package app

import (
	"context"
	"fmt"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/logger"
	"fscoreportfolio/internal/repository"
	l1_service "fscoreportfolio/internal/service/l1"
	l2_service "fscoreportfolio/internal/service/l2"
)

type RefreshHandler struct {
	DataSettingsRepository repository.DataSettingsRepository
	SecurityRepository     repository.SecurityRepository
	StalenessService       l1_service.StalenessService
	FetchService           l1_service.FetchService
	SyncService            l1_service.SyncService
	FScoreService          l2_service.FScoreService
}

type RefreshInput struct {
	// Symbols to refresh. Empty means every known security.
	Symbols []string
	Now     time.Time
}

type RefreshResult struct {
	Stale         *l1_service.StaleSymbols
	Inserted      map[domain.RecordCategory]int
	Failed        []l1_service.FetchError
	Removed       []string
	Reconciled    *l1_service.ReconcileResult
	ScoresWritten int
}

// Refresh brings stale records of the given securities up to date and
// recomputes their scores. A category that synced before a failure or
// cancellation stays committed.
func (h RefreshHandler) Refresh(ctx context.Context, in RefreshInput) (*RefreshResult, error) {
	log := logger.FromContext(ctx)
	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx = domain.NewCtxWithProfile(ctx, profile)

	settings, err := loadSettings(h.DataSettingsRepository)
	if err != nil {
		return nil, err
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	symbols := l1_service.NormalizeSymbols(in.Symbols)
	if len(symbols) == 0 {
		securities, err := h.SecurityRepository.List(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list securities: %w", err)
		}
		for _, s := range securities {
			symbols = append(symbols, s.Symbol)
		}
	}

	_, endSpan := profile.StartNewSpan("resolve stale records")
	stale, err := h.StalenessService.Resolve(ctx, l1_service.ResolveInput{
		Symbols:    symbols,
		MetaLapse:  settings.MetaLapse,
		PriceLapse: settings.PriceLapse,
		Now:        now,
	})
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stale records: %w", err)
	}

	out := &RefreshResult{
		Stale:    stale,
		Inserted: map[domain.RecordCategory]int{},
	}

	if stale.Any() {
		_, endSpan = profile.StartNewSpan("fetch stale records")
		fetched, err := h.FetchService.Fetch(ctx, l1_service.FetchInput{
			Stale:      stale,
			PriceStart: settings.StartDate,
			Now:        now,
		})
		endSpan()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch stale records: %w", err)
		}
		out.Failed = fetched.Failed
		out.Removed = fetched.Removed

		for _, category := range domain.FetchedCategories {
			rows := fetched.Records[category]
			if len(rows) == 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return out, fmt.Errorf("refresh cancelled before syncing %s: %w", category, err)
			}
			_, endSpan = profile.StartNewSpan(fmt.Sprintf("sync %s", category))
			inserted, err := h.SyncService.Sync(ctx, category, rows)
			endSpan()
			if err != nil {
				return out, fmt.Errorf("failed to sync %s: %w", category, err)
			}
			out.Inserted[category] = inserted
		}
	}

	_, endSpan = profile.StartNewSpan("reconcile")
	out.Reconciled, err = h.SyncService.Reconcile(ctx)
	endSpan()
	if err != nil {
		return out, fmt.Errorf("failed to reconcile: %w", err)
	}

	_, endSpan = profile.StartNewSpan("score")
	out.ScoresWritten, err = h.rescore(ctx, symbols)
	endSpan()
	if err != nil {
		return out, err
	}

	log.Infow("refreshed securities",
		"symbols", len(symbols),
		"inserted", out.Inserted,
		"failed", len(out.Failed),
		"removed", out.Removed,
		"scores", out.ScoresWritten,
	)
	logProfile(ctx, profile)
	return out, nil
}

// Rescore recomputes and stores scores without fetching. Empty symbols
// means every security.
func (h RefreshHandler) Rescore(ctx context.Context, symbols []string) (int, error) {
	return h.rescore(ctx, l1_service.NormalizeSymbols(symbols))
}

func (h RefreshHandler) rescore(ctx context.Context, symbols []string) (int, error) {
	scores, err := h.FScoreService.Score(ctx, symbols)
	if err != nil {
		return 0, fmt.Errorf("failed to score securities: %w", err)
	}
	written, err := h.SyncService.ReplaceScores(ctx, scores)
	if err != nil {
		return 0, fmt.Errorf("failed to store scores: %w", err)
	}
	return written, nil
}

func loadSettings(r repository.DataSettingsRepository) (*domain.DataSettings, error) {
	settings, err := r.Get(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load data settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func logProfile(ctx context.Context, profile *domain.Profile) {
	profile.End()
	bytes, err := profile.ToJsonBytes()
	if err != nil {
		return
	}
	logger.FromContext(ctx).Debugw("run profile", "spans", string(bytes), "totalMs", profile.TotalMs)
}
