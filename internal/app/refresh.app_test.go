package app

import (
	"context"
	"errors"
	"testing"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/repository"
	mock_repository "fscoreportfolio/internal/repository/mocks"
	l1_service "fscoreportfolio/internal/service/l1"
	mock_l1_service "fscoreportfolio/internal/service/l1/mocks"
	mock_l2_service "fscoreportfolio/internal/service/l2/mocks"
	l3_service "fscoreportfolio/internal/service/l3"
	mock_l3_service "fscoreportfolio/internal/service/l3/mocks"
	"fscoreportfolio/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type refreshMocks struct {
	settings  *mock_repository.MockDataSettingsRepository
	security  *mock_repository.MockSecurityRepository
	staleness *mock_l1_service.MockStalenessService
	fetch     *mock_l1_service.MockFetchService
	sync      *mock_l1_service.MockSyncService
	fscore    *mock_l2_service.MockFScoreService
}

func newRefreshHandler(t *testing.T) (RefreshHandler, refreshMocks) {
	ctrl := gomock.NewController(t)
	m := refreshMocks{
		settings:  mock_repository.NewMockDataSettingsRepository(ctrl),
		security:  mock_repository.NewMockSecurityRepository(ctrl),
		staleness: mock_l1_service.NewMockStalenessService(ctrl),
		fetch:     mock_l1_service.NewMockFetchService(ctrl),
		sync:      mock_l1_service.NewMockSyncService(ctrl),
		fscore:    mock_l2_service.NewMockFScoreService(ctrl),
	}
	return RefreshHandler{
		DataSettingsRepository: m.settings,
		SecurityRepository:     m.security,
		StalenessService:       m.staleness,
		FetchService:           m.fetch,
		SyncService:            m.sync,
		FScoreService:          m.fscore,
	}, m
}

func TestRefreshHandler_Refresh(t *testing.T) {
	now := util.NewDate(2024, 6, 15)
	settings := domain.DefaultDataSettings()

	t.Run("syncs fetched categories in order then scores", func(t *testing.T) {
		handler, m := newRefreshHandler(t)
		m.settings.EXPECT().Get(nil).Return(&settings, nil)

		stale := &l1_service.StaleSymbols{
			Meta:   []string{"AAPL"},
			Prices: []string{"AAPL", "MSFT"},
		}
		m.staleness.EXPECT().
			Resolve(gomock.Any(), l1_service.ResolveInput{
				Symbols:    []string{"AAPL", "MSFT"},
				MetaLapse:  settings.MetaLapse,
				PriceLapse: settings.PriceLapse,
				Now:        now,
			}).
			Return(stale, nil)

		meta := []domain.RawRecord{{"symbol": "AAPL"}}
		prices := []domain.RawRecord{{"symbol": "AAPL"}, {"symbol": "MSFT"}}
		fetchErr := l1_service.FetchError{Symbol: "MSFT", Category: domain.RecordCategoryMeta, Err: errors.New("timeout")}
		m.fetch.EXPECT().
			Fetch(gomock.Any(), l1_service.FetchInput{Stale: stale, PriceStart: settings.StartDate, Now: now}).
			Return(&l1_service.FetchResult{
				Records: map[domain.RecordCategory][]domain.RawRecord{
					domain.RecordCategoryMeta:   meta,
					domain.RecordCategoryPrices: prices,
				},
				Failed: []l1_service.FetchError{fetchErr},
			}, nil)

		scores := []model.Score{{Symbol: "AAPL", FiscalYear: 2023}}
		gomock.InOrder(
			m.sync.EXPECT().Sync(gomock.Any(), domain.RecordCategoryMeta, meta).Return(1, nil),
			m.sync.EXPECT().Sync(gomock.Any(), domain.RecordCategoryPrices, prices).Return(2, nil),
			m.sync.EXPECT().Reconcile(gomock.Any()).Return(&l1_service.ReconcileResult{FlagsUpdated: 2}, nil),
			m.fscore.EXPECT().Score(gomock.Any(), []string{"AAPL", "MSFT"}).Return(scores, nil),
			m.sync.EXPECT().ReplaceScores(gomock.Any(), scores).Return(1, nil),
		)

		out, err := handler.Refresh(context.Background(), RefreshInput{
			Symbols: []string{" msft", "AAPL", "aapl"},
			Now:     now,
		})
		require.NoError(t, err)
		require.Equal(t, map[domain.RecordCategory]int{
			domain.RecordCategoryMeta:   1,
			domain.RecordCategoryPrices: 2,
		}, out.Inserted)
		require.Equal(t, []l1_service.FetchError{fetchErr}, out.Failed)
		require.Equal(t, 1, out.ScoresWritten)
	})

	t.Run("nothing stale skips fetching", func(t *testing.T) {
		handler, m := newRefreshHandler(t)
		m.settings.EXPECT().Get(nil).Return(&settings, nil)
		m.security.EXPECT().List(nil).Return([]model.Security{{Symbol: "AAPL"}}, nil)
		m.staleness.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&l1_service.StaleSymbols{}, nil)
		m.sync.EXPECT().Reconcile(gomock.Any()).Return(&l1_service.ReconcileResult{}, nil)
		m.fscore.EXPECT().Score(gomock.Any(), []string{"AAPL"}).Return([]model.Score{}, nil)
		m.sync.EXPECT().ReplaceScores(gomock.Any(), []model.Score{}).Return(0, nil)

		out, err := handler.Refresh(context.Background(), RefreshInput{Now: now})
		require.NoError(t, err)
		require.Empty(t, out.Inserted)
	})

	t.Run("a failed category keeps earlier ones", func(t *testing.T) {
		handler, m := newRefreshHandler(t)
		m.settings.EXPECT().Get(nil).Return(&settings, nil)
		stale := &l1_service.StaleSymbols{Meta: []string{"AAPL"}, Fundamentals: []string{"AAPL"}}
		m.staleness.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(stale, nil)
		m.fetch.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(&l1_service.FetchResult{
			Records: map[domain.RecordCategory][]domain.RawRecord{
				domain.RecordCategoryMeta:         {{"symbol": "AAPL"}},
				domain.RecordCategoryFundamentals: {{"symbol": "AAPL"}},
			},
		}, nil)
		m.sync.EXPECT().Sync(gomock.Any(), domain.RecordCategoryMeta, gomock.Any()).Return(1, nil)
		m.sync.EXPECT().Sync(gomock.Any(), domain.RecordCategoryFundamentals, gomock.Any()).Return(0, errors.New("db down"))

		out, err := handler.Refresh(context.Background(), RefreshInput{Symbols: []string{"AAPL"}, Now: now})
		require.ErrorContains(t, err, "failed to sync fundamentals")
		require.Equal(t, 1, out.Inserted[domain.RecordCategoryMeta])
	})

	t.Run("missing settings are fatal", func(t *testing.T) {
		handler, m := newRefreshHandler(t)
		m.settings.EXPECT().Get(nil).Return(nil, repository.ErrSettingsNotFound)

		_, err := handler.Refresh(context.Background(), RefreshInput{Symbols: []string{"AAPL"}})
		require.ErrorIs(t, err, repository.ErrSettingsNotFound)
	})
}

func TestOptimizeHandler_Optimize(t *testing.T) {
	t.Run("passes stored settings through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsRepository := mock_repository.NewMockDataSettingsRepository(ctrl)
		optimizer := mock_l3_service.NewMockOptimizerService(ctrl)
		settings := domain.DefaultDataSettings()
		settings.FScoreThreshold = 8

		settingsRepository.EXPECT().Get(nil).Return(&settings, nil)
		optimizer.EXPECT().
			Optimize(gomock.Any(), l3_service.OptimizeInput{Settings: settings, Backcast: true}).
			Return(&l3_service.OptimizeResult{Portfolio: domain.TargetPortfolio{FiscalYear: 2023}}, nil)

		handler := OptimizeHandler{
			DataSettingsRepository: settingsRepository,
			OptimizerService:       optimizer,
		}
		out, err := handler.Optimize(context.Background(), true)
		require.NoError(t, err)
		require.Equal(t, 2023, out.Portfolio.FiscalYear)
	})

	t.Run("invalid settings never reach the optimizer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsRepository := mock_repository.NewMockDataSettingsRepository(ctrl)
		settings := domain.DefaultDataSettings()
		settings.Objective = "max_return"
		settingsRepository.EXPECT().Get(nil).Return(&settings, nil)

		handler := OptimizeHandler{
			DataSettingsRepository: settingsRepository,
			OptimizerService:       mock_l3_service.NewMockOptimizerService(ctrl),
		}
		_, err := handler.Optimize(context.Background(), false)
		require.ErrorContains(t, err, "Objective")
	})
}
