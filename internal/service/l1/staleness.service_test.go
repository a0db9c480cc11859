package l1_service

import (
	"context"
	"testing"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	mock_repository "fscoreportfolio/internal/repository/mocks"
	"fscoreportfolio/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizeSymbols(t *testing.T) {
	require.Equal(t,
		[]string{"AAPL", "BRK.B", "MSFT"},
		NormalizeSymbols([]string{" msft", "AAPL", "aapl", "", "brk.b ", "MSFT"}),
	)
	require.Equal(t, []string{}, NormalizeSymbols(nil))
}

func TestStalenessService_Resolve(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	updated := now.Add(-10 * 24 * time.Hour)

	newHandler := func(ctrl *gomock.Controller) (
		StalenessService,
		*mock_repository.MockSecurityRepository,
		*mock_repository.MockFundamentalRepository,
		*mock_repository.MockPriceRepository,
	) {
		sec := mock_repository.NewMockSecurityRepository(ctrl)
		fund := mock_repository.NewMockFundamentalRepository(ctrl)
		price := mock_repository.NewMockPriceRepository(ctrl)
		return NewStalenessService(sec, fund, price), sec, fund, price
	}

	expectKnownAAPL := func(
		sec *mock_repository.MockSecurityRepository,
		fund *mock_repository.MockFundamentalRepository,
		price *mock_repository.MockPriceRepository,
	) {
		symbols := []string{"AAPL"}
		sec.EXPECT().ListBySymbols(nil, symbols).Return([]model.Security{
			{Symbol: "AAPL", LastUpdated: &updated},
		}, nil)
		fund.EXPECT().LatestFiscalYears(nil, symbols).Return(map[string]int{"AAPL": 2023}, nil)
		price.EXPECT().LatestDates(nil, symbols).Return(map[string]time.Time{
			"AAPL": util.NewDate(2024, 6, 14),
		}, nil)
	}

	t.Run("yesterday's price is fresh under a 30 day lapse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, sec, fund, price := newHandler(ctrl)
		expectKnownAAPL(sec, fund, price)

		out, err := handler.Resolve(context.Background(), ResolveInput{
			Symbols:    []string{"aapl"},
			MetaLapse:  90 * 24 * time.Hour,
			PriceLapse: 30 * 24 * time.Hour,
			Now:        now,
		})
		require.NoError(t, err)
		require.Empty(t, out.Meta)
		require.Empty(t, out.Fundamentals)
		require.Empty(t, out.Prices)
		require.Empty(t, out.New)
		require.False(t, out.Any())
		require.Equal(t, util.NewDate(2024, 6, 14), out.LatestPrice["AAPL"])
	})

	t.Run("yesterday's price is stale under a zero lapse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, sec, fund, price := newHandler(ctrl)
		expectKnownAAPL(sec, fund, price)

		out, err := handler.Resolve(context.Background(), ResolveInput{
			Symbols:    []string{"AAPL"},
			MetaLapse:  90 * 24 * time.Hour,
			PriceLapse: 0,
			Now:        now,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, out.Prices)
		require.Empty(t, out.Meta)
		require.True(t, out.Any())
	})

	t.Run("meta past its lapse is stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, sec, fund, price := newHandler(ctrl)
		expectKnownAAPL(sec, fund, price)

		out, err := handler.Resolve(context.Background(), ResolveInput{
			Symbols:    []string{"AAPL"},
			MetaLapse:  7 * 24 * time.Hour,
			PriceLapse: 30 * 24 * time.Hour,
			Now:        now,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, out.Meta)
		require.Empty(t, out.Prices)
	})

	t.Run("new symbols are registered and stale everywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, sec, fund, price := newHandler(ctrl)

		symbols := []string{"AAPL", "MSFT"}
		sec.EXPECT().ListBySymbols(nil, symbols).Return([]model.Security{
			{Symbol: "AAPL", LastUpdated: &updated},
		}, nil)
		sec.EXPECT().Register(nil, []string{"MSFT"}).Return(int64(1), nil)
		fund.EXPECT().LatestFiscalYears(nil, symbols).Return(map[string]int{"AAPL": 2022}, nil)
		price.EXPECT().LatestDates(nil, symbols).Return(map[string]time.Time{
			"AAPL": util.NewDate(2024, 6, 14),
		}, nil)

		out, err := handler.Resolve(context.Background(), ResolveInput{
			Symbols:    []string{"MSFT", "AAPL"},
			MetaLapse:  90 * 24 * time.Hour,
			PriceLapse: 30 * 24 * time.Hour,
			Now:        now,
		})
		require.NoError(t, err)

		want := &StaleSymbols{
			Meta:         []string{"MSFT"},
			Fundamentals: []string{"AAPL", "MSFT"},
			Prices:       []string{"MSFT"},
			New:          []string{"MSFT"},
			LatestPrice: map[string]time.Time{
				"AAPL": util.NewDate(2024, 6, 14),
			},
		}
		diff := cmp.Diff(want, out)
		require.Empty(t, diff)
	})

	t.Run("empty input touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _ := newHandler(ctrl)

		out, err := handler.Resolve(context.Background(), ResolveInput{Symbols: []string{" "}})
		require.NoError(t, err)
		require.False(t, out.Any())
	})
}
