package l2_service

import (
	"context"
	"testing"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	mock_repository "fscoreportfolio/internal/repository/mocks"
	"fscoreportfolio/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func annual(symbol string, year int, f func(*model.Fundamental)) model.Fundamental {
	out := model.Fundamental{
		Symbol:     symbol,
		AsOfDate:   util.NewDate(year, 12, 31),
		PeriodType: annualPeriodType,
		FiscalYear: int32(year),
	}
	if f != nil {
		f(&out)
	}
	return out
}

func fullStatement(symbol string, year int, scale float64) model.Fundamental {
	return annual(symbol, year, func(f *model.Fundamental) {
		f.NetIncome = util.Ptr(100 * scale)
		f.NetIncomeCommonStockholders = util.Ptr(90 * scale)
		f.TotalLiabilities = util.Ptr(400 / scale)
		f.TotalAssets = util.Ptr(2000.0)
		f.CurrentAssets = util.Ptr(1000.0)
		f.CurrentLiabilities = util.Ptr(500 * scale)
		f.SharesOutstanding = util.Ptr(10.0)
		f.Cash = util.Ptr(200 * scale)
		f.GrossProfit = util.Ptr(300 * scale * scale)
		f.TotalRevenue = util.Ptr(1000 * scale)
	})
}

func TestComputeScores(t *testing.T) {
	t.Run("ratio and delta round trip", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"AAPL": {
				annual("AAPL", 2023, func(f *model.Fundamental) {
					f.NetIncome = util.Ptr(100.0)
					f.CurrentAssets = util.Ptr(1000.0)
					f.Cash = util.Ptr(200.0)
				}),
				annual("AAPL", 2022, func(f *model.Fundamental) {
					f.NetIncome = util.Ptr(100.0)
					f.CurrentAssets = util.Ptr(1000.0)
					f.Cash = util.Ptr(150.0)
				}),
			},
		}

		scores := ComputeScores(rows, nil)
		require.Len(t, scores, 2)

		latest := scores[0]
		require.Equal(t, int32(2023), latest.FiscalYear)
		require.InDelta(t, 0.1, *latest.Roa, 1e-12)
		require.InDelta(t, 0.2, *latest.Accruals, 1e-12)
		require.InDelta(t, 1.0/3.0, *latest.DeltaCash, 1e-12)
		require.InDelta(t, 0.0, *latest.DeltaRoa, 1e-12)
		require.Nil(t, latest.DeltaShares)
		require.Nil(t, latest.PeRatio)
	})

	t.Run("oldest period has null deltas", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"MSFT": {
				fullStatement("MSFT", 2021, 1),
				fullStatement("MSFT", 2022, 1.1),
				fullStatement("MSFT", 2023, 1.2),
			},
		}
		scores := ComputeScores(rows, nil)
		require.Len(t, scores, 3)

		oldest := scores[2]
		require.Equal(t, int32(2021), oldest.FiscalYear)
		require.NotNil(t, oldest.Roa)
		for _, v := range []*float64{
			oldest.DeltaCash,
			oldest.DeltaRoa,
			oldest.DeltaLongLevRatio,
			oldest.DeltaCurrentLevRatio,
			oldest.DeltaShares,
			oldest.DeltaGrossMargin,
			oldest.DeltaAssetTurnover,
		} {
			require.Nil(t, v)
		}

		// asset turnover needs two prior years
		require.Nil(t, scores[1].DeltaAssetTurnover)
		require.NotNil(t, scores[0].DeltaAssetTurnover)
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"MSFT": {
				fullStatement("MSFT", 2021, 1),
				fullStatement("MSFT", 2022, 1.1),
				fullStatement("MSFT", 2023, 1.2),
			},
		}
		for _, s := range ComputeScores(rows, nil) {
			require.GreaterOrEqual(t, s.PfScore, int32(0))
			require.LessOrEqual(t, s.PfScore, int32(9))
			require.GreaterOrEqual(t, s.PfScoreWeighted, float64(s.PfScore))
		}
	})

	t.Run("every signal favorable scores nine", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"MSFT": {
				fullStatement("MSFT", 2021, 1),
				fullStatement("MSFT", 2022, 1.1),
				fullStatement("MSFT", 2023, 1.2),
			},
		}
		latest := ComputeScores(rows, nil)[0]

		// roa, cash, accruals, current leverage, gross margin and turnover
		// all grow; long leverage falls and shares are flat
		require.Greater(t, *latest.DeltaRoa, 0.0)
		require.Less(t, *latest.DeltaLongLevRatio, 0.0)
		require.Equal(t, 0.0, *latest.DeltaShares)
		require.Greater(t, *latest.DeltaAssetTurnover, 0.0)
		require.Equal(t, int32(9), latest.PfScore)
	})

	t.Run("division by zero yields null", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"ZERO": {
				annual("ZERO", 2023, func(f *model.Fundamental) {
					f.NetIncome = util.Ptr(10.0)
					f.CurrentAssets = util.Ptr(0.0)
					f.Cash = util.Ptr(5.0)
					f.SharesOutstanding = util.Ptr(0.0)
				}),
				annual("ZERO", 2022, func(f *model.Fundamental) {
					f.Cash = util.Ptr(0.0)
				}),
			},
		}
		s := ComputeScores(rows, nil)[0]
		require.Nil(t, s.Roa)
		require.Nil(t, s.Accruals)
		require.Nil(t, s.Eps)
		require.Nil(t, s.DeltaCash)
		require.Equal(t, int32(0), s.PfScore)
		require.Equal(t, 0.0, s.PfScoreWeighted)
	})

	t.Run("shares reduction earns the point", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"BUY": {
				annual("BUY", 2023, func(f *model.Fundamental) { f.SharesOutstanding = util.Ptr(90.0) }),
				annual("BUY", 2022, func(f *model.Fundamental) { f.SharesOutstanding = util.Ptr(100.0) }),
			},
		}
		s := ComputeScores(rows, nil)[0]
		require.InDelta(t, -0.1, *s.DeltaShares, 1e-12)
		require.Equal(t, int32(1), s.PfScore)
		require.InDelta(t, 1.1, s.PfScoreWeighted, 1e-12)
	})

	t.Run("duplicate fiscal years keep the latest statement", func(t *testing.T) {
		early := annual("DUP", 2023, func(f *model.Fundamental) {
			f.AsOfDate = util.NewDate(2023, 12, 1)
			f.Cash = util.Ptr(1.0)
		})
		late := annual("DUP", 2023, func(f *model.Fundamental) { f.Cash = util.Ptr(2.0) })
		quarterly := annual("DUP", 2023, func(f *model.Fundamental) {
			f.AsOfDate = util.NewDate(2024, 1, 5)
			f.PeriodType = "3M"
			f.Cash = util.Ptr(3.0)
		})

		scores := ComputeScores(map[string][]model.Fundamental{"DUP": {early, quarterly, late}}, nil)
		require.Len(t, scores, 1)
		require.Equal(t, 2.0, *scores[0].Cash)
		require.Equal(t, util.NewDate(2023, 12, 31), scores[0].AsOfDate)
	})

	t.Run("a missing year breaks the delta chain", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"GAP": {
				annual("GAP", 2023, func(f *model.Fundamental) { f.Cash = util.Ptr(2.0) }),
				annual("GAP", 2020, func(f *model.Fundamental) { f.Cash = util.Ptr(1.0) }),
			},
		}
		require.Nil(t, ComputeScores(rows, nil)[0].DeltaCash)
	})

	t.Run("pe ratio uses the year end close", func(t *testing.T) {
		rows := map[string][]model.Fundamental{
			"PE": {annual("PE", 2023, func(f *model.Fundamental) {
				f.NetIncome = util.Ptr(50.0)
				f.SharesOutstanding = util.Ptr(10.0)
			})},
		}
		s := ComputeScores(rows, map[string]map[int]float64{"PE": {2023: 100}})[0]
		require.InDelta(t, 5.0, *s.Eps, 1e-12)
		require.InDelta(t, 20.0, *s.PeRatio, 1e-12)
	})
}

func TestFScoreService_Score(t *testing.T) {
	ctrl := gomock.NewController(t)
	fundamentalRepository := mock_repository.NewMockFundamentalRepository(ctrl)
	priceRepository := mock_repository.NewMockPriceRepository(ctrl)
	handler := NewFScoreService(fundamentalRepository, priceRepository)

	symbols := []string{"AAPL"}
	fundamentalRepository.EXPECT().List(nil, symbols).Return([]model.Fundamental{
		fullStatement("AAPL", 2023, 1.2),
		fullStatement("AAPL", 2022, 1),
	}, nil)
	priceRepository.EXPECT().YearEndCloses(nil, symbols).Return(map[string]map[int]float64{
		"AAPL": {2023: 180, 2022: 130},
	}, nil)

	scores, err := handler.Score(context.Background(), symbols)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	require.Equal(t, "AAPL", scores[0].Symbol)
	require.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), scores[0].AsOfDate)
	require.NotNil(t, scores[0].PeRatio)
	require.NotNil(t, scores[1].PeRatio)
}
