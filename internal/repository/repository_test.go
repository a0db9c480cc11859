package repository

import (
	"database/sql"
	"testing"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestTx(t *testing.T) (*sql.DB, *sql.Tx) {
	db, err := util.NewTestDb()
	if err != nil {
		t.Skipf("skipping db test: %s", err.Error())
	}
	t.Cleanup(func() { db.Close() })

	tx, err := db.Begin()
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })
	return db, tx
}

func TestSecurityRepository(t *testing.T) {
	db, tx := newTestTx(t)
	securityRepository := NewSecurityRepository(db)
	priceRepository := NewPriceRepository(db)

	n, err := securityRepository.Register(tx, []string{"AAPL", "MSFT"})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, err = securityRepository.Register(tx, []string{"AAPL"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	_, err = priceRepository.AddMany(tx, []model.SecurityPrice{
		{Symbol: "AAPL", Date: util.NewDate(2024, 1, 2), Close: util.Ptr(185.0)},
	})
	require.NoError(t, err)

	_, err = securityRepository.RefreshAvailability(tx)
	require.NoError(t, err)

	securities, err := securityRepository.ListBySymbols(tx, []string{"AAPL", "MSFT"})
	require.NoError(t, err)
	require.Len(t, securities, 2)
	bySymbol := map[string]model.Security{}
	for _, s := range securities {
		bySymbol[s.Symbol] = s
	}
	require.True(t, bySymbol["AAPL"].HasPrices)
	require.False(t, bySymbol["MSFT"].HasPrices)
	require.Nil(t, bySymbol["MSFT"].LastUpdated)

	require.NoError(t, securityRepository.Delete(tx, []string{"AAPL"}))
	prices, err := priceRepository.List(tx, []string{"AAPL"}, util.NewDate(2024, 1, 1), util.NewDate(2024, 12, 31))
	require.NoError(t, err)
	require.Empty(t, prices)
}

func TestPriceRepository(t *testing.T) {
	db, tx := newTestTx(t)
	securityRepository := NewSecurityRepository(db)
	priceRepository := NewPriceRepository(db)

	_, err := securityRepository.Register(tx, []string{"AAPL"})
	require.NoError(t, err)

	rows := []model.SecurityPrice{
		{Symbol: "AAPL", Date: util.NewDate(2023, 12, 29), Close: util.Ptr(192.0)},
		{Symbol: "AAPL", Date: util.NewDate(2024, 1, 2), Close: util.Ptr(185.0)},
		{Symbol: "AAPL", Date: util.NewDate(2024, 1, 3), Close: util.Ptr(184.0)},
	}
	n, err := priceRepository.AddMany(tx, rows)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	t.Run("duplicates are not inserted", func(t *testing.T) {
		n, err := priceRepository.AddMany(tx, rows[:1])
		require.NoError(t, err)
		require.Equal(t, int64(0), n)
	})

	t.Run("latest close", func(t *testing.T) {
		closes, err := priceRepository.LatestCloses(tx, []string{"AAPL"})
		require.NoError(t, err)
		require.True(t, closes["AAPL"].Equal(decimal.NewFromInt(184)))
	})

	t.Run("latest dates", func(t *testing.T) {
		dates, err := priceRepository.LatestDates(tx, []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Len(t, dates, 1)
		require.True(t, dates["AAPL"].Equal(util.NewDate(2024, 1, 3)))
	})

	t.Run("year end closes", func(t *testing.T) {
		closes, err := priceRepository.YearEndCloses(tx, []string{"AAPL"})
		require.NoError(t, err)
		require.Equal(t, map[int]float64{2023: 192, 2024: 184}, closes["AAPL"])
	})
}

func TestDataSettingsRepository(t *testing.T) {
	db, tx := newTestTx(t)
	settingsRepository := NewDataSettingsRepository(db)

	_, err := table.DataSettings.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	require.NoError(t, err)

	_, err = settingsRepository.Get(tx)
	require.ErrorIs(t, err, ErrSettingsNotFound)

	settings := domain.DefaultDataSettings()
	settings.FScoreThreshold = 7
	_, err = settingsRepository.Upsert(tx, settings)
	require.NoError(t, err)

	got, err := settingsRepository.Get(tx)
	require.NoError(t, err)
	require.Equal(t, 7, got.FScoreThreshold)
	require.Equal(t, settings.PriceLapse, got.PriceLapse)
	require.True(t, got.InvestmentAmount.Equal(settings.InvestmentAmount))

	settings.RiskAversion = 0
	_, err = settingsRepository.Upsert(tx, settings)
	require.Error(t, err)
}

func TestScoreRepository(t *testing.T) {
	db, tx := newTestTx(t)
	securityRepository := NewSecurityRepository(db)
	fundamentalRepository := NewFundamentalRepository(db)
	scoreRepository := NewScoreRepository(db)

	_, err := securityRepository.Register(tx, []string{"AAPL", "MSFT"})
	require.NoError(t, err)

	_, err = scoreRepository.ReplaceMany(tx, []model.Score{
		{Symbol: "AAPL", AsOfDate: util.NewDate(2022, 9, 30), FiscalYear: 2022, PfScore: 5},
		{Symbol: "AAPL", AsOfDate: util.NewDate(2023, 9, 30), FiscalYear: 2023, PfScore: 6},
		{Symbol: "MSFT", AsOfDate: util.NewDate(2023, 6, 30), FiscalYear: 2023, PfScore: 7},
	})
	require.NoError(t, err)

	t.Run("restated symbol loses superseded rows", func(t *testing.T) {
		n, err := scoreRepository.ReplaceMany(tx, []model.Score{
			{Symbol: "AAPL", AsOfDate: util.NewDate(2023, 12, 31), FiscalYear: 2023, PfScore: 8},
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		scores, err := scoreRepository.List(tx)
		require.NoError(t, err)
		require.Len(t, scores, 2)
		require.Equal(t, "AAPL", scores[0].Symbol)
		require.Equal(t, int32(8), scores[0].PfScore)
		require.Equal(t, "MSFT", scores[1].Symbol)
	})

	t.Run("orphaned scores are deleted", func(t *testing.T) {
		_, err := fundamentalRepository.AddMany(tx, []model.Fundamental{
			{Symbol: "MSFT", AsOfDate: util.NewDate(2023, 6, 30), PeriodType: "12M", CurrencyCode: "USD", FiscalYear: 2023},
		})
		require.NoError(t, err)

		n, err := scoreRepository.DeleteOrphans(tx)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		scores, err := scoreRepository.List(tx)
		require.NoError(t, err)
		require.Len(t, scores, 1)
		require.Equal(t, "MSFT", scores[0].Symbol)
	})
}

func TestFundamentalRepository(t *testing.T) {
	db, tx := newTestTx(t)
	securityRepository := NewSecurityRepository(db)
	fundamentalRepository := NewFundamentalRepository(db)

	_, err := securityRepository.Register(tx, []string{"AAPL"})
	require.NoError(t, err)

	_, err = fundamentalRepository.AddMany(tx, []model.Fundamental{
		{Symbol: "AAPL", AsOfDate: util.NewDate(2022, 9, 30), PeriodType: "12M", CurrencyCode: "USD", FiscalYear: 2022},
		{Symbol: "AAPL", AsOfDate: util.NewDate(2023, 9, 30), PeriodType: "12M", CurrencyCode: "USD", FiscalYear: 2023},
	})
	require.NoError(t, err)
	_, err = fundamentalRepository.AddMany(tx, []model.Fundamental{
		{Symbol: "AAPL", AsOfDate: util.NewDate(2023, 9, 30), PeriodType: "12M", CurrencyCode: "EUR", FiscalYear: 2023},
	})
	require.NoError(t, err)

	t.Run("latest fiscal year", func(t *testing.T) {
		years, err := fundamentalRepository.LatestFiscalYears(tx, []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Equal(t, map[string]int{"AAPL": 2023}, years)
	})

	t.Run("currency restatement collapses to one row", func(t *testing.T) {
		n, err := fundamentalRepository.CollapseDuplicates(tx)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		rows, err := fundamentalRepository.List(tx, []string{"AAPL"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, int32(2023), rows[0].FiscalYear)
		require.Equal(t, int32(2022), rows[1].FiscalYear)
	})
}
