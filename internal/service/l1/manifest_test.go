package l1_service

import (
	"errors"
	"math"
	"testing"
	"time"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"NetIncome":             "net_income",
		"net income":            "net_income",
		"Adj Close":             "adj_close",
		"  totalCurrentAssets ": "total_current_assets",
		"period-ending":         "period_ending",
		"shares_outstanding":    "shares_outstanding",
		"EBITDA":                "ebitda",
		"fullTimeEmployees":     "full_time_employees",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, NormalizeName(in))
		})
	}
}

func TestIsNullSentinel(t *testing.T) {
	t.Run("nulls", func(t *testing.T) {
		for _, v := range []interface{}{nil, "", "NaN", " n/a ", "None", "-", "inf", math.NaN(), math.Inf(-1)} {
			require.True(t, IsNullSentinel(v), "%v", v)
		}
	})
	t.Run("values", func(t *testing.T) {
		for _, v := range []interface{}{0.0, "0", "AAPL", int64(3), false} {
			require.False(t, IsNullSentinel(v), "%v", v)
		}
	})
}

func TestFieldManifest_Normalize(t *testing.T) {
	t.Run("maps provider names onto columns", func(t *testing.T) {
		raw := domain.RawRecord{
			"symbol":                    " aapl ",
			"asOfDate":                  "2023-12-31",
			"periodType":                "12m",
			"currency":                  "USD",
			"NetIncome":                 "1,000",
			"TotalAssets":               decimal.NewFromInt(10000),
			"total_current_assets":      int64(400),
			"cash_and_cash_equivalents": 50.0,
			"GrossProfit":               "NaN",
			"unknownField":              "ignored",
		}

		rec, err := FundamentalsManifest.Normalize(raw)
		require.NoError(t, err)
		require.Equal(t, "AAPL", rec.Symbol)

		date, ok := rec.Date("as_of_date")
		require.True(t, ok)
		require.Equal(t, util.NewDate(2023, 12, 31), date)

		require.Equal(t, 1000.0, *rec.Float("net_income"))
		require.Equal(t, 10000.0, *rec.Float("total_assets"))
		require.Equal(t, 400.0, *rec.Float("current_assets"))
		require.Equal(t, 50.0, *rec.Float("cash"))
		require.Nil(t, rec.Float("gross_profit"))
		require.Nil(t, rec.Float("unknown_field"))
		require.Equal(t, "USD", *rec.Text("currency_code"))

		f := fundamentalFromRecord(rec)
		require.Equal(t, "12M", f.PeriodType)
		require.Equal(t, int32(2023), f.FiscalYear)
		require.Equal(t, "USD", f.CurrencyCode)
	})

	t.Run("column name wins over alias", func(t *testing.T) {
		rec, err := PricesManifest.Normalize(domain.RawRecord{
			"symbol":    "MSFT",
			"Date":      time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
			"Adj Close": 10.0,
			"adjclose":  11.0,
			"Volume":    1234,
		})
		require.NoError(t, err)
		require.Equal(t, 10.0, *rec.Float("adj_close"))
		require.Equal(t, int64(1234), *rec.Int("volume"))

		p := priceFromRecord(rec)
		require.Equal(t, util.NewDate(2024, 3, 1), p.Date)
		require.Nil(t, p.Close)
	})

	t.Run("unparseable optional field becomes null", func(t *testing.T) {
		rec, err := MetaManifest.Normalize(domain.RawRecord{
			"symbol":            "IBM",
			"shortName":         "IBM Corp",
			"fullTimeEmployees": "lots",
		})
		require.NoError(t, err)
		require.Nil(t, rec.Int("fulltime_employees"))

		s := securityFromRecord(rec)
		require.Equal(t, "IBM Corp", *s.Name)
		require.Nil(t, s.FulltimeEmployees)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := PricesManifest.Normalize(domain.RawRecord{
			"symbol": "MSFT",
			"Close":  10.0,
		})
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrMissingRequiredField))
		require.ErrorContains(t, err, "date")
	})

	t.Run("missing symbol", func(t *testing.T) {
		_, err := MetaManifest.Normalize(domain.RawRecord{"shortName": "x"})
		require.ErrorIs(t, err, ErrMissingRequiredField)
	})
}

func TestSecurityFromRecord(t *testing.T) {
	t.Run("profile fields fill the security when present", func(t *testing.T) {
		rec, err := MetaManifest.Normalize(domain.RawRecord{
			"symbol":              "AAPL",
			"longName":            "Apple Inc.",
			"sector":              "Technology",
			"industry":            "Consumer Electronics",
			"fullTimeEmployees":   "161000",
			"longBusinessSummary": "Designs phones.",
			"currency":            "USD",
		})
		require.NoError(t, err)

		s := securityFromRecord(rec)
		require.Equal(t, "Technology", util.Deref(s.Sector))
		require.Equal(t, "Consumer Electronics", util.Deref(s.Industry))
		require.Equal(t, int32(161000), util.Deref(s.FulltimeEmployees))
		require.Equal(t, "Designs phones.", util.Deref(s.BusinessSummary))
	})

	t.Run("quote-only meta leaves profile fields null", func(t *testing.T) {
		rec, err := MetaManifest.Normalize(domain.RawRecord{
			"symbol":           "AAPL",
			"shortName":        "Apple",
			"currency":         "USD",
			"fullExchangeName": "NasdaqGS",
		})
		require.NoError(t, err)

		s := securityFromRecord(rec)
		require.Equal(t, "Apple", util.Deref(s.Name))
		require.Equal(t, "USD", util.Deref(s.CurrencyCode))
		require.Nil(t, s.Sector)
		require.Nil(t, s.Industry)
		require.Nil(t, s.FulltimeEmployees)
		require.Nil(t, s.BusinessSummary)
	})
}
