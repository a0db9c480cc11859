package datajockey

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"currency": "USD",
	"company_info": {"cik": "1", "ticker": "AAPL", "name": "Apple Inc"},
	"financial_data": {
		"annual": {
			"net_income": {"FY2022": 100, "FY2021": 90},
			"total_assets": {"FY2022": 1000, "FY2021": 900},
			"eps_basic": {"FY2022": 1.5}
		}
	}
}`

func TestClient_GetAssetMetrics(t *testing.T) {
	t.Run("parses annual statements", func(t *testing.T) {
		var ticker, period string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ticker = r.URL.Query().Get("ticker")
			period = r.URL.Query().Get("period")
			w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		resp, err := c.GetAssetMetrics(context.Background(), "AAPL", PeriodAnnual)
		require.NoError(t, err)
		require.Equal(t, "AAPL", ticker)
		require.Equal(t, "A", period)
		require.Equal(t, "USD", resp.Currency)

		statements := resp.FinancialData.Annual.Statements()
		require.Equal(t, "", cmp.Diff(
			[]Statement{
				{
					Period: "FY2022",
					Year:   2022,
					Values: map[string]float64{"net_income": 100, "total_assets": 1000, "eps_basic": 1.5},
				},
				{
					Period: "FY2021",
					Year:   2021,
					Values: map[string]float64{"net_income": 90, "total_assets": 900},
				},
			},
			statements,
		))
	})

	t.Run("retries after rate limit", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL, MaxRetries: 2, RetryWait: time.Millisecond}
		_, err := c.GetAssetMetrics(context.Background(), "AAPL", PeriodAnnual)
		require.NoError(t, err)
		require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL, MaxRetries: 1, RetryWait: time.Millisecond}
		_, err := c.GetAssetMetrics(context.Background(), "AAPL", PeriodAnnual)
		require.ErrorContains(t, err, "rate limited")
	})

	t.Run("surfaces api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "unknown ticker"}`))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		_, err := c.GetAssetMetrics(context.Background(), "ZZZZ", PeriodAnnual)
		require.ErrorContains(t, err, "unknown ticker")
	})
}
