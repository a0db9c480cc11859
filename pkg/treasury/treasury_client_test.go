package treasury_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInterestRateMonthsFromApi(t *testing.T) {
	m, err := interestRateMonthsFromApi("yield_3m")
	require.NoError(t, err)
	require.Equal(t, 3, m)

	m, err = interestRateMonthsFromApi("yield_10y")
	require.NoError(t, err)
	require.Equal(t, 120, m)
}

func TestClient_GetYieldCurve(t *testing.T) {
	t.Run("walks back past empty snapshots", func(t *testing.T) {
		requested := []string{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			date := r.URL.Query().Get("date")
			requested = append(requested, date)
			if date == "2024-03-15" {
				w.Write([]byte(`[{"yield_1m": null, "yield_1y": null}]`))
				return
			}
			w.Write([]byte(`[{"yield_1m": 5.25, "yield_1y": 4.8}]`))
		}))
		defer srv.Close()

		c := &Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		yc, err := c.GetYieldCurve(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Equal(t, []string{"2024-03-15", "2024-02-15"}, requested)

		r, err := yc.GetRate(12)
		require.NoError(t, err)
		require.InDelta(t, 0.048, r, 1e-12)
	})

	t.Run("caches responses", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`[{"yield_1y": 4.0}]`))
		}))
		defer srv.Close()

		c := &Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		_, err := c.GetYieldCurve(context.Background(), d)
		require.NoError(t, err)
		_, err = c.GetYieldCurve(context.Background(), d)
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})
}
