package treasury_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"fscoreportfolio/internal/domain"
)

const defaultBaseUrl = "https://www.ustreasuryyieldcurve.com/api/v1"

// maxLookbackMonths bounds how far back an all-null snapshot is retried.
const maxLookbackMonths = 12

var yieldKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

type Client struct {
	HttpClient *http.Client
	BaseUrl    string

	mu    sync.Mutex
	cache map[string][]byte
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 15 * time.Second},
		BaseUrl:    defaultBaseUrl,
	}
}

func interestRateMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	if cleanedStr == "" {
		return 0, fmt.Errorf("empty duration in %q", in)
	}
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

func (c *Client) getBytes(ctx context.Context, date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	c.mu.Lock()
	if out, ok := c.cache[tStr]; ok {
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	base := c.BaseUrl
	if base == "" {
		base = defaultBaseUrl
	}
	url := fmt.Sprintf("%s/yield_curve_snapshot?date=%s&offset=0", base, tStr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	c.mu.Lock()
	if c.cache == nil {
		c.cache = map[string][]byte{}
	}
	c.cache[tStr] = responseBytes
	c.mu.Unlock()

	return responseBytes, nil
}

// GetYieldCurve returns the treasury curve observed on date. When every
// yield in the snapshot is null, earlier months are tried.
func (c *Client) GetYieldCurve(ctx context.Context, date time.Time) (*domain.YieldCurve, error) {
	for back := 0; back <= maxLookbackMonths; back++ {
		d := date.AddDate(0, -back, 0)
		responseBytes, err := c.getBytes(ctx, d)
		if err != nil {
			return nil, err
		}

		responseBody := []map[string]interface{}{}
		if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
			return nil, fmt.Errorf("failed to parse yield curve: %w", err)
		}

		rates := map[int]float64{}
		for _, row := range responseBody {
			for _, field := range yieldKeys {
				v, ok := row[field].(float64)
				if !ok {
					continue
				}
				months, err := interestRateMonthsFromApi(field)
				if err != nil {
					return nil, err
				}
				rates[months] = v / 100
			}
		}
		if len(rates) > 0 {
			return &domain.YieldCurve{Date: d, Rates: rates}, nil
		}
	}

	return nil, fmt.Errorf("no yield curve data within %d months of %s", maxLookbackMonths, date.Format(time.DateOnly))
}
