package datajockey

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseUrl = "https://api.datajockey.io/v0"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
	// Limiter throttles outgoing requests. Nil means unthrottled.
	Limiter *rate.Limiter
	// MaxRetries bounds how many times a 429 response is retried.
	MaxRetries int
	// RetryWait is how long to back off after a 429.
	RetryWait time.Duration
}

// NewClient returns a client limited to requestsPerMinute calls.
func NewClient(apiKey string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	return &Client{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		ApiKey:     apiKey,
		BaseUrl:    defaultBaseUrl,
		Limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		MaxRetries: 3,
		RetryWait:  60 * time.Second,
	}
}

type Fields struct {
	Revenue                  map[string]int64   `json:"revenue"`
	CostOfRevenue            map[string]int64   `json:"cost_of_revenue"`
	GrossProfit              map[string]int64   `json:"gross_profit"`
	OperatingIncome          map[string]int64   `json:"operating_income"`
	TotalAssets              map[string]int64   `json:"total_assets"`
	TotalCurrentAssets       map[string]int64   `json:"total_current_assets"`
	TotalLiabilities         map[string]int64   `json:"total_liabilities"`
	ShareholderEquity        map[string]int64   `json:"shareholder_equity"`
	NetIncome                map[string]int64   `json:"net_income"`
	SharesOutstandingDiluted map[string]int64   `json:"shares_outstanding_diluted"`
	SharesOutstandingBasic   map[string]int64   `json:"shares_outstanding_basic"`
	EpsDiluted               map[string]float64 `json:"eps_diluted"`
	EpsBasic                 map[string]float64 `json:"eps_basic"`
	OperatingCashFlow        map[string]int64   `json:"operating_cash_flow"`
	CashOnHand               map[string]int64   `json:"cash_on_hand"`
	TotalCurrentLiabilities  map[string]int64   `json:"total_current_liabilities"`
	LongTermDebt             map[string]int64   `json:"long_term_debt"`
}

type FinancialResponse struct {
	Currency    string `json:"currency"`
	CompanyInfo struct {
		CIK    string `json:"cik"`
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	} `json:"company_info"`
	FinancialData struct {
		Quarterly Fields `json:"quarterly"`
		Annual    Fields `json:"annual"`
	} `json:"financial_data"`
}

// Statement is every reported line item for one period, keyed by the
// api's field name.
type Statement struct {
	Period string
	Year   int
	Values map[string]float64
}

func (f Fields) byName() map[string]map[string]float64 {
	ints := map[string]map[string]int64{
		"revenue":                    f.Revenue,
		"cost_of_revenue":            f.CostOfRevenue,
		"gross_profit":               f.GrossProfit,
		"operating_income":           f.OperatingIncome,
		"total_assets":               f.TotalAssets,
		"total_current_assets":       f.TotalCurrentAssets,
		"total_liabilities":          f.TotalLiabilities,
		"shareholder_equity":         f.ShareholderEquity,
		"net_income":                 f.NetIncome,
		"shares_outstanding_diluted": f.SharesOutstandingDiluted,
		"shares_outstanding_basic":   f.SharesOutstandingBasic,
		"operating_cash_flow":        f.OperatingCashFlow,
		"cash_on_hand":               f.CashOnHand,
		"total_current_liabilities":  f.TotalCurrentLiabilities,
		"long_term_debt":             f.LongTermDebt,
	}
	out := map[string]map[string]float64{}
	for name, values := range ints {
		out[name] = map[string]float64{}
		for period, v := range values {
			out[name][period] = float64(v)
		}
	}
	out["eps_diluted"] = f.EpsDiluted
	out["eps_basic"] = f.EpsBasic
	return out
}

var yearPattern = regexp.MustCompile(`(\d{4})`)

func extractYear(period string) (int, error) {
	matches := yearPattern.FindStringSubmatch(period)
	if len(matches) != 2 {
		return 0, fmt.Errorf("no year found in period %q", period)
	}
	return strconv.Atoi(matches[1])
}

// Statements inverts the field-major response into one Statement per
// period, newest first. Periods without a parseable year are skipped.
func (f Fields) Statements() []Statement {
	byPeriod := map[string]*Statement{}
	for name, values := range f.byName() {
		for period, v := range values {
			year, err := extractYear(period)
			if err != nil {
				continue
			}
			if _, ok := byPeriod[period]; !ok {
				byPeriod[period] = &Statement{
					Period: period,
					Year:   year,
					Values: map[string]float64{},
				}
			}
			byPeriod[period].Values[name] = v
		}
	}

	out := []Statement{}
	for _, s := range byPeriod {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Period > out[j].Period
	})
	return out
}

type Period string

const (
	PeriodAnnual    Period = "A"
	PeriodQuarterly Period = "Q"
)

func (c Client) GetAssetMetrics(ctx context.Context, symbol string, period Period) (*FinancialResponse, error) {
	base := c.BaseUrl
	if base == "" {
		base = defaultBaseUrl
	}
	q := url.Values{}
	q.Set("apikey", c.ApiKey)
	q.Set("ticker", symbol)
	q.Set("period", string(period))
	u := fmt.Sprintf("%s/company/financials?%s", base, q.Encode())

	for attempt := 0; ; attempt++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter wait: %w", err)
			}
		}

		out, retry, err := c.do(ctx, u)
		if err != nil {
			return nil, err
		}
		if !retry {
			return out, nil
		}
		if attempt >= c.MaxRetries {
			return nil, fmt.Errorf("rate limited by datajockey after %d retries", attempt)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.RetryWait):
		}
	}
}

func (c Client) do(ctx context.Context, u string) (*FinancialResponse, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, false, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusTooManyRequests {
		return nil, true, nil
	} else if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, false, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, false, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	var responseJson FinancialResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, false, err
	}

	return &responseJson, false, nil
}
