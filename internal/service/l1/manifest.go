package l1_service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/util"

	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindFloat
	kindInt
	kindDate
)

// FieldSpec maps one stored column to the provider names it may arrive
// under. Aliases are tried in order after the column name itself.
type FieldSpec struct {
	Column   string
	Kind     fieldKind
	Required bool
	Aliases  []string
}

// FieldManifest is the static schema of one record category.
type FieldManifest struct {
	Category domain.RecordCategory
	Version  int
	Fields   []FieldSpec
}

var ErrMissingRequiredField = errors.New("missing required field")

var MetaManifest = FieldManifest{
	Category: domain.RecordCategoryMeta,
	Version:  1,
	Fields: []FieldSpec{
		{Column: "name", Kind: kindString, Aliases: []string{"long_name", "short_name", "company_name"}},
		{Column: "country", Kind: kindString},
		{Column: "sector", Kind: kindString},
		{Column: "industry", Kind: kindString},
		{Column: "fulltime_employees", Kind: kindInt, Aliases: []string{"full_time_employees", "employees"}},
		{Column: "business_summary", Kind: kindString, Aliases: []string{"long_business_summary"}},
		{Column: "currency_code", Kind: kindString, Aliases: []string{"currency", "financial_currency"}},
	},
}

var FundamentalsManifest = FieldManifest{
	Category: domain.RecordCategoryFundamentals,
	Version:  1,
	Fields: []FieldSpec{
		{Column: "as_of_date", Kind: kindDate, Required: true, Aliases: []string{"date", "period_ending", "as_of"}},
		{Column: "period_type", Kind: kindString, Aliases: []string{"period"}},
		{Column: "currency_code", Kind: kindString, Aliases: []string{"currency"}},
		{Column: "net_income", Kind: kindFloat, Aliases: []string{"net_income_from_continuing_operations"}},
		{Column: "net_income_common_stockholders", Kind: kindFloat},
		{Column: "total_liabilities", Kind: kindFloat, Aliases: []string{"total_liabilities_net_minority_interest"}},
		{Column: "total_assets", Kind: kindFloat},
		{Column: "current_assets", Kind: kindFloat, Aliases: []string{"total_current_assets"}},
		{Column: "current_liabilities", Kind: kindFloat, Aliases: []string{"total_current_liabilities"}},
		{Column: "shares_outstanding", Kind: kindFloat, Aliases: []string{"shares_outstanding_basic", "ordinary_shares_number", "share_issued"}},
		{Column: "cash", Kind: kindFloat, Aliases: []string{"cash_on_hand", "cash_and_cash_equivalents", "cash_cash_equivalents_and_short_term_investments"}},
		{Column: "gross_profit", Kind: kindFloat},
		{Column: "total_revenue", Kind: kindFloat, Aliases: []string{"revenue", "operating_revenue"}},
	},
}

var PricesManifest = FieldManifest{
	Category: domain.RecordCategoryPrices,
	Version:  1,
	Fields: []FieldSpec{
		{Column: "date", Kind: kindDate, Required: true, Aliases: []string{"timestamp"}},
		{Column: "open", Kind: kindFloat},
		{Column: "high", Kind: kindFloat},
		{Column: "low", Kind: kindFloat},
		{Column: "close", Kind: kindFloat},
		{Column: "adj_close", Kind: kindFloat, Aliases: []string{"adjclose", "adjusted_close"}},
		{Column: "volume", Kind: kindInt},
	},
}

// NormalizeName lower-cases a provider field name and converts camelCase,
// spaces and punctuation to snake_case.
func NormalizeName(s string) string {
	var b strings.Builder
	prevLowerOrDigit := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if prevLowerOrDigit {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLowerOrDigit = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevLowerOrDigit = true
		default:
			b.WriteRune('_')
			prevLowerOrDigit = false
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

var nullSentinels = map[string]bool{
	"":          true,
	"nan":       true,
	"n/a":       true,
	"na":        true,
	"none":      true,
	"null":      true,
	"nil":       true,
	"-":         true,
	"--":        true,
	"inf":       true,
	"+inf":      true,
	"-inf":      true,
	"infinity":  true,
	"+infinity": true,
	"-infinity": true,
}

// IsNullSentinel reports whether a raw value stands for "no data".
func IsNullSentinel(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return nullSentinels[strings.ToLower(strings.TrimSpace(x))]
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case float32:
		return math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)
	case *float64:
		return x == nil || math.IsNaN(*x) || math.IsInf(*x, 0)
	case *string:
		return x == nil || nullSentinels[strings.ToLower(strings.TrimSpace(*x))]
	}
	return false
}

func coerceFloat(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint64:
		f = float64(x)
	case *float64:
		f = *x
	case decimal.Decimal:
		f = x.InexactFloat64()
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(x), ",", ""), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"01/02/2006",
}

func coerceDate(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return util.TruncateDate(x), true
	case *time.Time:
		return coerceDate(*x)
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(x)); err == nil {
				return util.TruncateDate(t), true
			}
		}
		return time.Time{}, false
	case int64:
		return util.TruncateDate(time.Unix(x, 0)), true
	case int:
		return util.TruncateDate(time.Unix(int64(x), 0)), true
	}
	return time.Time{}, false
}

func coerce(kind fieldKind, v interface{}) (interface{}, bool) {
	switch kind {
	case kindString:
		var s string
		switch x := v.(type) {
		case string:
			s = x
		case *string:
			s = *x
		default:
			s = fmt.Sprint(x)
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	case kindFloat:
		return coerceFloat(v)
	case kindInt:
		f, ok := coerceFloat(v)
		if !ok {
			return nil, false
		}
		return int64(math.Round(f)), true
	case kindDate:
		return coerceDate(v)
	}
	return nil, false
}

// NormalizedRecord holds the typed, non-null column values of one record.
type NormalizedRecord struct {
	Symbol string
	values map[string]interface{}
}

func (r NormalizedRecord) Float(col string) *float64 {
	if v, ok := r.values[col].(float64); ok {
		return &v
	}
	return nil
}

func (r NormalizedRecord) Int(col string) *int64 {
	if v, ok := r.values[col].(int64); ok {
		return &v
	}
	return nil
}

func (r NormalizedRecord) Text(col string) *string {
	if v, ok := r.values[col].(string); ok {
		return &v
	}
	return nil
}

func (r NormalizedRecord) Date(col string) (time.Time, bool) {
	v, ok := r.values[col].(time.Time)
	return v, ok
}

// Normalize maps a provider payload onto the manifest's columns. Unknown
// fields are ignored, missing or unparseable optional fields become null.
func (m FieldManifest) Normalize(raw domain.RawRecord) (NormalizedRecord, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw.Symbol()))
	if symbol == "" {
		return NormalizedRecord{}, fmt.Errorf("%s record v%d: %w: symbol", m.Category, m.Version, ErrMissingRequiredField)
	}

	byName := map[string]interface{}{}
	for k, v := range raw {
		if k == domain.RawSymbolKey || IsNullSentinel(v) {
			continue
		}
		byName[NormalizeName(k)] = v
	}

	out := NormalizedRecord{
		Symbol: symbol,
		values: map[string]interface{}{},
	}
	for _, f := range m.Fields {
		for _, name := range append([]string{f.Column}, f.Aliases...) {
			v, ok := byName[name]
			if !ok {
				continue
			}
			if typed, ok := coerce(f.Kind, v); ok {
				out.values[f.Column] = typed
				break
			}
		}
		if _, ok := out.values[f.Column]; f.Required && !ok {
			return NormalizedRecord{}, fmt.Errorf("%s record v%d for %s: %w: %s", m.Category, m.Version, symbol, ErrMissingRequiredField, f.Column)
		}
	}

	return out, nil
}

func toInt32Ptr(v *int64) *int32 {
	if v == nil {
		return nil
	}
	x := int32(*v)
	return &x
}

func securityFromRecord(r NormalizedRecord) model.Security {
	return model.Security{
		Symbol:            r.Symbol,
		Name:              r.Text("name"),
		Country:           r.Text("country"),
		Sector:            r.Text("sector"),
		Industry:          r.Text("industry"),
		FulltimeEmployees: toInt32Ptr(r.Int("fulltime_employees")),
		BusinessSummary:   r.Text("business_summary"),
		CurrencyCode:      r.Text("currency_code"),
	}
}

const defaultPeriodType = "12M"

func fundamentalFromRecord(r NormalizedRecord) model.Fundamental {
	asOf, _ := r.Date("as_of_date")
	return model.Fundamental{
		Symbol:                      r.Symbol,
		AsOfDate:                    asOf,
		PeriodType:                  defaultPeriodTypeOr(r.Text("period_type")),
		CurrencyCode:                util.Deref(r.Text("currency_code")),
		FiscalYear:                  int32(domain.FiscalYear(asOf)),
		NetIncome:                   r.Float("net_income"),
		NetIncomeCommonStockholders: r.Float("net_income_common_stockholders"),
		TotalLiabilities:            r.Float("total_liabilities"),
		TotalAssets:                 r.Float("total_assets"),
		CurrentAssets:               r.Float("current_assets"),
		CurrentLiabilities:          r.Float("current_liabilities"),
		SharesOutstanding:           r.Float("shares_outstanding"),
		Cash:                        r.Float("cash"),
		GrossProfit:                 r.Float("gross_profit"),
		TotalRevenue:                r.Float("total_revenue"),
	}
}

func defaultPeriodTypeOr(p *string) string {
	if p == nil {
		return defaultPeriodType
	}
	return strings.ToUpper(*p)
}

func priceFromRecord(r NormalizedRecord) model.SecurityPrice {
	date, _ := r.Date("date")
	return model.SecurityPrice{
		Symbol:   r.Symbol,
		Date:     date,
		Open:     r.Float("open"),
		High:     r.Float("high"),
		Low:      r.Float("low"),
		Close:    r.Float("close"),
		AdjClose: r.Float("adj_close"),
		Volume:   r.Int("volume"),
	}
}
