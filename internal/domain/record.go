package domain

// RecordCategory is one independently refreshed kind of per-security data.
type RecordCategory string

const (
	RecordCategoryMeta         RecordCategory = "meta"
	RecordCategoryFundamentals RecordCategory = "fundamentals"
	RecordCategoryPrices       RecordCategory = "prices"
	RecordCategoryScores       RecordCategory = "scores"
)

// FetchedCategories are the categories pulled from the market-data provider,
// in the order they are synced.
var FetchedCategories = []RecordCategory{
	RecordCategoryMeta,
	RecordCategoryFundamentals,
	RecordCategoryPrices,
}

// RawRecord is a single provider payload keyed by provider-native field
// names. Normalization into stored columns happens in the synchronizer.
type RawRecord map[string]interface{}

// Symbol returns the security the record was fetched for, if tagged.
func (r RawRecord) Symbol() string {
	if v, ok := r[RawSymbolKey].(string); ok {
		return v
	}
	return ""
}

// RawSymbolKey is the key the fetch layer tags every record with.
const RawSymbolKey = "symbol"
