package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	. "fscoreportfolio/internal/db/models/postgres/public/table"
	"fscoreportfolio/internal/util"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type PriceRepository interface {
	AddMany(tx *sql.Tx, rows []model.SecurityPrice) (int64, error)
	List(tx *sql.Tx, symbols []string, start, end time.Time) ([]model.SecurityPrice, error)
	ExistingDates(tx *sql.Tx, symbols []string, start, end time.Time) (map[string]map[string]bool, error)
	LatestDates(tx *sql.Tx, symbols []string) (map[string]time.Time, error)
	LatestCloses(tx *sql.Tx, symbols []string) (map[string]decimal.Decimal, error)
	YearEndCloses(tx *sql.Tx, symbols []string) (map[string]map[int]float64, error)
}

type priceRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return priceRepositoryHandler{Db: db}
}

func (h priceRepositoryHandler) AddMany(tx *sql.Tx, rows []model.SecurityPrice) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for i := range rows {
		rows[i].CreatedAt = now
	}

	query := SecurityPrice.
		INSERT(SecurityPrice.AllColumns).
		MODELS(rows).
		ON_CONFLICT(
			SecurityPrice.Symbol, SecurityPrice.Date,
		).DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to add prices to db: %w", err)
	}

	return res.RowsAffected()
}

func (h priceRepositoryHandler) List(tx *sql.Tx, symbols []string, start, end time.Time) ([]model.SecurityPrice, error) {
	if len(symbols) == 0 {
		return []model.SecurityPrice{}, nil
	}
	query := SecurityPrice.
		SELECT(SecurityPrice.AllColumns).
		WHERE(
			AND(
				SecurityPrice.Symbol.IN(symbolExpressions(symbols)...),
				SecurityPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(SecurityPrice.Date.ASC(), SecurityPrice.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SecurityPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return result, nil
}

// ExistingDates returns, per symbol, the set of stored price dates in
// [start, end] keyed by util.DateKey.
func (h priceRepositoryHandler) ExistingDates(tx *sql.Tx, symbols []string, start, end time.Time) (map[string]map[string]bool, error) {
	out := map[string]map[string]bool{}
	if len(symbols) == 0 {
		return out, nil
	}
	query := SecurityPrice.
		SELECT(SecurityPrice.Symbol, SecurityPrice.Date).
		WHERE(
			AND(
				SecurityPrice.Symbol.IN(symbolExpressions(symbols)...),
				SecurityPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SecurityPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to list existing price dates: %w", err)
	}

	for _, r := range result {
		if _, ok := out[r.Symbol]; !ok {
			out[r.Symbol] = map[string]bool{}
		}
		out[r.Symbol][util.DateKey(r.Date)] = true
	}

	return out, nil
}

func (h priceRepositoryHandler) LatestDates(tx *sql.Tx, symbols []string) (map[string]time.Time, error) {
	out := map[string]time.Time{}
	if len(symbols) == 0 {
		return out, nil
	}
	query := SecurityPrice.
		SELECT(
			SecurityPrice.Symbol,
			MAX(SecurityPrice.Date).AS("security_price.date"),
		).
		WHERE(SecurityPrice.Symbol.IN(symbolExpressions(symbols)...)).
		GROUP_BY(SecurityPrice.Symbol)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SecurityPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to query latest price dates: %w", err)
	}

	for _, r := range result {
		out[r.Symbol] = r.Date.UTC()
	}

	return out, nil
}

// lastClosesQuery joins prices back onto the latest non-null close date
// per symbol, or per symbol and calendar year when yearly is set.
func lastClosesQuery(where BoolExpression, yearly bool) SelectStatement {
	last := SecurityPrice.
		SELECT(
			SecurityPrice.Symbol,
			MAX(SecurityPrice.Date).AS("security_price.date"),
		).
		WHERE(where)
	if yearly {
		last = last.GROUP_BY(SecurityPrice.Symbol, Raw("EXTRACT(YEAR FROM security_price.date)"))
	} else {
		last = last.GROUP_BY(SecurityPrice.Symbol)
	}
	lastTable := last.AsTable("last_close")

	return SecurityPrice.
		INNER_JOIN(lastTable, AND(
			SecurityPrice.Symbol.EQ(SecurityPrice.Symbol.From(lastTable)),
			SecurityPrice.Date.EQ(SecurityPrice.Date.From(lastTable)),
		)).
		SELECT(SecurityPrice.Symbol, SecurityPrice.Date, SecurityPrice.Close).
		ORDER_BY(SecurityPrice.Symbol.ASC(), SecurityPrice.Date.ASC())
}

// LatestCloses returns the most recent non-null close per symbol.
func (h priceRepositoryHandler) LatestCloses(tx *sql.Tx, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if len(symbols) == 0 {
		return out, nil
	}
	query := lastClosesQuery(
		AND(
			SecurityPrice.Symbol.IN(symbolExpressions(symbols)...),
			SecurityPrice.Close.IS_NOT_NULL(),
		),
		false,
	)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SecurityPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to query latest closes: %w", err)
	}

	for _, r := range result {
		out[r.Symbol] = decimal.NewFromFloat(util.Deref(r.Close))
	}

	return out, nil
}

// YearEndCloses returns the last available close of each calendar year,
// per symbol. An empty symbols slice means every symbol.
func (h priceRepositoryHandler) YearEndCloses(tx *sql.Tx, symbols []string) (map[string]map[int]float64, error) {
	where := SecurityPrice.Close.IS_NOT_NULL()
	if len(symbols) > 0 {
		where = where.AND(SecurityPrice.Symbol.IN(symbolExpressions(symbols)...))
	}
	query := lastClosesQuery(where, true)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SecurityPrice{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to query year end closes: %w", err)
	}

	out := map[string]map[int]float64{}
	for _, r := range result {
		if _, ok := out[r.Symbol]; !ok {
			out[r.Symbol] = map[int]float64{}
		}
		out[r.Symbol][r.Date.Year()] = util.Deref(r.Close)
	}

	return out, nil
}
