package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"
	"fscoreportfolio/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// FundamentalKey identifies one stored statement.
type FundamentalKey struct {
	Symbol       string
	AsOfDate     string
	PeriodType   string
	CurrencyCode string
}

func NewFundamentalKey(f model.Fundamental) FundamentalKey {
	return FundamentalKey{
		Symbol:       f.Symbol,
		AsOfDate:     util.DateKey(f.AsOfDate),
		PeriodType:   f.PeriodType,
		CurrencyCode: f.CurrencyCode,
	}
}

type FundamentalRepository interface {
	AddMany(tx *sql.Tx, rows []model.Fundamental) (int64, error)
	List(tx *sql.Tx, symbols []string) ([]model.Fundamental, error)
	ExistingKeys(tx *sql.Tx, symbols []string) (map[FundamentalKey]bool, error)
	LatestFiscalYears(tx *sql.Tx, symbols []string) (map[string]int, error)
	CollapseDuplicates(tx *sql.Tx) (int64, error)
}

type fundamentalRepositoryHandler struct {
	Db *sql.DB
}

func NewFundamentalRepository(db *sql.DB) FundamentalRepository {
	return fundamentalRepositoryHandler{Db: db}
}

// AddMany inserts statements, skipping any whose key already exists.
func (h fundamentalRepositoryHandler) AddMany(tx *sql.Tx, rows []model.Fundamental) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for i := range rows {
		if rows[i].FundamentalID == uuid.Nil {
			rows[i].FundamentalID = uuid.New()
		}
		rows[i].CreatedAt = now
	}

	query := table.Fundamental.
		INSERT(table.Fundamental.AllColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.Fundamental.Symbol,
			table.Fundamental.AsOfDate,
			table.Fundamental.PeriodType,
			table.Fundamental.CurrencyCode,
		).
		DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to add fundamentals: %w", err)
	}

	return res.RowsAffected()
}

// List returns fundamentals for the given symbols, or every stored row
// when symbols is empty, ordered by symbol then as-of date descending.
func (h fundamentalRepositoryHandler) List(tx *sql.Tx, symbols []string) ([]model.Fundamental, error) {
	query := table.Fundamental.
		SELECT(table.Fundamental.AllColumns).
		ORDER_BY(
			table.Fundamental.Symbol.ASC(),
			table.Fundamental.AsOfDate.DESC(),
		)
	if len(symbols) > 0 {
		query = query.WHERE(table.Fundamental.Symbol.IN(symbolExpressions(symbols)...))
	}

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Fundamental{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundamentals: %w", err)
	}

	return result, nil
}

func (h fundamentalRepositoryHandler) ExistingKeys(tx *sql.Tx, symbols []string) (map[FundamentalKey]bool, error) {
	out := map[FundamentalKey]bool{}
	if len(symbols) == 0 {
		return out, nil
	}
	query := table.Fundamental.
		SELECT(
			table.Fundamental.Symbol,
			table.Fundamental.AsOfDate,
			table.Fundamental.PeriodType,
			table.Fundamental.CurrencyCode,
		).
		WHERE(table.Fundamental.Symbol.IN(symbolExpressions(symbols)...))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Fundamental{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundamental keys: %w", err)
	}

	for _, r := range result {
		out[NewFundamentalKey(r)] = true
	}

	return out, nil
}

func (h fundamentalRepositoryHandler) LatestFiscalYears(tx *sql.Tx, symbols []string) (map[string]int, error) {
	out := map[string]int{}
	if len(symbols) == 0 {
		return out, nil
	}
	f := table.Fundamental
	query := f.
		SELECT(
			f.Symbol,
			postgres.MAXi(f.FiscalYear).AS("fundamental.fiscal_year"),
		).
		WHERE(f.Symbol.IN(symbolExpressions(symbols)...)).
		GROUP_BY(f.Symbol)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Fundamental{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to query latest fiscal years: %w", err)
	}

	for _, r := range result {
		out[r.Symbol] = int(r.FiscalYear)
	}

	return out, nil
}

// CollapseDuplicates keeps only the most recently inserted statement per
// (symbol, as_of_date, period_type), which drops restatements that differ
// only by currency.
func (h fundamentalRepositoryHandler) CollapseDuplicates(tx *sql.Tx) (int64, error) {
	f := table.Fundamental
	newer := table.Fundamental.AS("newer")
	query := f.
		DELETE().
		WHERE(
			postgres.EXISTS(
				newer.
					SELECT(newer.FundamentalID).
					WHERE(
						postgres.AND(
							newer.Symbol.EQ(f.Symbol),
							newer.AsOfDate.EQ(f.AsOfDate),
							newer.PeriodType.EQ(f.PeriodType),
							postgres.OR(
								newer.CreatedAt.GT(f.CreatedAt),
								postgres.AND(
									newer.CreatedAt.EQ(f.CreatedAt),
									newer.FundamentalID.GT(f.FundamentalID),
								),
							),
						),
					),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to collapse duplicate fundamentals: %w", err)
	}

	return res.RowsAffected()
}
