package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SecurityRepository interface {
	List(tx *sql.Tx) ([]model.Security, error)
	ListBySymbols(tx *sql.Tx, symbols []string) ([]model.Security, error)
	Register(tx *sql.Tx, symbols []string) (int64, error)
	UpsertMeta(tx *sql.Tx, securities []model.Security) (int64, error)
	Delete(tx *sql.Tx, symbols []string) error
	RefreshAvailability(tx *sql.Tx) (int64, error)
}

type securityRepositoryHandler struct {
	Db *sql.DB
}

func NewSecurityRepository(db *sql.DB) SecurityRepository {
	return securityRepositoryHandler{Db: db}
}

func symbolExpressions(symbols []string) []postgres.Expression {
	out := make([]postgres.Expression, 0, len(symbols))
	seen := map[string]bool{}
	for _, s := range symbols {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, postgres.String(s))
	}
	return out
}

func (h securityRepositoryHandler) List(tx *sql.Tx) ([]model.Security, error) {
	query := table.Security.
		SELECT(table.Security.AllColumns).
		ORDER_BY(table.Security.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Security{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}

	return result, nil
}

func (h securityRepositoryHandler) ListBySymbols(tx *sql.Tx, symbols []string) ([]model.Security, error) {
	if len(symbols) == 0 {
		return []model.Security{}, nil
	}
	query := table.Security.
		SELECT(table.Security.AllColumns).
		WHERE(table.Security.Symbol.IN(symbolExpressions(symbols)...)).
		ORDER_BY(table.Security.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Security{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities by symbol: %w", err)
	}

	return result, nil
}

// Register inserts an empty row for every symbol not yet known and
// returns how many were created.
func (h securityRepositoryHandler) Register(tx *sql.Tx, symbols []string) (int64, error) {
	if len(symbols) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	models := []model.Security{}
	for _, s := range symbols {
		models = append(models, model.Security{
			Symbol:    s,
			CreatedAt: now,
		})
	}

	query := table.Security.
		INSERT(
			table.Security.Symbol,
			table.Security.HasFundamentals,
			table.Security.HasPrices,
			table.Security.CreatedAt,
		).
		MODELS(models).
		ON_CONFLICT(table.Security.Symbol).
		DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to register securities: %w", err)
	}

	return res.RowsAffected()
}

// UpsertMeta writes descriptive fields in place and stamps last_updated.
func (h securityRepositoryHandler) UpsertMeta(tx *sql.Tx, securities []model.Security) (int64, error) {
	if len(securities) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for i := range securities {
		securities[i].LastUpdated = &now
		if securities[i].CreatedAt.IsZero() {
			securities[i].CreatedAt = now
		}
	}

	s := table.Security
	query := s.
		INSERT(
			s.Symbol,
			s.Name,
			s.Country,
			s.Sector,
			s.Industry,
			s.FulltimeEmployees,
			s.BusinessSummary,
			s.CurrencyCode,
			s.HasFundamentals,
			s.HasPrices,
			s.LastUpdated,
			s.CreatedAt,
		).
		MODELS(securities).
		ON_CONFLICT(s.Symbol).
		DO_UPDATE(
			postgres.SET(
				s.Name.SET(s.EXCLUDED.Name),
				s.Country.SET(s.EXCLUDED.Country),
				s.Sector.SET(s.EXCLUDED.Sector),
				s.Industry.SET(s.EXCLUDED.Industry),
				s.FulltimeEmployees.SET(s.EXCLUDED.FulltimeEmployees),
				s.BusinessSummary.SET(s.EXCLUDED.BusinessSummary),
				s.CurrencyCode.SET(s.EXCLUDED.CurrencyCode),
				s.LastUpdated.SET(s.EXCLUDED.LastUpdated),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert security meta: %w", err)
	}

	return res.RowsAffected()
}

// Delete removes securities and, by cascade, all of their records.
func (h securityRepositoryHandler) Delete(tx *sql.Tx, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}
	query := table.Security.
		DELETE().
		WHERE(table.Security.Symbol.IN(symbolExpressions(symbols)...))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to delete securities %v: %w", symbols, err)
	}

	return nil
}

// RefreshAvailability recomputes has_fundamentals and has_prices from the
// child tables for every security.
func (h securityRepositoryHandler) RefreshAvailability(tx *sql.Tx) (int64, error) {
	s := table.Security
	query := s.
		UPDATE(s.HasFundamentals, s.HasPrices).
		SET(
			postgres.EXISTS(
				table.Fundamental.
					SELECT(postgres.Int(1)).
					WHERE(table.Fundamental.Symbol.EQ(s.Symbol)),
			),
			postgres.EXISTS(
				table.SecurityPrice.
					SELECT(postgres.Int(1)).
					WHERE(table.SecurityPrice.Symbol.EQ(s.Symbol)),
			),
		).
		WHERE(postgres.Bool(true))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh security availability flags: %w", err)
	}

	return res.RowsAffected()
}
