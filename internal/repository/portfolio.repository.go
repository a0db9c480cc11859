package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// portfolioLockKey is the pg advisory lock id held while the portfolio
// table is swapped.
const portfolioLockKey int64 = 0x7f5c0e

type PortfolioRepository interface {
	Replace(ctx context.Context, rows []model.Portfolio) error
	List(tx *sql.Tx) ([]model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

// Replace swaps the whole portfolio in one transaction. Readers see either
// the previous rows or the new ones, never an empty table.
func (h portfolioRepositoryHandler) Replace(ctx context.Context, rows []model.Portfolio) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin portfolio transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", portfolioLockKey); err != nil {
		return fmt.Errorf("failed to acquire portfolio lock: %w", err)
	}

	_, err = table.Portfolio.
		DELETE().
		WHERE(postgres.Bool(true)).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to clear portfolio: %w", err)
	}

	if len(rows) > 0 {
		now := time.Now().UTC()
		for i := range rows {
			rows[i].CreatedAt = now
		}
		_, err = table.Portfolio.
			INSERT(table.Portfolio.AllColumns).
			MODELS(rows).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to insert portfolio: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit portfolio: %w", err)
	}

	return nil
}

func (h portfolioRepositoryHandler) List(tx *sql.Tx) ([]model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		ORDER_BY(table.Portfolio.Allocation.DESC(), table.Portfolio.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Portfolio{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio: %w", err)
	}

	return result, nil
}
