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

type ScoreRepository interface {
	ReplaceMany(tx *sql.Tx, rows []model.Score) (int64, error)
	List(tx *sql.Tx) ([]model.Score, error)
	DeleteOrphans(tx *sql.Tx) (int64, error)
}

type scoreRepositoryHandler struct {
	Db *sql.DB
}

func NewScoreRepository(db *sql.DB) ScoreRepository {
	return scoreRepositoryHandler{Db: db}
}

// ReplaceMany swaps the stored scores of every symbol present in rows for
// rows, so scores of superseded statements do not survive a restatement.
// With a nil tx the swap runs in its own transaction.
func (h scoreRepositoryHandler) ReplaceMany(tx *sql.Tx, rows []model.Score) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if tx == nil {
		own, err := h.Db.Begin()
		if err != nil {
			return 0, fmt.Errorf("failed to begin score transaction: %w", err)
		}
		defer own.Rollback()

		n, err := h.ReplaceMany(own, rows)
		if err != nil {
			return 0, err
		}
		if err := own.Commit(); err != nil {
			return 0, fmt.Errorf("failed to commit scores: %w", err)
		}
		return n, nil
	}

	now := time.Now().UTC()
	seen := map[string]bool{}
	symbols := []string{}
	for i := range rows {
		rows[i].UpdatedAt = now
		if !seen[rows[i].Symbol] {
			seen[rows[i].Symbol] = true
			symbols = append(symbols, rows[i].Symbol)
		}
	}

	_, err := table.Score.
		DELETE().
		WHERE(table.Score.Symbol.IN(symbolExpressions(symbols)...)).
		Exec(tx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear scores: %w", err)
	}

	res, err := table.Score.
		INSERT(table.Score.AllColumns).
		MODELS(rows).
		Exec(tx)
	if err != nil {
		return 0, fmt.Errorf("failed to replace scores: %w", err)
	}

	return res.RowsAffected()
}

// List returns every score ordered by symbol then fiscal year descending.
func (h scoreRepositoryHandler) List(tx *sql.Tx) ([]model.Score, error) {
	query := table.Score.
		SELECT(table.Score.AllColumns).
		ORDER_BY(
			table.Score.Symbol.ASC(),
			table.Score.FiscalYear.DESC(),
			table.Score.AsOfDate.DESC(),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Score{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return result, nil
}

// DeleteOrphans removes scores whose source statement no longer exists.
func (h scoreRepositoryHandler) DeleteOrphans(tx *sql.Tx) (int64, error) {
	s, f := table.Score, table.Fundamental
	query := s.
		DELETE().
		WHERE(
			postgres.NOT(
				postgres.EXISTS(
					f.
						SELECT(f.FundamentalID).
						WHERE(
							postgres.AND(
								f.Symbol.EQ(s.Symbol),
								f.AsOfDate.EQ(s.AsOfDate),
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
		return 0, fmt.Errorf("failed to delete orphaned scores: %w", err)
	}

	return res.RowsAffected()
}
