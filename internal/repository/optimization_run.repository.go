package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type OptimizationRunRepository interface {
	Add(tx *sql.Tx, run model.OptimizationRun) (*model.OptimizationRun, error)
	Get(id uuid.UUID) (*model.OptimizationRun, error)
	List(limit int64) ([]model.OptimizationRun, error)
	Update(tx *sql.Tx, run *model.OptimizationRun, columns postgres.ColumnList) (*model.OptimizationRun, error)
}

type optimizationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewOptimizationRunRepository(db *sql.DB) OptimizationRunRepository {
	return optimizationRunRepositoryHandler{Db: db}
}

func (h optimizationRunRepositoryHandler) Add(tx *sql.Tx, run model.OptimizationRun) (*model.OptimizationRun, error) {
	run.CreatedAt = time.Now().UTC()
	run.ModifiedAt = time.Now().UTC()
	if run.OptimizationRunID == uuid.Nil {
		run.OptimizationRunID = uuid.New()
	}

	query := table.OptimizationRun.
		INSERT(
			table.OptimizationRun.AllColumns,
		).
		MODEL(run).
		RETURNING(table.OptimizationRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.OptimizationRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert optimization run: %w", err)
	}

	return &out, nil
}

func (h optimizationRunRepositoryHandler) Update(tx *sql.Tx, run *model.OptimizationRun, columns postgres.ColumnList) (*model.OptimizationRun, error) {
	run.ModifiedAt = time.Now().UTC()
	if run.OptimizationRunID == uuid.Nil {
		return nil, fmt.Errorf("failed to update optimization run - id not provided in inputted model")
	}
	cols := append(postgres.ColumnList{}, columns...)
	cols = append(cols, table.OptimizationRun.ModifiedAt)
	query := table.OptimizationRun.
		UPDATE(cols).
		MODEL(run).
		WHERE(table.OptimizationRun.OptimizationRunID.EQ(
			postgres.UUID(run.OptimizationRunID),
		)).
		RETURNING(table.OptimizationRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.OptimizationRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update optimization run %s: %w", run.OptimizationRunID.String(), err)
	}

	return &out, nil
}

func (h optimizationRunRepositoryHandler) Get(id uuid.UUID) (*model.OptimizationRun, error) {
	query := table.OptimizationRun.
		SELECT(table.OptimizationRun.AllColumns).
		WHERE(table.OptimizationRun.OptimizationRunID.EQ(postgres.UUID(id)))

	result := model.OptimizationRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get optimization run: %w", err)
	}

	return &result, nil
}

// List returns the most recent runs first.
func (h optimizationRunRepositoryHandler) List(limit int64) ([]model.OptimizationRun, error) {
	query := table.OptimizationRun.
		SELECT(table.OptimizationRun.AllColumns).
		ORDER_BY(table.OptimizationRun.CreatedAt.DESC()).
		LIMIT(limit)
	result := []model.OptimizationRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list optimization runs: %w", err)
	}

	return result, nil
}
