package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fscoreportfolio/internal/db/models/postgres/public/model"
	"fscoreportfolio/internal/db/models/postgres/public/table"
	"fscoreportfolio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

var ErrSettingsNotFound = errors.New("data settings have not been initialized")

const dataSettingsID int32 = 1

type DataSettingsRepository interface {
	Get(tx *sql.Tx) (*domain.DataSettings, error)
	Upsert(tx *sql.Tx, settings domain.DataSettings) (*domain.DataSettings, error)
}

type dataSettingsRepositoryHandler struct {
	Db *sql.DB
}

func NewDataSettingsRepository(db *sql.DB) DataSettingsRepository {
	return dataSettingsRepositoryHandler{Db: db}
}

func dataSettingsFromModel(m model.DataSettings) domain.DataSettings {
	return domain.DataSettings{
		StartDate:        m.StartDate.UTC(),
		InvestmentAmount: decimal.NewFromFloat(m.InvestmentAmount),
		FScoreThreshold:  int(m.FscoreThreshold),
		Objective:        domain.Objective(m.Objective),
		EstimationMethod: domain.EstimationMethod(m.EstimationMethod),
		L2Gamma:          m.L2Gamma,
		RiskAversion:     m.RiskAversion,
		MetaLapse:        time.Duration(m.MetaLapseDays) * 24 * time.Hour,
		PriceLapse:       time.Duration(m.PriceLapseDays) * 24 * time.Hour,
	}
}

func dataSettingsToModel(s domain.DataSettings) model.DataSettings {
	return model.DataSettings{
		DataSettingsID:   dataSettingsID,
		StartDate:        s.StartDate,
		InvestmentAmount: s.InvestmentAmount.InexactFloat64(),
		FscoreThreshold:  int32(s.FScoreThreshold),
		Objective:        string(s.Objective),
		EstimationMethod: string(s.EstimationMethod),
		L2Gamma:          s.L2Gamma,
		RiskAversion:     s.RiskAversion,
		MetaLapseDays:    int32(s.MetaLapse / (24 * time.Hour)),
		PriceLapseDays:   int32(s.PriceLapse / (24 * time.Hour)),
		UpdatedAt:        time.Now().UTC(),
	}
}

// Get returns the stored settings, or ErrSettingsNotFound when the row
// has never been written.
func (h dataSettingsRepositoryHandler) Get(tx *sql.Tx) (*domain.DataSettings, error) {
	query := table.DataSettings.
		SELECT(table.DataSettings.AllColumns).
		WHERE(table.DataSettings.DataSettingsID.EQ(postgres.Int(int64(dataSettingsID))))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.DataSettings{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrSettingsNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get data settings: %w", err)
	}

	out := dataSettingsFromModel(result)
	return &out, nil
}

func (h dataSettingsRepositoryHandler) Upsert(tx *sql.Tx, settings domain.DataSettings) (*domain.DataSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	d := table.DataSettings
	query := d.
		INSERT(d.AllColumns).
		MODEL(dataSettingsToModel(settings)).
		ON_CONFLICT(d.DataSettingsID).
		DO_UPDATE(
			postgres.SET(
				d.StartDate.SET(d.EXCLUDED.StartDate),
				d.InvestmentAmount.SET(d.EXCLUDED.InvestmentAmount),
				d.FscoreThreshold.SET(d.EXCLUDED.FscoreThreshold),
				d.Objective.SET(d.EXCLUDED.Objective),
				d.EstimationMethod.SET(d.EXCLUDED.EstimationMethod),
				d.L2Gamma.SET(d.EXCLUDED.L2Gamma),
				d.RiskAversion.SET(d.EXCLUDED.RiskAversion),
				d.MetaLapseDays.SET(d.EXCLUDED.MetaLapseDays),
				d.PriceLapseDays.SET(d.EXCLUDED.PriceLapseDays),
				d.UpdatedAt.SET(d.EXCLUDED.UpdatedAt),
			),
		).
		RETURNING(d.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.DataSettings{}
	if err := query.Query(db, &result); err != nil {
		return nil, fmt.Errorf("failed to upsert data settings: %w", err)
	}

	out := dataSettingsFromModel(result)
	return &out, nil
}
