package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Objective string

const (
	ObjectiveMaxSharpe           Objective = "max_sharpe"
	ObjectiveMinVolatility       Objective = "min_volatility"
	ObjectiveMaxQuadraticUtility Objective = "max_quadratic_utility"
)

type EstimationMethod string

const (
	EstimationMethodNeuralNet EstimationMethod = "nn"
	EstimationMethodLinear    EstimationMethod = "lm"
)

// DataSettings are the run-time tunables shared by refresh and optimize.
// They are loaded once per run and passed explicitly.
type DataSettings struct {
	StartDate        time.Time        `validate:"required"`
	InvestmentAmount decimal.Decimal  `validate:"-"`
	FScoreThreshold  int              `validate:"min=0,max=9"`
	Objective        Objective        `validate:"oneof=max_sharpe min_volatility max_quadratic_utility"`
	EstimationMethod EstimationMethod `validate:"oneof=nn lm"`
	L2Gamma          float64          `validate:"gte=0"`
	RiskAversion     float64          `validate:"gt=0,lte=1"`
	MetaLapse        time.Duration    `validate:"gte=0"`
	PriceLapse       time.Duration    `validate:"gte=0"`
}

func DefaultDataSettings() DataSettings {
	return DataSettings{
		StartDate:        time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		InvestmentAmount: decimal.NewFromInt(10000),
		FScoreThreshold:  6,
		Objective:        ObjectiveMaxSharpe,
		EstimationMethod: EstimationMethodNeuralNet,
		L2Gamma:          2,
		RiskAversion:     1,
		MetaLapse:        90 * 24 * time.Hour,
		PriceLapse:       24 * time.Hour,
	}
}

var settingsValidator = validator.New()

func (s DataSettings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid data settings: field %s failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid data settings: %w", err)
	}
	if !s.InvestmentAmount.IsPositive() {
		return fmt.Errorf("invalid data settings: investment amount must be positive, got %s", s.InvestmentAmount.String())
	}
	return nil
}
