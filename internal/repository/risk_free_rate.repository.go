package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fscoreportfolio/internal/domain"
	treasury_client "fscoreportfolio/pkg/treasury"
)

type RiskFreeRateRepository interface {
	// GetRate returns the annual treasury yield for the given duration
	// observed on date, as a decimal.
	GetRate(ctx context.Context, date time.Time, months int) (float64, error)
}

type yieldCurveClient interface {
	GetYieldCurve(ctx context.Context, date time.Time) (*domain.YieldCurve, error)
}

type riskFreeRateRepositoryHandler struct {
	Client yieldCurveClient

	mu     sync.Mutex
	curves map[string]domain.YieldCurve
}

func NewRiskFreeRateRepository(client *treasury_client.Client) RiskFreeRateRepository {
	return &riskFreeRateRepositoryHandler{
		Client: client,
		curves: map[string]domain.YieldCurve{},
	}
}

func (h *riskFreeRateRepositoryHandler) GetRate(ctx context.Context, date time.Time, months int) (float64, error) {
	key := date.Format(time.DateOnly)

	h.mu.Lock()
	yc, ok := h.curves[key]
	h.mu.Unlock()

	if !ok {
		curve, err := h.Client.GetYieldCurve(ctx, date)
		if err != nil {
			return 0, fmt.Errorf("failed to get yield curve on %s: %w", key, err)
		}
		yc = *curve
		h.mu.Lock()
		h.curves[key] = yc
		h.mu.Unlock()
	}

	return yc.GetRate(months)
}
