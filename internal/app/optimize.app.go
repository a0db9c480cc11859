package app

import (
	"context"

	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/repository"
	l3_service "fscoreportfolio/internal/service/l3"
)

type OptimizeHandler struct {
	DataSettingsRepository repository.DataSettingsRepository
	OptimizerService       l3_service.OptimizerService
}

func (h OptimizeHandler) Optimize(ctx context.Context, backcast bool) (*l3_service.OptimizeResult, error) {
	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx = domain.NewCtxWithProfile(ctx, profile)

	settings, err := loadSettings(h.DataSettingsRepository)
	if err != nil {
		return nil, err
	}

	result, err := h.OptimizerService.Optimize(ctx, l3_service.OptimizeInput{
		Settings: *settings,
		Backcast: backcast,
	})
	if err != nil {
		return nil, err
	}

	logProfile(ctx, profile)
	return result, nil
}
