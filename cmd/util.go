package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"fscoreportfolio/internal/app"
	"fscoreportfolio/internal/calculator"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/repository"
	l1_service "fscoreportfolio/internal/service/l1"
	l2_service "fscoreportfolio/internal/service/l2"
	l3_service "fscoreportfolio/internal/service/l3"
	"fscoreportfolio/internal/util"
	"fscoreportfolio/pkg/datajockey"
	treasury_client "fscoreportfolio/pkg/treasury"

	_ "github.com/lib/pq"
)

const (
	concurrentFetches    = 8
	fetchTimeout         = 30 * time.Second
	dataJockeyRatePerMin = 50
)

type Dependencies struct {
	Db *sql.DB

	DataSettingsRepository    repository.DataSettingsRepository
	PortfolioRepository       repository.PortfolioRepository
	OptimizationRunRepository repository.OptimizationRunRepository

	RefreshHandler  app.RefreshHandler
	OptimizeHandler app.OptimizeHandler
}

func CloseDependencies(deps *Dependencies) {
	err := deps.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.ConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	securityRepository := repository.NewSecurityRepository(dbConn)
	fundamentalRepository := repository.NewFundamentalRepository(dbConn)
	priceRepository := repository.NewPriceRepository(dbConn)
	scoreRepository := repository.NewScoreRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	optimizationRunRepository := repository.NewOptimizationRunRepository(dbConn)
	dataSettingsRepository := repository.NewDataSettingsRepository(dbConn)
	marketDataRepository := repository.NewMarketDataRepository(
		datajockey.NewClient(secrets.DataJockeyApiKey, dataJockeyRatePerMin),
	)
	riskFreeRateRepository := repository.NewRiskFreeRateRepository(treasury_client.NewClient())

	stalenessService := l1_service.NewStalenessService(securityRepository, fundamentalRepository, priceRepository)
	fetchService := l1_service.NewFetchService(marketDataRepository, securityRepository, concurrentFetches, fetchTimeout)
	syncService := l1_service.NewSyncService(securityRepository, fundamentalRepository, priceRepository, scoreRepository)
	fScoreService := l2_service.NewFScoreService(fundamentalRepository, priceRepository)
	forecastService := l2_service.NewForecastService(
		scoreRepository,
		priceRepository,
		map[domain.EstimationMethod]calculator.Regressor{
			domain.EstimationMethodNeuralNet: calculator.NewMLPRegressor(),
			domain.EstimationMethodLinear:    calculator.NewLinearRegressor(),
		},
	)
	optimizerService := l3_service.NewOptimizerService(
		securityRepository,
		scoreRepository,
		priceRepository,
		portfolioRepository,
		optimizationRunRepository,
		riskFreeRateRepository,
		forecastService,
		calculator.NewLedoitWolfEstimator(),
		calculator.NewEfficientFrontier(),
		calculator.NewGreedyAllocator(),
	)

	return &Dependencies{
		Db:                        dbConn,
		DataSettingsRepository:    dataSettingsRepository,
		PortfolioRepository:       portfolioRepository,
		OptimizationRunRepository: optimizationRunRepository,
		RefreshHandler: app.RefreshHandler{
			DataSettingsRepository: dataSettingsRepository,
			SecurityRepository:     securityRepository,
			StalenessService:       stalenessService,
			FetchService:           fetchService,
			SyncService:            syncService,
			FScoreService:          fScoreService,
		},
		OptimizeHandler: app.OptimizeHandler{
			DataSettingsRepository: dataSettingsRepository,
			OptimizerService:       optimizerService,
		},
	}, nil
}
