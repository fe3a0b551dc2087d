package config

import (
	"fleet-service/src/internal/delivery/http"
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/delivery/http/route"
	"fleet-service/src/internal/gateway/insight"
	"fleet-service/src/internal/gateway/messaging"
	"fleet-service/src/internal/repository"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "fleet-service/src/pkg/kafka/confluent"
	"fleet-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	Geoservice  *GeoService
	Insight     *insight.Client
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	ownerRepository := repository.NewOwnerRepository(config.DB)
	driverRepository := repository.NewDriverRepository(config.DB)
	routeRepository := repository.NewRouteRepository(config.DB)
	jobRepository := repository.NewJobRepository(config.DB)
	tripRepository := repository.NewTripRepository(config.DB)
	slabRepository := repository.NewSlabRepository(config.DB)
	jobProducer := messaging.NewJobProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		config.Config,
		ownerRepository,
		driverRepository,
	)
	driverUseCase := usecase.NewDriverUseCase(
		config.Log,
		config.Validate,
		driverRepository,
		config.Redis,
	)
	routeUseCase := usecase.NewRouteUseCase(
		config.Log,
		config.Validate,
		routeRepository,
		config.Geoservice.Client,
	)
	jobUseCase := usecase.NewJobUseCase(
		config.Log,
		config.Validate,
		jobRepository,
		routeRepository,
		driverRepository,
		tripRepository,
		config.Redis,
		jobProducer,
	)
	tripUseCase := usecase.NewTripUseCase(
		config.Log,
		config.Validate,
		tripRepository,
		driverRepository,
		config.Redis,
		jobProducer,
	)
	payoutUseCase := usecase.NewPayoutUseCase(
		config.Log,
		config.Validate,
		slabRepository,
		tripRepository,
		driverRepository,
		config.Redis,
		config.AsynqClient,
		config.Insight,
	)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	driverController := http.NewDriverController(driverUseCase, config.Log)
	routeController := http.NewRouteController(routeUseCase, config.Log)
	jobController := http.NewJobController(jobUseCase, config.Log)
	tripController := http.NewTripController(tripUseCase, config.Log)
	payoutController := http.NewPayoutController(payoutUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	subscriptionMiddleware := middleware.RequireActiveSubscription(ownerRepository, config.Log)

	config.Async.HandleFunc(usecase.TypeInsightGenerate, payoutUseCase.HandleGenerateInsights)

	routeConfig := route.RouteConfig{
		App:                    config.App,
		AuthController:         authController,
		DriverController:       driverController,
		RouteController:        routeController,
		JobController:          jobController,
		TripController:         tripController,
		PayoutController:       payoutController,
		AuthMiddleware:         authMiddleware,
		SubscriptionMiddleware: subscriptionMiddleware,
	}
	routeConfig.Setup()
}
