package config

import (
	"tchukudu-service/src/internal/delivery/http"
	"tchukudu-service/src/internal/delivery/http/middleware"
	"tchukudu-service/src/internal/delivery/http/route"
	"tchukudu-service/src/internal/gateway/messaging"
	"tchukudu-service/src/internal/gateway/remote"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/repository"
	"tchukudu-service/src/internal/ride"
	"tchukudu-service/src/internal/session"
	"tchukudu-service/src/internal/usecase"
	"tchukudu-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "tchukudu-service/src/pkg/kafka/confluent"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"

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
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup infrastructure shared by the use cases
	kvStore := kv.NewRedisStore(config.Redis)
	sessions := session.NewManager(kvStore, config.Log)
	remoteGateway := remote.NewGateway(config.Config, config.Log)
	rideClock := ride.NewClock(config.Config)

	// setup repositories and producers
	rideRepository := repository.NewRideRepository(config.DB)
	rideProducer := messaging.NewRideProducer(config.Producer, config.Log)

	// setup use cases
	clientUseCase := usecase.NewClientUseCase(
		config.Log,
		config.Validate,
		config.Config,
		sessions,
		remoteGateway,
		rideRepository,
		rideProducer,
		rideClock,
	)

	transporterUseCase := usecase.NewTransporterUseCase(
		config.Log,
		config.Validate,
		config.Config,
		sessions,
		remoteGateway,
		rideRepository,
		rideProducer,
		kvStore,
		config.AsynqClient,
	)

	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		config.Config,
		sessions,
		remoteGateway,
		kvStore,
		config.AsynqClient,
	)

	// setup controllers
	clientController := http.NewClientController(clientUseCase, config.Log)
	transporterController := http.NewTransporterController(transporterUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config, config.Log)

	if config.Async != nil {
		config.Async.HandleFunc(model.TaskRideOffer, transporterUseCase.DeliverRideOffer)
		config.Async.HandleFunc(model.TaskPaymentVerify, paymentUseCase.HandlePaymentVerify)
	}

	routeConfig := route.RouteConfig{
		App:                   config.App,
		ClientController:      clientController,
		TransporterController: transporterController,
		PaymentController:     paymentController,
		AuthMiddleware:        authMiddleware,
	}
	routeConfig.Setup()
}
