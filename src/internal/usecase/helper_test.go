package usecase

import (
	"errors"
	"time"

	"tchukudu-service/src/internal/gateway/messaging"
	"tchukudu-service/src/internal/gateway/remote"
	"tchukudu-service/src/internal/repository"
	"tchukudu-service/src/internal/ride"
	"tchukudu-service/src/internal/session"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// unavailableDB stands in for MySQL in tests; repository calls fail and the
// use cases treat them as best-effort where the flow allows it.
type unavailableDB struct{}

func (unavailableDB) GetDB() (*sqlx.DB, error) {
	return nil, errors.New("database unavailable")
}

type fixture struct {
	KV          kv.Store
	Sessions    *session.Manager
	Client      *ClientUseCase
	Transporter *TransporterUseCase
	Payment     *PaymentUseCase
}

func newFixture() *fixture {
	logger := log.Log{AppName: "test", LogLevel: 2, Logger: logrus.New()}

	cfg := viper.New()
	cfg.Set("jwt.secret", "test-secret")
	cfg.Set("app.name", "tchukudu-test")

	kvStore := kv.NewMemoryStore()
	sessions := session.NewManager(kvStore, logger)
	gateway := remote.NewGatewayWithDelay(logger, time.Millisecond)
	rideRepository := repository.NewRideRepository(unavailableDB{})
	rideProducer := messaging.NewRideProducer(nil, logger)
	validate := validator.New()

	return &fixture{
		KV:       kvStore,
		Sessions: sessions,
		Client: NewClientUseCase(
			logger, validate, cfg, sessions, gateway,
			rideRepository, rideProducer, ride.DefaultClock(),
		),
		Transporter: NewTransporterUseCase(
			logger, validate, cfg, sessions, gateway,
			rideRepository, rideProducer, kvStore, nil,
		),
		Payment: NewPaymentUseCase(
			logger, validate, cfg, sessions, gateway, kvStore, nil,
		),
	}
}
