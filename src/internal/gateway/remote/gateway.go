package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/payment"
	"tchukudu-service/src/pkg/log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// ErrInvalidOTP is the only rejection the mocked backend models.
var ErrInvalidOTP = errors.New("remote: invalid OTP code")

const validOTP = "1234"

// Gateway stands in for the real backend: every call answers with fixture
// data after an artificial delay. It never reads or writes session state;
// callers apply the results themselves.
type Gateway struct {
	log   log.Log
	delay time.Duration
}

func NewGateway(v *viper.Viper, logger log.Log) *Gateway {
	delay := v.GetDuration("remote.delay")
	if delay == 0 {
		delay = 800 * time.Millisecond
	}
	return &Gateway{log: logger, delay: delay}
}

// NewGatewayWithDelay is for tests that cannot afford the simulated latency.
func NewGatewayWithDelay(logger log.Log, delay time.Duration) *Gateway {
	return &Gateway{log: logger, delay: delay}
}

// wait simulates network latency; an expired context is a transient failure.
func (g *Gateway) wait(ctx context.Context) Outcome {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Transient(ctx.Err())
	case <-timer.C:
		return OK()
	}
}

func (g *Gateway) SendOTP(ctx context.Context, phone string) Outcome {
	if out := g.wait(ctx); out.Failed() {
		return out
	}
	g.log.Info("remote-gateway", "OTP sent", "SendOTP", phone)
	return OK()
}

func (g *Gateway) VerifyOTP(ctx context.Context, phone, otp string) (*entity.User, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	if otp != validOTP {
		return nil, Permanent(ErrInvalidOTP)
	}
	return &entity.User{
		UserID:    "client-1",
		Phone:     phone,
		Type:      entity.UserTypeClient,
		CreatedAt: time.Now(),
	}, OK()
}

func (g *Gateway) RegisterTransporter(ctx context.Context, req *model.TransporterRegisterRequest) (*entity.User, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return &entity.User{
		UserID:    "transporter-" + uuid.NewString(),
		Phone:     req.Phone,
		FullName:  req.FullName,
		Email:     req.Email,
		Type:      entity.UserTypeTransporter,
		CreatedAt: time.Now(),
	}, OK()
}

func (g *Gateway) LoginTransporter(ctx context.Context, phone, password string) (*entity.User, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return &entity.User{
		UserID:    "transporter-1",
		Phone:     phone,
		FullName:  "Jean Dupont",
		Email:     "jean@example.com",
		Type:      entity.UserTypeTransporter,
		CreatedAt: time.Now(),
	}, OK()
}

func (g *Gateway) GetAvailableTransporters(ctx context.Context) ([]model.TransporterSearchResult, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return availableTransporters(), OK()
}

func (g *Gateway) GetAvailableRides(ctx context.Context) ([]entity.RideOffer, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return availableRides(), OK()
}

func (g *Gateway) BookRide(ctx context.Context) (string, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return "", out
	}
	return "ride-" + uuid.NewString(), OK()
}

// GetRideHistory answers with the fixture history the mocked backend keeps.
// The local history table is the primary source; this is its fallback.
func (g *Gateway) GetRideHistory(ctx context.Context, userID string) ([]entity.RideHistory, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return rideHistory(userID), OK()
}

func (g *Gateway) SubmitRating(ctx context.Context, req *model.SubmitRatingRequest) Outcome {
	if out := g.wait(ctx); out.Failed() {
		return out
	}
	g.log.Info("remote-gateway", fmt.Sprintf("rating %d recorded for ride %s", req.Rating, req.RideID), "SubmitRating", "")
	return OK()
}

func (g *Gateway) SaveVehicle(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	saved := *vehicle
	if saved.VehicleID == "" {
		saved.VehicleID = "vehicle-" + uuid.NewString()
	}
	return &saved, OK()
}

func (g *Gateway) GetVehicle(ctx context.Context, transporterID string) (*entity.Vehicle, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	// the mocked backend has no stored vehicle
	return nil, OK()
}

func (g *Gateway) GetPaymentMethods(ctx context.Context) ([]payment.Method, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return paymentMethods(), OK()
}

func (g *Gateway) GetSubscriptionPlans(ctx context.Context) ([]entity.SubscriptionPlan, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return subscriptionPlans(), OK()
}

func (g *Gateway) InitiateMobilePayment(ctx context.Context, target payment.Target, methodID, phoneNumber string) (*model.InitiatePaymentResponse, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return &model.InitiatePaymentResponse{
		TransactionID: "txn_" + uuid.NewString(),
		Status:        "pending",
		Message:       "Paiement initié. Vérifiez votre téléphone pour confirmer.",
	}, OK()
}

// InitiateRidePayment is the dedicated initiate for ride fares; the mocked
// backend answers exactly like the generic mobile-money initiate.
func (g *Gateway) InitiateRidePayment(ctx context.Context, target payment.Target, methodID, phoneNumber string) (*model.InitiatePaymentResponse, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return &model.InitiatePaymentResponse{
		TransactionID: "txn_" + uuid.NewString(),
		Status:        "pending",
		Message:       "Paiement de la course initié. Vérifiez votre téléphone pour confirmer.",
	}, OK()
}

func (g *Gateway) InitiateCardPayment(ctx context.Context, target payment.Target, methodID string) (*model.InitiatePaymentResponse, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	transactionID := "txn_" + uuid.NewString()
	return &model.InitiatePaymentResponse{
		TransactionID: transactionID,
		PaymentURL:    "https://sandbox-payment.example.com/pay?token=mock_token_" + transactionID,
		Message:       "Redirection vers la page de paiement sécurisée",
	}, OK()
}

func (g *Gateway) VerifyPayment(ctx context.Context, transactionID string) (*model.VerifyPaymentResponse, Outcome) {
	if out := g.wait(ctx); out.Failed() {
		return nil, out
	}
	return &model.VerifyPaymentResponse{
		Status: "completed",
		Subscription: &entity.Subscription{
			SubscriptionID: "sub_" + uuid.NewString(),
			PlanID:         "monthly",
			ExpiresAt:      time.Now().Add(30 * 24 * time.Hour),
			IsActive:       true,
			TransactionID:  transactionID,
		},
	}, OK()
}
