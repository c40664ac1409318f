package usecase

import (
	"context"
	"testing"
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/payment"
	httpError "tchukudu-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindRide(t *testing.T, f *fixture, userID, rideID string, price float64) {
	t.Helper()
	ctx := context.Background()

	sess := f.Sessions.Session(ctx, userID)
	require.NoError(t, sess.SetActiveRide(ctx, &entity.ActiveRide{
		RideID:    rideID,
		ClientID:  userID,
		Price:     price,
		Status:    "completed",
		StartedAt: time.Now().Add(-30 * time.Second),
	}))
}

func TestOpenSheetForRideUsesRidePrice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)

	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1",
		Kind:   "ride",
		RideID: "ride-1",
		Amount: 1, // the tracked ride's price wins
	})
	require.NoError(t, result.Error)
	sheet := result.Data.(*model.PaymentSheetResponse)
	assert.Equal(t, payment.StepMethods, sheet.Session.Step)
	assert.Equal(t, 25.0, sheet.Session.Target.Amount)
	assert.Len(t, sheet.Methods, 5)
}

func TestOpenSheetRejectsUnknownRide(t *testing.T) {
	f := newFixture()

	result := f.Payment.OpenSheet(context.Background(), &model.OpenPaymentRequest{
		UserID: "client-1",
		Kind:   "ride",
		RideID: "ride-unknown",
		Amount: 25,
	})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusNotFound, errObj.Code)
}

func TestOpenSheetRejectsUnknownPlan(t *testing.T) {
	f := newFixture()

	result := f.Payment.OpenSheet(context.Background(), &model.OpenPaymentRequest{
		UserID: "transporter-1",
		Kind:   "subscription",
		PlanID: "yearly",
		Amount: 100,
	})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusNotFound, errObj.Code)
}

func TestMobileMoneyFlowReleasesRide(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)

	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1", Kind: "ride", RideID: "ride-1", Amount: 25,
	})
	require.NoError(t, result.Error)

	result = f.Payment.SelectMethod(ctx, &model.SelectMethodRequest{UserID: "client-1", MethodID: "mpesa"})
	require.NoError(t, result.Error)
	sheet := result.Data.(*model.PaymentSheetResponse)
	assert.Equal(t, payment.StepMobileForm, sheet.Session.Step)

	// confirmation runs inline without a task queue
	result = f.Payment.SubmitMobilePayment(ctx, &model.MobilePaymentRequest{
		UserID:      "client-1",
		PhoneNumber: "+243 812 000 111",
	})
	require.NoError(t, result.Error)

	assert.Nil(t, f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide)

	result = f.Payment.GetSheet(ctx, "client-1")
	require.NoError(t, result.Error)
	sheet = result.Data.(*model.PaymentSheetResponse)
	assert.Equal(t, payment.StepClosed, sheet.Session.Step)
}

func TestCardFlowVerifiesOnSuccessRedirect(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)

	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1", Kind: "ride", RideID: "ride-1", Amount: 25,
	})
	require.NoError(t, result.Error)

	result = f.Payment.SelectMethod(ctx, &model.SelectMethodRequest{UserID: "client-1", MethodID: "visa_card"})
	require.NoError(t, result.Error)
	sheet := result.Data.(*model.PaymentSheetResponse)
	assert.Equal(t, payment.StepCardPayment, sheet.Session.Step)
	assert.NotEmpty(t, sheet.Session.PaymentURL)
	assert.NotEmpty(t, sheet.Session.TransactionID)

	result = f.Payment.ObserveNavigation(ctx, &model.PaymentNavigationRequest{
		UserID: "client-1",
		URL:    "https://sandbox-payment.example.com/return?status=success",
	})
	require.NoError(t, result.Error)
	sheet = result.Data.(*model.PaymentSheetResponse)
	assert.Equal(t, payment.StepClosed, sheet.Session.Step)
	assert.Nil(t, f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide)
}

func TestCardFlowAbortsOnCancelRedirect(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)

	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1", Kind: "ride", RideID: "ride-1", Amount: 25,
	})
	require.NoError(t, result.Error)
	result = f.Payment.SelectMethod(ctx, &model.SelectMethodRequest{UserID: "client-1", MethodID: "mastercard"})
	require.NoError(t, result.Error)

	result = f.Payment.ObserveNavigation(ctx, &model.PaymentNavigationRequest{
		UserID: "client-1",
		URL:    "https://sandbox-payment.example.com/return?status=cancel",
	})
	require.NoError(t, result.Error)
	sheet := result.Data.(*model.PaymentSheetResponse)

	// the sheet falls back to method selection, the ride stays bound
	assert.Equal(t, payment.StepMethods, sheet.Session.Step)
	assert.Empty(t, sheet.Session.TransactionID)
	assert.NotNil(t, f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide)
}

func TestSelectMethodRejectsUnknownMethod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)
	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1", Kind: "ride", RideID: "ride-1", Amount: 25,
	})
	require.NoError(t, result.Error)

	result = f.Payment.SelectMethod(ctx, &model.SelectMethodRequest{UserID: "client-1", MethodID: "paypal"})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusNotFound, errObj.Code)
}

func TestCloseSheetDestroysSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	bindRide(t, f, "client-1", "ride-1", 25)
	result := f.Payment.OpenSheet(ctx, &model.OpenPaymentRequest{
		UserID: "client-1", Kind: "ride", RideID: "ride-1", Amount: 25,
	})
	require.NoError(t, result.Error)

	result = f.Payment.CloseSheet(ctx, "client-1")
	require.NoError(t, result.Error)

	result = f.Payment.GetSheet(ctx, "client-1")
	require.Error(t, result.Error)
}
