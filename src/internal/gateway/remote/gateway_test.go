package remote

import (
	"context"
	"testing"
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/payment"
	"tchukudu-service/src/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *Gateway {
	logger := log.Log{AppName: "test", LogLevel: 2, Logger: logrus.New()}
	return NewGatewayWithDelay(logger, time.Millisecond)
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()
	g := testGateway()

	user, out := g.VerifyOTP(ctx, "+243 812 345 678", "1234")
	require.False(t, out.Failed())
	require.NotNil(t, user)
	assert.Equal(t, "client-1", user.UserID)
	assert.Equal(t, entity.UserTypeClient, user.Type)

	user, out = g.VerifyOTP(ctx, "+243 812 345 678", "0000")
	assert.Nil(t, user)
	require.True(t, out.Failed())
	assert.Equal(t, OutcomePermanentFailure, out.Kind)
	assert.ErrorIs(t, out.Err, ErrInvalidOTP)
}

func TestCancelledContextIsTransient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := testGateway()
	out := g.SendOTP(ctx, "+243 812 345 678")
	require.True(t, out.Failed())
	assert.Equal(t, OutcomeTransientFailure, out.Kind)
}

func TestFixtures(t *testing.T) {
	ctx := context.Background()
	g := testGateway()

	transporters, out := g.GetAvailableTransporters(ctx)
	require.False(t, out.Failed())
	require.Len(t, transporters, 3)
	assert.Equal(t, "Marie Kabila", transporters[1].Name)
	assert.Equal(t, 25.0, transporters[1].Price)

	offers, out := g.GetAvailableRides(ctx)
	require.False(t, out.Failed())
	require.NotEmpty(t, offers)
	assert.Equal(t, "Marie Kabongo", offers[0].ClientName)

	methods, out := g.GetPaymentMethods(ctx)
	require.False(t, out.Failed())
	assert.Len(t, methods, 5)

	plans, out := g.GetSubscriptionPlans(ctx)
	require.False(t, out.Failed())
	require.Len(t, plans, 3)
	assert.Equal(t, "monthly", plans[1].PlanID)
	assert.True(t, plans[1].Popular)
}

func TestPaymentInitiationShapes(t *testing.T) {
	ctx := context.Background()
	g := testGateway()
	target := payment.Target{Kind: payment.TargetRide, RideID: "ride-1", Amount: 25, PayerID: "client-1"}

	mobile, out := g.InitiateMobilePayment(ctx, target, "airtel_money", "+243 812 000 111")
	require.False(t, out.Failed())
	assert.NotEmpty(t, mobile.TransactionID)
	assert.Empty(t, mobile.PaymentURL)
	assert.Equal(t, "pending", mobile.Status)

	card, out := g.InitiateCardPayment(ctx, target, "visa_card")
	require.False(t, out.Failed())
	assert.NotEmpty(t, card.TransactionID)
	assert.Contains(t, card.PaymentURL, card.TransactionID)

	fare, out := g.InitiateRidePayment(ctx, target, "airtel_money", "+243 812 000 111")
	require.False(t, out.Failed())
	assert.Equal(t, "pending", fare.Status)

	verified, out := g.VerifyPayment(ctx, mobile.TransactionID)
	require.False(t, out.Failed())
	assert.Equal(t, "completed", verified.Status)
	require.NotNil(t, verified.Subscription)
	assert.True(t, verified.Subscription.IsActive)
}
