package usecase

import (
	"context"
	"testing"
	"time"

	"tchukudu-service/src/internal/booking"
	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/ride"
	httpError "tchukudu-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authenticateClient(t *testing.T, f *fixture) *model.AuthResponse {
	t.Helper()

	result := f.Client.VerifyOTP(context.Background(), &model.VerifyOTPRequest{
		Phone: "+243 812 345 678",
		OTP:   "1234",
	})
	require.NoError(t, result.Error)
	auth, ok := result.Data.(*model.AuthResponse)
	require.True(t, ok)
	return auth
}

func runWizard(t *testing.T, f *fixture) booking.Selection {
	t.Helper()
	ctx := context.Background()

	result := f.Client.ChooseVehicleType(ctx, &model.VehicleTypeStepRequest{VehicleType: "motorcycle"})
	require.NoError(t, result.Error)
	selection := result.Data.(booking.Selection)

	result = f.Client.ChooseServiceType(ctx, &model.ServiceTypeStepRequest{Selection: selection, ServiceType: "standard"})
	require.NoError(t, result.Error)
	selection = result.Data.(booking.Selection)

	result = f.Client.ChooseTransportType(ctx, &model.TransportTypeStepRequest{Selection: selection, TransportType: "people"})
	require.NoError(t, result.Error)
	selection = result.Data.(booking.Selection)

	result = f.Client.ChooseLocations(ctx, &model.LocationStepRequest{
		Selection:   selection,
		Pickup:      "Marché Central, Kinshasa",
		Destination: "Université de Kinshasa",
	})
	require.NoError(t, result.Error)
	return result.Data.(booking.Selection)
}

func TestVerifyOTPRejectsWrongCode(t *testing.T) {
	f := newFixture()

	result := f.Client.VerifyOTP(context.Background(), &model.VerifyOTPRequest{
		Phone: "+243 812 345 678",
		OTP:   "0000",
	})
	require.Error(t, result.Error)
	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, errObj.Code)
}

func TestVerifyOTPAuthenticatesSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	auth := authenticateClient(t, f)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "client-1", auth.User.UserID)
	assert.True(t, f.Sessions.Session(ctx, "client-1").IsAuthenticated())
}

func TestWizardStepsRejectOutOfOrderRequests(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// service type without a vehicle type first
	result := f.Client.ChooseServiceType(ctx, &model.ServiceTypeStepRequest{
		Selection:   booking.New(),
		ServiceType: "standard",
	})
	require.Error(t, result.Error)

	// search before the wizard is complete
	result = f.Client.SearchTransporters(ctx, &model.SearchTransportersRequest{
		UserID:    "client-1",
		Selection: booking.New(),
	})
	require.Error(t, result.Error)
}

func TestBookingHappyPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	selection := runWizard(t, f)

	result := f.Client.SearchTransporters(ctx, &model.SearchTransportersRequest{
		UserID:    "client-1",
		Selection: selection,
	})
	require.NoError(t, result.Error)
	transporters := result.Data.([]model.TransporterSearchResult)
	require.Len(t, transporters, 3)

	result = f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID:        "client-1",
		Selection:     selection,
		TransporterID: "2",
	})
	require.NoError(t, result.Error)

	activeRide := f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide
	require.NotNil(t, activeRide)
	assert.Equal(t, "Marie Kabila", activeRide.TransporterName)
	assert.Equal(t, 25.0, activeRide.Price)
	assert.Equal(t, string(ride.StatusSearching), activeRide.Status)
	assert.Equal(t, "Marché Central, Kinshasa", activeRide.Pickup)
}

func TestBookRideRejectsSecondRide(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	selection := runWizard(t, f)

	result := f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID: "client-1", Selection: selection, TransporterID: "1",
	})
	require.NoError(t, result.Error)

	result = f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID: "client-1", Selection: selection, TransporterID: "2",
	})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, errObj.Code)
}

func TestBookRideUnknownTransporter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	selection := runWizard(t, f)

	result := f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID: "client-1", Selection: selection, TransporterID: "99",
	})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusNotFound, errObj.Code)
}

// rewindRide pushes the tracked ride's start into the past so the clock sees
// the given elapsed time.
func rewindRide(t *testing.T, f *fixture, userID string, elapsed time.Duration) {
	t.Helper()
	ctx := context.Background()

	sess := f.Sessions.Session(ctx, userID)
	activeRide := sess.Snapshot().ActiveRide
	require.NotNil(t, activeRide)
	activeRide.StartedAt = time.Now().Add(-elapsed)
	require.NoError(t, sess.SetActiveRide(ctx, activeRide))
}

func TestTrackRideDerivesStatusFromElapsedTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	selection := runWizard(t, f)
	result := f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID: "client-1", Selection: selection, TransporterID: "2",
	})
	require.NoError(t, result.Error)

	result = f.Client.TrackRide(ctx, &model.TrackRideRequest{UserID: "client-1"})
	require.NoError(t, result.Error)
	tracked := result.Data.(*model.TrackRideResponse)
	assert.Equal(t, string(ride.StatusSearching), tracked.Status)
	assert.True(t, tracked.CanCancel)
	assert.False(t, tracked.PaymentDue)

	rewindRide(t, f, "client-1", 10*time.Second)
	result = f.Client.TrackRide(ctx, &model.TrackRideRequest{UserID: "client-1"})
	require.NoError(t, result.Error)
	tracked = result.Data.(*model.TrackRideResponse)
	assert.Equal(t, string(ride.StatusPickup), tracked.Status)

	rewindRide(t, f, "client-1", 26*time.Second)
	result = f.Client.TrackRide(ctx, &model.TrackRideRequest{UserID: "client-1"})
	require.NoError(t, result.Error)
	tracked = result.Data.(*model.TrackRideResponse)
	assert.Equal(t, string(ride.StatusCompleted), tracked.Status)
	assert.True(t, tracked.PaymentDue)
	assert.Equal(t, 25.0, tracked.Amount)
	assert.True(t, tracked.CanCancel, "cancel window outlives completion")

	// the advanced status is persisted, not just derived
	assert.Equal(t, string(ride.StatusCompleted), f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide.Status)
}

func TestCancelRideWindow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	selection := runWizard(t, f)
	result := f.Client.BookRide(ctx, &model.BookRideRequest{
		UserID: "client-1", Selection: selection, TransporterID: "2",
	})
	require.NoError(t, result.Error)

	rewindRide(t, f, "client-1", 200*time.Second)
	result = f.Client.CancelRide(ctx, &model.CancelRideRequest{UserID: "client-1"})
	require.Error(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusConflict, errObj.Code)

	rewindRide(t, f, "client-1", 30*time.Second)
	result = f.Client.CancelRide(ctx, &model.CancelRideRequest{UserID: "client-1"})
	require.NoError(t, result.Error)
	assert.Nil(t, f.Sessions.Session(ctx, "client-1").Snapshot().ActiveRide)
}

func TestRideHistoryFallsBackToBoundary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)

	// the fixture database is unreachable, so the boundary's copy answers
	result := f.Client.RideHistory(ctx, &model.RideHistoryRequest{UserID: "client-1"})
	require.NoError(t, result.Error)
	rides := result.Data.([]entity.RideHistory)
	require.NotEmpty(t, rides)
	assert.Equal(t, "completed", rides[0].Status)
}

func TestLogoutDropsSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	authenticateClient(t, f)
	result := f.Client.Logout(ctx, &model.LogoutRequest{UserID: "client-1"})
	require.NoError(t, result.Error)

	assert.False(t, f.Sessions.Session(ctx, "client-1").IsAuthenticated())
}
