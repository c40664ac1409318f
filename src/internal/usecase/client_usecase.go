package usecase

import (
	"context"
	"fmt"
	"time"

	"tchukudu-service/src/internal/booking"
	"tchukudu-service/src/internal/gateway/messaging"
	"tchukudu-service/src/internal/gateway/remote"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/model/converter"
	"tchukudu-service/src/internal/repository"
	"tchukudu-service/src/internal/ride"
	"tchukudu-service/src/internal/session"
	httpError "tchukudu-service/src/pkg/http-error"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/token"
	"tchukudu-service/src/pkg/utils"

	"tchukudu-service/src/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ClientUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Config         *viper.Viper
	Sessions       *session.Manager
	Remote         *remote.Gateway
	RideRepository *repository.RideRepository
	RideProducer   *messaging.RideProducer
	Clock          ride.Clock
}

func NewClientUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	sessions *session.Manager,
	remoteGateway *remote.Gateway,
	rideRepository *repository.RideRepository,
	rideProducer *messaging.RideProducer,
	clock ride.Clock,
) *ClientUseCase {
	return &ClientUseCase{
		Log:            logger,
		Validate:       validate,
		Config:         cfg,
		Sessions:       sessions,
		Remote:         remoteGateway,
		RideRepository: rideRepository,
		RideProducer:   rideProducer,
		Clock:          clock,
	}
}

// outcomeError maps a boundary outcome to the error vocabulary the delivery
// layer understands.
func outcomeError(out remote.Outcome) *httpError.CommonError {
	var errObj *httpError.CommonError
	switch out.Kind {
	case remote.OutcomePermanentFailure:
		errObj = httpError.NewBadRequest()
	default:
		errObj = httpError.NewInternalServerError()
	}
	if out.Err != nil {
		errObj.Message = out.Err.Error()
	}
	return errObj
}

func (c *ClientUseCase) SendOTP(ctx context.Context, request *model.SendOTPRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "SendOTP", utils.ConvertString(request))
		return result
	}

	if out := c.Remote.SendOTP(ctx, request.Phone); out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("client-usecase", fmt.Sprintf("failed to send OTP: %v", out.Err), "SendOTP", request.Phone)
		return result
	}

	result.Data = map[string]string{"message": "OTP sent"}
	return result
}

func (c *ClientUseCase) VerifyOTP(ctx context.Context, request *model.VerifyOTPRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "VerifyOTP", request.Phone)
		return result
	}

	user, out := c.Remote.VerifyOTP(ctx, request.Phone, request.OTP)
	if out.Failed() {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "Code OTP invalide"
		result.Error = errObj
		c.Log.Error("client-usecase", fmt.Sprintf("OTP verification failed: %v", out.Err), "VerifyOTP", request.Phone)
		return result
	}

	sess := c.Sessions.Session(ctx, user.UserID)
	sess.SetUser(ctx, user)
	sess.SetUserType(ctx, entity.UserTypeClient)

	signed, err := token.Generate(c.Config, token.Metadata{
		UserID:   user.UserID,
		FullName: user.FullName,
		UserType: user.Type,
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "VerifyOTP", user.UserID)
		return result
	}

	c.Log.Info("client-usecase", "client authenticated", "VerifyOTP", user.UserID)
	result.Data = &model.AuthResponse{Token: signed, User: user}
	return result
}

func (c *ClientUseCase) ChooseVehicleType(ctx context.Context, request *model.VehicleTypeStepRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "ChooseVehicleType", utils.ConvertString(request))
		return result
	}

	selection := request.Selection
	if selection.Step == "" {
		selection = booking.New()
	}
	next, err := selection.WithVehicleType(request.VehicleType)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "ChooseVehicleType", request.VehicleType)
		return result
	}

	result.Data = next
	return result
}

func (c *ClientUseCase) ChooseServiceType(ctx context.Context, request *model.ServiceTypeStepRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "ChooseServiceType", utils.ConvertString(request))
		return result
	}

	next, err := request.Selection.WithServiceType(request.ServiceType)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "ChooseServiceType", request.ServiceType)
		return result
	}

	result.Data = next
	return result
}

func (c *ClientUseCase) ChooseTransportType(ctx context.Context, request *model.TransportTypeStepRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "ChooseTransportType", utils.ConvertString(request))
		return result
	}

	next, err := request.Selection.WithTransportType(request.TransportType)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "ChooseTransportType", request.TransportType)
		return result
	}

	result.Data = next
	return result
}

func (c *ClientUseCase) ChooseLocations(ctx context.Context, request *model.LocationStepRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "ChooseLocations", utils.ConvertString(request))
		return result
	}

	next, err := request.Selection.WithLocations(request.Pickup, request.Destination)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "ChooseLocations", "")
		return result
	}

	result.Data = next
	return result
}

func (c *ClientUseCase) SearchTransporters(ctx context.Context, request *model.SearchTransportersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "SearchTransporters", utils.ConvertString(request))
		return result
	}

	if err := request.Selection.Complete(); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "SearchTransporters", utils.ConvertString(request.Selection))
		return result
	}

	transporters, out := c.Remote.GetAvailableTransporters(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("client-usecase", fmt.Sprintf("failed to fetch transporters: %v", out.Err), "SearchTransporters", "")
		return result
	}

	result.Data = transporters
	return result
}

func (c *ClientUseCase) BookRide(ctx context.Context, request *model.BookRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "BookRide", utils.ConvertString(request))
		return result
	}

	transporters, out := c.Remote.GetAvailableTransporters(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("client-usecase", fmt.Sprintf("failed to fetch transporters: %v", out.Err), "BookRide", "")
		return result
	}

	var picked *model.TransporterSearchResult
	for i := range transporters {
		if transporters[i].ID == request.TransporterID {
			picked = &transporters[i]
			break
		}
	}
	if picked == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transporter with id %s not found", request.TransporterID)
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "BookRide", "")
		return result
	}

	chosen, err := request.Selection.Choose(picked.ID, picked.Name, picked.Phone, picked.Price)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "BookRide", utils.ConvertString(request.Selection))
		return result
	}

	rideID, out := c.Remote.BookRide(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("client-usecase", fmt.Sprintf("failed to book ride: %v", out.Err), "BookRide", "")
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	snapshot := sess.Snapshot()
	clientName := ""
	if snapshot.User != nil {
		clientName = snapshot.User.FullName
	}

	activeRide := &entity.ActiveRide{
		RideID:          rideID,
		ClientID:        request.UserID,
		ClientName:      clientName,
		TransporterID:   chosen.TransporterID,
		TransporterName: chosen.TransporterName,
		Pickup:          chosen.Selection.Pickup,
		Destination:     chosen.Selection.Destination,
		Price:           chosen.Price,
		Distance:        picked.Distance,
		VehicleType:     chosen.Selection.VehicleType,
		ServiceType:     chosen.Selection.ServiceType,
		TransportType:   chosen.Selection.TransportType,
		Status:          string(ride.StatusSearching),
		StartedAt:       time.Now(),
	}

	if err := sess.SetActiveRide(ctx, activeRide); err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = "Une course est déjà en cours"
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "BookRide", request.UserID)
		return result
	}

	event := converter.RideToEvent(model.RideEventRequested, activeRide)
	if err := c.RideProducer.SendRideRequested(event); err != nil {
		c.Log.Error("client-usecase", fmt.Sprintf("failed to publish ride requested event: %v", err), "BookRide", rideID)
	}

	c.Log.Info("client-usecase", "ride booked", "BookRide", rideID)
	result.Data = activeRide
	return result
}

// TrackRide derives the ride's status and cancellation eligibility from one
// elapsed counter, advancing the stored status monotonically.
func (c *ClientUseCase) TrackRide(ctx context.Context, request *model.TrackRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "TrackRide", utils.ConvertString(request))
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	snapshot := sess.Snapshot()
	if snapshot.ActiveRide == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no ride is being tracked"
		result.Error = errObj
		return result
	}

	activeRide := snapshot.ActiveRide
	elapsed := time.Since(activeRide.StartedAt)
	derived := c.Clock.StatusAt(elapsed)

	if string(derived) != activeRide.Status && ride.Allowed(ride.Status(activeRide.Status), derived) {
		activeRide.Status = string(derived)
		if err := sess.SetActiveRide(ctx, activeRide); err != nil {
			c.Log.Error("client-usecase", err.Error(), "TrackRide", activeRide.RideID)
		}
	}

	response := &model.TrackRideResponse{
		Ride:           activeRide,
		Status:         activeRide.Status,
		CanCancel:      c.Clock.CanCancelAt(elapsed),
		CancelTimeLeft: c.Clock.CancelTimeLeftAt(elapsed),
		ElapsedSeconds: int(elapsed / time.Second),
	}
	if derived == ride.StatusCompleted {
		response.PaymentDue = true
		response.Amount = activeRide.Price
	}

	result.Data = response
	return result
}

func (c *ClientUseCase) CancelRide(ctx context.Context, request *model.CancelRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "CancelRide", utils.ConvertString(request))
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	snapshot := sess.Snapshot()
	if snapshot.ActiveRide == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no ride is being tracked"
		result.Error = errObj
		return result
	}

	elapsed := time.Since(snapshot.ActiveRide.StartedAt)
	if !c.Clock.CanCancelAt(elapsed) {
		errObj := httpError.NewConflict()
		errObj.Message = "La fenêtre d'annulation est fermée"
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "CancelRide", snapshot.ActiveRide.RideID)
		return result
	}

	if err := sess.SetActiveRide(ctx, nil); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to clear ride"
		result.Error = errObj
		c.Log.Error("client-usecase", err.Error(), "CancelRide", snapshot.ActiveRide.RideID)
		return result
	}

	c.Log.Info("client-usecase", "ride cancelled", "CancelRide", snapshot.ActiveRide.RideID)
	result.Data = map[string]string{"message": "Course annulée"}
	return result
}

func (c *ClientUseCase) RideHistory(ctx context.Context, request *model.RideHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "RideHistory", utils.ConvertString(request))
		return result
	}

	rides, err := c.RideRepository.History(ctx, request.UserID)
	if err != nil {
		// local table unreachable, fall back to the boundary's copy
		c.Log.Error("client-usecase", err.Error(), "RideHistory", request.UserID)
		remoteRides, out := c.Remote.GetRideHistory(ctx, request.UserID)
		if out.Failed() {
			result.Error = outcomeError(out)
			return result
		}
		result.Data = remoteRides
		return result
	}

	result.Data = rides
	return result
}

func (c *ClientUseCase) SubmitRating(ctx context.Context, request *model.SubmitRatingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "SubmitRating", utils.ConvertString(request))
		return result
	}

	if out := c.Remote.SubmitRating(ctx, request); out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("client-usecase", fmt.Sprintf("failed to submit rating: %v", out.Err), "SubmitRating", request.RideID)
		return result
	}

	if err := c.RideRepository.SetRating(ctx, request.RideID, request.Rating, request.Comment); err != nil {
		// rating stays accepted, history just misses the denormalized copy
		c.Log.Error("client-usecase", fmt.Sprintf("failed to store rating: %v", err), "SubmitRating", request.RideID)
	}

	result.Data = map[string]string{"message": "Évaluation enregistrée avec succès"}
	return result
}

func (c *ClientUseCase) Logout(ctx context.Context, request *model.LogoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("client-usecase", errObj.Message, "Logout", utils.ConvertString(request))
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	sess.Logout(ctx)
	c.Sessions.Drop(request.UserID)

	c.Log.Info("client-usecase", "session cleared", "Logout", request.UserID)
	result.Data = map[string]string{"message": "logged out"}
	return result
}
