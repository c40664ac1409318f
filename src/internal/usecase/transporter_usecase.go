package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/gateway/messaging"
	"tchukudu-service/src/internal/gateway/remote"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/model/converter"
	"tchukudu-service/src/internal/repository"
	"tchukudu-service/src/internal/session"
	httpError "tchukudu-service/src/pkg/http-error"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/token"
	"tchukudu-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type TransporterUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Config         *viper.Viper
	Sessions       *session.Manager
	Remote         *remote.Gateway
	RideRepository *repository.RideRepository
	RideProducer   *messaging.RideProducer
	KV             kv.Store
	AsynqClient    *asynq.Client
}

func NewTransporterUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	sessions *session.Manager,
	remoteGateway *remote.Gateway,
	rideRepository *repository.RideRepository,
	rideProducer *messaging.RideProducer,
	kvStore kv.Store,
	asynqClient *asynq.Client,
) *TransporterUseCase {
	return &TransporterUseCase{
		Log:            logger,
		Validate:       validate,
		Config:         cfg,
		Sessions:       sessions,
		Remote:         remoteGateway,
		RideRepository: rideRepository,
		RideProducer:   rideProducer,
		KV:             kvStore,
		AsynqClient:    asynqClient,
	}
}

func offerKey(transporterID string) string {
	return fmt.Sprintf("TCHUKUDU:OFFER:%s", transporterID)
}

func (c *TransporterUseCase) Register(ctx context.Context, request *model.TransporterRegisterRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "Register", request.Phone)
		return result
	}

	user, out := c.Remote.RegisterTransporter(ctx, request)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("transporter-usecase", fmt.Sprintf("registration failed: %v", out.Err), "Register", request.Phone)
		return result
	}

	sess := c.Sessions.Session(ctx, user.UserID)
	sess.SetUser(ctx, user)
	sess.SetUserType(ctx, entity.UserTypeTransporter)

	signed, err := token.Generate(c.Config, token.Metadata{
		UserID:   user.UserID,
		FullName: user.FullName,
		UserType: user.Type,
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "Register", user.UserID)
		return result
	}

	c.Log.Info("transporter-usecase", "transporter registered", "Register", user.UserID)
	result.Data = &model.AuthResponse{Token: signed, User: user}
	return result
}

func (c *TransporterUseCase) Login(ctx context.Context, request *model.TransporterLoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "Login", request.Phone)
		return result
	}

	user, out := c.Remote.LoginTransporter(ctx, request.Phone, request.Password)
	if out.Failed() {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "Identifiants invalides"
		result.Error = errObj
		c.Log.Error("transporter-usecase", fmt.Sprintf("login failed: %v", out.Err), "Login", request.Phone)
		return result
	}

	sess := c.Sessions.Session(ctx, user.UserID)
	sess.SetUser(ctx, user)
	sess.SetUserType(ctx, entity.UserTypeTransporter)

	signed, err := token.Generate(c.Config, token.Metadata{
		UserID:   user.UserID,
		FullName: user.FullName,
		UserType: user.Type,
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to issue token"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "Login", user.UserID)
		return result
	}

	result.Data = &model.AuthResponse{Token: signed, User: user}
	return result
}

func (c *TransporterUseCase) SaveVehicle(ctx context.Context, request *model.SaveVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "SaveVehicle", utils.ConvertString(request))
		return result
	}

	vehicle := &entity.Vehicle{
		TransporterID: request.UserID,
		Type:          request.Type,
		Model:         request.Model,
		LicensePlate:  request.LicensePlate,
		Capacity:      request.Capacity,
		PricePerKm:    request.PricePerKm,
		PricePerKg:    request.PricePerKg,
	}

	saved, out := c.Remote.SaveVehicle(ctx, vehicle)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to save vehicle: %v", out.Err), "SaveVehicle", request.UserID)
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	sess.SetVehicle(ctx, saved)

	c.Log.Info("transporter-usecase", "vehicle saved", "SaveVehicle", saved.VehicleID)
	result.Data = saved
	return result
}

func (c *TransporterUseCase) SubscriptionPlans(ctx context.Context) utils.Result {
	var result utils.Result

	plans, out := c.Remote.GetSubscriptionPlans(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to fetch plans: %v", out.Err), "SubscriptionPlans", "")
		return result
	}

	result.Data = plans
	return result
}

// SetAvailability toggles the driver online. A transporter without a vehicle
// or active subscription is in "needs setup" and cannot come online.
func (c *TransporterUseCase) SetAvailability(ctx context.Context, request *model.AvailabilityRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "SetAvailability", utils.ConvertString(request))
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	if request.Active && sess.NeedsSetup() {
		errObj := httpError.NewConflict()
		errObj.Message = "Configuration requise: complétez votre véhicule et votre abonnement pour vous mettre en ligne"
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "SetAvailability", request.UserID)
		return result
	}

	sess.SetIsDriverActive(ctx, request.Active)

	if !request.Active {
		if err := c.KV.Delete(ctx, offerKey(request.UserID)); err != nil {
			c.Log.Error("transporter-usecase", fmt.Sprintf("failed to drop pending offer: %v", err), "SetAvailability", request.UserID)
		}
		result.Data = map[string]interface{}{"active": false}
		return result
	}

	if sess.Snapshot().ActiveRide == nil {
		c.scheduleOffer(ctx, request.UserID)
	}

	result.Data = map[string]interface{}{"active": true}
	return result
}

// scheduleOffer arms the delayed ride notification the way the mobile app
// armed its 3 second timer after going online.
func (c *TransporterUseCase) scheduleOffer(ctx context.Context, transporterID string) {
	delay := c.Config.GetDuration("ride.offer_delay")
	if delay == 0 {
		delay = 3 * time.Second
	}

	payload, err := json.Marshal(model.RideOfferTaskPayload{TransporterID: transporterID})
	if err != nil {
		c.Log.Error("transporter-usecase", err.Error(), "scheduleOffer", transporterID)
		return
	}

	if c.AsynqClient == nil {
		c.Log.Info("transporter-usecase", "task queue disabled, delivering offer inline", "scheduleOffer", transporterID)
		if err := c.DeliverRideOffer(ctx, asynq.NewTask(model.TaskRideOffer, payload)); err != nil {
			c.Log.Error("transporter-usecase", err.Error(), "scheduleOffer", transporterID)
		}
		return
	}

	task := asynq.NewTask(model.TaskRideOffer, payload)
	if _, err := c.AsynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay)); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to enqueue ride offer: %v", err), "scheduleOffer", transporterID)
	}
}

// DeliverRideOffer is the asynq handler for the delayed offer. It re-checks
// the gate before injecting: the transporter may have gone offline or bound a
// ride while the task sat in the queue.
func (c *TransporterUseCase) DeliverRideOffer(ctx context.Context, task *asynq.Task) error {
	var payload model.RideOfferTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("bad offer payload: %v", err), "DeliverRideOffer", "")
		return err
	}

	sess := c.Sessions.Session(ctx, payload.TransporterID)
	snapshot := sess.Snapshot()
	if !snapshot.IsDriverActive || sess.NeedsSetup() || snapshot.ActiveRide != nil {
		c.Log.Info("transporter-usecase", "offer dropped, transporter not eligible", "DeliverRideOffer", payload.TransporterID)
		return nil
	}

	offers, out := c.Remote.GetAvailableRides(ctx)
	if out.Failed() || len(offers) == 0 {
		c.Log.Error("transporter-usecase", "no offers available", "DeliverRideOffer", payload.TransporterID)
		return out.Err
	}

	encoded, err := json.Marshal(offers[0])
	if err != nil {
		return err
	}
	if err := c.KV.Set(ctx, offerKey(payload.TransporterID), string(encoded)); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to store offer: %v", err), "DeliverRideOffer", payload.TransporterID)
		return err
	}

	c.Log.Info("transporter-usecase", "ride offer delivered", "DeliverRideOffer", offers[0].OfferID)
	return nil
}

func (c *TransporterUseCase) PendingOffer(ctx context.Context, transporterID string) utils.Result {
	var result utils.Result

	raw, err := c.KV.Get(ctx, offerKey(transporterID))
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no pending ride offer"
		result.Error = errObj
		return result
	}

	var offer entity.RideOffer
	if err := json.Unmarshal([]byte(raw), &offer); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to decode pending offer"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "PendingOffer", transporterID)
		return result
	}

	result.Data = &offer
	return result
}

func (c *TransporterUseCase) AcceptOffer(ctx context.Context, request *model.OfferDecisionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "AcceptOffer", utils.ConvertString(request))
		return result
	}

	raw, err := c.KV.Get(ctx, offerKey(request.UserID))
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no pending ride offer"
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "AcceptOffer", request.UserID)
		return result
	}

	var offer entity.RideOffer
	if err := json.Unmarshal([]byte(raw), &offer); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to decode pending offer"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "AcceptOffer", request.UserID)
		return result
	}

	if offer.OfferID != request.OfferID {
		errObj := httpError.NewConflict()
		errObj.Message = "offer is no longer available"
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "AcceptOffer", request.OfferID)
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	snapshot := sess.Snapshot()
	if snapshot.User == nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no authenticated transporter"
		result.Error = errObj
		return result
	}

	activeRide := converter.OfferToActiveRide(&offer, snapshot.User)
	if err := sess.SetActiveRide(ctx, activeRide); err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = "Une course est déjà en cours"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "AcceptOffer", request.UserID)
		return result
	}

	if err := c.KV.Delete(ctx, offerKey(request.UserID)); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to clear offer: %v", err), "AcceptOffer", request.UserID)
	}

	event := converter.RideToEvent(model.RideEventAccepted, activeRide)
	if err := c.RideProducer.SendRideAccepted(event); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to publish ride accepted event: %v", err), "AcceptOffer", activeRide.RideID)
	}

	c.Log.Info("transporter-usecase", "offer accepted", "AcceptOffer", activeRide.RideID)
	result.Data = activeRide
	return result
}

// DeclineOffer discards the pending offer. No replacement is scheduled.
func (c *TransporterUseCase) DeclineOffer(ctx context.Context, request *model.OfferDecisionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "DeclineOffer", utils.ConvertString(request))
		return result
	}

	if err := c.KV.Delete(ctx, offerKey(request.UserID)); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to drop offer: %v", err), "DeclineOffer", request.UserID)
	}

	result.Data = map[string]string{"message": "offer declined"}
	return result
}

func (c *TransporterUseCase) CompleteRide(ctx context.Context, request *model.CompleteRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "CompleteRide", utils.ConvertString(request))
		return result
	}

	if !request.Confirm {
		errObj := httpError.NewBadRequest()
		errObj.Message = "completion must be confirmed"
		result.Error = errObj
		return result
	}

	sess := c.Sessions.Session(ctx, request.UserID)
	snapshot := sess.Snapshot()
	if snapshot.ActiveRide == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no active ride to complete"
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "CompleteRide", request.UserID)
		return result
	}

	completed := snapshot.ActiveRide
	completed.Status = "completed"
	completedAt := time.Now()

	if err := sess.SetActiveRide(ctx, nil); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to clear ride"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "CompleteRide", completed.RideID)
		return result
	}

	if err := c.RideRepository.Insert(ctx, converter.ActiveRideToHistory(completed, completedAt)); err != nil {
		// completion stands, the history row is just missing
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to record history: %v", err), "CompleteRide", completed.RideID)
	}

	event := converter.RideToEvent(model.RideEventCompleted, completed)
	if err := c.RideProducer.SendRideCompleted(event); err != nil {
		c.Log.Error("transporter-usecase", fmt.Sprintf("failed to publish ride completed event: %v", err), "CompleteRide", completed.RideID)
	}

	c.Log.Info("transporter-usecase", "ride completed", "CompleteRide", completed.RideID)
	result.Data = map[string]string{"message": "Course marquée comme terminée"}
	return result
}

func (c *TransporterUseCase) Earnings(ctx context.Context, request *model.EarningsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("transporter-usecase", errObj.Message, "Earnings", utils.ConvertString(request))
		return result
	}

	summary, err := c.RideRepository.Earnings(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load earnings"
		result.Error = errObj
		c.Log.Error("transporter-usecase", err.Error(), "Earnings", request.UserID)
		return result
	}

	result.Data = summary
	return result
}
