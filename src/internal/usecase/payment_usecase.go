package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tchukudu-service/src/internal/gateway/remote"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/payment"
	"tchukudu-service/src/internal/session"
	httpError "tchukudu-service/src/pkg/http-error"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type PaymentUseCase struct {
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Sessions    *session.Manager
	Remote      *remote.Gateway
	KV          kv.Store
	AsynqClient *asynq.Client
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	sessions *session.Manager,
	remoteGateway *remote.Gateway,
	kvStore kv.Store,
	asynqClient *asynq.Client,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:         logger,
		Validate:    validate,
		Config:      cfg,
		Sessions:    sessions,
		Remote:      remoteGateway,
		KV:          kvStore,
		AsynqClient: asynqClient,
	}
}

func sheetKey(userID string) string {
	return fmt.Sprintf("TCHUKUDU:PAYMENT:%s", userID)
}

func (c *PaymentUseCase) loadSheet(ctx context.Context, userID string) (*payment.Session, *httpError.CommonError) {
	raw, err := c.KV.Get(ctx, sheetKey(userID))
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no open payment sheet"
		return nil, errObj
	}
	var sheet payment.Session
	if err := json.Unmarshal([]byte(raw), &sheet); err != nil {
		c.Log.Error("payment-usecase", err.Error(), "loadSheet", userID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to decode payment sheet"
		return nil, errObj
	}
	return &sheet, nil
}

func (c *PaymentUseCase) saveSheet(ctx context.Context, userID string, sheet payment.Session) {
	encoded, err := json.Marshal(sheet)
	if err != nil {
		c.Log.Error("payment-usecase", err.Error(), "saveSheet", userID)
		return
	}
	if err := c.KV.Set(ctx, sheetKey(userID), string(encoded)); err != nil {
		c.Log.Error("payment-usecase", err.Error(), "saveSheet", userID)
	}
}

// OpenSheet starts (or restarts) the payment sheet; re-opening resets every
// transient field.
func (c *PaymentUseCase) OpenSheet(ctx context.Context, request *model.OpenPaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "OpenSheet", utils.ConvertString(request))
		return result
	}

	target := payment.Target{
		Kind:    request.Kind,
		Amount:  request.Amount,
		PayerID: request.UserID,
	}

	switch request.Kind {
	case payment.TargetRide:
		sess := c.Sessions.Session(ctx, request.UserID)
		snapshot := sess.Snapshot()
		if snapshot.ActiveRide == nil || snapshot.ActiveRide.RideID != request.RideID {
			errObj := httpError.NewNotFound()
			errObj.Message = "no matching ride to pay for"
			result.Error = errObj
			c.Log.Error("payment-usecase", errObj.Message, "OpenSheet", request.RideID)
			return result
		}
		target.RideID = request.RideID
		target.Amount = snapshot.ActiveRide.Price
	case payment.TargetSubscription:
		plans, out := c.Remote.GetSubscriptionPlans(ctx)
		if out.Failed() {
			result.Error = outcomeError(out)
			c.Log.Error("payment-usecase", fmt.Sprintf("failed to fetch plans: %v", out.Err), "OpenSheet", "")
			return result
		}
		found := false
		for _, plan := range plans {
			if plan.PlanID == request.PlanID {
				target.PlanID = plan.PlanID
				target.Amount = plan.Price
				found = true
				break
			}
		}
		if !found {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("plan %s not found", request.PlanID)
			result.Error = errObj
			return result
		}
		target.TransporterID = request.UserID
	}

	sheet := payment.Open(target)
	c.saveSheet(ctx, request.UserID, sheet)

	methods, out := c.Remote.GetPaymentMethods(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		c.Log.Error("payment-usecase", fmt.Sprintf("failed to fetch payment methods: %v", out.Err), "OpenSheet", "")
		return result
	}

	result.Data = &model.PaymentSheetResponse{Session: &sheet, Methods: methods}
	return result
}

func (c *PaymentUseCase) SelectMethod(ctx context.Context, request *model.SelectMethodRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SelectMethod", utils.ConvertString(request))
		return result
	}

	sheet, errObj := c.loadSheet(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	methods, out := c.Remote.GetPaymentMethods(ctx)
	if out.Failed() {
		result.Error = outcomeError(out)
		return result
	}
	var picked *payment.Method
	for i := range methods {
		if methods[i].ID == request.MethodID {
			picked = &methods[i]
			break
		}
	}
	if picked == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payment method %s not found", request.MethodID)
		result.Error = errObj
		return result
	}

	next, err := sheet.SelectMethod(*picked)
	if err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("payment-usecase", err.Error(), "SelectMethod", request.MethodID)
		return result
	}

	if picked.Type == payment.MethodTypeCard {
		initiated, out := c.Remote.InitiateCardPayment(ctx, next.Target, picked.ID)
		if out.Failed() {
			next = next.Fail()
			c.saveSheet(ctx, request.UserID, next)
			result.Error = outcomeError(out)
			c.Log.Error("payment-usecase", fmt.Sprintf("card initiation failed: %v", out.Err), "SelectMethod", picked.ID)
			return result
		}
		next = next.WithInitiated(initiated.TransactionID, initiated.PaymentURL)
	}

	c.saveSheet(ctx, request.UserID, next)
	result.Data = &model.PaymentSheetResponse{Session: &next}
	return result
}

func (c *PaymentUseCase) SubmitMobilePayment(ctx context.Context, request *model.MobilePaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "SubmitMobilePayment", utils.ConvertString(request))
		return result
	}

	sheet, errObj := c.loadSheet(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	next, err := sheet.SubmitPhone(request.PhoneNumber)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("payment-usecase", err.Error(), "SubmitMobilePayment", request.UserID)
		return result
	}

	methodID := ""
	if next.Method != nil {
		methodID = next.Method.ID
	}
	var initiated *model.InitiatePaymentResponse
	var out remote.Outcome
	if next.Target.Kind == payment.TargetRide {
		initiated, out = c.Remote.InitiateRidePayment(ctx, next.Target, methodID, next.PhoneNumber)
	} else {
		initiated, out = c.Remote.InitiateMobilePayment(ctx, next.Target, methodID, next.PhoneNumber)
	}
	if out.Failed() {
		next = next.Fail()
		c.saveSheet(ctx, request.UserID, next)
		result.Error = outcomeError(out)
		c.Log.Error("payment-usecase", fmt.Sprintf("mobile initiation failed: %v", out.Err), "SubmitMobilePayment", request.UserID)
		return result
	}

	next = next.WithInitiated(initiated.TransactionID, "")
	c.saveSheet(ctx, request.UserID, next)
	c.scheduleVerification(ctx, request.UserID, initiated.TransactionID)

	result.Data = &model.PaymentSheetResponse{Session: &next}
	return result
}

// scheduleVerification arms the confirmation delay between mobile-money
// initiation and verification.
func (c *PaymentUseCase) scheduleVerification(ctx context.Context, userID, transactionID string) {
	delay := c.Config.GetDuration("payment.confirm_delay")
	if delay == 0 {
		delay = 5 * time.Second
	}

	payload, err := json.Marshal(model.PaymentVerifyTaskPayload{UserID: userID, TransactionID: transactionID})
	if err != nil {
		c.Log.Error("payment-usecase", err.Error(), "scheduleVerification", userID)
		return
	}

	if c.AsynqClient == nil {
		c.Log.Info("payment-usecase", "task queue disabled, verifying inline", "scheduleVerification", transactionID)
		c.finishVerification(ctx, userID, transactionID)
		return
	}

	task := asynq.NewTask(model.TaskPaymentVerify, payload)
	if _, err := c.AsynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay)); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("failed to enqueue verification: %v", err), "scheduleVerification", transactionID)
	}
}

// HandlePaymentVerify is the asynq handler for the delayed verification.
func (c *PaymentUseCase) HandlePaymentVerify(ctx context.Context, task *asynq.Task) error {
	var payload model.PaymentVerifyTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("bad verify payload: %v", err), "HandlePaymentVerify", "")
		return err
	}
	c.finishVerification(ctx, payload.UserID, payload.TransactionID)
	return nil
}

// finishVerification asks the gateway for the transaction's fate and applies
// the result: subscriptions flip the session flag, ride payments release the
// tracked ride.
func (c *PaymentUseCase) finishVerification(ctx context.Context, userID, transactionID string) {
	sheet, errObj := c.loadSheet(ctx, userID)
	if errObj != nil {
		c.Log.Error("payment-usecase", errObj.Message, "finishVerification", userID)
		return
	}

	verification, out := c.Remote.VerifyPayment(ctx, transactionID)
	if out.Failed() || verification.Status != "completed" {
		c.Log.Error("payment-usecase", "payment not confirmed", "finishVerification", transactionID)
		c.saveSheet(ctx, userID, sheet.Fail())
		return
	}

	sess := c.Sessions.Session(ctx, userID)
	switch sheet.Target.Kind {
	case payment.TargetSubscription:
		sess.SetHasSubscription(ctx, true)
	case payment.TargetRide:
		if err := sess.SetActiveRide(ctx, nil); err != nil {
			c.Log.Error("payment-usecase", err.Error(), "finishVerification", transactionID)
		}
	}

	c.saveSheet(ctx, userID, sheet.Close())
	c.Log.Info("payment-usecase", "payment confirmed", "finishVerification", transactionID)
}

// ObserveNavigation watches the card redirect URLs the client reports while
// the external payment page is on screen.
func (c *PaymentUseCase) ObserveNavigation(ctx context.Context, request *model.PaymentNavigationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "ObserveNavigation", utils.ConvertString(request))
		return result
	}

	sheet, errObj := c.loadSheet(ctx, request.UserID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	next, signal := sheet.ObserveNavigation(request.URL)
	c.saveSheet(ctx, request.UserID, next)

	if signal == payment.SignalVerify {
		c.finishVerification(ctx, request.UserID, next.TransactionID)
		if refreshed, errObj := c.loadSheet(ctx, request.UserID); errObj == nil {
			next = *refreshed
		}
	}

	result.Data = &model.PaymentSheetResponse{Session: &next}
	return result
}

func (c *PaymentUseCase) GetSheet(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	sheet, errObj := c.loadSheet(ctx, userID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	result.Data = &model.PaymentSheetResponse{Session: sheet}
	return result
}

// CloseSheet destroys the in-flight payment session.
func (c *PaymentUseCase) CloseSheet(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	if err := c.KV.Delete(ctx, sheetKey(userID)); err != nil {
		c.Log.Error("payment-usecase", err.Error(), "CloseSheet", userID)
	}

	result.Data = map[string]string{"message": "payment sheet closed"}
	return result
}
