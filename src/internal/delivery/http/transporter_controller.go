package http

import (
	"tchukudu-service/src/internal/delivery/http/middleware"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/usecase"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TransporterController struct {
	Log     log.Log
	UseCase *usecase.TransporterUseCase
}

func NewTransporterController(useCase *usecase.TransporterUseCase, logger log.Log) *TransporterController {
	return &TransporterController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TransporterController) Register(ctx *fiber.Ctx) error {
	request := new(model.TransporterRegisterRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Register Transporter", fiber.StatusCreated, ctx)
}

func (c *TransporterController) Login(ctx *fiber.Ctx) error {
	request := new(model.TransporterLoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login Transporter", fiber.StatusOK, ctx)
}

func (c *TransporterController) SaveVehicle(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SaveVehicleRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.SaveVehicle", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SaveVehicle(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Save Vehicle", fiber.StatusOK, ctx)
}

func (c *TransporterController) SubscriptionPlans(ctx *fiber.Ctx) error {
	result := c.UseCase.SubscriptionPlans(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Subscription Plans", fiber.StatusOK, ctx)
}

func (c *TransporterController) SetAvailability(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.AvailabilityRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.SetAvailability", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SetAvailability(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Set Availability", fiber.StatusOK, ctx)
}

func (c *TransporterController) PendingOffer(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	result := c.UseCase.PendingOffer(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pending Offer", fiber.StatusOK, ctx)
}

func (c *TransporterController) AcceptOffer(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.OfferDecisionRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.AcceptOffer", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.AcceptOffer(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Accept Offer", fiber.StatusOK, ctx)
}

func (c *TransporterController) DeclineOffer(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.OfferDecisionRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.DeclineOffer", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.DeclineOffer(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Decline Offer", fiber.StatusOK, ctx)
}

func (c *TransporterController) CompleteRide(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CompleteRideRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransporterController.CompleteRide", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.CompleteRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Complete Ride", fiber.StatusOK, ctx)
}

func (c *TransporterController) Earnings(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.EarningsRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.Earnings(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Earnings", fiber.StatusOK, ctx)
}
