package http

import (
	"tchukudu-service/src/internal/delivery/http/middleware"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/usecase"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ClientController struct {
	Log     log.Log
	UseCase *usecase.ClientUseCase
}

func NewClientController(useCase *usecase.ClientUseCase, logger log.Log) *ClientController {
	return &ClientController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ClientController) SendOTP(ctx *fiber.Ctx) error {
	request := new(model.SendOTPRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.SendOTP", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SendOTP(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Send OTP", fiber.StatusOK, ctx)
}

func (c *ClientController) VerifyOTP(ctx *fiber.Ctx) error {
	request := new(model.VerifyOTPRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.VerifyOTP", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.VerifyOTP(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Verify OTP", fiber.StatusOK, ctx)
}

func (c *ClientController) ChooseVehicleType(ctx *fiber.Ctx) error {
	request := new(model.VehicleTypeStepRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.ChooseVehicleType", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ChooseVehicleType(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Choose Vehicle Type", fiber.StatusOK, ctx)
}

func (c *ClientController) ChooseServiceType(ctx *fiber.Ctx) error {
	request := new(model.ServiceTypeStepRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.ChooseServiceType", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ChooseServiceType(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Choose Service Type", fiber.StatusOK, ctx)
}

func (c *ClientController) ChooseTransportType(ctx *fiber.Ctx) error {
	request := new(model.TransportTypeStepRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.ChooseTransportType", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ChooseTransportType(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Choose Transport Type", fiber.StatusOK, ctx)
}

func (c *ClientController) ChooseLocations(ctx *fiber.Ctx) error {
	request := new(model.LocationStepRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.ChooseLocations", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ChooseLocations(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Choose Locations", fiber.StatusOK, ctx)
}

func (c *ClientController) SearchTransporters(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SearchTransportersRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.SearchTransporters", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SearchTransporters(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Search Transporters", fiber.StatusOK, ctx)
}

func (c *ClientController) BookRide(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.BookRideRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.BookRide", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.BookRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Book Ride", fiber.StatusCreated, ctx)
}

func (c *ClientController) TrackRide(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.TrackRideRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.TrackRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Track Ride", fiber.StatusOK, ctx)
}

func (c *ClientController) CancelRide(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CancelRideRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.CancelRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cancel Ride", fiber.StatusOK, ctx)
}

func (c *ClientController) RideHistory(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.RideHistoryRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.RideHistory(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Ride History", fiber.StatusOK, ctx)
}

func (c *ClientController) SubmitRating(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SubmitRatingRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ClientController.SubmitRating", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SubmitRating(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Submit Rating", fiber.StatusOK, ctx)
}

func (c *ClientController) Logout(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.LogoutRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.Logout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}
