package http

import (
	"tchukudu-service/src/internal/delivery/http/middleware"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/usecase"
	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) OpenSheet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.OpenPaymentRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.OpenSheet", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.OpenSheet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Open Payment Sheet", fiber.StatusOK, ctx)
}

func (c *PaymentController) SelectMethod(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SelectMethodRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.SelectMethod", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SelectMethod(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Select Payment Method", fiber.StatusOK, ctx)
}

func (c *PaymentController) SubmitMobilePayment(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.MobilePaymentRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.SubmitMobilePayment", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SubmitMobilePayment(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Submit Mobile Payment", fiber.StatusOK, ctx)
}

func (c *PaymentController) ObserveNavigation(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.PaymentNavigationRequest)
	request.UserID = auth.UserID
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.ObserveNavigation", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ObserveNavigation(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Observe Payment Navigation", fiber.StatusOK, ctx)
}

func (c *PaymentController) GetSheet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	result := c.UseCase.GetSheet(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Payment Sheet", fiber.StatusOK, ctx)
}

func (c *PaymentController) CloseSheet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	result := c.UseCase.CloseSheet(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Close Payment Sheet", fiber.StatusOK, ctx)
}
