package route

import (
	"tchukudu-service/src/internal/delivery/http"
	"tchukudu-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                   *fiber.App
	ClientController      *http.ClientController
	TransporterController *http.TransporterController
	PaymentController     *http.PaymentController
	AuthMiddleware        fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPublicRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupPublicRoute() {
	c.App.Post("/auth/v1/otp/send", c.ClientController.SendOTP)
	c.App.Post("/auth/v1/otp/verify", c.ClientController.VerifyOTP)
	c.App.Post("/auth/v1/transporters/register", c.TransporterController.Register)
	c.App.Post("/auth/v1/transporters/login", c.TransporterController.Login)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Post("/auth/v1/logout", c.ClientController.Logout)

	c.App.Post("/bookings/v1/vehicle-type", c.ClientController.ChooseVehicleType)
	c.App.Post("/bookings/v1/service-type", c.ClientController.ChooseServiceType)
	c.App.Post("/bookings/v1/transport-type", c.ClientController.ChooseTransportType)
	c.App.Post("/bookings/v1/locations", c.ClientController.ChooseLocations)
	c.App.Post("/bookings/v1/search", c.ClientController.SearchTransporters)
	c.App.Post("/bookings/v1/book", c.ClientController.BookRide)

	c.App.Get("/rides/v1/track", c.ClientController.TrackRide)
	c.App.Post("/rides/v1/cancel", c.ClientController.CancelRide)
	c.App.Get("/rides/v1/history", c.ClientController.RideHistory)
	c.App.Post("/rides/v1/rating", c.ClientController.SubmitRating)

	c.App.Post("/transporters/v1/vehicle", c.TransporterController.SaveVehicle)
	c.App.Get("/transporters/v1/plans", c.TransporterController.SubscriptionPlans)
	c.App.Post("/transporters/v1/availability", c.TransporterController.SetAvailability)
	c.App.Get("/transporters/v1/offers", c.TransporterController.PendingOffer)
	c.App.Post("/transporters/v1/offers/accept", c.TransporterController.AcceptOffer)
	c.App.Post("/transporters/v1/offers/decline", c.TransporterController.DeclineOffer)
	c.App.Post("/transporters/v1/rides/complete", c.TransporterController.CompleteRide)
	c.App.Get("/transporters/v1/earnings", c.TransporterController.Earnings)

	c.App.Post("/payments/v1/open", c.PaymentController.OpenSheet)
	c.App.Post("/payments/v1/method", c.PaymentController.SelectMethod)
	c.App.Post("/payments/v1/mobile", c.PaymentController.SubmitMobilePayment)
	c.App.Post("/payments/v1/navigation", c.PaymentController.ObserveNavigation)
	c.App.Get("/payments/v1/sheet", c.PaymentController.GetSheet)
	c.App.Delete("/payments/v1/sheet", c.PaymentController.CloseSheet)
}
