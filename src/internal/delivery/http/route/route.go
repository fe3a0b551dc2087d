package route

import (
	"fleet-service/src/internal/delivery/http"
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthController         *http.AuthController
	DriverController       *http.DriverController
	RouteController        *http.RouteController
	JobController          *http.JobController
	TripController         *http.TripController
	PayoutController       *http.PayoutController
	AuthMiddleware         fiber.Handler
	SubscriptionMiddleware fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupAuthRoute()
	c.SetupDriverRoute()
	c.SetupOwnerRoute()
	c.SetupSharedRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Post("/auth/v1/owners/register", c.AuthController.RegisterOwner)
	c.App.Post("/auth/v1/login", c.AuthController.Login)
}

// SetupDriverRoute registers everything a driver token may call. Drivers skip
// the subscription gate since billing is the owner's concern.
func (c *RouteConfig) SetupDriverRoute() {
	driverOnly := middleware.RequireRole(token.RoleDriver)
	c.App.Post("/jobs/v1/request", c.AuthMiddleware, driverOnly, c.JobController.RequestJob)
	c.App.Post("/jobs/v1/:jobId/events", c.AuthMiddleware, driverOnly, c.JobController.LogStopAction)
	c.App.Post("/jobs/v1/:jobId/complete", c.AuthMiddleware, driverOnly, c.JobController.CompleteJob)
	c.App.Post("/drivers/v1/location", c.AuthMiddleware, driverOnly, c.DriverController.UpdateLocation)
}

func (c *RouteConfig) SetupOwnerRoute() {
	ownerOnly := middleware.RequireRole(token.RoleOwner)
	subscribed := c.SubscriptionMiddleware

	c.App.Post("/drivers/v1", c.AuthMiddleware, ownerOnly, subscribed, c.DriverController.RegisterDriver)
	c.App.Get("/drivers/v1", c.AuthMiddleware, ownerOnly, subscribed, c.DriverController.ListDrivers)
	c.App.Get("/drivers/v1/positions", c.AuthMiddleware, ownerOnly, subscribed, c.DriverController.FleetPositions)

	c.App.Post("/routes/v1", c.AuthMiddleware, ownerOnly, subscribed, c.RouteController.CreateRoute)
	c.App.Get("/routes/v1", c.AuthMiddleware, ownerOnly, subscribed, c.RouteController.ListRoutes)

	c.App.Post("/jobs/v1", c.AuthMiddleware, ownerOnly, subscribed, c.JobController.AssignJob)
	c.App.Post("/jobs/v1/:jobId/approve", c.AuthMiddleware, ownerOnly, subscribed, c.JobController.ApproveJob)

	c.App.Post("/trips/v1", c.AuthMiddleware, ownerOnly, subscribed, c.TripController.LogManualTrip)
	c.App.Get("/trips/v1", c.AuthMiddleware, ownerOnly, subscribed, c.TripController.ListTrips)

	c.App.Get("/payout/v1/slabs", c.AuthMiddleware, ownerOnly, subscribed, c.PayoutController.ListSlabs)
	c.App.Put("/payout/v1/slabs", c.AuthMiddleware, ownerOnly, subscribed, c.PayoutController.ReplaceSlabs)
	c.App.Get("/payout/v1/summary", c.AuthMiddleware, ownerOnly, subscribed, c.PayoutController.MonthlySummary)
	c.App.Post("/payout/v1/insights", c.AuthMiddleware, ownerOnly, subscribed, c.PayoutController.GenerateInsights)
	c.App.Get("/payout/v1/insights", c.AuthMiddleware, ownerOnly, subscribed, c.PayoutController.GetInsights)
}

// SetupSharedRoute holds job reads: owners watch their fleet, drivers watch
// their own work. ListJobs scopes by the token role.
func (c *RouteConfig) SetupSharedRoute() {
	c.App.Get("/jobs/v1/:jobId", c.AuthMiddleware, c.JobController.GetJob)
	c.App.Get("/jobs/v1", c.AuthMiddleware, c.JobController.ListJobs)
}
