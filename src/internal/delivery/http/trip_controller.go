package http

import (
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TripController struct {
	Log     log.Log
	UseCase *usecase.TripUseCase
}

func NewTripController(useCase *usecase.TripUseCase, logger log.Log) *TripController {
	return &TripController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TripController) LogManualTrip(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.LogManualTripRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TripController.LogManualTrip", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.LogManualTrip(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Log Manual Trip", fiber.StatusCreated, ctx)
}

func (c *TripController) ListTrips(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ListTripsRequest{
		OwnerID:  auth.OwnerID,
		DriverID: ctx.Query("driverId"),
		Month:    ctx.Query("month"),
	}
	result := c.UseCase.ListTrips(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Trips", fiber.StatusOK, ctx)
}
