package http

import (
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DriverController struct {
	Log     log.Log
	UseCase *usecase.DriverUseCase
}

func NewDriverController(useCase *usecase.DriverUseCase, logger log.Log) *DriverController {
	return &DriverController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DriverController) RegisterDriver(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.RegisterDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.RegisterDriver", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.RegisterDriver(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Register Driver", fiber.StatusCreated, ctx)
}

func (c *DriverController) ListDrivers(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	result := c.UseCase.ListDrivers(ctx.Context(), auth.OwnerID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Drivers", fiber.StatusOK, ctx)
}

func (c *DriverController) UpdateLocation(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.UpdateLocationRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.UpdateLocation", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = auth.UserID
	request.OwnerID = auth.OwnerID
	result := c.UseCase.UpdateLocation(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Location", fiber.StatusOK, ctx)
}

func (c *DriverController) FleetPositions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.FleetPositionsRequest{
		OwnerID: auth.OwnerID,
	}
	result := c.UseCase.FleetPositions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Fleet Positions", fiber.StatusOK, ctx)
}
