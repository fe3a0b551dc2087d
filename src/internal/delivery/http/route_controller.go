package http

import (
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RouteController struct {
	Log     log.Log
	UseCase *usecase.RouteUseCase
}

func NewRouteController(useCase *usecase.RouteUseCase, logger log.Log) *RouteController {
	return &RouteController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RouteController) CreateRoute(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateRouteRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RouteController.CreateRoute", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.CreateRoute(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Route", fiber.StatusCreated, ctx)
}

func (c *RouteController) ListRoutes(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ListRoutesRequest{
		OwnerID: auth.OwnerID,
	}
	result := c.UseCase.ListRoutes(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Routes", fiber.StatusOK, ctx)
}
