package http

import (
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PayoutController struct {
	Log     log.Log
	UseCase *usecase.PayoutUseCase
}

func NewPayoutController(useCase *usecase.PayoutUseCase, logger log.Log) *PayoutController {
	return &PayoutController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PayoutController) ListSlabs(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	result := c.UseCase.ListSlabs(ctx.Context(), auth.OwnerID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Payout Slabs", fiber.StatusOK, ctx)
}

func (c *PayoutController) ReplaceSlabs(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.ReplaceSlabsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PayoutController.ReplaceSlabs", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.ReplaceSlabs(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Replace Payout Slabs", fiber.StatusOK, ctx)
}

func (c *PayoutController) MonthlySummary(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.PayoutSummaryRequest{
		OwnerID:  auth.OwnerID,
		DriverID: ctx.Query("driverId"),
		Month:    ctx.Query("month"),
	}
	result := c.UseCase.MonthlySummary(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Monthly Payout Summary", fiber.StatusOK, ctx)
}

func (c *PayoutController) GenerateInsights(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.GenerateInsightsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PayoutController.GenerateInsights", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.GenerateInsights(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Generate Insights", fiber.StatusAccepted, ctx)
}

func (c *PayoutController) GetInsights(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetInsightsRequest{
		OwnerID:  auth.OwnerID,
		DriverID: ctx.Query("driverId"),
		Month:    ctx.Query("month"),
	}
	result := c.UseCase.GetInsights(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Insights", fiber.StatusOK, ctx)
}
