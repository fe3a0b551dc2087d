package http

import (
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/token"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type JobController struct {
	Log     log.Log
	UseCase *usecase.JobUseCase
}

func NewJobController(useCase *usecase.JobUseCase, logger log.Log) *JobController {
	return &JobController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *JobController) AssignJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.AssignJobRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.AssignJob", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OwnerID = auth.OwnerID
	result := c.UseCase.AssignJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Assign Job", fiber.StatusCreated, ctx)
}

func (c *JobController) RequestJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.RequestJobRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.RequestJob", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = auth.UserID
	result := c.UseCase.RequestJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Request Job", fiber.StatusCreated, ctx)
}

func (c *JobController) ApproveJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ApproveJobRequest{
		OwnerID: auth.OwnerID,
		JobID:   ctx.Params("jobId"),
	}
	result := c.UseCase.ApproveJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Approve Job", fiber.StatusOK, ctx)
}

func (c *JobController) LogStopAction(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.LogStopActionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.LogStopAction", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = auth.UserID
	request.JobID = ctx.Params("jobId")
	result := c.UseCase.LogStopAction(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Log Stop Action", fiber.StatusOK, ctx)
}

func (c *JobController) CompleteJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CompleteJobRequest{
		DriverID: auth.UserID,
		JobID:    ctx.Params("jobId"),
	}
	result := c.UseCase.CompleteJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Complete Job", fiber.StatusOK, ctx)
}

func (c *JobController) GetJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetJobRequest{
		JobID: ctx.Params("jobId"),
	}
	if auth.Role == token.RoleOwner {
		request.OwnerID = auth.OwnerID
	} else {
		request.DriverID = auth.UserID
	}
	result := c.UseCase.GetJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Job", fiber.StatusOK, ctx)
}

// ListJobs scopes the listing by the caller's role: owners see their fleet's
// jobs, drivers see their own.
func (c *JobController) ListJobs(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ListJobsRequest{
		Status: ctx.Query("status"),
	}
	if auth.Role == token.RoleOwner {
		request.OwnerID = auth.OwnerID
		request.DriverID = ctx.Query("driverId")
	} else {
		request.DriverID = auth.UserID
	}
	result := c.UseCase.ListJobs(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Jobs", fiber.StatusOK, ctx)
}
