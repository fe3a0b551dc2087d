package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/gateway/insight"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/payout"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	TypeInsightGenerate = "insight:generate"

	summaryCacheTTL = 15 * time.Minute
	insightCacheTTL = 24 * time.Hour
	pastMonthWindow = 6
)

func summaryCacheKey(ownerID, driverID, month string) string {
	return fmt.Sprintf("PAYOUT:SUMMARY:%s:%s:%s", ownerID, driverID, month)
}

func insightCacheKey(ownerID, driverID, month string) string {
	return fmt.Sprintf("PAYOUT:INSIGHTS:%s:%s:%s", ownerID, driverID, month)
}

type insightTaskPayload struct {
	OwnerID  string `json:"ownerId"`
	DriverID string `json:"driverId"`
	Month    string `json:"month"`
}

type PayoutUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	SlabRepository   *repository.SlabRepository
	TripRepository   *repository.TripRepository
	DriverRepository *repository.DriverRepository
	Redis            redis.UniversalClient
	AsynqClient      *asynq.Client
	Insight          *insight.Client
}

func NewPayoutUseCase(
	logger log.Log,
	validate *validator.Validate,
	slabRepository *repository.SlabRepository,
	tripRepository *repository.TripRepository,
	driverRepository *repository.DriverRepository,
	redisClient redis.UniversalClient,
	asynqClient *asynq.Client,
	insightClient *insight.Client,
) *PayoutUseCase {
	return &PayoutUseCase{
		Log:              logger,
		Validate:         validate,
		SlabRepository:   slabRepository,
		TripRepository:   tripRepository,
		DriverRepository: driverRepository,
		Redis:            redisClient,
		AsynqClient:      asynqClient,
		Insight:          insightClient,
	}
}

func (c *PayoutUseCase) ListSlabs(ctx context.Context, ownerID string) utils.Result {
	var result utils.Result

	slabs, err := c.SlabRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list payout slabs"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("list slabs: %v", err), "ListSlabs", ownerID)
		return result
	}

	responses := make([]model.SlabResponse, 0, len(slabs))
	for _, s := range slabs {
		responses = append(responses, model.SlabResponse{
			MinTrips:     s.MinTrips,
			MaxTrips:     s.MaxTrips,
			PayoutAmount: s.PayoutAmount,
		})
	}
	result.Data = responses
	return result
}

// ReplaceSlabs swaps the owner's slab table wholesale. Overlapping ranges are
// accepted as stored; the matcher resolves overlaps at lookup time.
func (c *PayoutUseCase) ReplaceSlabs(ctx context.Context, request *model.ReplaceSlabsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "ReplaceSlabs", utils.ConvertString(err))
		return result
	}

	slabs := make([]entity.PayoutSlab, 0, len(request.Slabs))
	for _, in := range request.Slabs {
		slabs = append(slabs, entity.PayoutSlab{
			OwnerID:      request.OwnerID,
			MinTrips:     in.MinTrips,
			MaxTrips:     in.MaxTrips,
			PayoutAmount: in.PayoutAmount,
		})
	}

	if err := c.SlabRepository.ReplaceForOwner(ctx, request.OwnerID, slabs); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to replace payout slabs"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("replace slabs: %v", err), "ReplaceSlabs", request.OwnerID)
		return result
	}

	c.invalidateOwnerSummaries(ctx, request.OwnerID)
	c.Log.Info("payout-usecase", fmt.Sprintf("slab table replaced with %d slabs", len(slabs)), "ReplaceSlabs", request.OwnerID)

	return c.ListSlabs(ctx, request.OwnerID)
}

// MonthlySummary aggregates a driver's trips for one calendar month and prices
// them against the owner's slab table. Results are cached briefly since the
// owner dashboard polls this endpoint.
func (c *PayoutUseCase) MonthlySummary(ctx context.Context, request *model.PayoutSummaryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "MonthlySummary", utils.ConvertString(err))
		return result
	}

	cacheKey := summaryCacheKey(request.OwnerID, request.DriverID, request.Month)
	if cached, err := c.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var response model.PayoutSummaryResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			result.Data = &response
			return result
		}
	}

	response, errObj := c.buildSummary(ctx, request.OwnerID, request.DriverID, request.Month)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if raw, err := json.Marshal(response); err == nil {
		if err := c.Redis.Set(ctx, cacheKey, raw, summaryCacheTTL).Err(); err != nil {
			c.Log.Error("payout-usecase", fmt.Sprintf("cache summary: %v", err), "MonthlySummary", cacheKey)
		}
	}

	result.Data = response
	return result
}

// GenerateInsights enqueues background insight generation for the driver's
// month. The HTTP caller gets an immediate accepted response; results land in
// the cache for GetInsights to pick up.
func (c *PayoutUseCase) GenerateInsights(ctx context.Context, request *model.GenerateInsightsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GenerateInsights", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil || driver.OwnerID != request.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", request.DriverID)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GenerateInsights", utils.ConvertString(err))
		return result
	}

	payloadBytes, err := json.Marshal(insightTaskPayload{
		OwnerID:  request.OwnerID,
		DriverID: request.DriverID,
		Month:    request.Month,
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to enqueue insight generation"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("marshal task payload: %v", err), "GenerateInsights", "")
		return result
	}

	task := asynq.NewTask(TypeInsightGenerate, payloadBytes)
	if _, err := c.AsynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to enqueue insight generation"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("enqueue insight task: %v", err), "GenerateInsights", request.DriverID)
		return result
	}

	c.Log.Info("payout-usecase", "insight generation enqueued", "GenerateInsights", request.DriverID)
	result.Data = map[string]string{
		"driverId": request.DriverID,
		"month":    request.Month,
		"status":   "queued",
	}
	return result
}

// HandleGenerateInsights is the asynq handler behind GenerateInsights. Any
// collaborator failure degrades to an empty suggestion list, never an error
// surfaced to the caller.
func (c *PayoutUseCase) HandleGenerateInsights(ctx context.Context, task *asynq.Task) error {
	var payloadData insightTaskPayload
	if err := json.Unmarshal(task.Payload(), &payloadData); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("bad task payload: %v", err), "HandleGenerateInsights", "")
		return fmt.Errorf("unmarshal insight task payload: %w: %v", asynq.SkipRetry, err)
	}

	insightPayload, err := c.buildInsightPayload(ctx, payloadData.OwnerID, payloadData.DriverID, payloadData.Month)
	if err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("build insight payload: %v", err), "HandleGenerateInsights", payloadData.DriverID)
		return err
	}

	suggestions := c.Insight.Suggest(ctx, *insightPayload)

	response := model.InsightsResponse{
		DriverID:    payloadData.DriverID,
		Month:       payloadData.Month,
		Suggestions: suggestions,
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return err
	}

	cacheKey := insightCacheKey(payloadData.OwnerID, payloadData.DriverID, payloadData.Month)
	if err := c.Redis.Set(ctx, cacheKey, raw, insightCacheTTL).Err(); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("store insights: %v", err), "HandleGenerateInsights", cacheKey)
		return err
	}

	c.Log.Info("payout-usecase", fmt.Sprintf("stored %d suggestions", len(suggestions)), "HandleGenerateInsights", payloadData.DriverID)
	return nil
}

func (c *PayoutUseCase) GetInsights(ctx context.Context, request *model.GetInsightsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GetInsights", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil || driver.OwnerID != request.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", request.DriverID)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "GetInsights", utils.ConvertString(err))
		return result
	}

	cacheKey := insightCacheKey(request.OwnerID, request.DriverID, request.Month)
	cached, err := c.Redis.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "no insights generated for this driver and month"
		result.Error = errObj
		return result
	}
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load insights"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("load insights: %v", err), "GetInsights", cacheKey)
		return result
	}

	var response model.InsightsResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load insights"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("decode insights: %v", err), "GetInsights", cacheKey)
		return result
	}

	result.Data = &response
	return result
}

func (c *PayoutUseCase) buildSummary(ctx context.Context, ownerID, driverID, month string) (*model.PayoutSummaryResponse, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid month %q, expected YYYY-MM", month)
		return nil, errObj
	}

	driver, err := c.DriverRepository.FindByID(ctx, driverID)
	if err != nil || driver.OwnerID != ownerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", driverID)
		return nil, errObj
	}

	trips, err := c.TripRepository.ListForMonth(ctx, ownerID, driverID, monthStart)
	if err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("list trips: %v", err), "buildSummary", driverID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to compute payout summary"
		return nil, errObj
	}

	agg, err := payout.AggregateMonth(driverID, converter.TripsToEntries(trips), month)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return nil, errObj
	}

	slabs, err := c.SlabRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("list slabs: %v", err), "buildSummary", ownerID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to compute payout summary"
		return nil, errObj
	}

	summary := payout.ComputePayout(agg.TotalTrips, converter.SlabsToCore(slabs))
	return converter.SummaryToResponse(agg, summary), nil
}

func (c *PayoutUseCase) buildInsightPayload(ctx context.Context, ownerID, driverID, month string) (*model.InsightPayload, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	trips, err := c.TripRepository.ListForMonth(ctx, ownerID, driverID, monthStart)
	if err != nil {
		return nil, err
	}

	agg, err := payout.AggregateMonth(driverID, converter.TripsToEntries(trips), month)
	if err != nil {
		return nil, err
	}

	slabs, err := c.SlabRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	coreSlabs := converter.SlabsToCore(slabs)
	summary := payout.ComputePayout(agg.TotalTrips, coreSlabs)

	since := monthStart.AddDate(0, -pastMonthWindow, 0)
	totals, err := c.TripRepository.MonthTotals(ctx, ownerID, driverID, since)
	if err != nil {
		return nil, err
	}

	pastSummaries := make([]model.MonthSummary, 0, pastMonthWindow)
	for i := pastMonthWindow; i >= 1; i-- {
		key := monthStart.AddDate(0, -i, 0).Format("2006-01")
		total, ok := totals[key]
		if !ok {
			continue
		}
		pastSummaries = append(pastSummaries, model.MonthSummary{
			Month:      key,
			TotalTrips: total,
			Payout:     payout.ComputePayout(total, coreSlabs).EstimatedPayout,
		})
	}

	insightPayload := &model.InsightPayload{
		DriverID:                driverID,
		CurrentMonthTotalTrips:  summary.TotalTrips,
		CurrentSlabDescription:  converter.SlabDescription(summary.Current),
		EstimatedPayout:         summary.EstimatedPayout,
		NextSlabDescription:     converter.SlabDescription(summary.Next),
		CurrentMonthTripEntries: converter.TripsToResponse(trips),
		PastMonthSummaries:      pastSummaries,
	}
	if summary.Next != nil {
		needed := summary.TripsNeeded
		insightPayload.TripsNeededForNextSlab = &needed
	}
	return insightPayload, nil
}

// invalidateOwnerSummaries drops every cached summary for the owner after a
// slab change, since all months reprice.
func (c *PayoutUseCase) invalidateOwnerSummaries(ctx context.Context, ownerID string) {
	pattern := fmt.Sprintf("PAYOUT:SUMMARY:%s:*", ownerID)
	iter := c.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			c.Log.Error("payout-usecase", fmt.Sprintf("invalidate summary cache: %v", err), "invalidateOwnerSummaries", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("scan summary cache: %v", err), "invalidateOwnerSummaries", pattern)
	}
}
