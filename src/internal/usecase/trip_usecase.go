package usecase

import (
	"context"
	"fmt"
	"time"

	"fleet-service/src/internal/gateway/messaging"
	"fleet-service/src/internal/job"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

type TripUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	TripRepository   *repository.TripRepository
	DriverRepository *repository.DriverRepository
	Redis            redis.UniversalClient
	JobProducer      *messaging.JobProducer
}

func NewTripUseCase(
	logger log.Log,
	validate *validator.Validate,
	tripRepository *repository.TripRepository,
	driverRepository *repository.DriverRepository,
	redisClient redis.UniversalClient,
	jobProducer *messaging.JobProducer,
) *TripUseCase {
	return &TripUseCase{
		Log:              logger,
		Validate:         validate,
		TripRepository:   tripRepository,
		DriverRepository: driverRepository,
		Redis:            redisClient,
		JobProducer:      jobProducer,
	}
}

// LogManualTrip records a trip with no backing job, for deliveries done off
// the dispatch flow.
func (c *TripUseCase) LogManualTrip(ctx context.Context, request *model.LogManualTripRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("trip-usecase", errObj.Message, "LogManualTrip", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil || driver.OwnerID != request.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", request.DriverID)
		result.Error = errObj
		c.Log.Error("trip-usecase", errObj.Message, "LogManualTrip", utils.ConvertString(err))
		return result
	}

	trip := job.BuildManualTrip(request.OwnerID, request.DriverID, request.RouteID,
		request.TripType, request.Count, request.Date)
	if err := c.TripRepository.InsertTrip(ctx, &trip); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to record trip"
		result.Error = errObj
		c.Log.Error("trip-usecase", fmt.Sprintf("insert trip: %v", err), "LogManualTrip", "")
		return result
	}

	if err := c.JobProducer.SendTripRecorded(converter.TripToEvent(&trip)); err != nil {
		c.Log.Error("trip-usecase", fmt.Sprintf("publish trip-recorded: %v", err), "LogManualTrip", trip.TripID)
	}

	key := summaryCacheKey(trip.OwnerID, trip.DriverID, trip.TripDate.Format("2006-01"))
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("trip-usecase", fmt.Sprintf("invalidate summary cache: %v", err), "LogManualTrip", key)
	}

	c.Log.Info("trip-usecase", "manual trip recorded", "LogManualTrip", trip.TripID)
	result.Data = converter.TripToResponse(&trip)
	return result
}

func (c *TripUseCase) ListTrips(ctx context.Context, request *model.ListTripsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("trip-usecase", errObj.Message, "ListTrips", utils.ConvertString(err))
		return result
	}

	monthStart, err := time.ParseInLocation("2006-01", request.Month, time.Local)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid month %q, expected YYYY-MM", request.Month)
		result.Error = errObj
		c.Log.Error("trip-usecase", errObj.Message, "ListTrips", "")
		return result
	}

	trips, err := c.TripRepository.ListForMonth(ctx, request.OwnerID, request.DriverID, monthStart)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list trips"
		result.Error = errObj
		c.Log.Error("trip-usecase", fmt.Sprintf("list trips: %v", err), "ListTrips", "")
		return result
	}

	result.Data = converter.TripsToResponse(trips)
	return result
}
