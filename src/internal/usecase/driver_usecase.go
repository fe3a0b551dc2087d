package usecase

import (
	"context"
	"fmt"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const lastSeenTTL = 24 * time.Hour

func fleetPositionsKey(ownerID string) string {
	return fmt.Sprintf("fleet:positions:%s", ownerID)
}

func lastSeenKey(ownerID string) string {
	return fmt.Sprintf("fleet:lastseen:%s", ownerID)
}

type DriverUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	DriverRepository *repository.DriverRepository
	Redis            redis.UniversalClient
}

func NewDriverUseCase(
	logger log.Log,
	validate *validator.Validate,
	driverRepository *repository.DriverRepository,
	redisClient redis.UniversalClient,
) *DriverUseCase {
	return &DriverUseCase{
		Log:              logger,
		Validate:         validate,
		DriverRepository: driverRepository,
		Redis:            redisClient,
	}
}

func (c *DriverUseCase) RegisterDriver(ctx context.Context, request *model.RegisterDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "RegisterDriver", utils.ConvertString(err))
		return result
	}

	if existing, err := c.DriverRepository.FindByMobile(ctx, request.MobileNumber); err == nil && existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("mobile number %s is already registered", request.MobileNumber)
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "RegisterDriver", "")
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to register driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("hash password: %v", err), "RegisterDriver", "")
		return result
	}

	driver := entity.Driver{
		DriverID:     uuid.NewString(),
		OwnerID:      request.OwnerID,
		FullName:     request.FullName,
		MobileNumber: request.MobileNumber,
		PasswordHash: string(hashed),
		Status:       entity.DriverActive,
	}
	if err := c.DriverRepository.CreateDriver(ctx, &driver); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to register driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("create driver: %v", err), "RegisterDriver", "")
		return result
	}

	c.Log.Info("driver-usecase", "driver registered", "RegisterDriver", driver.DriverID)
	result.Data = converter.DriverToResponse(&driver)
	return result
}

func (c *DriverUseCase) ListDrivers(ctx context.Context, ownerID string) utils.Result {
	var result utils.Result

	drivers, err := c.DriverRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list drivers"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("list drivers: %v", err), "ListDrivers", ownerID)
		return result
	}

	result.Data = converter.DriversToResponse(drivers)
	return result
}

// UpdateLocation stores the driver's latest ping in the owner's geo set. Only
// the most recent position per driver is kept.
func (c *DriverUseCase) UpdateLocation(ctx context.Context, request *model.UpdateLocationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "UpdateLocation", utils.ConvertString(err))
		return result
	}

	err := c.Redis.GeoAdd(ctx, fleetPositionsKey(request.OwnerID), &redis.GeoLocation{
		Name:      request.DriverID,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}).Err()
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update location"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("geoadd: %v", err), "UpdateLocation", request.DriverID)
		return result
	}

	seenKey := lastSeenKey(request.OwnerID)
	now := time.Now()
	if err := c.Redis.HSet(ctx, seenKey, request.DriverID, now.Format(time.RFC3339)).Err(); err != nil {
		c.Log.Error("driver-usecase", fmt.Sprintf("record last seen: %v", err), "UpdateLocation", request.DriverID)
	}
	c.Redis.Expire(ctx, seenKey, lastSeenTTL)

	result.Data = &model.DriverPositionResponse{
		DriverID:   request.DriverID,
		Latitude:   request.Latitude,
		Longitude:  request.Longitude,
		LastSeenAt: &now,
	}
	return result
}

// FleetPositions returns the last known position of every driver in the
// owner's fleet. Drivers that never pinged are omitted.
func (c *DriverUseCase) FleetPositions(ctx context.Context, request *model.FleetPositionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "FleetPositions", utils.ConvertString(err))
		return result
	}

	drivers, err := c.DriverRepository.ListByOwner(ctx, request.OwnerID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list fleet positions"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("list drivers: %v", err), "FleetPositions", request.OwnerID)
		return result
	}

	if len(drivers) == 0 {
		result.Data = []model.DriverPositionResponse{}
		return result
	}

	names := make([]string, 0, len(drivers))
	for _, d := range drivers {
		names = append(names, d.DriverID)
	}

	positions, err := c.Redis.GeoPos(ctx, fleetPositionsKey(request.OwnerID), names...).Result()
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list fleet positions"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("geopos: %v", err), "FleetPositions", request.OwnerID)
		return result
	}

	lastSeen, err := c.Redis.HGetAll(ctx, lastSeenKey(request.OwnerID)).Result()
	if err != nil {
		c.Log.Error("driver-usecase", fmt.Sprintf("load last seen: %v", err), "FleetPositions", request.OwnerID)
		lastSeen = map[string]string{}
	}

	responses := make([]model.DriverPositionResponse, 0, len(drivers))
	for i, d := range drivers {
		if i >= len(positions) || positions[i] == nil {
			continue
		}
		resp := model.DriverPositionResponse{
			DriverID:  d.DriverID,
			FullName:  d.FullName,
			Latitude:  positions[i].Latitude,
			Longitude: positions[i].Longitude,
		}
		if raw, ok := lastSeen[d.DriverID]; ok {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				resp.LastSeenAt = &ts
			}
		}
		responses = append(responses, resp)
	}

	result.Data = responses
	return result
}
