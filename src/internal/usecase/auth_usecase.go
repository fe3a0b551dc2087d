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
	"fleet-service/src/pkg/token"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	Config           *viper.Viper
	OwnerRepository  *repository.OwnerRepository
	DriverRepository *repository.DriverRepository
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	cfg *viper.Viper,
	ownerRepository *repository.OwnerRepository,
	driverRepository *repository.DriverRepository,
) *AuthUseCase {
	return &AuthUseCase{
		Log:              logger,
		Validate:         validate,
		Config:           cfg,
		OwnerRepository:  ownerRepository,
		DriverRepository: driverRepository,
	}
}

func (c *AuthUseCase) RegisterOwner(ctx context.Context, request *model.RegisterOwnerRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "RegisterOwner", utils.ConvertString(err))
		return result
	}

	if existing, _ := c.OwnerRepository.FindByEmail(ctx, request.Email); existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("owner with email %s already registered", request.Email)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "RegisterOwner", "")
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to hash password"
		result.Error = errObj
		c.Log.Error("auth-usecase", fmt.Sprintf("bcrypt error: %v", err), "RegisterOwner", "")
		return result
	}

	owner := &entity.Owner{
		OwnerID:      uuid.NewString(),
		FullName:     request.FullName,
		Email:        request.Email,
		MobileNumber: request.MobileNumber,
		PasswordHash: string(hash),
	}
	if err := c.OwnerRepository.CreateOwner(ctx, owner); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create owner"
		result.Error = errObj
		c.Log.Error("auth-usecase", fmt.Sprintf("create owner: %v", err), "RegisterOwner", "")
		return result
	}

	trialDays := c.Config.GetInt("subscription.trial_days")
	if trialDays <= 0 {
		trialDays = 14
	}
	sub := &entity.Subscription{
		OwnerID:          owner.OwnerID,
		Plan:             "trial",
		Status:           entity.SubscriptionTrial,
		CurrentPeriodEnd: time.Now().AddDate(0, 0, trialDays),
	}
	if err := c.OwnerRepository.UpsertSubscription(ctx, sub); err != nil {
		c.Log.Error("auth-usecase", fmt.Sprintf("failed to start trial subscription: %v", err), "RegisterOwner", owner.OwnerID)
	}

	c.Log.Info("auth-usecase", "owner registered", "RegisterOwner", owner.OwnerID)
	result.Data = converter.OwnerToResponse(owner)
	return result
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", utils.ConvertString(err))
		return result
	}

	var metadata token.Metadata
	var passwordHash string

	switch request.Role {
	case token.RoleOwner:
		owner, err := c.OwnerRepository.FindByEmail(ctx, request.Identifier)
		if err != nil {
			result.Error = invalidCredentials()
			c.Log.Error("auth-usecase", "owner not found", "Login", request.Identifier)
			return result
		}
		metadata = token.Metadata{
			UserID:   owner.OwnerID,
			OwnerID:  owner.OwnerID,
			FullName: owner.FullName,
			Role:     token.RoleOwner,
		}
		passwordHash = owner.PasswordHash

	case token.RoleDriver:
		driver, err := c.DriverRepository.FindByMobile(ctx, request.Identifier)
		if err != nil {
			result.Error = invalidCredentials()
			c.Log.Error("auth-usecase", "driver not found", "Login", request.Identifier)
			return result
		}
		metadata = token.Metadata{
			UserID:   driver.DriverID,
			OwnerID:  driver.OwnerID,
			FullName: driver.FullName,
			Role:     token.RoleDriver,
		}
		passwordHash = driver.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(request.Password)); err != nil {
		result.Error = invalidCredentials()
		c.Log.Error("auth-usecase", "password mismatch", "Login", request.Identifier)
		return result
	}

	signed, err := token.Generate(c.Config, metadata)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to sign token"
		result.Error = errObj
		c.Log.Error("auth-usecase", fmt.Sprintf("sign token: %v", err), "Login", "")
		return result
	}

	result.Data = model.LoginResponse{
		Token:    signed,
		UserID:   metadata.UserID,
		FullName: metadata.FullName,
		Role:     metadata.Role,
	}
	return result
}

func invalidCredentials() *httpError.CommonError {
	errObj := httpError.NewUnauthorized()
	errObj.Message = "invalid credentials"
	return errObj
}
