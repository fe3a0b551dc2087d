package middleware

import (
	"fmt"
	"time"

	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/token"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireActiveSubscription gates owner-facing routes on an active or trial
// subscription. Driver tokens pass through untouched since drivers act on
// behalf of a paying owner.
func RequireActiveSubscription(ownerRepository *repository.OwnerRepository, logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}
		if auth.Role != token.RoleOwner {
			return ctx.Next()
		}

		sub, err := ownerRepository.FindSubscription(ctx.Context(), auth.OwnerID)
		if err != nil {
			logger.Error("middleware", fmt.Sprintf("load subscription: %v", err), "RequireActiveSubscription", auth.OwnerID)
			errObj := httpError.NewForbidden()
			errObj.Message = "subscription required"
			return utils.ResponseError(errObj, ctx)
		}
		if !sub.IsUsable(time.Now()) {
			errObj := httpError.NewForbidden()
			errObj.Message = "subscription expired"
			return utils.ResponseError(errObj, ctx)
		}

		return ctx.Next()
	}
}
