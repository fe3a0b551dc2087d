package middleware

import (
	"strings"

	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/token"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

// VerifyBearer validates the Authorization header and stashes the token
// metadata in the request locals for GetUser.
func VerifyBearer(v *viper.Viper) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		metadata, err := token.Verify(v, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authLocalsKey, metadata)
		return ctx.Next()
	}
}

// RequireRole rejects authenticated callers whose token carries a different
// role.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil || auth.Role != role {
			errObj := httpError.NewForbidden()
			errObj.Message = "insufficient role"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	metadata, ok := ctx.Locals(authLocalsKey).(*token.Metadata)
	if !ok {
		return nil
	}
	return metadata
}
