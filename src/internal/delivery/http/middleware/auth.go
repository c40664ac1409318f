package middleware

import (
	"strings"

	"tchukudu-service/src/pkg/log"
	"tchukudu-service/src/pkg/token"
	"tchukudu-service/src/pkg/utils"

	httpError "tchukudu-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// VerifyBearer validates the Authorization header and stashes the token's
// metadata in the request locals.
func VerifyBearer(v *viper.Viper, logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		metadata, err := token.Parse(v, raw)
		if err != nil {
			logger.Error("auth-middleware", err.Error(), "VerifyBearer", ctx.Path())
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals("auth", metadata)
		return ctx.Next()
	}
}

// GetUser returns the metadata VerifyBearer stored for this request.
func GetUser(ctx *fiber.Ctx) *token.Metadata {
	metadata, _ := ctx.Locals("auth").(*token.Metadata)
	if metadata == nil {
		return &token.Metadata{}
	}
	return metadata
}
