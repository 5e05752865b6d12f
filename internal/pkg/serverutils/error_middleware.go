package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/pkg/register"
)

// ErrorHandlerMiddleware maps domain errors to HTTP status codes and logs
// everything that escapes the controllers.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, register.ErrProductNotFound),
			errors.Is(err, register.ErrLineNotFound):
			code = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, register.ErrDuplicateName),
			errors.Is(err, register.ErrNoEditSession):
			code = fiber.StatusConflict
			message = err.Error()
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
