package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

var errMissingFields = errors.New("missing required fields")

// parseBody decodes the JSON body into out and checks its validate tags.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return errMissingFields
	}
	return nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// paramUUID parses a path parameter. A malformed id cannot match any
// record, so callers answer it with 404.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

var clientErrors = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrMissingFields, fiber.StatusBadRequest, "Missing required fields"},
	{services.ErrInvalidBrand, fiber.StatusBadRequest, "Invalid brand"},
	{services.ErrInvalidDate, fiber.StatusBadRequest, "Invalid date"},
	{services.ErrInvalidPassword, fiber.StatusBadRequest, "Password must be between 1 and 72 bytes"},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{services.ErrEmailTaken, fiber.StatusConflict, "Email already registered"},
	{services.ErrGoodsNotFound, fiber.StatusNotFound, "Goods not found"},
	{services.ErrCommentNotFound, fiber.StatusNotFound, "Comments not found"},
}

// fail maps a service error to a response. Unknown errors are logged,
// reported to Sentry, and answered with a generic 500.
func fail(c *fiber.Ctx, err error, action string) error {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return c.Status(ce.status).JSON(dto.ErrorResponse{
				Error: true, Message: ce.message,
			})
		}
	}

	slog.Error(action+" failed",
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
