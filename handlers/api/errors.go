package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vows.link/configs/configslog"
	"vows.link/services"
)

// statusForError maps service errors onto HTTP status codes. Anything
// unrecognized is an unexpected persistence-level fault and surfaces
// as a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrWeddingNotFound),
		errors.Is(err, services.ErrGuestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrWeddingInvalidInput),
		errors.Is(err, services.ErrGuestInvalidInput),
		errors.Is(err, services.ErrRSVPInvalidInput),
		errors.Is(err, services.ErrPhotoInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrWeddingNotPublishable):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		// Driver and SQL details stay in the log, not the response.
		configslog.Log.Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
