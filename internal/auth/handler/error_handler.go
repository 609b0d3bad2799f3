package handler

import (
	"errors"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
)

// ErrorHandler renders classified errors with their status class and hides
// everything else behind a generic internal failure. Unexpected errors are
// reported to Sentry.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	sentry.CaptureException(err)
	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}
