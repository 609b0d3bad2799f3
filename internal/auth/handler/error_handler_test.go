package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/handler"
)

func appReturning(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandler(t *testing.T) {
	t.Run("classified error keeps its status and code", func(t *testing.T) {
		app := appReturning(apperror.Conflict("email already exists"))

		resp, err := app.Test(getRequest("/boom"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "conflict", body["code"])
		assert.Equal(t, "email already exists", body["message"])
	})

	t.Run("wrapped classified error is still unwrapped", func(t *testing.T) {
		wrapped := errors.Join(errors.New("outer"), apperror.NotFound("user not found"))
		app := appReturning(wrapped)

		resp, err := app.Test(getRequest("/boom"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("fiber error passes through", func(t *testing.T) {
		app := appReturning(fiber.ErrMethodNotAllowed)

		resp, err := app.Test(getRequest("/boom"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("unknown error never leaks its message", func(t *testing.T) {
		app := appReturning(errors.New("pq: connection refused"))

		resp, err := app.Test(getRequest("/boom"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "internal server error", body["message"])
	})
}
