package httpserver_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chat/pkg/httpserver"
)

func errorBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandler_NotFoundKeepsStatusText(t *testing.T) {
	app := httpserver.InitFiberServer("test")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "Cannot GET /missing", body["message"])
}

func TestErrorHandler_FiberErrorKeepsItsCode(t *testing.T) {
	app := httpserver.InitFiberServer("test")
	app.Get("/teapot", func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "I'm a Teapot", body["error"])
	assert.Equal(t, "short and stout", body["message"])
}

func TestErrorHandler_PlainErrorIsInternal(t *testing.T) {
	app := httpserver.InitFiberServer("test")
	app.Get("/boom", func(*fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "boom", body["message"])
}
