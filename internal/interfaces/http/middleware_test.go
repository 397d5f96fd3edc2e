package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/weinrechner/internal/interfaces/http"
)

func TestRequestLogger_EstadoDelError(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/falta", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/roto", func(c *fiber.Ctx) error { return errors.New("disco lleno") })

	cases := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", fiber.StatusNoContent, "info"},
		{"/falta", fiber.StatusNotFound, "warn"},
		{"/roto", fiber.StatusInternalServerError, "error"},
	}
	for _, tc := range cases {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)

		var entry struct {
			Level  string `json:"level"`
			Status int    `json:"status"`
			Path   string `json:"path"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), tc.path)
		assert.Equal(t, tc.status, entry.Status, "el log debe coincidir con la respuesta: %s", tc.path)
		assert.Equal(t, tc.level, entry.Level, tc.path)
		assert.Equal(t, tc.path, entry.Path)
	}
}
