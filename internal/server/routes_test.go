package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindmodeon2025-byte/AI-Parenting-Assistant-Suite/internal/openaiservice"
)

func TestHealthHandlerReportsMissingCredential(t *testing.T) {
	s := &Server{openai: openaiservice.New("")}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, s.healthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "not configured", body["openai"])
}

func TestHealthHandlerReportsConfiguredCredential(t *testing.T) {
	s := &Server{openai: openaiservice.New("sk-test")}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, s.healthHandler(c))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "configured", body["openai"])
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := RequestIDMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.NotNil(t, c.Get("logger"))
}

func TestRequestIDMiddlewareHonorsCallerID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := RequestIDMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, "caller-supplied", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "caller-supplied", c.Get("request_id"))
}
