package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retail-insights/internal/core/config"
	"retail-insights/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestNew_RequestID verifies every response carries a generated ray id.
func TestNew_RequestID(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{})
	srv.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestid").(string))
	})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

// TestNew_NotFound verifies unknown routes use the JSON error shape.
func TestNew_NotFound(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{})

	req := httptest.NewRequest("GET", "/nowhere", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	resp, err := srv.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "given-id", body["ray_id"])
	assert.NotEmpty(t, body["message"])
}

// TestNew_Swagger verifies the API docs are served.
func TestNew_Swagger(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestNew_RecoversPanics verifies a panicking handler yields a 500 instead of crashing.
func TestNew_RecoversPanics(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{})
	srv.App.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = srv.App.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestServer_Shutdown verifies a running server stops and Run returns.
func TestServer_Shutdown(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{ServerPort: 0})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, srv.Shutdown(time.Second))

	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown(time.Second)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
