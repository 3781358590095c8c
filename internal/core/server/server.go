package server

import (
	"errors"
	"fmt"
	"time"

	"retail-insights/internal/core/config"
	"retail-insights/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "retail-insights/docs/swagger"
)

// RequestIDHeader carries the per-request ray id.
const RequestIDHeader = "X-Ray-ID"

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "retail-insights",
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: logPanic,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// errorHandler renders unhandled errors, such as unknown routes, in the
// same {message, ray_id} shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	id, _ := c.Locals("requestid").(string)
	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
		"ray_id":  id,
	})
}

func logPanic(c *fiber.Ctx, e interface{}) {
	id, _ := c.Locals("requestid").(string)
	logger.Get().Error("Recovered from panic",
		zap.String("ray_id", id),
		zap.String("path", c.Path()),
		zap.Any("panic", e),
		zap.Stack("stack"),
	)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits up to timeout for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	logger.Get().Info("Shutting down server", zap.Duration("timeout", timeout))
	return s.App.ShutdownWithTimeout(timeout)
}
