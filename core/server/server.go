package server

import (
	"context"
	"errors"
	"time"

	"prefix-list-updater/core/audit"
	"prefix-list-updater/core/logger"
	"prefix-list-updater/core/middleware/auth"
	"prefix-list-updater/core/middleware/requestid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// StatusSource exposes the state of recent cycles.
type StatusSource interface {
	Status() audit.Status
	Ready() bool
}

// Triggerer requests an immediate cycle.
type Triggerer interface {
	Trigger() bool
}

// New builds the status application.
func New(cfg Config, status StatusSource, trigger Triggerer, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRequestID(log, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})
	app.Use(auth.New(auth.Config{
		ApiKey: cfg.ApiKey,
		Skip:   []string{"/healthz", "/readyz"},
	}))

	h := &Handler{status: status, trigger: trigger, logger: log}
	app.Get("/healthz", h.Healthz)
	app.Get("/readyz", h.Readyz)
	app.Get("/status", h.Status)
	app.Post("/reconcile", h.Reconcile)

	return app
}

// Serve listens on addr until ctx is cancelled, then shuts the app down.
func Serve(ctx context.Context, app *fiber.App, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting status server", zap.String("address", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down status server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
