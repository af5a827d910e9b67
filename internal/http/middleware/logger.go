package middleware

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"pagebuilder/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one JSON line on stdout.
func Logger(level string) fiber.Handler {
	return LoggerWithWriter(os.Stdout, level)
}

// LoggerWithWriter logs each HTTP request to w.
// Fields: request_id, method, path, status, latency (milliseconds).
// Handlers downstream find a logger carrying request_id via logging.FromContext.
func LoggerWithWriter(w io.Writer, level string) fiber.Handler {
	return RequestLogger(logging.New(w, level))
}

// RequestLogger logs each HTTP request with base.
func RequestLogger(base *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLogger := base.With("request_id", rid)
		c.SetUserContext(logging.WithLogger(c.UserContext(), reqLogger))

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds()) / 1000,
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			reqLogger.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			reqLogger.Warn("request", fields...)
		default:
			reqLogger.Info("request", fields...)
		}

		return err
	}
}
