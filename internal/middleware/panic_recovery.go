package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"ledgerflow/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					correlationID := GetCorrelationID(c)
					if correlationID == "" {
						correlationID = "unknown"
					}

					stackTrace := string(debug.Stack())
					slog.Error("Panic recovered",
						"correlation_id", correlationID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", stackTrace,
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					body := map[string]string{
						"code":  string(errors.SystemInternalError),
						"error": errors.GetErrorMessage(errors.SystemInternalError),
					}

					if err := c.JSON(http.StatusInternalServerError, body); err != nil {
						slog.Error("Failed to send panic recovery response",
							"correlation_id", correlationID,
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
