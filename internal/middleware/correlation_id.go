package middleware

import (
	"ledgerflow/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// CorrelationIDHeader carries the correlation id on ops requests and
	// responses
	CorrelationIDHeader = "X-Correlation-ID"
	// CorrelationIDContextKey is the echo context key for the correlation id
	CorrelationIDContextKey = "correlation_id"
)

// CorrelationID tags every ops request with the correlation id vocabulary the
// pipeline threads through message processing. An id supplied on the request
// header is honored so an operator can tie a request to pipeline log entries;
// otherwise a fresh one is generated. The id is echoed on the response header
// and attached to the request context so downstream log calls carry it.
func CorrelationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			correlationID := req.Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.New().String()
			}

			c.Set(CorrelationIDContextKey, correlationID)
			res.Header().Set(CorrelationIDHeader, correlationID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), correlationID)))

			return next(c)
		}
	}
}

// GetCorrelationID extracts the correlation id from the echo context.
// Returns empty string if not found.
func GetCorrelationID(c echo.Context) string {
	correlationID, ok := c.Get(CorrelationIDContextKey).(string)
	if !ok {
		return ""
	}
	return correlationID
}
