package handlers

import (
	"ledgerflow/internal/middleware"
	"ledgerflow/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewRouter builds the operational HTTP surface: health, pipeline status
// and Prometheus metrics.
func NewRouter(db *gorm.DB, eventLog repositories.EventLogRepositoryInterface, partitions int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.CorrelationID())
	e.Use(middleware.PanicRecovery())

	healthHandler := NewHealthCheckHandler(db)
	statusHandler := NewPipelineStatusHandler(eventLog, partitions)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/pipeline/status", statusHandler.Status)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
