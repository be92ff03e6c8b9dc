package handlers

import (
	"net/http"

	"ledgerflow/internal/repositories"

	"github.com/labstack/echo/v4"
)

// PipelineStatusHandler exposes per-partition consumer progress
type PipelineStatusHandler struct {
	eventLog   repositories.EventLogRepositoryInterface
	partitions int
}

// NewPipelineStatusHandler creates a new pipeline status handler
func NewPipelineStatusHandler(eventLog repositories.EventLogRepositoryInterface, partitions int) *PipelineStatusHandler {
	return &PipelineStatusHandler{
		eventLog:   eventLog,
		partitions: partitions,
	}
}

// PartitionStatus describes one partition of the inbound log
type PartitionStatus struct {
	Partition       int   `json:"partition"`
	CommittedOffset int64 `json:"committed_offset"`
	Lag             int64 `json:"lag"`
}

// Status returns committed offset and lag for every partition
func (h *PipelineStatusHandler) Status(c echo.Context) error {
	statuses := make([]PartitionStatus, 0, h.partitions)

	for partition := 0; partition < h.partitions; partition++ {
		committed, err := h.eventLog.CommittedOffset(partition)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to read committed offset",
			})
		}

		lag, err := h.eventLog.Lag(partition)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to read partition lag",
			})
		}

		statuses = append(statuses, PartitionStatus{
			Partition:       partition,
			CommittedOffset: committed,
			Lag:             lag,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"partitions": statuses,
	})
}
