package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledgerflow/internal/database"
	"ledgerflow/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineStatus_ReportsEveryPartition(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)
	eventLog := repositories.NewEventLogRepository(db)

	// Two events on partition 0, one acknowledged
	_, err := eventLog.Append(0, `{}`)
	require.NoError(t, err)
	_, err = eventLog.Append(0, `{}`)
	require.NoError(t, err)
	require.NoError(t, eventLog.CommitOffset(0, 1))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pipeline/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPipelineStatusHandler(eventLog, 2)
	require.NoError(t, handler.Status(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Partitions []PartitionStatus `json:"partitions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Partitions, 2)

	assert.Equal(t, 0, body.Partitions[0].Partition)
	assert.Equal(t, int64(1), body.Partitions[0].CommittedOffset)
	assert.Equal(t, int64(1), body.Partitions[0].Lag)

	assert.Equal(t, 1, body.Partitions[1].Partition)
	assert.Equal(t, int64(0), body.Partitions[1].CommittedOffset)
	assert.Equal(t, int64(0), body.Partitions[1].Lag)
}

func TestRouter_RegistersOperationalRoutes(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)
	eventLog := repositories.NewEventLogRepository(db)

	e := NewRouter(db, eventLog, 1)

	for _, path := range []string{"/health", "/pipeline/status", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
