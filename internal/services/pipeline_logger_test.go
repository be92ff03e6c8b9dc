package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"ledgerflow/internal/models"

	"github.com/stretchr/testify/assert"
)

func capturedPipelineLogger() (PipelineLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewPipelineLogger(slog.New(handler)), &buf
}

func TestPipelineLogger_CarriesCorrelationID(t *testing.T) {
	logger, buf := capturedPipelineLogger()
	ctx := WithCorrelationID(context.Background(), "c0ffee")

	logger.LogMessageReceived(ctx, 2, 17)

	out := buf.String()
	assert.Contains(t, out, `"event_type":"message_received"`)
	assert.Contains(t, out, `"partition":2`)
	assert.Contains(t, out, `"offset":17`)
	assert.Contains(t, out, `"correlation_id":"c0ffee"`)
}

func TestPipelineLogger_RetainedIncludesError(t *testing.T) {
	logger, buf := capturedPipelineLogger()

	logger.LogMessageRetained(context.Background(), 0, 3, errors.New("owner not found"))

	out := buf.String()
	assert.Contains(t, out, `"event_type":"message_retained"`)
	assert.Contains(t, out, `"error":"owner not found"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestPipelineLogger_StateChangeIsDebugLevel(t *testing.T) {
	logger, buf := capturedPipelineLogger()

	logger.LogStateChange(context.Background(), 1, 5, models.DeliveryStatePersisting)

	out := buf.String()
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, `"state":"persisting"`)
}

func TestPipelineLogger_RuleApplied(t *testing.T) {
	logger, buf := capturedPipelineLogger()
	rule := &models.AutomationRule{
		ID:             4,
		ActionType:     string(models.ActionAutoCategorize),
		Priority:       10,
		ExecutionCount: 3,
	}

	logger.LogRuleApplied(context.Background(), rule, 99)

	out := buf.String()
	assert.Contains(t, out, `"event_type":"rule_applied"`)
	assert.Contains(t, out, `"rule_id":4`)
	assert.Contains(t, out, `"action_type":"AUTO_CATEGORIZE"`)
	assert.Contains(t, out, `"transaction_id":99`)
}

func TestPipelineLogger_MissingCorrelationIDIsEmpty(t *testing.T) {
	logger, buf := capturedPipelineLogger()

	logger.LogUnsupportedOperation(context.Background(), "DELETE")

	assert.Contains(t, buf.String(), `"correlation_id":""`)
}
