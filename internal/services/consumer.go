package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"ledgerflow/internal/database"
	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// ConsumerConfig tunes the delivery controller
type ConsumerConfig struct {
	Partitions   int
	BatchSize    int
	PollInterval time.Duration
	PollRate     rate.Limit
	Breaker      CircuitBreakerConfig
}

// DefaultConsumerConfig returns the consumer defaults
func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Partitions:   4,
		BatchSize:    32,
		PollInterval: time.Second,
		PollRate:     rate.Limit(16),
		Breaker:      DefaultCircuitBreakerConfig(),
	}
}

// Consumer is the delivery controller. One goroutine drains each partition of
// the inbound log; within a partition, messages are processed strictly in
// offset order and the offset only advances after the message's persistence
// transaction commits (or for the unsupported-operation no-op). Everything
// else leaves the offset untouched so the log redelivers.
type Consumer struct {
	db           *database.DB
	eventLog     repositories.EventLogRepositoryInterface
	decoder      DecoderInterface
	materializer MaterializerInterface
	ruleEngine   RuleEngineInterface
	logger       PipelineLoggerInterface
	metrics      MetricsRecorderInterface
	config       ConsumerConfig
	limiter      *rate.Limiter
	breakers     []*CircuitBreaker
}

// NewConsumer creates a new delivery controller
func NewConsumer(
	db *database.DB,
	eventLog repositories.EventLogRepositoryInterface,
	decoder DecoderInterface,
	materializer MaterializerInterface,
	ruleEngine RuleEngineInterface,
	logger PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
	config ConsumerConfig,
) ConsumerInterface {
	breakers := make([]*CircuitBreaker, config.Partitions)
	for i := range breakers {
		breakers[i] = NewCircuitBreaker(config.Breaker)
	}

	return &Consumer{
		db:           db,
		eventLog:     eventLog,
		decoder:      decoder,
		materializer: materializer,
		ruleEngine:   ruleEngine,
		logger:       logger,
		metrics:      metrics,
		config:       config,
		limiter:      rate.NewLimiter(config.PollRate, 1),
		breakers:     breakers,
	}
}

// Run consumes every partition until the context is cancelled
func (c *Consumer) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for partition := 0; partition < c.config.Partitions; partition++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			c.consumePartition(ctx, p)
		}(partition)
	}

	wg.Wait()
}

// consumePartition polls one partition, processing each fetched batch in
// offset order. A failed message stops the batch so no later offset can be
// processed ahead of it.
func (c *Consumer) consumePartition(ctx context.Context, partition int) {
	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.limiter.Wait(ctx); err != nil {
				return
			}
			c.drainBatch(ctx, partition)
		}
	}
}

func (c *Consumer) drainBatch(ctx context.Context, partition int) {
	breaker := c.breakers[partition]
	if breaker.IsOpen() {
		c.metrics.IncrementCounter("pipeline.partition.breaker_open", map[string]string{
			"partition": partitionLabel(partition),
		})
		return
	}

	committed, err := c.eventLog.CommittedOffset(partition)
	if err != nil {
		c.logger.LogMessageRetained(ctx, partition, committed, err)
		return
	}

	events, err := c.eventLog.FetchBatch(partition, committed, c.config.BatchSize)
	if err != nil {
		c.logger.LogMessageRetained(ctx, partition, committed, err)
		return
	}

	for i := range events {
		if err := c.ProcessEvent(ctx, &events[i]); err != nil {
			breaker.RecordFailure()
			// In-order contract: never reach past an unacknowledged offset.
			break
		}
		breaker.RecordSuccess()
	}

	if lag, err := c.eventLog.Lag(partition); err == nil {
		c.metrics.SetGauge("pipeline.partition.lag", float64(lag), map[string]string{
			"partition": partitionLabel(partition),
		})
	}
}

// ProcessEvent drives one message through the delivery state machine:
// received, decoding, persisting, rule_applying, then committed or failed.
// The returned error is nil exactly when the offset was acknowledged.
func (c *Consumer) ProcessEvent(ctx context.Context, event *models.InboundEvent) error {
	ctx = WithCorrelationID(ctx, event.ID.String())
	started := time.Now()

	c.logger.LogMessageReceived(ctx, event.Partition, event.Offset)
	c.metrics.IncrementCounter("pipeline.messages.received", nil)

	c.logger.LogStateChange(ctx, event.Partition, event.Offset, models.DeliveryStateDecoding)
	decoded, err := c.decoder.Decode([]byte(event.Payload))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedOperation) {
			c.logger.LogUnsupportedOperation(ctx, err.Error())
			return c.acknowledge(ctx, event, "noop")
		}
		return c.retain(ctx, event, err)
	}

	c.logger.LogStateChange(ctx, event.Partition, event.Offset, models.DeliveryStatePersisting)
	err = c.db.Transaction(func(tx *gorm.DB) error {
		stores := repositories.NewStores(tx)

		transactions, err := c.materializer.Materialize(ctx, stores, decoded)
		if err != nil {
			return err
		}

		c.logger.LogStateChange(ctx, event.Partition, event.Offset, models.DeliveryStateRuleApplying)
		for _, txn := range transactions {
			if _, err := c.ruleEngine.ApplyRules(ctx, stores, decoded.OwnerID, txn); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.retain(ctx, event, err)
	}

	c.metrics.RecordProcessingTime("pipeline.message.processing", time.Since(started))
	return c.acknowledge(ctx, event, "committed")
}

// acknowledge advances the partition offset past the event. An unsupported
// operation is the only path here without a persistence transaction.
func (c *Consumer) acknowledge(ctx context.Context, event *models.InboundEvent, outcome string) error {
	if err := c.eventLog.CommitOffset(event.Partition, event.Offset+1); err != nil {
		// The work may have committed; at-least-once delivery makes the
		// resulting redelivery safe to signal.
		return c.retain(ctx, event, err)
	}

	c.logger.LogStateChange(ctx, event.Partition, event.Offset, models.DeliveryStateCommitted)
	c.logger.LogMessageAcknowledged(ctx, event.Partition, event.Offset)
	c.metrics.IncrementCounter("pipeline.messages.acknowledged", map[string]string{
		"outcome": outcome,
	})
	return nil
}

// retain leaves the offset uncommitted so the log redelivers the message
func (c *Consumer) retain(ctx context.Context, event *models.InboundEvent, err error) error {
	c.logger.LogStateChange(ctx, event.Partition, event.Offset, models.DeliveryStateFailed)
	c.logger.LogMessageRetained(ctx, event.Partition, event.Offset, err)
	c.metrics.IncrementCounter("pipeline.messages.retained", map[string]string{
		"code": string(apperrors.CodeFor(err)),
	})
	return err
}

func partitionLabel(partition int) string {
	return strconv.Itoa(partition)
}
