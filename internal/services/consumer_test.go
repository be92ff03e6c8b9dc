package services

import (
	"context"
	"fmt"
	"testing"

	"ledgerflow/internal/database"
	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"
	"ledgerflow/internal/repositories/repository_mocks"
	"ledgerflow/internal/services/service_mocks"
	"ledgerflow/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ConsumerTestSuite defines the test suite for the delivery controller. It
// wires the real decoder, materializer, expander and rule engine against an
// in-memory database so acknowledgement semantics are exercised end to end.
type ConsumerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	db        *gorm.DB
	eventLog  repositories.EventLogRepositoryInterface
	consumer  *Consumer
	testOwner *models.Owner
	ctx       context.Context
}

// SetupTest runs before each test
func (s *ConsumerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.eventLog = repositories.NewEventLogRepository(s.db)
	s.testOwner = database.CreateTestOwner(s.T(), s.db)
	s.ctx = context.Background()

	logger := service_mocks.NewMockPipelineLoggerInterface(s.ctrl)
	logger.EXPECT().LogMessageReceived(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogStateChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogMessageAcknowledged(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogMessageRetained(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogUnsupportedOperation(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogTransactionMaterialized(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogPlanExpanded(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogCategorySkipped(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogRuleApplied(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogRuleSkipped(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogRuleEngineFailure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().SetGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	decoder := NewDecoder(validation.NewValidator())
	expander := NewInstallmentExpander(logger, metrics)
	materializer := NewMaterializer(expander, logger, metrics)
	ruleEngine := NewRuleEngine(logger, metrics)

	consumer := NewConsumer(
		&database.DB{DB: s.db},
		s.eventLog,
		decoder,
		materializer,
		ruleEngine,
		logger,
		metrics,
		DefaultConsumerConfig(),
	)
	s.consumer = consumer.(*Consumer)
}

// TearDownTest runs after each test
func (s *ConsumerTestSuite) TearDownTest() {
	s.ctrl.Finish()
	database.CleanupTestDB(s.T(), s.db)
}

// TestConsumerTestSuite runs the test suite
func TestConsumerTestSuite(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}

// append writes one payload to a partition of the inbound log
func (s *ConsumerTestSuite) append(partition int, payload string) *models.InboundEvent {
	event, err := s.eventLog.Append(partition, payload)
	s.Require().NoError(err)
	return event
}

func (s *ConsumerTestSuite) validPayload(description string) string {
	return fmt.Sprintf(`{
		"operation": "CREATE",
		"ownerId": %d,
		"transaction": {
			"description": %q,
			"amount": 75.20,
			"type": "EXPENSE",
			"dueDate": "2026-04-10"
		}
	}`, s.testOwner.ID, description)
}

func (s *ConsumerTestSuite) transactionCount() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	return count
}

func (s *ConsumerTestSuite) committedOffset(partition int) int64 {
	offset, err := s.eventLog.CommittedOffset(partition)
	s.Require().NoError(err)
	return offset
}

func (s *ConsumerTestSuite) TestProcessEvent_CommittedAdvancesOffset() {
	event := s.append(0, s.validPayload("Groceries"))

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.NoError(err)

	s.Equal(event.Offset+1, s.committedOffset(0))
	s.Equal(int64(1), s.transactionCount())
}

func (s *ConsumerTestSuite) TestProcessEvent_UnsupportedOperationAcknowledgedAsNoop() {
	event := s.append(0, fmt.Sprintf(`{"operation": "DELETE", "ownerId": %d, "transaction": {}}`, s.testOwner.ID))

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.NoError(err)

	// Acknowledged without persisting anything
	s.Equal(event.Offset+1, s.committedOffset(0))
	s.Equal(int64(0), s.transactionCount())
}

func (s *ConsumerTestSuite) TestProcessEvent_MalformedPayloadRetainsOffset() {
	event := s.append(0, `{not json`)

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.Error(err)
	s.True(apperrors.IsValidation(err))

	s.Equal(int64(0), s.committedOffset(0))
	s.Equal(int64(0), s.transactionCount())
}

func (s *ConsumerTestSuite) TestProcessEvent_InvalidPayloadRetainsOffset() {
	event := s.append(0, fmt.Sprintf(`{
		"operation": "CREATE",
		"ownerId": %d,
		"transaction": {
			"description": "Groceries",
			"amount": -5,
			"type": "EXPENSE",
			"dueDate": "2026-04-10"
		}
	}`, s.testOwner.ID))

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.Error(err)
	s.True(apperrors.IsValidation(err))
	s.Equal(int64(0), s.committedOffset(0))
}

func (s *ConsumerTestSuite) TestProcessEvent_MissingOwnerRollsBackAndRetains() {
	event := s.append(0, `{
		"operation": "CREATE",
		"ownerId": 9999,
		"transaction": {
			"description": "Groceries",
			"amount": 75.20,
			"type": "EXPENSE",
			"dueDate": "2026-04-10"
		}
	}`)

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.Error(err)
	s.True(apperrors.IsNotFound(err))

	s.Equal(int64(0), s.committedOffset(0))
	s.Equal(int64(0), s.transactionCount())
}

func (s *ConsumerTestSuite) TestProcessEvent_InstallmentPlanCommitsAtomically() {
	event := s.append(0, fmt.Sprintf(`{
		"operation": "CREATE",
		"ownerId": %d,
		"transaction": {
			"description": "Laptop",
			"amount": 500.00,
			"type": "EXPENSE",
			"dueDate": "2026-01-31",
			"totalInstallments": 3
		}
	}`, s.testOwner.ID))

	err := s.consumer.ProcessEvent(s.ctx, event)
	s.NoError(err)
	s.Equal(event.Offset+1, s.committedOffset(0))

	// Head plus three children
	s.Equal(int64(4), s.transactionCount())

	var scheduleCount int64
	s.Require().NoError(s.db.Model(&models.Installment{}).Count(&scheduleCount).Error)
	s.Equal(int64(3), scheduleCount)
}

func (s *ConsumerTestSuite) TestProcessEvent_RulesRunInTheSameCommit() {
	category := database.CreateTestCategory(s.T(), s.db, s.testOwner.ID, models.TransactionTypeExpense)
	rule := &models.AutomationRule{
		Name:           "groceries",
		ConditionType:  string(models.ConditionDescriptionContains),
		ConditionValue: "groceries",
		ActionType:     string(models.ActionAutoCategorize),
		ActionValue:    fmt.Sprintf("%d", category.ID),
		IsActive:       true,
		Priority:       10,
		OwnerID:        s.testOwner.ID,
	}
	s.Require().NoError(s.db.Create(rule).Error)

	event := s.append(0, s.validPayload("Groceries at the corner store"))
	s.NoError(s.consumer.ProcessEvent(s.ctx, event))

	var txn models.Transaction
	s.Require().NoError(s.db.First(&txn).Error)
	s.Require().NotNil(txn.CategoryID)
	s.Equal(category.ID, *txn.CategoryID)
}

func (s *ConsumerTestSuite) TestDrainBatch_StopsAtFirstFailedOffset() {
	s.append(0, `{not json`)
	s.append(0, s.validPayload("Groceries"))

	s.consumer.drainBatch(s.ctx, 0)

	// The failed head of the partition blocks everything behind it
	s.Equal(int64(0), s.committedOffset(0))
	s.Equal(int64(0), s.transactionCount())
}

func (s *ConsumerTestSuite) TestDrainBatch_ProcessesBatchInOrder() {
	first := s.append(0, s.validPayload("Groceries"))
	second := s.append(0, s.validPayload("Pharmacy"))
	s.Equal(first.Offset+1, second.Offset)

	s.consumer.drainBatch(s.ctx, 0)

	s.Equal(second.Offset+1, s.committedOffset(0))
	s.Equal(int64(2), s.transactionCount())
}

func (s *ConsumerTestSuite) TestDrainBatch_PartitionsAreIndependent() {
	s.append(0, `{not json`)
	s.append(1, s.validPayload("Groceries"))

	s.consumer.drainBatch(s.ctx, 0)
	s.consumer.drainBatch(s.ctx, 1)

	s.Equal(int64(0), s.committedOffset(0))
	s.Equal(int64(1), s.committedOffset(1))
	s.Equal(int64(1), s.transactionCount())
}

func (s *ConsumerTestSuite) TestProcessEvent_CommitFailureIsSignaled() {
	eventLog := repository_mocks.NewMockEventLogRepositoryInterface(s.ctrl)
	eventLog.EXPECT().
		CommitOffset(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection reset"))

	failing := *s.consumer
	failing.eventLog = eventLog

	event := s.append(0, s.validPayload("Groceries"))
	err := failing.ProcessEvent(s.ctx, event)

	// The work committed but the acknowledgement did not; the caller must
	// see the failure so the message is redelivered.
	s.Error(err)
	s.Equal(int64(1), s.transactionCount())
}

func (s *ConsumerTestSuite) TestDrainBatch_OpenBreakerSkipsPartition() {
	s.append(0, s.validPayload("Groceries"))
	s.consumer.breakers[0].RecordFailure()
	for s.consumer.breakers[0].GetState() != BreakerOpen {
		s.consumer.breakers[0].RecordFailure()
	}

	s.consumer.drainBatch(s.ctx, 0)

	// Nothing was fetched or processed while the breaker is open
	s.Equal(int64(0), s.committedOffset(0))
	s.Equal(int64(0), s.transactionCount())
}

func (s *ConsumerTestSuite) TestRedelivery_FailedEventSucceedsOnceFixed() {
	event := s.append(0, `{
		"operation": "CREATE",
		"ownerId": 9999,
		"transaction": {
			"description": "Groceries",
			"amount": 75.20,
			"type": "EXPENSE",
			"dueDate": "2026-04-10"
		}
	}`)

	s.Error(s.consumer.ProcessEvent(s.ctx, event))

	// The retained event is fetched again on the next poll
	batch, err := s.eventLog.FetchBatch(0, s.committedOffset(0), 10)
	s.Require().NoError(err)
	s.Require().Len(batch, 1)
	s.Equal(event.ID, batch[0].ID)

	// Once the owner exists the redelivered event commits
	owner := &models.Owner{ID: 9999, Name: "Late Owner", Email: "late@example.com"}
	s.Require().NoError(s.db.Create(owner).Error)

	s.NoError(s.consumer.ProcessEvent(s.ctx, &batch[0]))
	s.Equal(event.Offset+1, s.committedOffset(0))
	s.Equal(int64(1), s.transactionCount())
}
