package repositories

import (
	"errors"
	"fmt"
	"time"

	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// eventLogRepository implements EventLogRepositoryInterface on two tables:
// the append-only inbound_events log and the consumer_offsets bookmark table.
type eventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository creates a new event log repository
func NewEventLogRepository(db *gorm.DB) EventLogRepositoryInterface {
	return &eventLogRepository{db: db}
}

// Append durably appends a payload to a partition at the next free offset
func (r *eventLogRepository) Append(partition int, payload string) (*models.InboundEvent, error) {
	event := &models.InboundEvent{
		Partition: partition,
		Payload:   payload,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var last struct {
			MaxOffset *int64
		}
		if err := tx.Model(&models.InboundEvent{}).
			Select(`MAX("offset") AS max_offset`).
			Where("partition = ?", partition).
			Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to read log tail: %w", err)
		}

		if last.MaxOffset != nil {
			event.Offset = *last.MaxOffset + 1
		}

		if err := tx.Create(event).Error; err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// FetchBatch reads up to limit events of one partition starting at fromOffset,
// in offset order
func (r *eventLogRepository) FetchBatch(partition int, fromOffset int64, limit int) ([]models.InboundEvent, error) {
	var events []models.InboundEvent
	if err := r.db.Where(`partition = ? AND "offset" >= ?`, partition, fromOffset).
		Order(`"offset" ASC`).
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

// CommittedOffset returns the offset of the next event to read for a
// partition; a partition never read from starts at 0
func (r *eventLogRepository) CommittedOffset(partition int) (int64, error) {
	var bookmark models.ConsumerOffset
	err := r.db.First(&bookmark, "partition = ?", partition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read committed offset: %w", err)
	}
	return bookmark.CommittedOffset, nil
}

// CommitOffset advances a partition's bookmark. Committing is idempotent and
// never moves the bookmark backwards, which makes redelivered acknowledgments
// harmless.
func (r *eventLogRepository) CommitOffset(partition int, nextOffset int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var bookmark models.ConsumerOffset
		err := tx.First(&bookmark, "partition = ?", partition).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bookmark = models.ConsumerOffset{
				Partition:       partition,
				CommittedOffset: nextOffset,
				UpdatedAt:       time.Now(),
			}
			return tx.Create(&bookmark).Error
		}
		if err != nil {
			return err
		}

		if nextOffset <= bookmark.CommittedOffset {
			return nil
		}

		return tx.Model(&models.ConsumerOffset{}).
			Where("partition = ?", partition).
			Updates(map[string]interface{}{
				"committed_offset": nextOffset,
				"updated_at":       time.Now(),
			}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to commit offset: %w", err)
	}
	return nil
}

// Lag returns how many appended events of a partition are not yet acknowledged
func (r *eventLogRepository) Lag(partition int) (int64, error) {
	var last struct {
		MaxOffset *int64
	}
	if err := r.db.Model(&models.InboundEvent{}).
		Select(`MAX("offset") AS max_offset`).
		Where("partition = ?", partition).
		Scan(&last).Error; err != nil {
		return 0, fmt.Errorf("failed to read log tail: %w", err)
	}
	if last.MaxOffset == nil {
		return 0, nil
	}

	committed, err := r.CommittedOffset(partition)
	if err != nil {
		return 0, err
	}

	lag := *last.MaxOffset + 1 - committed
	if lag < 0 {
		lag = 0
	}
	return lag, nil
}
