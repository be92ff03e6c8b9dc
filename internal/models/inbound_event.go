package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Delivery states a message moves through while being processed. Terminal
// states are committed (offset advanced) and failed (offset held back, the
// log redelivers).
const (
	DeliveryStateReceived     = "received"
	DeliveryStateDecoding     = "decoding"
	DeliveryStatePersisting   = "persisting"
	DeliveryStateRuleApplying = "rule_applying"
	DeliveryStateCommitted    = "committed"
	DeliveryStateFailed       = "failed"
)

// Envelope operations. Only OperationCreate is handled; every other operation
// is acknowledged as a no-op.
const (
	OperationCreate = "CREATE"
)

// InboundEvent is one record of the durable, partitioned inbound log. Records
// within a partition are consumed strictly in offset order and redelivered
// until their offset is committed.
type InboundEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Partition int       `gorm:"not null;uniqueIndex:idx_inbound_events_partition_offset,priority:1" json:"partition"`
	Offset    int64     `gorm:"not null;uniqueIndex:idx_inbound_events_partition_offset,priority:2" json:"offset"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (e *InboundEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for InboundEvent
func (e *InboundEvent) TableName() string {
	return "inbound_events"
}

// ConsumerOffset tracks, per partition, the offset of the next event to read.
// Committing an offset is the acknowledgment signal: events below it are
// never redelivered.
type ConsumerOffset struct {
	Partition       int       `gorm:"primaryKey;autoIncrement:false" json:"partition"`
	CommittedOffset int64     `gorm:"not null;default:0" json:"committed_offset"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for ConsumerOffset
func (o *ConsumerOffset) TableName() string {
	return "consumer_offsets"
}
