package kafka

import "time"

// OutboxRecord is the outbox_events row.
type OutboxRecord struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     *string    `gorm:"size:64"`
	AggregateType string     `gorm:"size:64;not null"`
	AggregateID   string     `gorm:"size:64;not null"`
	EventType     string     `gorm:"size:64;not null"`
	Topic         string     `gorm:"size:128;not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"size:16;not null;index"`
	RetryCount    int        `gorm:"not null"`
	ErrorMessage  *string    `gorm:"size:500"`
	NextRetryAt   *time.Time `gorm:"index"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}

func newOutboxRecord(e OutboxEvent) OutboxRecord {
	rec := OutboxRecord{
		ID:            e.ID,
		AggregateType: e.AggregateType,
		AggregateID:   e.AggregateID,
		EventType:     e.EventType,
		Topic:         e.Topic,
		Payload:       e.Payload,
		Status:        e.Status,
		RetryCount:    e.RetryCount,
	}
	if e.RequestID != "" {
		rid := e.RequestID
		rec.RequestID = &rid
	}
	return rec
}

func (r OutboxRecord) event() OutboxEvent {
	e := OutboxEvent{
		ID:            r.ID,
		AggregateType: r.AggregateType,
		AggregateID:   r.AggregateID,
		EventType:     r.EventType,
		Topic:         r.Topic,
		Payload:       r.Payload,
		Status:        r.Status,
		RetryCount:    r.RetryCount,
		NextRetryAt:   r.CreatedAt,
	}
	if r.RequestID != nil {
		e.RequestID = *r.RequestID
	}
	if r.NextRetryAt != nil {
		e.NextRetryAt = *r.NextRetryAt
	}
	return e
}
