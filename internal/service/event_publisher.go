package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/pkg/kafka"
	"github.com/MischieS/agenta-sub001/pkg/logger"
)

// EventPublisher emits domain events for external consumers (CRM sync,
// mail delivery). Publishing is best-effort: a broker failure is
// logged and never fails the originating request.
type EventPublisher interface {
	PublishEvent(ctx context.Context, kind domain.NotificationKind, subjectID string, payload interface{})
}

type domainEvent struct {
	Kind       string      `json:"kind"`
	SubjectID  string      `json:"subject_id"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// KafkaEventPublisher publishes domain events through a Kafka producer
type KafkaEventPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher
func NewKafkaEventPublisher(producer *kafka.Producer) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		log:      logger.Get(),
	}
}

// PublishEvent serializes and produces the event keyed by subject id,
// so events for one account stay ordered
func (p *KafkaEventPublisher) PublishEvent(ctx context.Context, kind domain.NotificationKind, subjectID string, payload interface{}) {
	event := domainEvent{
		Kind:       string(kind),
		SubjectID:  subjectID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to encode domain event",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return
	}

	p.producer.Publish(ctx, subjectID, data, func(err error) {
		if err != nil {
			p.log.Warn("domain event delivery failed",
				zap.String("kind", string(kind)),
				zap.String("subject_id", subjectID),
				zap.Error(err),
			)
		}
	})
}

// NopEventPublisher discards events; used when the broker is disabled
type NopEventPublisher struct{}

// PublishEvent does nothing
func (NopEventPublisher) PublishEvent(context.Context, domain.NotificationKind, string, interface{}) {
}
