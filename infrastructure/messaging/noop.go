// Package messaging provides event bus implementations.
package messaging

import (
	"context"

	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/events"
)

// NoopBus logs events and drops them. Used locally and in tests, where
// no EventBridge bus exists.
type NoopBus struct {
	logger *zap.Logger
}

// NewNoopBus creates a bus that publishes nowhere.
func NewNoopBus(logger *zap.Logger) ports.EventBus {
	return &NoopBus{logger: logger}
}

func (b *NoopBus) Publish(ctx context.Context, event events.DomainEvent) error {
	b.logger.Debug("event dropped (noop bus)",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
	)
	return nil
}

func (b *NoopBus) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	for _, event := range domainEvents {
		if err := b.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
