package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLogger subscribes a zap-backed audit sink to every event type
// the service publishes.
func RegisterAuditLogger(d Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, e Event) error {
		logger.Info("audit",
			zap.String("event", string(e.Type)),
			zap.String("event_id", e.ID),
			zap.String("actor_id", e.ActorID),
			zap.Time("at", e.Timestamp),
			zap.Any("payload", e.Payload),
		)
		return nil
	}
	for _, eventType := range AllEventTypes {
		d.Subscribe(eventType, handler)
	}
}
