package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/service"
)

// newEvent stamps an activity record with a fresh id and the request id carried by ctx.
func newEvent(ctx context.Context, eventType service.EventType, actorID primitive.ObjectID) *service.DomainEvent {
	return &service.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:    actorID.Hex(),
		OccurredAt: time.Now().UTC(),
	}
}

// publishEvent hands the event to the publisher. Failures are logged and never reach the caller.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DomainEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", string(event.Type)),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

// parseObjectID converts an id taken from the URL. A malformed id yields notFound.
func parseObjectID(raw string, notFound error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, notFound
	}

	return id, nil
}
