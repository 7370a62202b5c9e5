package impl

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "recipebook/internal/delivery/context"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/service"
	"recipebook/internal/usecase"
)

var knownEventTypes = map[service.EventType]bool{
	service.EventRecipeCreated:     true,
	service.EventRecipeDeleted:     true,
	service.EventRecipeLiked:       true,
	service.EventRecipeUnliked:     true,
	service.EventCommentAdded:      true,
	service.EventCommentRemoved:    true,
	service.EventAccountDeleted:    true,
	service.EventAccountRegistered: true,
}

// activityService writes consumed events to the activity log.
type activityService struct {
	logger *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{logger: params.Logger}
}

func (srv *activityService) Record(ctx context.Context, event *service.DomainEvent) error {
	var fields []domainerrors.FieldError
	if !knownEventTypes[event.Type] {
		fields = append(fields, domainerrors.FieldError{Param: "type", Msg: "Unknown event type"})
	}
	if _, err := primitive.ObjectIDFromHex(event.ActorID); err != nil {
		fields = append(fields, domainerrors.FieldError{Param: "actor_id", Msg: "Actor id is not a valid id"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	attrs := []any{
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.String("actor_id", event.ActorID),
		slog.Duration("delay", time.Since(event.OccurredAt)),
	}
	if event.RecipeID != "" {
		attrs = append(attrs, slog.String("recipe_id", event.RecipeID))
	}
	if event.CommentID != "" {
		attrs = append(attrs, slog.String("comment_id", event.CommentID))
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Activity recorded", attrs...)

	return nil
}
