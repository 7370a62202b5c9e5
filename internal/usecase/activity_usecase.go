package usecase

import (
	"context"

	"recipebook/internal/domain/service"
)

// ActivityUsecase consumes the domain events published by the API.
type ActivityUsecase interface {
	// Record accepts one delivered event. A malformed event yields a ValidationError
	// and must not be redelivered.
	Record(ctx context.Context, event *service.DomainEvent) error
}
