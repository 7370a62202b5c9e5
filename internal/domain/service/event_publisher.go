package service

import (
	"context"
	"time"
)

// EventType names a domain event.
type EventType string

const (
	EventRecipeCreated     EventType = "recipe.created"
	EventRecipeDeleted     EventType = "recipe.deleted"
	EventRecipeLiked       EventType = "recipe.liked"
	EventRecipeUnliked     EventType = "recipe.unliked"
	EventCommentAdded      EventType = "recipe.comment_added"
	EventCommentRemoved    EventType = "recipe.comment_removed"
	EventAccountDeleted    EventType = "account.deleted"
	EventAccountRegistered EventType = "account.registered"
)

// DomainEvent is an activity record handed to downstream consumers.
type DomainEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id"`
	RecipeID   string    `json:"recipe_id,omitempty"`
	CommentID  string    `json:"comment_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish delivers a domain event to the configured sink
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
