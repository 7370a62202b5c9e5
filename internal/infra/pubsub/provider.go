// Package pubsub delivers domain events to downstream consumers.
// The sink is chosen by pubsub.provider: nothing, a local push endpoint, or Google Cloud Pub/Sub.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"recipebook/config"
	"recipebook/internal/domain/constants"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
)

const defaultPublishTimeout = 10 * time.Second

// discardPublisher drops events when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	p.logger.Debug("[PubSub] No provider configured, event dropped",
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.ID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, domain events are dropped")

		return &discardPublisher{logger: params.Logger}, nil
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	publisher, err := buildPublisher(params.Ctx, cfg, timeout, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing domain events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, timeout, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing domain events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, timeout, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// eventAttributes are copied onto every message so subscribers can filter without decoding.
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
		"actor_id":   event.ActorID,
	}
	if event.RecipeID != "" {
		attributes["recipe_id"] = event.RecipeID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey keeps the events of one recipe in publish order. Account events are unordered.
func orderingKey(event *service.DomainEvent) string {
	if event.RecipeID == "" {
		return ""
	}

	return "recipe/" + event.RecipeID
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
