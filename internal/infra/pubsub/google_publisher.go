package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"

	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
)

// googlePubSubPublisher publishes events to a Cloud Pub/Sub topic. Events of
// the same recipe share an ordering key so a push subscription with ordering
// enabled sees like/unlike and comment add/remove in the order they happened.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	timeout   time.Duration
	logger    *slog.Logger
	pending   sync.WaitGroup
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	return newGooglePublisher(ctx, client, projectID, topicID, timeout, logger)
}

// newGooglePublisher takes ownership of client and closes it on failure.
func newGooglePublisher(ctx context.Context, client *pubsub.Client, projectID, topicID string, timeout time.Duration, logger *slog.Logger) (*googlePubSubPublisher, error) {
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Publish hands the event to the batching publisher and returns without
// waiting for the server. The outcome is logged once it arrives.
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}

	// The request may finish before the batch is flushed.
	ctx = context.WithoutCancel(ctx)

	key := orderingKey(event)
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: key,
	})

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		p.awaitResult(ctx, result, event, key)
	}()

	return nil
}

func (p *googlePubSubPublisher) awaitResult(ctx context.Context, result *pubsub.PublishResult, event *service.DomainEvent, key string) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logger := p.logger.With(
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.ID),
		slog.String("ordering_key", key),
	)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		if key != "" {
			p.publisher.ResumePublish(key)
		}
		logger.Error("[GooglePubSub] Failed to publish event", slog.Any("error", err))

		return
	}

	logger.Debug("[GooglePubSub] Event published", slog.String("server_id", serverID))
}

// Close flushes pending messages, waits for their results and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()
	p.pending.Wait()

	return errors.WithStack(p.client.Close())
}
