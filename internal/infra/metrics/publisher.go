package metrics

import (
	"context"

	"recipebook/internal/domain/service"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// instrumentedPublisher counts every event passed to the wrapped publisher.
type instrumentedPublisher struct {
	next    service.EventPublisher
	metrics *Metrics
}

// InstrumentPublisher wraps the configured publisher with event counters.
func InstrumentPublisher(next service.EventPublisher, m *Metrics) service.EventPublisher {
	return &instrumentedPublisher{next: next, metrics: m}
}

func (p *instrumentedPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	err := p.next.Publish(ctx, event)

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	p.metrics.EventPublished(string(event.Type), outcome)

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
