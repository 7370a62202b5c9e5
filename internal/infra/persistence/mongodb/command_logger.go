package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"

	"recipebook/config"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger reports failed and slow driver commands through slog.
// In debug mode every command is logged.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	if l.shouldLogSlow(evt.Duration) {
		attrs := append(l.commandAttrs(&evt.CommandFinishedEvent), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Mongo slow command", attrs...)

		return
	}

	if l.debug {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Mongo command", l.commandAttrs(&evt.CommandFinishedEvent)...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := append(l.commandAttrs(&evt.CommandFinishedEvent), slog.String("error", evt.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "Mongo command failed", attrs...)
}

func (l *commandLogger) commandAttrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("requestId", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
	}
}

func (l *commandLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold
}

// newPoolLogger warns when a request could not check out a pooled connection.
func newPoolLogger(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil || evt.Type != event.GetFailed {
				return
			}

			logger.LogAttrs(context.Background(), slog.LevelWarn, "Mongo pool checkout failed",
				slog.String("address", evt.Address),
				slog.String("reason", evt.Reason),
				slog.Duration("elapsed", evt.Duration),
			)
		},
	}
}
