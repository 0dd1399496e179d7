package assistant

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// ChatEvent captures lightweight execution telemetry for one handled message.
type ChatEvent struct {
	Role     domain.Role
	Intent   domain.Intent
	Scope    domain.VisibilityScope
	Allowed  bool
	Duration time.Duration
	Err      error
}

// ChatObserver receives per-message telemetry events.
type ChatObserver interface {
	ObserveChat(ctx context.Context, event ChatEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveChat(context.Context, ChatEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes chat telemetry to the provided writer.
func NewLogObserver(w io.Writer) ChatObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveChat(ctx context.Context, event ChatEvent) {
	attrs := []any{
		"role", string(event.Role),
		"intent", string(event.Intent),
		"scope", string(event.Scope),
		"allowed", event.Allowed,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "chat_request", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "chat_request", attrs...)
}
