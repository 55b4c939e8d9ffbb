package bootstrap

import (
	"context"
	"log/slog"

	"leaveflow/internal/infra/events"
	"leaveflow/internal/infra/ops"
	"leaveflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		ops.NewMonitor,
		events.NewSlogSink,
		NewPublisher,
		func(p *events.Publisher) commands.EventPublisher { return p },
	),
)

func NewPublisher(lc fx.Lifecycle, sink events.Sink, monitor ops.Monitor, logger *slog.Logger) *events.Publisher {
	publisher := events.NewPublisher(sink, monitor, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			publisher.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			publisher.Stop()
			return nil
		},
	})

	return publisher
}
