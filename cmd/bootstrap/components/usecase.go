package components

import (
	"log/slog"

	"leaveflow/internal/infra/gateway"
	"leaveflow/internal/infra/ops"
	"leaveflow/internal/pkg/clock"
	"leaveflow/internal/usecase/audit"
	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		audit.NewService,
		fx.As(new(commands.AuditRecorder)),
	),
	fx.Annotate(
		NewBalanceGateway,
		fx.As(new(commands.BalanceGateway)),
		fx.As(new(balance.Fetcher)),
	),
	fx.Annotate(
		gateway.NewHolidayClient,
		fx.As(new(commands.HolidayImportClient)),
	),
	balance.NewReconciler,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVacationCommands,
		commands.NewHolidayCommands,
		commands.NewIntegrationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDashboardQueries,
		queries.NewManagerQueries,
		queries.NewHRQueries,
		queries.NewIntegrationQueries,
	),
)

func NewBalanceGateway(resolver gateway.EndpointResolver, monitor ops.Monitor, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(resolver, monitor, logger)
}
