package components

import (
	"leaveflow/internal/infra/gateway"
	"leaveflow/internal/infra/readstore"
	repo_impl "leaveflow/internal/infra/repository"
	"leaveflow/internal/usecase/audit"
	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/commands"
	"leaveflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewVacationRequestRepository,
			fx.As(new(commands.VacationRequestRepository)),
			fx.As(new(balance.PendingDaysReader)),
		),
		fx.Annotate(
			repo_impl.NewHolidayRepository,
			fx.As(new(commands.HolidayDatesReader)),
			fx.As(new(commands.HolidayWriter)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserReader)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewIntegrationEndpointRepository,
			fx.As(new(gateway.EndpointResolver)),
			fx.As(new(commands.EndpointResolver)),
			fx.As(new(commands.IntegrationWriter)),
			fx.As(new(queries.IntegrationReadStore)),
		),
		fx.Annotate(
			repo_impl.NewAuditLogRepository,
			fx.As(new(audit.LogStore)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewVacationReadStore,
			fx.As(new(queries.VacationReadStore)),
		),
		fx.Annotate(
			readstore.NewHolidayReadStore,
			fx.As(new(queries.HolidayReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
