package queries

import (
	"context"

	"leaveflow/internal/pkg/clock"
	"leaveflow/internal/usecase/balance"

	"github.com/google/uuid"
)

// Holidays shown on the dashboard span from today through the end of next
// year.
type DashboardQueries interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, sessionID string) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	reconciler balance.Reconciler
	vacations  VacationReadStore
	holidays   HolidayReadStore
	clock      clock.Clock
}

func NewDashboardQueries(
	reconciler balance.Reconciler,
	vacations VacationReadStore,
	holidays HolidayReadStore,
	clk clock.Clock,
) DashboardQueries {
	return &dashboardQueriesImpl{
		reconciler: reconciler,
		vacations:  vacations,
		holidays:   holidays,
		clock:      clk,
	}
}

func (q *dashboardQueriesImpl) GetDashboard(ctx context.Context, userID uuid.UUID, sessionID string) (*DashboardView, error) {
	comp, err := q.reconciler.ComputeForRequestingUser(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	vacations, err := q.vacations.FindByEmployee(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	horizon := now.AddDate(1, 0, 0)
	holidays, err := q.holidays.FindForRange(ctx, now, horizon)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Balance:     newBalanceSummary(comp),
		MyVacations: vacations,
		Holidays:    holidays,
	}, nil
}

func newBalanceSummary(comp *balance.Computation) BalanceSummary {
	return BalanceSummary{
		Official:    comp.Official,
		Tentative:   comp.Tentative,
		Unavailable: comp.Unavailable,
		Message:     comp.Message,
	}
}
