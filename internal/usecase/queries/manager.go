package queries

import (
	"context"

	"leaveflow/internal/infra"
	"leaveflow/internal/pkg/errs"
	"leaveflow/internal/usecase/balance"

	"github.com/google/uuid"
)

// ManagerQueries serves the approval screens. Balances here are always the
// observer-view path: the manager is looking at someone else's balance, so
// the session cache never applies.
type ManagerQueries interface {
	ListPending(ctx context.Context) ([]PendingRequestItem, error)
	GetRequestDetail(ctx context.Context, requestID uuid.UUID) (*ManagerRequestDetail, error)
}

type managerQueriesImpl struct {
	reconciler balance.Reconciler
	vacations  VacationReadStore
	holidays   HolidayReadStore
}

func NewManagerQueries(
	reconciler balance.Reconciler,
	vacations VacationReadStore,
	holidays HolidayReadStore,
) ManagerQueries {
	return &managerQueriesImpl{
		reconciler: reconciler,
		vacations:  vacations,
		holidays:   holidays,
	}
}

func (q *managerQueriesImpl) ListPending(ctx context.Context) ([]PendingRequestItem, error) {
	views, err := q.vacations.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PendingRequestItem, 0, len(views))
	for _, view := range views {
		comp, err := q.reconciler.ComputeForObserverView(ctx, view.EmployeeID)
		if err != nil {
			return nil, err
		}
		items = append(items, PendingRequestItem{
			Request: view,
			Balance: newBalanceSummary(comp),
		})
	}
	return items, nil
}

func (q *managerQueriesImpl) GetRequestDetail(ctx context.Context, requestID uuid.UUID) (*ManagerRequestDetail, error) {
	view, err := q.vacations.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}

	comp, err := q.reconciler.ComputeForObserverView(ctx, view.EmployeeID)
	if err != nil {
		return nil, err
	}

	holidays, err := q.holidays.FindForRange(ctx, view.StartDate, view.EndDate)
	if err != nil {
		return nil, err
	}

	return &ManagerRequestDetail{
		Request:  *view,
		Balance:  newBalanceSummary(comp),
		Holidays: holidays,
	}, nil
}
