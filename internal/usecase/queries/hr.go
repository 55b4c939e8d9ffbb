package queries

import (
	"context"

	"leaveflow/internal/usecase/balance"
)

// HRQueries serves the processing worklist: approved requests whose external
// deduction has not happened yet.
type HRQueries interface {
	ListApprovedUnprocessed(ctx context.Context) ([]PendingRequestItem, error)
}

type hrQueriesImpl struct {
	reconciler balance.Reconciler
	vacations  VacationReadStore
}

func NewHRQueries(reconciler balance.Reconciler, vacations VacationReadStore) HRQueries {
	return &hrQueriesImpl{reconciler: reconciler, vacations: vacations}
}

func (q *hrQueriesImpl) ListApprovedUnprocessed(ctx context.Context) ([]PendingRequestItem, error) {
	views, err := q.vacations.FindApprovedUnprocessed(ctx)
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
