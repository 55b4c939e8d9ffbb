package balance

import (
	"context"
	"log/slog"

	"leaveflow/internal/domain/vacation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the last external balance observation for one user, held in a
// session-scoped single-slot store.
type Snapshot struct {
	UserID      uuid.UUID       `json:"user_id"`
	Official    decimal.Decimal `json:"official"`
	Unavailable bool            `json:"unavailable"`
}

// Result is the gateway's fetch outcome: either an official balance or an
// explicit unavailability with its reason. Never both.
type Result struct {
	Official    decimal.Decimal
	Unavailable bool
	Reason      string
}

func Available(official decimal.Decimal) Result {
	return Result{Official: official}
}

func Unavailable(reason string) Result {
	return Result{Unavailable: true, Reason: reason}
}

// DeductionResult is the gateway's deduction outcome. The three states are
// mutually exclusive: success, unavailable (could not determine an answer;
// caller may retry the whole operation later), failure (the external system
// answered and rejected; not retried).
type DeductionResult struct {
	Success     bool
	Unavailable bool
	Message     string
}

func DeductionSuccess() DeductionResult {
	return DeductionResult{Success: true}
}

func DeductionUnavailable(message string) DeductionResult {
	return DeductionResult{Unavailable: true, Message: message}
}

func DeductionFailure(message string) DeductionResult {
	return DeductionResult{Message: message}
}

// Computation is the official/tentative pair exposed to callers. Official and
// Tentative are nil exactly when Unavailable is set; unavailability always
// propagates, it never silently defaults.
type Computation struct {
	Official    *decimal.Decimal
	Tentative   *decimal.Decimal
	Unavailable bool
	Message     string
}

// SnapshotStore is the injected session-scoped cache (single slot per
// session). Get returns (nil, nil) when the slot is empty or belongs to a
// different user; a re-keyed session must never see another user's balance.
type SnapshotStore interface {
	Get(ctx context.Context, sessionID string, userID uuid.UUID) (*Snapshot, error)
	Put(ctx context.Context, sessionID string, snap Snapshot) error
}

type Fetcher interface {
	FetchBalance(ctx context.Context, userID uuid.UUID) Result
}

type PendingDaysReader interface {
	SumDaysByStatus(ctx context.Context, userID uuid.UUID, status vacation.Status) (int64, error)
}

type Reconciler interface {
	// ComputeForRequestingUser serves the owner's own session: the cached
	// snapshot is consulted first and every fresh observation (success or
	// explicit unavailable) is written back, making the cache a write-through
	// memo of the last external observation.
	ComputeForRequestingUser(ctx context.Context, userID uuid.UUID, sessionID string) (*Computation, error)
	// ComputeForObserverView serves a manager/HR actor looking at someone
	// else's balance; the session cache is deliberately bypassed since the
	// observer and the observed are different identities.
	ComputeForObserverView(ctx context.Context, userID uuid.UUID) (*Computation, error)
}

type reconcilerImpl struct {
	store    SnapshotStore
	fetcher  Fetcher
	requests PendingDaysReader
	logger   *slog.Logger
}

func NewReconciler(store SnapshotStore, fetcher Fetcher, requests PendingDaysReader, logger *slog.Logger) Reconciler {
	return &reconcilerImpl{
		store:    store,
		fetcher:  fetcher,
		requests: requests,
		logger:   logger,
	}
}

func (r *reconcilerImpl) ComputeForRequestingUser(ctx context.Context, userID uuid.UUID, sessionID string) (*Computation, error) {
	var result Result

	snap, err := r.store.Get(ctx, sessionID, userID)
	if err != nil {
		// A broken cache must not break balance reads; fall through to a fetch.
		r.logger.Warn("balance snapshot read failed", "session_id", sessionID, "error", err.Error())
		snap = nil
	}

	if snap != nil {
		if snap.Unavailable {
			result = Unavailable("cached unavailable")
		} else {
			result = Available(snap.Official)
		}
	} else {
		result = r.fetcher.FetchBalance(ctx, userID)
		if putErr := r.store.Put(ctx, sessionID, Snapshot{
			UserID:      userID,
			Official:    result.Official,
			Unavailable: result.Unavailable,
		}); putErr != nil {
			r.logger.Warn("balance snapshot write failed", "session_id", sessionID, "error", putErr.Error())
		}
	}

	return r.computeTentative(ctx, userID, result)
}

func (r *reconcilerImpl) ComputeForObserverView(ctx context.Context, userID uuid.UUID) (*Computation, error) {
	result := r.fetcher.FetchBalance(ctx, userID)
	return r.computeTentative(ctx, userID, result)
}

func (r *reconcilerImpl) computeTentative(ctx context.Context, userID uuid.UUID, result Result) (*Computation, error) {
	if result.Unavailable {
		return &Computation{Unavailable: true, Message: result.Reason}, nil
	}

	pendingDays, err := r.requests.SumDaysByStatus(ctx, userID, vacation.StatusPending)
	if err != nil {
		return nil, err
	}

	official := result.Official
	tentative := official.Sub(decimal.NewFromInt(pendingDays))
	if tentative.IsNegative() {
		tentative = decimal.Zero
	}

	return &Computation{
		Official:  &official,
		Tentative: &tentative,
	}, nil
}
