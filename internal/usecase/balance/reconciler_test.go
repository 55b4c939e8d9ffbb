//go:build unit

package balance_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"leaveflow/internal/domain/vacation"
	"leaveflow/internal/usecase/balance"
	balancemock "leaveflow/tests/mock/balance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconcilerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockStore   *balancemock.MockSnapshotStore
	mockFetcher *balancemock.MockFetcher
	mockPending *balancemock.MockPendingDaysReader
	reconciler  balance.Reconciler

	userID    uuid.UUID
	sessionID string
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = balancemock.NewMockSnapshotStore(s.mockCtrl)
	s.mockFetcher = balancemock.NewMockFetcher(s.mockCtrl)
	s.mockPending = balancemock.NewMockPendingDaysReader(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.reconciler = balance.NewReconciler(s.mockStore, s.mockFetcher, s.mockPending, logger)

	s.userID = uuid.New()
	s.sessionID = "session-1"
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReconcilerTestSuite) TestComputeForRequestingUser() {
	ctx := context.Background()

	s.Run("cache hit skips the external fetch", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(&balance.Snapshot{
			UserID:   s.userID,
			Official: decimal.NewFromInt(10),
		}, nil).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(3), nil).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		require.False(s.T(), comp.Unavailable)
		s.True(comp.Official.Equal(decimal.NewFromInt(10)))
		s.True(comp.Tentative.Equal(decimal.NewFromInt(7)))
	})

	s.Run("cache miss fetches and writes the observation back", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(nil, nil).Times(1)
		s.mockFetcher.EXPECT().FetchBalance(ctx, s.userID).Return(balance.Available(decimal.NewFromInt(12))).Times(1)
		s.mockStore.EXPECT().Put(ctx, s.sessionID, balance.Snapshot{
			UserID:   s.userID,
			Official: decimal.NewFromInt(12),
		}).Return(nil).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(0), nil).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		s.True(comp.Official.Equal(decimal.NewFromInt(12)))
		s.True(comp.Tentative.Equal(decimal.NewFromInt(12)))
	})

	s.Run("cached unavailable observation propagates without a fetch", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(&balance.Snapshot{
			UserID:      s.userID,
			Unavailable: true,
		}, nil).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		s.True(comp.Unavailable)
		s.Nil(comp.Official)
		s.Nil(comp.Tentative)
	})

	s.Run("fresh unavailable observation is cached too", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(nil, nil).Times(1)
		s.mockFetcher.EXPECT().FetchBalance(ctx, s.userID).Return(balance.Unavailable("down")).Times(1)
		s.mockStore.EXPECT().Put(ctx, s.sessionID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, snap balance.Snapshot) error {
				s.True(snap.Unavailable)
				s.Equal(s.userID, snap.UserID)
				return nil
			}).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		s.True(comp.Unavailable)
		s.Equal("down", comp.Message)
	})

	s.Run("broken cache read falls through to a fetch", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(nil, errors.New("redis down")).Times(1)
		s.mockFetcher.EXPECT().FetchBalance(ctx, s.userID).Return(balance.Available(decimal.NewFromInt(5))).Times(1)
		s.mockStore.EXPECT().Put(ctx, s.sessionID, gomock.Any()).Return(errors.New("redis down")).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(2), nil).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		s.True(comp.Official.Equal(decimal.NewFromInt(5)))
		s.True(comp.Tentative.Equal(decimal.NewFromInt(3)))
	})

	s.Run("tentative is floored at zero", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(&balance.Snapshot{
			UserID:   s.userID,
			Official: decimal.NewFromInt(2),
		}, nil).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(5), nil).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.NoError(s.T(), err)
		s.True(comp.Official.Equal(decimal.NewFromInt(2)))
		s.True(comp.Tentative.Equal(decimal.Zero))
	})

	s.Run("pending sum failure surfaces as an error", func() {
		s.mockStore.EXPECT().Get(ctx, s.sessionID, s.userID).Return(&balance.Snapshot{
			UserID:   s.userID,
			Official: decimal.NewFromInt(10),
		}, nil).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(0), errors.New("db down")).Times(1)

		comp, err := s.reconciler.ComputeForRequestingUser(ctx, s.userID, s.sessionID)
		require.Error(s.T(), err)
		s.Nil(comp)
	})
}

func (s *ReconcilerTestSuite) TestComputeForObserverView() {
	ctx := context.Background()

	s.Run("observer path always fetches and never touches the cache", func() {
		s.mockFetcher.EXPECT().FetchBalance(ctx, s.userID).Return(balance.Available(decimal.NewFromInt(9))).Times(1)
		s.mockPending.EXPECT().SumDaysByStatus(ctx, s.userID, vacation.StatusPending).Return(int64(4), nil).Times(1)

		comp, err := s.reconciler.ComputeForObserverView(ctx, s.userID)
		require.NoError(s.T(), err)
		s.True(comp.Official.Equal(decimal.NewFromInt(9)))
		s.True(comp.Tentative.Equal(decimal.NewFromInt(5)))
	})

	s.Run("unavailable fetch propagates", func() {
		s.mockFetcher.EXPECT().FetchBalance(ctx, s.userID).Return(balance.Unavailable("down")).Times(1)

		comp, err := s.reconciler.ComputeForObserverView(ctx, s.userID)
		require.NoError(s.T(), err)
		s.True(comp.Unavailable)
		s.Equal("down", comp.Message)
	})
}
