package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/moderation/mocks"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

var admin = session.Caller{SessionID: "s1", Token: "tok", Identity: session.Identity{Role: models.RoleAdmin}}

func setup(t *testing.T) (*Service, *mocks.MockBackend) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	return New(b), b
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		s, b := setup(t)
		b.EXPECT().ApprovePendingRequest(ctx, "tok", "x1").Return(nil)
		assert.NoError(t, s.Apply(ctx, admin, ActionApprove, "x1", false))
	})

	t.Run("reject needs confirmation", func(t *testing.T) {
		s, _ := setup(t)
		assert.ErrorIs(t, s.Apply(ctx, admin, ActionReject, "x1", false), ErrNotConfirmed)
	})

	t.Run("reject confirmed", func(t *testing.T) {
		s, b := setup(t)
		b.EXPECT().RejectPendingRequest(ctx, "tok", "x1").Return(nil)
		assert.NoError(t, s.Apply(ctx, admin, ActionReject, "x1", true))
	})

	t.Run("delete needs confirmation", func(t *testing.T) {
		s, _ := setup(t)
		assert.ErrorIs(t, s.Apply(ctx, admin, ActionDelete, "x1", false), ErrNotConfirmed)
	})

	t.Run("delete forbidden", func(t *testing.T) {
		s, b := setup(t)
		b.EXPECT().DeleteSeller(ctx, "tok", "x1").Return(&backend.APIError{Status: 403, Message: "Admins only"})
		err := s.Apply(ctx, admin, ActionDelete, "x1", true)
		assert.ErrorIs(t, err, backend.ErrForbidden)
		assert.Equal(t, "Failed to delete seller: Admins only", ActionDelete.Failed(err))
	})

	t.Run("unknown action", func(t *testing.T) {
		s, _ := setup(t)
		assert.Error(t, s.Apply(ctx, admin, Action("ban"), "x1", true))
	})
}

func TestAction_Texts(t *testing.T) {
	assert.Equal(t, "Seller approved successfully!", ActionApprove.Succeeded())
	assert.Equal(t, "Failed to approve seller", ActionApprove.Failed(errors.New("boom")))
	assert.Equal(t, "Failed to reject seller", ActionReject.Failed(backend.ErrNoResponse))
	assert.Equal(t, models.StatusRejected, ActionReject.Status())
	assert.Empty(t, ActionApprove.Confirmation())
}

func TestPatchStatus(t *testing.T) {
	list := []models.User{{ID: "a"}, {ID: "b", Status: models.StatusPending}, {ID: "c", Status: models.StatusRejected}}

	got := PatchStatus(list, "b", models.StatusApproved)
	assert.Equal(t, models.StatusApproved, got[1].Status)
	assert.Equal(t, models.SellerStatus(""), got[0].Status)
	assert.Equal(t, models.StatusRejected, got[2].Status)
	assert.Equal(t, models.StatusPending, list[1].Status, "input untouched")

	assert.Equal(t, list, PatchStatus(list, "zz", models.StatusApproved))
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("all figures", func(t *testing.T) {
		s, b := setup(t)
		b.EXPECT().GetUsers(gomock.Any(), "tok").Return(make([]models.User, 7), nil)
		b.EXPECT().GetSellers(gomock.Any(), "tok").Return(make([]models.User, 3), nil)
		b.EXPECT().GetPendingSellers(gomock.Any(), "tok").Return(make([]models.User, 1), nil)
		b.EXPECT().ShowBooks(gomock.Any(), "tok").Return(make([]models.Book, 12), nil)

		st, err := s.Stats(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, Stats{Users: 7, Sellers: 3, Pending: 1, Books: 12}, st)
	})

	t.Run("one failure fails all", func(t *testing.T) {
		s, b := setup(t)
		b.EXPECT().GetUsers(gomock.Any(), "tok").Return(nil, &backend.APIError{Status: 401})
		b.EXPECT().GetSellers(gomock.Any(), "tok").Return(nil, nil).AnyTimes()
		b.EXPECT().GetPendingSellers(gomock.Any(), "tok").Return(nil, nil).AnyTimes()
		b.EXPECT().ShowBooks(gomock.Any(), "tok").Return(nil, nil).AnyTimes()

		_, err := s.Stats(ctx, admin)
		assert.ErrorIs(t, err, backend.ErrUnauthorized)
	})
}
