// Package moderation holds the admin side of the marketplace: seller
// approval, rejection and removal, plus the dashboard figures.
package moderation

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

//go:generate mockgen -source=moderation.go -destination=./mocks/backend_mock.go -package=mocks

type Backend interface {
	GetUsers(ctx context.Context, token string) ([]models.User, error)
	GetSellers(ctx context.Context, token string) ([]models.User, error)
	GetPendingSellers(ctx context.Context, token string) ([]models.User, error)
	GetSellerByID(ctx context.Context, token, id string) (models.User, error)
	ApprovePendingRequest(ctx context.Context, token, id string) error
	RejectPendingRequest(ctx context.Context, token, id string) error
	DeleteSeller(ctx context.Context, token, id string) error
	ShowBooks(ctx context.Context, token string) ([]models.Book, error)
}

var ErrNotConfirmed = errors.New("action was not confirmed")

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
)

// Confirmation is the question asked before an action that needs one.
func (a Action) Confirmation() string {
	switch a {
	case ActionReject:
		return "Are you sure you want to reject this seller?"
	case ActionDelete:
		return "Are you sure you want to delete this seller? This action cannot be undone."
	default:
		return ""
	}
}

func (a Action) Succeeded() string {
	switch a {
	case ActionApprove:
		return "Seller approved successfully!"
	case ActionReject:
		return "Seller rejected successfully!"
	case ActionDelete:
		return "Seller deleted successfully!"
	default:
		return ""
	}
}

// Failed is the notice for a failed action, preferring the backend's text.
func (a Action) Failed(err error) string {
	switch a {
	case ActionApprove:
		return backend.Message(err, "Failed to approve seller")
	case ActionReject:
		return backend.Message(err, "Failed to reject seller")
	case ActionDelete:
		return "Failed to delete seller: " + backend.Message(err, err.Error())
	default:
		return err.Error()
	}
}

// Status is the status a seller has after a successful action.
func (a Action) Status() models.SellerStatus {
	switch a {
	case ActionApprove:
		return models.StatusApproved
	case ActionReject:
		return models.StatusRejected
	default:
		return ""
	}
}

type Service struct {
	backend Backend
}

func New(b Backend) *Service {
	return &Service{backend: b}
}

// Apply runs action against seller id. Reject and delete need confirmed;
// approve never does.
func (s *Service) Apply(ctx context.Context, c session.Caller, action Action, id string, confirmed bool) error {
	switch action {
	case ActionApprove:
		return s.backend.ApprovePendingRequest(ctx, c.Token, id)
	case ActionReject:
		if !confirmed {
			return ErrNotConfirmed
		}
		return s.backend.RejectPendingRequest(ctx, c.Token, id)
	case ActionDelete:
		if !confirmed {
			return ErrNotConfirmed
		}
		return s.backend.DeleteSeller(ctx, c.Token, id)
	default:
		return errors.New("unknown moderation action " + string(action))
	}
}

// PatchStatus returns list with only the record id carrying status. The
// input slice is left as is.
func PatchStatus(list []models.User, id string, status models.SellerStatus) []models.User {
	out := make([]models.User, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

type Stats struct {
	Users   int
	Sellers int
	Pending int
	Books   int
}

// Stats fetches the admin dashboard figures concurrently. Any failure
// fails the whole dashboard.
func (s *Service) Stats(ctx context.Context, c session.Caller) (Stats, error) {
	var st Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.backend.GetUsers(gctx, c.Token)
		st.Users = len(users)
		return err
	})
	g.Go(func() error {
		sellers, err := s.backend.GetSellers(gctx, c.Token)
		st.Sellers = len(sellers)
		return err
	})
	g.Go(func() error {
		pending, err := s.backend.GetPendingSellers(gctx, c.Token)
		st.Pending = len(pending)
		return err
	})
	g.Go(func() error {
		books, err := s.backend.ShowBooks(gctx, c.Token)
		st.Books = len(books)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error().Err(err).Msg("failed to load admin stats")
		return Stats{}, err
	}
	return st, nil
}

func (s *Service) Users(ctx context.Context, c session.Caller) ([]models.User, error) {
	return s.backend.GetUsers(ctx, c.Token)
}

func (s *Service) Sellers(ctx context.Context, c session.Caller) ([]models.User, error) {
	return s.backend.GetSellers(ctx, c.Token)
}

func (s *Service) Pending(ctx context.Context, c session.Caller) ([]models.User, error) {
	return s.backend.GetPendingSellers(ctx, c.Token)
}

func (s *Service) Seller(ctx context.Context, c session.Caller, id string) (models.User, error) {
	return s.backend.GetSellerByID(ctx, c.Token, id)
}
