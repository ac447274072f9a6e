// Package cart runs the cart and checkout flow on behalf of one browser
// session. The backend owns the cart; every mutation replaces the local
// copy with the list the backend answers with.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/pricing"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

//go:generate mockgen -source=cart.go -destination=./mocks/backend_mock.go -package=mocks

type Backend interface {
	ShowInCart(ctx context.Context, token string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, token, bookID string, quantity int) error
	UpdateCart(ctx context.Context, token, bookID string, quantity int) ([]models.CartItem, error)
	RemoveFromCart(ctx context.Context, token, bookID string) ([]models.CartItem, error)
	ShowAddresses(ctx context.Context, token string) ([]models.Address, error)
	Checkout(ctx context.Context, token string, req backend.CheckoutRequest) (models.Order, error)
}

var (
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrNotConfirmed         = errors.New("removal was not confirmed")
	ErrNoAddressSelected    = errors.New("no address selected")
	ErrAddressNotFound      = errors.New("selected address not found")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

type State int

const (
	StateEmpty State = iota
	StatePopulated
	// StateSucceeded is terminal: the order went through and the cart view
	// was cleared.
	StateSucceeded
)

type Line struct {
	Item           models.CartItem
	EffectivePrice decimal.Decimal
	LineTotal      decimal.Decimal
	CanDecrement   bool
	CanIncrement   bool
}

type View struct {
	State  State
	Lines  []Line
	Totals pricing.Totals
}

func NewView(items []models.CartItem) View {
	v := View{State: StateEmpty, Totals: pricing.Compute(items)}
	for _, item := range items {
		line := Line{Item: item, EffectivePrice: decimal.Zero, LineTotal: decimal.Zero}
		if item.Book != nil {
			line.EffectivePrice = pricing.EffectivePrice(*item.Book)
			line.LineTotal = line.EffectivePrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			line.CanDecrement = item.Quantity > 1
			line.CanIncrement = item.Quantity < item.Book.Stock
		}
		v.Lines = append(v.Lines, line)
	}
	if len(v.Lines) > 0 {
		v.State = StatePopulated
	}
	return v
}

type Receipt struct {
	Order   models.Order
	Address models.ShippingAddress
	Method  models.PaymentMethod
}

type Service struct {
	backend Backend
	bus     session.Publisher
}

func New(b Backend, bus session.Publisher) *Service {
	return &Service{backend: b, bus: bus}
}

func (s *Service) Load(ctx context.Context, c session.Caller) (View, error) {
	items, err := s.backend.ShowInCart(ctx, c.Token)
	if err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}
	s.notify(c, items)
	return NewView(items), nil
}

// Add puts quantity copies of a book into the cart from the book page.
func (s *Service) Add(ctx context.Context, c session.Caller, bookID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := s.backend.AddToCart(ctx, c.Token, bookID, quantity); err != nil {
		return err
	}
	items, err := s.backend.ShowInCart(ctx, c.Token)
	if err != nil {
		// The add succeeded; only the badge refresh failed.
		logger.Get().Warn().Err(err).Msg("failed to refresh cart after add")
		return nil
	}
	s.notify(c, items)
	return nil
}

// SetQuantity asks the backend for a new quantity. The backend may clamp it
// to stock; the returned view shows what it decided.
func (s *Service) SetQuantity(ctx context.Context, c session.Caller, bookID string, quantity int) (View, error) {
	if quantity < 1 {
		return View{}, ErrInvalidQuantity
	}
	items, err := s.backend.UpdateCart(ctx, c.Token, bookID, quantity)
	if err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}
	s.notify(c, items)
	return NewView(items), nil
}

func (s *Service) Remove(ctx context.Context, c session.Caller, bookID string, confirmed bool) (View, error) {
	if !confirmed {
		return View{}, ErrNotConfirmed
	}
	items, err := s.backend.RemoveFromCart(ctx, c.Token, bookID)
	if err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}
	s.notify(c, items)
	return NewView(items), nil
}

// Checkout places the order for the saved address addressID.
func (s *Service) Checkout(ctx context.Context, c session.Caller, addressID string, method models.PaymentMethod) (Receipt, error) {
	if addressID == "" {
		return Receipt{}, ErrNoAddressSelected
	}
	if !method.Valid() {
		return Receipt{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	addresses, err := s.backend.ShowAddresses(ctx, c.Token)
	if err != nil {
		return Receipt{}, err
	}
	addr, ok := findAddress(addresses, addressID)
	if !ok {
		return Receipt{}, ErrAddressNotFound
	}

	shipping := ShippingFor(addr)
	order, err := s.backend.Checkout(ctx, c.Token, backend.CheckoutRequest{
		ShippingAddress: shipping,
		PaymentMethod:   method,
	})
	if err != nil {
		return Receipt{}, err
	}
	s.notify(c, nil)
	return Receipt{Order: order, Address: shipping, Method: method}, nil
}

// ShippingFor fills the checkout payload from a saved address, falling back
// to alternative field names and to the default country.
func ShippingFor(a models.Address) models.ShippingAddress {
	country := a.Country
	if country == "" {
		country = consts.ShippingCountry
	}
	return models.ShippingAddress{
		FullName: firstNonEmpty(a.FullName, a.Name),
		Email:    a.Email,
		Phone:    a.Phone,
		Street:   a.Street,
		City:     a.City,
		State:    a.State,
		ZipCode:  firstNonEmpty(a.ZipCode, a.Zip),
		Country:  country,
	}
}

func (s *Service) notify(c session.Caller, items []models.CartItem) {
	s.bus.Publish(c.SessionID, session.Event{
		Kind:      session.CartChanged,
		CartCount: pricing.Compute(items).Count,
	})
}

func findAddress(list []models.Address, id string) (models.Address, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return models.Address{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
