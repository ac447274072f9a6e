package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/cart/mocks"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

var caller = session.Caller{SessionID: "s1", Token: "tok"}

func book(id, price, discount string, stock int) *models.Book {
	b := &models.Book{ID: id, Title: "Title " + id, Price: decimal.RequireFromString(price), Stock: stock}
	if discount != "" {
		b.Discount = decimal.RequireFromString(discount)
	}
	return b
}

func setup(t *testing.T) (*Service, *mocks.MockBackend, *session.Bus) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctrl)
	bus := session.NewBus()
	return New(b, bus), b, bus
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("populated", func(t *testing.T) {
		s, b, bus := setup(t)
		b.EXPECT().ShowInCart(ctx, "tok").Return([]models.CartItem{
			{Book: book("b1", "100", "10", 5), Quantity: 2},
			{Book: book("b2", "50", "", 1), Quantity: 1},
		}, nil)

		v, err := s.Load(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, StatePopulated, v.State)
		require.Len(t, v.Lines, 2)
		assert.True(t, v.Lines[0].CanDecrement)
		assert.True(t, v.Lines[0].CanIncrement)
		assert.Equal(t, "180", v.Lines[0].LineTotal.String())
		assert.False(t, v.Lines[1].CanDecrement)
		assert.False(t, v.Lines[1].CanIncrement)
		assert.Equal(t, "230", v.Totals.Subtotal.String())
		assert.Equal(t, "20", v.Totals.Savings.String())

		n, ok := bus.CartCount("s1")
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("empty", func(t *testing.T) {
		s, b, _ := setup(t)
		b.EXPECT().ShowInCart(ctx, "tok").Return(nil, nil)

		v, err := s.Load(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, StateEmpty, v.State)
		assert.Empty(t, v.Lines)
	})

	t.Run("missing book renders zero line", func(t *testing.T) {
		s, b, _ := setup(t)
		b.EXPECT().ShowInCart(ctx, "tok").Return([]models.CartItem{{Quantity: 2}}, nil)

		v, err := s.Load(ctx, caller)
		require.NoError(t, err)
		require.Len(t, v.Lines, 1)
		assert.True(t, v.Lines[0].LineTotal.IsZero())
		assert.False(t, v.Lines[0].CanIncrement)
	})

	t.Run("backend error", func(t *testing.T) {
		s, b, bus := setup(t)
		b.EXPECT().ShowInCart(ctx, "tok").Return(nil, backend.ErrUnreachable)

		_, err := s.Load(ctx, caller)
		assert.ErrorIs(t, err, backend.ErrUnreachable)
		_, ok := bus.CartCount("s1")
		assert.False(t, ok)
	})

	t.Run("canceled while loading", func(t *testing.T) {
		s, b, bus := setup(t)
		cctx, cancel := context.WithCancel(ctx)
		b.EXPECT().ShowInCart(cctx, "tok").DoAndReturn(func(context.Context, string) ([]models.CartItem, error) {
			cancel()
			return []models.CartItem{{Book: book("b1", "10", "", 3), Quantity: 1}}, nil
		})

		_, err := s.Load(cctx, caller)
		assert.ErrorIs(t, err, context.Canceled)
		_, ok := bus.CartCount("s1")
		assert.False(t, ok, "late result must not be applied")
	})
}

func TestService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("below one is rejected locally", func(t *testing.T) {
		s, _, _ := setup(t)
		_, err := s.SetQuantity(ctx, caller, "b1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("backend answer replaces cart", func(t *testing.T) {
		s, b, bus := setup(t)
		b.EXPECT().UpdateCart(ctx, "tok", "b1", 9).Return([]models.CartItem{
			{Book: book("b1", "10", "", 4), Quantity: 4},
		}, nil)

		v, err := s.SetQuantity(ctx, caller, "b1", 9)
		require.NoError(t, err)
		assert.Equal(t, 4, v.Lines[0].Item.Quantity)
		assert.False(t, v.Lines[0].CanIncrement)
		n, _ := bus.CartCount("s1")
		assert.Equal(t, 4, n)
	})

	t.Run("failure", func(t *testing.T) {
		s, b, _ := setup(t)
		b.EXPECT().UpdateCart(ctx, "tok", "b1", 2).Return(nil, &backend.APIError{Status: 500})

		_, err := s.SetQuantity(ctx, caller, "b1", 2)
		assert.Error(t, err)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("needs confirmation", func(t *testing.T) {
		s, _, _ := setup(t)
		_, err := s.Remove(ctx, caller, "b1", false)
		assert.ErrorIs(t, err, ErrNotConfirmed)
	})

	t.Run("last item empties cart", func(t *testing.T) {
		s, b, bus := setup(t)
		b.EXPECT().RemoveFromCart(ctx, "tok", "b1").Return([]models.CartItem{}, nil)

		v, err := s.Remove(ctx, caller, "b1", true)
		require.NoError(t, err)
		assert.Equal(t, StateEmpty, v.State)
		n, ok := bus.CartCount("s1")
		assert.True(t, ok)
		assert.Equal(t, 0, n)
	})

	t.Run("failure", func(t *testing.T) {
		s, b, _ := setup(t)
		b.EXPECT().RemoveFromCart(ctx, "tok", "b1").Return(nil, errors.New("boom"))

		_, err := s.Remove(ctx, caller, "b1", true)
		assert.EqualError(t, err, "boom")
	})
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	s, b, bus := setup(t)
	b.EXPECT().AddToCart(ctx, "tok", "b1", 2).Return(nil)
	b.EXPECT().ShowInCart(ctx, "tok").Return([]models.CartItem{{Book: book("b1", "10", "", 9), Quantity: 2}}, nil)

	require.NoError(t, s.Add(ctx, caller, "b1", 2))
	n, _ := bus.CartCount("s1")
	assert.Equal(t, 2, n)

	assert.ErrorIs(t, s.Add(ctx, caller, "b1", 0), ErrInvalidQuantity)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()
	saved := []models.Address{
		{ID: "a1", Name: "Kiran", Street: "12 MG Road", City: "Pune", State: "MH", Zip: "411001"},
		{ID: "a2", FullName: "Dev", Street: "4 Park St", City: "Kolkata", State: "WB", ZipCode: "700016", Country: "IN"},
	}

	t.Run("no address selected", func(t *testing.T) {
		s, _, _ := setup(t)
		_, err := s.Checkout(ctx, caller, "", models.PaymentCashOnDelivery)
		assert.ErrorIs(t, err, ErrNoAddressSelected)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		s, _, _ := setup(t)
		_, err := s.Checkout(ctx, caller, "a1", "barter")
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("address vanished", func(t *testing.T) {
		s, b, _ := setup(t)
		b.EXPECT().ShowAddresses(ctx, "tok").Return(saved, nil)

		_, err := s.Checkout(ctx, caller, "a9", models.PaymentCashOnDelivery)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("success with fallbacks", func(t *testing.T) {
		s, b, bus := setup(t)
		bus.Publish("s1", session.Event{Kind: session.CartChanged, CartCount: 3})
		b.EXPECT().ShowAddresses(ctx, "tok").Return(saved, nil)
		b.EXPECT().Checkout(ctx, "tok", backend.CheckoutRequest{
			ShippingAddress: models.ShippingAddress{
				FullName: "Kiran",
				Street:   "12 MG Road",
				City:     "Pune",
				State:    "MH",
				ZipCode:  "411001",
				Country:  "India",
			},
			PaymentMethod: models.PaymentCashOnDelivery,
		}).Return(models.Order{ID: "o1"}, nil)

		r, err := s.Checkout(ctx, caller, "a1", models.PaymentCashOnDelivery)
		require.NoError(t, err)
		assert.Equal(t, "o1", r.Order.ID)
		n, _ := bus.CartCount("s1")
		assert.Equal(t, 0, n)
	})

	t.Run("backend refuses", func(t *testing.T) {
		s, b, bus := setup(t)
		bus.Publish("s1", session.Event{Kind: session.CartChanged, CartCount: 3})
		b.EXPECT().ShowAddresses(ctx, "tok").Return(saved, nil)
		b.EXPECT().Checkout(ctx, "tok", gomock.Any()).Return(models.Order{}, &backend.APIError{Status: 400, Message: "Out of stock"})

		_, err := s.Checkout(ctx, caller, "a2", models.PaymentRazorpay)
		assert.EqualError(t, err, "Out of stock")
		n, _ := bus.CartCount("s1")
		assert.Equal(t, 3, n, "cart untouched")
	})
}

func TestShippingFor(t *testing.T) {
	got := ShippingFor(models.Address{FullName: "A", Name: "B", Zip: "1", ZipCode: "2", Country: "Nepal"})
	assert.Equal(t, "A", got.FullName)
	assert.Equal(t, "2", got.ZipCode)
	assert.Equal(t, "Nepal", got.Country)
}
