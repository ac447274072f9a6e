package backend

import (
	"context"
	"net/http"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

func (c *Client) GetUsers(ctx context.Context, token string) ([]models.User, error) {
	return c.listUsers(ctx, token, "/admin/getUsers", "admin.users")
}

func (c *Client) GetSellers(ctx context.Context, token string) ([]models.User, error) {
	return c.listUsers(ctx, token, "/admin/getSellers", "admin.sellers")
}

func (c *Client) GetPendingSellers(ctx context.Context, token string) ([]models.User, error) {
	return c.listUsers(ctx, token, "/admin/getPendingSellers", "admin.pending")
}

func (c *Client) GetSellerByID(ctx context.Context, token, id string) (models.User, error) {
	body, err := c.getJSON(ctx, token, "/admin/getSellerById/"+escape(id), "admin.seller")
	if err != nil {
		return models.User{}, err
	}
	return decodeOne[models.User](body, "seller", "user", "data")
}

func (c *Client) ApprovePendingRequest(ctx context.Context, token, id string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, token, "/admin/approvePendingRequest/"+escape(id), "admin.approve", nil)
	return err
}

func (c *Client) RejectPendingRequest(ctx context.Context, token, id string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, token, "/admin/rejectPendingRequest/"+escape(id), "admin.reject", nil)
	return err
}

func (c *Client) DeleteSeller(ctx context.Context, token, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, token, "/admin/deleteSeller/"+escape(id), "admin.delete_seller", nil)
	return err
}

func (c *Client) listUsers(ctx context.Context, token, path, endpoint string) ([]models.User, error) {
	body, err := c.getJSON(ctx, token, path, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](body, "users", "sellers", "data")
}
