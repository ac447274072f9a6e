package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

type NewAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// ShowAddresses lists the caller's saved addresses. The backend answers
// with an array, {addresses: [...]} or a lone address object.
func (c *Client) ShowAddresses(ctx context.Context, token string) ([]models.Address, error) {
	body, err := c.getJSON(ctx, token, "/address/showAddress", "address.list")
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single struct {
			ID     string `json:"_id"`
			Street string `json:"street"`
		}
		if err := json.Unmarshal(trimmed, &single); err == nil && (single.ID != "" || single.Street != "") {
			var one models.Address
			if err := json.Unmarshal(trimmed, &one); err != nil {
				return nil, err
			}
			return []models.Address{one}, nil
		}
	}
	return decodeList[models.Address](body, "addresses", "address")
}

func (c *Client) AddAddress(ctx context.Context, token string, a NewAddress) (string, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, token, "/address/addAddress", "address.add", a)
	if err != nil {
		return "", err
	}
	return messageOf(body), nil
}
