package backend

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

var ErrNoTokenIssued = errors.New("login response carried no token")

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is the plain customer signup body.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobno"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SellerApplication is everything the seller wizard collects.
type SellerApplication struct {
	Name     string
	Email    string
	Password string
	Mobile   string
	Details  models.SellerDetails
	Front    Upload
	Back     Upload
}

func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, "", "/auth/login", "auth.login", creds)
	if err != nil {
		return "", err
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := unmarshal(body, &payload); err != nil || payload.Token == "" {
		return "", ErrNoTokenIssued
	}
	return payload.Token, nil
}

func (c *Client) Register(ctx context.Context, u NewUser) (string, error) {
	u.Role = models.RoleUser.String()
	body, err := c.sendJSON(ctx, http.MethodPost, "", "/auth/register", "auth.register", u)
	if err != nil {
		return "", err
	}
	return messageOf(body), nil
}

// RegisterSeller posts the seller application as one multipart body with
// bracketed keys for the nested seller and bank details.
func (c *Client) RegisterSeller(ctx context.Context, app SellerApplication) (string, error) {
	d := app.Details
	fields := map[string]string{
		"name":                                          app.Name,
		"email":                                         app.Email,
		"password":                                      app.Password,
		"mobno":                                         mobileField(app.Mobile),
		"role":                                          models.RoleSeller.String(),
		"SellerDetails[shopName]":                       d.ShopName,
		"SellerDetails[shopAddress]":                    d.ShopAddress,
		"SellerDetails[gstNumber]":                      d.GSTNumber,
		"SellerDetails[aadharNumber]":                   d.AadharNumber,
		"SellerDetails[panNumber]":                      d.PANNumber,
		"SellerDetails[bankDetails][accountNumber]":     d.BankDetails.AccountNumber,
		"SellerDetails[bankDetails][ifscCode]":          d.BankDetails.IFSCCode,
		"SellerDetails[bankDetails][bankName]":          d.BankDetails.BankName,
		"SellerDetails[bankDetails][accountHolderName]": d.BankDetails.AccountHolderName,
	}
	front, back := app.Front, app.Back
	front.Field, back.Field = "aadharFrontImage", "aadharBackImage"
	body, err := c.sendMultipart(ctx, "", "/auth/register", "auth.register_seller", fields, []Upload{front, back})
	if err != nil {
		return "", err
	}
	return messageOf(body), nil
}

// mobileField sends the mobile number in integer form.
func mobileField(mobile string) string {
	n, err := strconv.ParseInt(mobile, 10, 64)
	if err != nil {
		return mobile
	}
	return strconv.FormatInt(n, 10)
}
