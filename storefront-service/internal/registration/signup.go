package registration

import (
	"context"
	"errors"
	"strings"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
)

// SignupForm is the plain customer signup. The form only relies on the
// browser's own required checks; the backend validates the rest.
type SignupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Mobile   string `form:"mobno"`
	Password string `form:"password"`
}

type SignupResult struct {
	Message string
	// Redirect is set when the backend confirmed the account; the page then
	// moves on to login after a short delay.
	Redirect bool
}

// Signup registers a customer. Backend errors are returned as a result
// carrying the backend's message; only cancellation is an error.
func (w *Wizard) Signup(ctx context.Context, f SignupForm) (SignupResult, error) {
	msg, err := w.backend.Register(ctx, backend.NewUser{
		Name:     f.Name,
		Email:    f.Email,
		Mobile:   f.Mobile,
		Password: f.Password,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return SignupResult{}, err
		}
		logger.Get().Error().Err(err).Msg("signup failed")
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return SignupResult{Message: apiErr.Error()}, nil
		}
		return SignupResult{Message: "Server error"}, nil
	}
	return SignupResult{Message: msg, Redirect: strings.Contains(msg, "successful")}, nil
}
