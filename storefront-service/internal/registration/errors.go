package registration

import (
	"errors"
	"strings"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
)

// duplicateKey marks the backend's unique index violations.
const duplicateKey = "E11000"

// Failure is a failed submission as the wizard shows it: a banner and, for
// duplicates of a personal field, an inline error on that field.
type Failure struct {
	Banner       string
	Field        string
	FieldMessage string
	Cause        error
}

func (f *Failure) Error() string { return f.Banner }

func (f *Failure) Unwrap() error { return f.Cause }

// RestartsWizard reports whether the failure sends the user back to the
// personal info step.
func (f *Failure) RestartsWizard() bool { return f.Field != "" }

func (f *Failure) apply(d *Draft) {
	if !f.RestartsWizard() {
		return
	}
	if d.Errors == nil {
		d.Errors = make(map[string]string)
	}
	d.Errors[f.Field] = f.FieldMessage
	d.Step = StepPersonalInfo
}

// Classify maps a registration error to what the user is told.
func Classify(err error) *Failure {
	f := &Failure{Cause: err}
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		switch {
		case !strings.Contains(msg, duplicateKey):
			f.Banner = apiErr.Error()
		case strings.Contains(msg, "email"):
			f.Banner = "This email address is already registered. Please use a different email."
			f.Field, f.FieldMessage = "email", "Email already exists"
		case strings.Contains(msg, "mobno"):
			f.Banner = "This mobile number is already registered. Please use a different number."
			f.Field, f.FieldMessage = "mobno", "Mobile number already exists"
		default:
			f.Banner = "This information is already registered. Please check your details."
		}
	case errors.Is(err, backend.ErrUnreachable):
		f.Banner = "Unable to connect to server. Please make sure the backend is running."
	case errors.Is(err, backend.ErrNoResponse):
		f.Banner = "No response from server. Please check your connection."
	default:
		f.Banner = "Registration failed. Please try again."
	}
	return f
}
