// Package registration drives the four step seller registration wizard and
// the plain customer signup.
package registration

import (
	"context"
	"errors"

	"github.com/go-playground/validator"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/validation"
)

//go:generate mockgen -source=wizard.go -destination=./mocks/wizard_mock.go -package=mocks

type Backend interface {
	Register(ctx context.Context, u backend.NewUser) (string, error)
	RegisterSeller(ctx context.Context, app backend.SellerApplication) (string, error)
}

type DraftStore interface {
	GetDraft(ctx context.Context, sid string) ([]byte, error)
	SaveDraft(ctx context.Context, sid string, draft []byte) error
	DeleteDraft(ctx context.Context, sid string) error
}

var (
	ErrNotLastStep = errors.New("registration can only be submitted from the bank details step")
	ErrInvalidStep = errors.New("current step has invalid fields")
)

const sellerSuccess = "Registration successful! Pending admin approval."

type Wizard struct {
	backend  Backend
	drafts   DraftStore
	validate *validator.Validate
}

func NewWizard(b Backend, drafts DraftStore) *Wizard {
	return &Wizard{backend: b, drafts: drafts, validate: validation.New()}
}

// Load returns the draft of sid, or a fresh one when there is none. An
// empty sid is a browser without a session yet.
func (w *Wizard) Load(ctx context.Context, sid string) (*Draft, error) {
	if sid == "" {
		return NewDraft(), nil
	}
	data, err := w.drafts.GetDraft(ctx, sid)
	if errors.Is(err, storerrros.ErrDraftNotFound) {
		return NewDraft(), nil
	}
	if err != nil {
		return nil, err
	}
	d, err := DecodeDraft(data)
	if err != nil {
		logger.Get().Warn().Err(err).Str("sid", sid).Msg("starting over with a fresh draft")
		return NewDraft(), nil
	}
	return d, nil
}

func (w *Wizard) Save(ctx context.Context, sid string, d *Draft) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	return w.drafts.SaveDraft(ctx, sid, data)
}

func (w *Wizard) Discard(ctx context.Context, sid string) error {
	err := w.drafts.DeleteDraft(ctx, sid)
	if errors.Is(err, storerrros.ErrDraftNotFound) {
		return nil
	}
	return err
}

// Validate checks the fields of step only.
func (w *Wizard) Validate(step Step, d *Draft) validation.FieldErrors {
	switch step {
	case StepPersonalInfo:
		return validation.Check(w.validate, d.Personal)
	case StepShopDetails:
		return validation.Check(w.validate, d.Shop)
	case StepDocuments:
		return validation.Check(w.validate, d.Documents)
	case StepBankDetails:
		return validation.Check(w.validate, d.Bank)
	default:
		return nil
	}
}

// Advance validates the current step and, when it passes, moves forward.
// The errors of that validation replace the ones shown. On the last step a
// passing validation reports ready and leaves the step where it is.
func (w *Wizard) Advance(d *Draft) (ok, ready bool) {
	errs := w.Validate(d.Step, d)
	d.Errors = errs
	if len(errs) > 0 {
		return false, false
	}
	if d.Step == StepBankDetails {
		return true, true
	}
	d.Step++
	return true, false
}

// Back moves one step back without validating or clearing anything.
func (w *Wizard) Back(d *Draft) {
	if d.Step > StepPersonalInfo {
		d.Step--
	}
}

// Submit sends the application. A failure is returned as *Failure and has
// already been applied to d.
func (w *Wizard) Submit(ctx context.Context, d *Draft) (string, error) {
	if d.Step != StepBankDetails {
		return "", ErrNotLastStep
	}
	if ok, _ := w.Advance(d); !ok {
		return "", ErrInvalidStep
	}
	msg, err := w.backend.RegisterSeller(ctx, application(d))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		f := Classify(err)
		f.apply(d)
		logger.Get().Error().Err(err).Msg("seller registration failed")
		return "", f
	}
	if msg == "" {
		msg = sellerSuccess
	}
	return msg, nil
}

func application(d *Draft) backend.SellerApplication {
	app := backend.SellerApplication{
		Name:     d.Personal.Name,
		Email:    d.Personal.Email,
		Password: d.Personal.Password,
		Mobile:   d.Personal.Mobile,
		Details: models.SellerDetails{
			ShopName:     d.Shop.ShopName,
			ShopAddress:  d.Shop.ShopAddress,
			GSTNumber:    d.Shop.GSTNumber,
			AadharNumber: d.Shop.AadharNumber,
			PANNumber:    d.Shop.PANNumber,
			BankDetails: models.BankDetails{
				AccountNumber:     d.Bank.AccountNumber,
				IFSCCode:          d.Bank.IFSCCode,
				BankName:          d.Bank.BankName,
				AccountHolderName: d.Bank.AccountHolderName,
			},
		},
	}
	if f := d.Documents.Front; f != nil {
		app.Front = backend.Upload{Filename: f.Filename, ContentType: f.ContentType, Data: f.Data}
	}
	if b := d.Documents.Back; b != nil {
		app.Back = backend.Upload{Filename: b.Filename, ContentType: b.ContentType, Data: b.Data}
	}
	return app
}
