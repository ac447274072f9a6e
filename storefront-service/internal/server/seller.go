package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/registration"
)

const routeSellerRegister = "/register/seller"

type wizardView struct {
	Draft  *registration.Draft
	Steps  []registration.Step
	Banner string
}

func (s *Server) SellerWizardPage(ctx *gin.Context) {
	d, err := s.wizard.Load(ctx, callerOf(ctx).SessionID)
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load registration")
		return
	}
	s.renderWizard(ctx, http.StatusOK, d, "")
}

func (s *Server) renderWizard(ctx *gin.Context, status int, d *registration.Draft, banner string) {
	s.render(ctx, status, "seller_register", page{
		Title:   "Seller registration",
		Content: wizardView{Draft: d, Steps: registration.Steps(), Banner: banner},
	})
}

// SellerWizardStep takes the fields of the current step and moves the
// wizard back, forward or, from the last step, submits the application.
func (s *Server) SellerWizardStep(ctx *gin.Context) {
	log := logger.Get()
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, 2*maxUploadSize+1<<20)

	sid, err := s.ensureSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to create web session")
		s.renderError(ctx, http.StatusInternalServerError, "Could not start a session. Please try again.")
		return
	}
	d, err := s.wizard.Load(ctx, sid)
	if err != nil {
		s.pageFailed(ctx, err, "Failed to load registration")
		return
	}
	if err := s.collectStep(ctx, d); err != nil {
		log.Error().Err(err).Int("step", int(d.Step)).Msg("failed to read registration step")
		s.renderWizard(ctx, http.StatusBadRequest, d, "Failed to read the form. Please try again.")
		return
	}

	switch {
	case ctx.PostForm("action") == "back":
		s.wizard.Back(d)
	case d.Step == registration.StepBankDetails:
		s.submitSeller(ctx, sid, d)
		return
	default:
		s.wizard.Advance(d)
	}
	if err := s.wizard.Save(ctx, sid, d); err != nil {
		s.pageFailed(ctx, err, "Failed to save registration")
		return
	}
	ctx.Redirect(http.StatusSeeOther, routeSellerRegister)
}

func (s *Server) submitSeller(ctx *gin.Context, sid string, d *registration.Draft) {
	log := logger.Get()
	release, ok := s.guard(ctx, "seller-register", routeSellerRegister)
	if !ok {
		return
	}
	defer release()

	msg, err := s.wizard.Submit(ctx, d)
	var failure *registration.Failure
	switch {
	case err == nil:
		if err := s.wizard.Discard(ctx, sid); err != nil {
			log.Error().Err(err).Msg("failed to discard registration draft")
		}
		s.render(ctx, http.StatusOK, "seller_register_done", page{
			Title:      "Registration submitted",
			Content:    msg,
			Refresh:    consts.SellerRedirectDelay,
			RefreshURL: consts.RouteLogin,
		})
		return
	case errors.Is(err, context.Canceled):
		ctx.Abort()
		return
	case errors.Is(err, registration.ErrInvalidStep):
		s.saveAndRender(ctx, sid, d, http.StatusBadRequest, "")
	case errors.As(err, &failure):
		s.saveAndRender(ctx, sid, d, http.StatusBadGateway, failure.Banner)
	default:
		log.Error().Err(err).Msg("seller registration failed")
		s.saveAndRender(ctx, sid, d, http.StatusInternalServerError, "Registration failed. Please try again.")
	}
}

func (s *Server) saveAndRender(ctx *gin.Context, sid string, d *registration.Draft, status int, banner string) {
	if err := s.wizard.Save(ctx, sid, d); err != nil {
		logger.Get().Error().Err(err).Msg("failed to save registration draft")
	}
	s.renderWizard(ctx, status, d, banner)
}

// collectStep copies the posted fields of the draft's current step into it.
// Documents already uploaded are kept when no new file is picked.
func (s *Server) collectStep(ctx *gin.Context, d *registration.Draft) error {
	switch d.Step {
	case registration.StepPersonalInfo:
		var p registration.PersonalInfo
		if err := ctx.ShouldBind(&p); err != nil {
			return err
		}
		d.SetPersonal(p)
	case registration.StepShopDetails:
		var sh registration.ShopDetails
		if err := ctx.ShouldBind(&sh); err != nil {
			return err
		}
		d.SetShop(sh)
	case registration.StepDocuments:
		front, err := formDocument(ctx, "aadharFrontImage", d.Documents.Front)
		if err != nil {
			return err
		}
		back, err := formDocument(ctx, "aadharBackImage", d.Documents.Back)
		if err != nil {
			return err
		}
		d.SetDocuments(front, back)
	case registration.StepBankDetails:
		var b registration.BankDetails
		if err := ctx.ShouldBind(&b); err != nil {
			return err
		}
		d.SetBank(b)
	}
	return nil
}

func formDocument(ctx *gin.Context, field string, current *registration.Document) (*registration.Document, error) {
	up, err := formUpload(ctx, field)
	if err != nil || up == nil {
		return current, err
	}
	return &registration.Document{Filename: up.Filename, ContentType: up.ContentType, Data: up.Data}, nil
}
