package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/registration"
)

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type loginView struct {
	Email string
	Error string
}

func (s *Server) LoginPage(ctx *gin.Context) {
	if !callerOf(ctx).Identity.Anonymous() {
		ctx.Redirect(http.StatusSeeOther, consts.RouteDashboard)
		return
	}
	s.render(ctx, http.StatusOK, "login", page{Title: "Login", Content: loginView{}})
}

func (s *Server) Login(ctx *gin.Context) {
	log := logger.Get()
	var form loginForm
	if err := ctx.ShouldBind(&form); err != nil {
		s.render(ctx, http.StatusBadRequest, "login", page{Title: "Login", Content: loginView{Error: "Invalid login form"}})
		return
	}
	token, err := s.Backend.Login(ctx, backend.Credentials{Email: form.Email, Password: form.Password})
	if err == nil {
		_, err = s.manager.Decode(token)
	}
	if err == nil {
		var sid string
		if sid, err = s.ensureSession(ctx); err != nil {
			log.Error().Err(err).Msg("failed to create web session")
			s.render(ctx, http.StatusInternalServerError, "login", page{
				Title:   "Login",
				Content: loginView{Email: form.Email, Error: "Could not start a session. Please try again."},
			})
			return
		}
		_, err = s.manager.Login(ctx, sid, token)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			ctx.Abort()
			return
		}
		log.Error().Err(err).Str("email", form.Email).Msg("login failed")
		s.render(ctx, http.StatusUnauthorized, "login", page{
			Title:   "Login",
			Content: loginView{Email: form.Email, Error: describe(err, "Login failed. Please check your credentials.")},
		})
		return
	}
	ctx.Redirect(http.StatusSeeOther, consts.RouteDashboard)
}

func (s *Server) Logout(ctx *gin.Context) {
	log := logger.Get()
	c := callerOf(ctx)
	if err := s.manager.Logout(ctx, c.SessionID); err != nil {
		log.Error().Err(err).Msg("failed to log out")
		s.flash(ctx, FlashError, "Failed to log out")
		ctx.Redirect(http.StatusSeeOther, consts.RouteBooks)
		return
	}
	ctx.Redirect(http.StatusSeeOther, consts.RouteLogin)
}

type signupView struct {
	Form    registration.SignupForm
	Message string
	Success bool
}

func (s *Server) SignupPage(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "signup", page{Title: "Sign up", Content: signupView{}})
}

func (s *Server) Signup(ctx *gin.Context) {
	var form registration.SignupForm
	if err := ctx.ShouldBind(&form); err != nil {
		s.render(ctx, http.StatusBadRequest, "signup", page{Title: "Sign up", Content: signupView{Message: "Invalid signup form"}})
		return
	}
	res, err := s.wizard.Signup(ctx, form)
	if err != nil {
		ctx.Abort()
		return
	}
	p := page{Title: "Sign up", Content: signupView{Form: form, Message: res.Message, Success: res.Redirect}}
	if res.Redirect {
		p.Refresh, p.RefreshURL = consts.SignupRedirectDelay, consts.RouteLogin
	}
	s.render(ctx, http.StatusOK, "signup", p)
}

func (s *Server) NotAuthorized(ctx *gin.Context) {
	s.render(ctx, http.StatusForbidden, "not_authorized", page{Title: "Not authorized"})
}
