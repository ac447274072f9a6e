package server

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
)

const (
	callerKey = "caller"
	cookieKey = "cookie"
	patchKey  = "patch"
)

func init() {
	gob.Register(Flash{})
	gob.Register(statusPatch{})
}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a notice shown once on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log := logger.Get()
		log.Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// SessionMiddleware resolves who is signed in from the web session named by
// the cookie. Requests without a known session are anonymous; a session is
// only created once something has to be stored for it.
func (s *Server) SessionMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log := logger.Get()
		// A cookie that fails to decode yields an empty one.
		cookie, _ := s.cookies.Get(ctx.Request, consts.SessionCookieName)
		sid, _ := cookie.Values[consts.SessionIDKey].(string)

		var caller session.Caller
		if sid != "" {
			var err error
			caller, err = s.manager.Resolve(ctx, sid)
			switch {
			case errors.Is(err, storerrros.ErrSessionNotFound):
				delete(cookie.Values, consts.SessionIDKey)
				caller = session.Caller{}
			case err != nil:
				log.Error().Err(err).Msg("failed to load web session")
				ctx.String(http.StatusInternalServerError, "session unavailable")
				ctx.Abort()
				return
			}
		}
		ctx.Set(callerKey, caller)
		ctx.Set(cookieKey, cookie)
		ctx.Next()
	}
}

// ensureSession returns the caller's session id, creating the session and
// pointing the cookie at it when there is none yet.
func (s *Server) ensureSession(ctx *gin.Context) (string, error) {
	c := callerOf(ctx)
	if c.SessionID != "" {
		return c.SessionID, nil
	}
	sid, err := s.Storage.CreateSession(ctx)
	if err != nil {
		return "", err
	}
	if cookie := cookieOf(ctx); cookie != nil {
		cookie.Values[consts.SessionIDKey] = sid
		if err := cookie.Save(ctx.Request, ctx.Writer); err != nil {
			return "", err
		}
	}
	c.SessionID = sid
	ctx.Set(callerKey, c)
	return sid, nil
}

// RequireRole lets signed-in callers through. With roles given, the caller
// must also hold one of them. The backend still decides on every call.
func (s *Server) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c := callerOf(ctx)
		if c.Identity.Anonymous() {
			ctx.Redirect(http.StatusSeeOther, consts.RouteLogin)
			ctx.Abort()
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, c.Identity.Role) {
			ctx.Redirect(http.StatusSeeOther, consts.RouteNotAuthorized)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func callerOf(ctx *gin.Context) session.Caller {
	if v, ok := ctx.Get(callerKey); ok {
		if c, ok := v.(session.Caller); ok {
			return c
		}
	}
	return session.Caller{}
}

func cookieOf(ctx *gin.Context) *sessions.Session {
	if v, ok := ctx.Get(cookieKey); ok {
		if c, ok := v.(*sessions.Session); ok {
			return c
		}
	}
	return nil
}

func (s *Server) flash(ctx *gin.Context, kind FlashKind, msg string) {
	cookie := cookieOf(ctx)
	if cookie == nil {
		return
	}
	cookie.AddFlash(Flash{Kind: kind, Message: msg})
	if err := cookie.Save(ctx.Request, ctx.Writer); err != nil {
		logger.Get().Error().Err(err).Msg("failed to save flash")
	}
}

func (s *Server) takeFlashes(ctx *gin.Context) []Flash {
	cookie := cookieOf(ctx)
	if cookie == nil {
		return nil
	}
	raw := cookie.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := cookie.Save(ctx.Request, ctx.Writer); err != nil {
		logger.Get().Error().Err(err).Msg("failed to clear flashes")
	}
	out := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fm, ok := f.(Flash); ok {
			out = append(out, fm)
		}
	}
	return out
}

// backendFailed handles the errors every page treats alike: abandoned
// requests, expired sessions and missing rights. It reports whether it
// wrote the response.
func (s *Server) backendFailed(ctx *gin.Context, err error) bool {
	log := logger.Get()
	switch {
	case errors.Is(err, context.Canceled) || ctx.Request.Context().Err() != nil:
		log.Debug().Err(err).Str("path", ctx.Request.URL.Path).Msg("request abandoned")
		ctx.Abort()
		return true
	case errors.Is(err, backend.ErrUnauthorized):
		c := callerOf(ctx)
		if lerr := s.manager.Logout(ctx, c.SessionID); lerr != nil {
			log.Error().Err(lerr).Msg("failed to clear rejected token")
		}
		ctx.Redirect(http.StatusSeeOther, consts.RouteLogin)
		ctx.Abort()
		return true
	case errors.Is(err, backend.ErrForbidden):
		ctx.Redirect(http.StatusSeeOther, consts.RouteNotAuthorized)
		ctx.Abort()
		return true
	default:
		return false
	}
}

// describe turns a backend error into page text: connectivity problems get
// a fixed text, HTTP errors the backend's message, anything else fallback.
func describe(err error, fallback string) string {
	switch {
	case errors.Is(err, backend.ErrUnreachable), errors.Is(err, backend.ErrNoResponse):
		return "Could not reach the server. Please try again."
	default:
		return backend.Message(err, fallback)
	}
}

// pageFailed renders the error page for a failed load.
func (s *Server) pageFailed(ctx *gin.Context, err error, fallback string) {
	if s.backendFailed(ctx, err) {
		return
	}
	logger.Get().Error().Err(err).Str("path", ctx.Request.URL.Path).Msg(fallback)
	s.renderError(ctx, http.StatusBadGateway, describe(err, fallback))
}

// actionFailed flashes the failure of a mutation and sends the browser back
// to back.
func (s *Server) actionFailed(ctx *gin.Context, err error, msg, back string) {
	if s.backendFailed(ctx, err) {
		return
	}
	logger.Get().Error().Err(err).Str("path", ctx.Request.URL.Path).Msg(msg)
	s.flash(ctx, FlashError, msg)
	ctx.Redirect(http.StatusSeeOther, back)
}

// guard rejects a second submission of action while one is running.
func (s *Server) guard(ctx *gin.Context, action, back string) (release func(), ok bool) {
	release, ok = s.gate.Acquire(callerOf(ctx).SessionID, action)
	if !ok {
		s.flash(ctx, FlashError, "Request already in progress")
		ctx.Redirect(http.StatusSeeOther, back)
	}
	return release, ok
}
