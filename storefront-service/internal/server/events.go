package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

const heartbeatInterval = 25 * time.Second

type sessionInfo struct {
	SignedIn  bool   `json:"signedIn"`
	Name      string `json:"name,omitempty"`
	UserID    string `json:"id,omitempty"`
	Role      string `json:"role,omitempty"`
	CartCount int    `json:"cartCount"`
}

// SessionInfo reports who the page is rendered for, from the stored token.
func (s *Server) SessionInfo(ctx *gin.Context) {
	c := callerOf(ctx)
	info := sessionInfo{SignedIn: !c.Identity.Anonymous()}
	if info.SignedIn {
		info.Name = c.Identity.Name
		info.UserID = c.Identity.UserID
		info.Role = c.Identity.Role.String()
	}
	info.CartCount, _ = s.bus.CartCount(c.SessionID)
	ctx.JSON(http.StatusOK, info)
}

// CartSummary returns the badge count. Without a cached count it asks the
// backend once.
func (s *Server) CartSummary(ctx *gin.Context) {
	c := callerOf(ctx)
	if c.Identity.Anonymous() {
		ctx.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	if n, ok := s.bus.CartCount(c.SessionID); ok {
		ctx.JSON(http.StatusOK, gin.H{"count": n})
		return
	}
	view, err := s.cart.Load(ctx, c)
	if err != nil {
		if s.backendFailed(ctx, err) {
			return
		}
		logger.Get().Error().Err(err).Msg("failed to load cart summary")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": describe(err, "Failed to load cart")})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": view.Totals.Count})
}

// Events streams the session's bus events as server-sent events until the
// browser goes away or the server shuts down. Browsers without a session get
// 204, which tells EventSource not to reconnect.
func (s *Server) Events(ctx *gin.Context) {
	c := callerOf(ctx)
	if c.SessionID == "" {
		// Nothing is ever published for a browser without a session.
		ctx.Status(http.StatusNoContent)
		return
	}
	events, unsubscribe := s.bus.Subscribe(c.SessionID)
	defer unsubscribe()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("X-Accel-Buffering", "no")
	if n, ok := s.bus.CartCount(c.SessionID); ok {
		ctx.SSEvent(string(session.CartChanged), session.Event{Kind: session.CartChanged, CartCount: n})
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	done := ctx.Request.Context().Done()
	ctx.Stream(func(io.Writer) bool {
		select {
		case <-done:
			return false
		case <-heartbeat.C:
			ctx.SSEvent("ping", "")
			return true
		case ev, ok := <-events:
			if !ok {
				return false
			}
			ctx.SSEvent(string(ev.Kind), ev)
			return true
		}
	})
}
