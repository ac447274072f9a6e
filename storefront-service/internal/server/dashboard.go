package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/moderation"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

type sellerDashboardView struct {
	Books []bookRow
}

type userDashboardView struct {
	Identity session.Identity
}

// Dashboard picks the view for the caller's role. The role only chooses
// what to show; every figure still comes from a backend call that checks
// the token itself.
func (s *Server) Dashboard(ctx *gin.Context) {
	c := callerOf(ctx)
	switch c.Identity.Role {
	case models.RoleAdmin:
		stats, err := s.moderation.Stats(ctx, c)
		if err != nil {
			s.pageFailed(ctx, err, "Failed to load dashboard")
			return
		}
		s.render(ctx, http.StatusOK, "dashboard_admin", page{Title: "Admin dashboard", Content: struct{ Stats moderation.Stats }{stats}})
	case models.RoleSeller:
		books, err := s.Backend.ShowBooksBySeller(ctx, c.Token, c.Identity.UserID)
		if err != nil {
			s.pageFailed(ctx, err, "Failed to fetch books")
			return
		}
		s.render(ctx, http.StatusOK, "dashboard_seller", page{Title: "Seller dashboard", Content: sellerDashboardView{Books: s.bookRows(books)}})
	case models.RoleUser:
		s.render(ctx, http.StatusOK, "dashboard_user", page{Title: "My account", Content: userDashboardView{Identity: c.Identity}})
	default:
		s.render(ctx, http.StatusForbidden, "dashboard_unknown", page{Title: "Unauthorized"})
	}
}
