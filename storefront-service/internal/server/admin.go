package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/moderation"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
)

type listKind int

const (
	listUsers listKind = iota
	listSellers
	listPending
)

func (k listKind) path() string {
	switch k {
	case listSellers:
		return "/admin/sellers"
	case listPending:
		return "/admin/pending"
	default:
		return "/admin/users"
	}
}

func (k listKind) title() string {
	switch k {
	case listSellers:
		return "Sellers"
	case listPending:
		return "Pending requests"
	default:
		return "Users"
	}
}

func (k listKind) failed() string {
	switch k {
	case listSellers:
		return "Failed to fetch sellers"
	case listPending:
		return "Failed to fetch pending requests"
	default:
		return "Failed to fetch users"
	}
}

type adminListView struct {
	Title string
	Path  string
	Rows  []models.User
	// Moderate shows approve and reject controls on each row.
	Moderate bool
}

func (s *Server) loadList(ctx context.Context, c session.Caller, kind listKind) ([]models.User, error) {
	switch kind {
	case listSellers:
		return s.moderation.Sellers(ctx, c)
	case listPending:
		return s.moderation.Pending(ctx, c)
	default:
		return s.moderation.Users(ctx, c)
	}
}

func (s *Server) renderList(ctx *gin.Context, kind listKind, rows []models.User) {
	s.render(ctx, http.StatusOK, "admin_list", page{Title: kind.title(), Content: adminListView{
		Title:    kind.title(),
		Path:     kind.path(),
		Rows:     rows,
		Moderate: kind != listUsers,
	}})
}

func (s *Server) AdminList(kind listKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		patch, patched := s.takePatch(ctx, kind.path())
		rows, err := s.loadList(ctx, callerOf(ctx), kind)
		if err != nil {
			s.pageFailed(ctx, err, kind.failed())
			return
		}
		if patched && kind != listUsers {
			rows = moderation.PatchStatus(rows, patch.ID, patch.Status)
		}
		s.renderList(ctx, kind, rows)
	}
}

type sellerView struct {
	Seller models.User
	Front  string
	Back   string
}

func (s *Server) SellerDetail(ctx *gin.Context) {
	seller, err := s.moderation.Seller(ctx, callerOf(ctx), ctx.Param("id"))
	if err != nil {
		s.pageFailed(ctx, err, "Failed to fetch seller data")
		return
	}
	view := sellerView{Seller: seller}
	if d := seller.SellerDetails; d != nil {
		view.Front = s.assets.SellerDocument(d.AadharFrontImage)
		view.Back = s.assets.SellerDocument(d.AadharBackImage)
	}
	s.render(ctx, http.StatusOK, "admin_seller", page{Title: seller.Name, Content: view})
}

// moderationBack is where a moderation action returns to: one of the
// seller lists or the seller's own page.
func moderationBack(back, id string) string {
	detail := "/admin/sellers/" + id
	switch back {
	case listSellers.path(), listPending.path(), detail:
		return back
	default:
		return detail
	}
}

func listAt(path string) (listKind, bool) {
	for _, k := range []listKind{listSellers, listPending} {
		if k.path() == path {
			return k, true
		}
	}
	return 0, false
}

func parseAction(raw string) (moderation.Action, bool) {
	a := moderation.Action(strings.ToLower(raw))
	switch a {
	case moderation.ActionApprove, moderation.ActionReject, moderation.ActionDelete:
		return a, true
	default:
		return "", false
	}
}

func (s *Server) ConfirmModeration(ctx *gin.Context) {
	id := ctx.Param("id")
	action, ok := parseAction(ctx.Param("action"))
	if !ok {
		s.renderError(ctx, http.StatusNotFound, "Page not found")
		return
	}
	back := moderationBack(ctx.Query("back"), id)
	if action.Confirmation() == "" {
		ctx.Redirect(http.StatusSeeOther, back)
		return
	}
	s.render(ctx, http.StatusOK, "confirm", page{Title: "Confirm", Content: confirmView{
		Message: action.Confirmation(),
		Action:  ctx.Request.URL.Path,
		Cancel:  back,
		Label:   strings.ToUpper(string(action[:1])) + string(action[1:]),
		Hidden:  map[string]string{"back": back},
	}})
}

// Moderate applies an approve, reject or delete. After approve or reject
// from a list, the browser is sent back to the list, which then shows only
// that seller's status changed; a delete always ends on the dashboard.
func (s *Server) Moderate(ctx *gin.Context) {
	log := logger.Get()
	c := callerOf(ctx)
	id := ctx.Param("id")
	action, ok := parseAction(ctx.Param("action"))
	if !ok {
		s.renderError(ctx, http.StatusNotFound, "Page not found")
		return
	}
	back := moderationBack(ctx.PostForm("back"), id)

	err := s.moderation.Apply(ctx, c, action, id, ctx.PostForm("confirmed") == "yes")
	if errors.Is(err, moderation.ErrNotConfirmed) {
		ctx.Redirect(http.StatusSeeOther, ctx.Request.URL.Path+"?back="+back)
		return
	}
	if err != nil {
		s.actionFailed(ctx, err, action.Failed(err), back)
		return
	}
	log.Info().Str("seller", id).Str("action", string(action)).Msg("seller moderated")

	if action == moderation.ActionDelete {
		s.flash(ctx, FlashSuccess, action.Succeeded())
		ctx.Redirect(http.StatusSeeOther, consts.RouteDashboard)
		return
	}
	if _, isList := listAt(back); isList {
		s.keepPatch(ctx, statusPatch{Path: back, ID: id, Status: action.Status()})
	}
	s.flash(ctx, FlashSuccess, action.Succeeded())
	ctx.Redirect(http.StatusSeeOther, back)
}

// statusPatch carries a moderated seller's new status to the next render
// of the list the action came from.
type statusPatch struct {
	Path   string
	ID     string
	Status models.SellerStatus
}

func (s *Server) keepPatch(ctx *gin.Context, p statusPatch) {
	if cookie := cookieOf(ctx); cookie != nil {
		cookie.Values[patchKey] = p
	}
}

// takePatch removes the pending patch for path, if any.
func (s *Server) takePatch(ctx *gin.Context, path string) (statusPatch, bool) {
	cookie := cookieOf(ctx)
	if cookie == nil {
		return statusPatch{}, false
	}
	p, ok := cookie.Values[patchKey].(statusPatch)
	if !ok {
		return statusPatch{}, false
	}
	delete(cookie.Values, patchKey)
	if err := cookie.Save(ctx.Request, ctx.Writer); err != nil {
		logger.Get().Error().Err(err).Msg("failed to clear status patch")
	}
	return p, p.Path == path
}
