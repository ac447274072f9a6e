package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

func pendingSellers() []models.User {
	return []models.User{
		{ID: "s1", Name: "Ravi", Email: "ravi@shop.in", Role: "seller", SellerDetails: &models.SellerDetails{ShopName: "Ravi Books"}},
		{ID: "s2", Name: "Meena", Email: "meena@shop.in", Role: "seller", Status: models.StatusPending},
	}
}

func TestAdmin_lists(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().GetUsers(gomock.Any(), token).Return([]models.User{{ID: "u1", Name: "Kiran", Role: "user"}}, nil)

		w := h.get("/admin/users")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<td>Kiran</td>")
		assert.NotContains(t, w.Body.String(), "/approve")
	})

	t.Run("pending", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().GetPendingSellers(gomock.Any(), token).Return(pendingSellers(), nil)

		w := h.get("/admin/pending")

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `<a href="/admin/sellers/s1">Ravi</a>`)
		assert.Contains(t, body, "Ravi Books")
		assert.Contains(t, body, `action="/admin/sellers/s2/approve"`)
		assert.NotContains(t, body, "status-approved")
	})

	t.Run("failure", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().GetSellers(gomock.Any(), token).Return(nil, backend.ErrNoResponse)

		w := h.get("/admin/sellers")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Could not reach the server. Please try again.")
	})
}

func TestAdmin_sellerDetail(t *testing.T) {
	h := newHarness(t)
	token := h.login("admin", "a1")
	h.api.EXPECT().GetSellerByID(gomock.Any(), token, "s1").Return(models.User{
		ID: "s1", Name: "Ravi", Status: models.StatusApproved,
		SellerDetails: &models.SellerDetails{
			ShopName:         "Ravi Books",
			AadharFrontImage: "front.png",
			AadharBackImage:  "back.png",
			BankDetails:      models.BankDetails{IFSCCode: "SBIN0001234"},
		},
	}, nil)

	w := h.get("/admin/sellers/s1")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `src="http://assets.test/images/sellerAadhar/front.png"`)
	assert.Contains(t, body, `src="http://assets.test/images/sellerAadhar/back.png"`)
	assert.Contains(t, body, "SBIN0001234")
	assert.Contains(t, body, "<dd>-</dd>")
	assert.NotContains(t, body, `/admin/sellers/s1/approve`)
}

func TestAdmin_approve(t *testing.T) {
	t.Run("from the pending list", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(nil)

		w := h.post("/admin/sellers/s1/approve", url.Values{"back": {"/admin/pending"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/pending", w.Header().Get("Location"))

		h.api.EXPECT().GetPendingSellers(gomock.Any(), token).Return(pendingSellers(), nil)
		w = h.get("/admin/pending")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Seller approved successfully!")
		assert.Contains(t, body, `status-approved">approved`)
		assert.Contains(t, body, `status-pending">pending`)
		assert.NotContains(t, body, `action="/admin/sellers/s1/approve"`)

		// A reload shows what the backend says.
		h.api.EXPECT().GetPendingSellers(gomock.Any(), token).Return(pendingSellers(), nil)
		body = h.get("/admin/pending").Body.String()
		assert.NotContains(t, body, "status-approved")
		assert.NotContains(t, body, "Seller approved successfully!")
	})

	t.Run("status change shows only on its own list", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(nil)
		h.post("/admin/sellers/s1/approve", url.Values{"back": {"/admin/pending"}})

		h.api.EXPECT().GetSellers(gomock.Any(), token).Return(pendingSellers(), nil)
		body := h.get("/admin/sellers").Body.String()
		assert.NotContains(t, body, "status-approved")
	})

	t.Run("from the seller page", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(nil)

		w := h.post("/admin/sellers/s1/approve", url.Values{"back": {"/admin/sellers/s1"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/sellers/s1", w.Header().Get("Location"))
		assert.Contains(t, h.notices(), "Seller approved successfully!")
	})

	t.Run("foreign back is ignored", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(nil)

		w := h.post("/admin/sellers/s1/approve", url.Values{"back": {"https://example.org"}})

		assert.Equal(t, "/admin/sellers/s1", w.Header().Get("Location"))
	})

	t.Run("list reload fails", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(nil)
		h.post("/admin/sellers/s1/approve", url.Values{"back": {"/admin/pending"}})

		h.api.EXPECT().GetPendingSellers(gomock.Any(), token).Return(nil, backend.ErrNoResponse)
		w := h.get("/admin/pending")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Could not reach the server. Please try again.")
	})

	t.Run("backend message", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").
			Return(&backend.APIError{Status: http.StatusBadRequest, Message: "Seller already approved"})

		w := h.post("/admin/sellers/s1/approve", url.Values{"back": {"/admin/pending"}})

		assert.Equal(t, "/admin/pending", w.Header().Get("Location"))
		assert.Contains(t, h.notices(), "Seller already approved")
	})

	t.Run("forbidden", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().ApprovePendingRequest(gomock.Any(), token, "s1").Return(&backend.APIError{Status: http.StatusForbidden})

		w := h.post("/admin/sellers/s1/approve", nil)

		assert.Equal(t, consts.RouteNotAuthorized, w.Header().Get("Location"))
	})
}

func TestAdmin_reject(t *testing.T) {
	h := newHarness(t)
	token := h.login("admin", "a1")

	w := h.get("/admin/sellers/s1/reject?back=/admin/sellers")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Are you sure you want to reject this seller?")
	assert.Contains(t, w.Body.String(), `name="back" value="/admin/sellers"`)

	w = h.post("/admin/sellers/s1/reject", url.Values{"back": {"/admin/sellers"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/sellers/s1/reject?back=/admin/sellers", w.Header().Get("Location"))

	h.api.EXPECT().RejectPendingRequest(gomock.Any(), token, "s1").Return(nil)
	w = h.post("/admin/sellers/s1/reject", url.Values{"back": {"/admin/sellers"}, "confirmed": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/sellers", w.Header().Get("Location"))

	h.api.EXPECT().GetSellers(gomock.Any(), token).Return(pendingSellers(), nil)
	w = h.get("/admin/sellers")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Seller rejected successfully!")
	assert.Contains(t, w.Body.String(), `status-rejected">rejected`)
}

func TestAdmin_confirmApproveSkipsQuestion(t *testing.T) {
	h := newHarness(t)
	h.login("admin", "a1")

	w := h.get("/admin/sellers/s1/approve?back=/admin/pending")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/pending", w.Header().Get("Location"))
}

func TestAdmin_delete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")

		w := h.get("/admin/sellers/s1/delete")
		assert.Contains(t, w.Body.String(), "This action cannot be undone.")

		h.api.EXPECT().DeleteSeller(gomock.Any(), token, "s1").Return(nil)
		w = h.post("/admin/sellers/s1/delete", url.Values{"confirmed": {"yes"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, consts.RouteDashboard, w.Header().Get("Location"))
		assert.Contains(t, h.notices(), "Seller deleted successfully!")
	})

	t.Run("not confirmed", func(t *testing.T) {
		h := newHarness(t)
		h.login("admin", "a1")

		w := h.post("/admin/sellers/s1/delete", nil)

		assert.Equal(t, "/admin/sellers/s1/delete?back=/admin/sellers/s1", w.Header().Get("Location"))
	})

	t.Run("failure", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().DeleteSeller(gomock.Any(), token, "s1").
			Return(&backend.APIError{Status: http.StatusConflict, Message: "Seller has listed books"})

		w := h.post("/admin/sellers/s1/delete", url.Values{"confirmed": {"yes"}})

		assert.Equal(t, "/admin/sellers/s1", w.Header().Get("Location"))
		assert.Contains(t, h.notices(), "Failed to delete seller: Seller has listed books")
	})
}

func TestAdmin_unknownAction(t *testing.T) {
	h := newHarness(t)
	h.login("admin", "a1")

	w := h.get("/admin/sellers/s1/promote")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
