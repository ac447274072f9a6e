package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/server"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/server/mocks"
)

func sessionOf(t *testing.T, h *harness) map[string]any {
	t.Helper()
	w := h.get("/api/session")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	return info
}

func TestServer_health(t *testing.T) {
	h := newHarness(t)

	w := h.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = h.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_http_requests_total")
}

func TestServer_login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newHarness(t)
		assert.Equal(t, false, sessionOf(t, h)["signedIn"])

		h.login("user", "u1")

		info := sessionOf(t, h)
		assert.Equal(t, true, info["signedIn"])
		assert.Equal(t, "Asha", info["name"])
		assert.Equal(t, "user", info["role"])
		assert.Equal(t, "u1", info["id"])
	})

	t.Run("backend refuses", func(t *testing.T) {
		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", &backend.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})

		w := h.post("/login", url.Values{"email": {"a@b.co"}, "password": {"nope"}})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.Equal(t, false, sessionOf(t, h)["signedIn"])
	})

	t.Run("junk token is not stored", func(t *testing.T) {
		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("not-a-jwt", nil)

		w := h.post("/login", url.Values{"email": {"a@b.co"}, "password": {"x"}})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, false, sessionOf(t, h)["signedIn"])
	})

	t.Run("backend down", func(t *testing.T) {
		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", backend.ErrUnreachable)

		w := h.post("/login", url.Values{"email": {"a@b.co"}, "password": {"x"}})

		assert.Contains(t, w.Body.String(), "Could not reach the server")
	})
}

func TestServer_logout(t *testing.T) {
	h := newHarness(t)
	h.login("user", "u1")
	require.Len(t, h.sessions(), 1)

	w := h.post("/logout", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, consts.RouteLogin, w.Header().Get("Location"))
	assert.Empty(t, h.sessions())
	assert.Equal(t, false, sessionOf(t, h)["signedIn"])
	assert.Equal(t, http.StatusNoContent, h.get("/events").Code)
}

func TestServer_locallyExpiredTokenSignsOut(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.login("seller", "s1")
	sids := h.sessions()
	require.Len(t, sids, 1)
	require.NoError(t, h.store.SaveToken(ctx, sids[0], mintExpiring(t, "seller", "s1", time.Now().Add(-time.Minute))))

	w := h.get("/dashboard")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, consts.RouteLogin, w.Header().Get("Location"))
	ws, err := h.store.GetSession(ctx, sids[0])
	require.NoError(t, err)
	assert.Empty(t, ws.Token)
	assert.Equal(t, false, sessionOf(t, h)["signedIn"])
}

func TestServer_anonymousRequestsStoreNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := server.New(testConfig(), mocks.NewMockStorage(ctrl), mocks.NewMockBackend(ctrl), nil)
	router := srv.Router()

	for range 50 {
		for _, path := range []string{"/api/session", "/login", "/signup", "/register/seller", "/events", "/cart"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Less(t, w.Code, http.StatusInternalServerError, path)
		}
	}
}

func TestServer_requireRole(t *testing.T) {
	t.Run("anonymous goes to login", func(t *testing.T) {
		h := newHarness(t)
		w := h.get("/cart")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, consts.RouteLogin, w.Header().Get("Location"))
	})

	t.Run("user is kept out of admin pages", func(t *testing.T) {
		h := newHarness(t)
		h.login("user", "u1")
		w := h.get("/admin/users")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, consts.RouteNotAuthorized, w.Header().Get("Location"))
	})

	t.Run("seller pages need seller", func(t *testing.T) {
		h := newHarness(t)
		h.login("admin", "a1")
		w := h.get("/seller/books/new")
		assert.Equal(t, consts.RouteNotAuthorized, w.Header().Get("Location"))
	})

	t.Run("backend forbidden wins over the token", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().GetUsers(gomock.Any(), token).Return(nil, &backend.APIError{Status: http.StatusForbidden})

		w := h.get("/admin/users")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, consts.RouteNotAuthorized, w.Header().Get("Location"))
	})
}

func TestServer_dashboard(t *testing.T) {
	t.Run("admin sees figures", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("admin", "a1")
		h.api.EXPECT().GetUsers(gomock.Any(), token).Return(make([]models.User, 7), nil)
		h.api.EXPECT().GetSellers(gomock.Any(), token).Return(make([]models.User, 3), nil)
		h.api.EXPECT().GetPendingSellers(gomock.Any(), token).Return(make([]models.User, 2), nil)
		h.api.EXPECT().ShowBooks(gomock.Any(), token).Return(make([]models.Book, 11), nil)

		w := h.get("/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<span>7</span> Users")
		assert.Contains(t, body, "<span>2</span> Pending requests")
		assert.Contains(t, body, "<span>11</span> Books")
	})

	t.Run("seller sees own books", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("seller", "s1")
		h.api.EXPECT().ShowBooksBySeller(gomock.Any(), token, "s1").
			Return([]models.Book{{ID: "b1", Title: "Godaan", Stock: 4}}, nil)

		w := h.get("/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Godaan")
		assert.Contains(t, w.Body.String(), "4 Available")
	})

	t.Run("user sees profile", func(t *testing.T) {
		h := newHarness(t)
		h.login("user", "u1")

		w := h.get("/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome, Asha")
	})

	t.Run("unknown role", func(t *testing.T) {
		h := newHarness(t)
		h.login("librarian", "x1")

		w := h.get("/dashboard")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized")
	})

	t.Run("expired backend session logs out", func(t *testing.T) {
		h := newHarness(t)
		token := h.login("seller", "s1")
		h.api.EXPECT().ShowBooksBySeller(gomock.Any(), token, "s1").
			Return(nil, &backend.APIError{Status: http.StatusUnauthorized})

		w := h.get("/dashboard")

		assert.Equal(t, consts.RouteLogin, w.Header().Get("Location"))
		assert.Equal(t, false, sessionOf(t, h)["signedIn"])
	})
}

func TestServer_signup(t *testing.T) {
	t.Run("success moves on to login", func(t *testing.T) {
		h := newHarness(t)
		h.api.EXPECT().Register(gomock.Any(), backend.NewUser{Name: "A", Email: "a@b.co", Mobile: "9876543210", Password: "secret1"}).
			Return("User registered successfully", nil)

		w := h.post("/signup", url.Values{"name": {"A"}, "email": {"a@b.co"}, "mobno": {"9876543210"}, "password": {"secret1"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User registered successfully")
		assert.Contains(t, w.Body.String(), `content="2;url=/login"`)
	})

	t.Run("backend message is shown", func(t *testing.T) {
		h := newHarness(t)
		h.api.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return("", &backend.APIError{Status: http.StatusBadRequest, Message: "User already exists"})

		w := h.post("/signup", url.Values{"name": {"A"}})

		assert.Contains(t, w.Body.String(), "User already exists")
		assert.NotContains(t, w.Body.String(), "url=/login")
	})
}

func TestServer_sessionStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	stor := mocks.NewMockStorage(ctrl)
	api := mocks.NewMockBackend(ctrl)
	srv := server.New(testConfig(), stor, api, nil)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(mint(t, "user", "u1"), nil)
	stor.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("db down"))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40b.co&password=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Could not start a session. Please try again.")
}

func TestServer_handlerRejectsFormsWithoutCSRFToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := server.New(testConfig(), mocks.NewMockStorage(ctrl), mocks.NewMockBackend(ctrl), nil)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a&password=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestServer_events(t *testing.T) {
	h := newHarness(t)
	token := h.login("user", "u1")
	book := &models.Book{ID: "b1", Title: "Go", Stock: 5}
	h.api.EXPECT().ShowInCart(gomock.Any(), token).Return([]models.CartItem{{Book: book, Quantity: 2}}, nil)
	require.Equal(t, http.StatusOK, h.get("/cart").Code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	req.AddCookie(h.cookie)
	w := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
	h.router.ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "event:cart")
	assert.Contains(t, w.Body.String(), `"cartCount":2`)
}
