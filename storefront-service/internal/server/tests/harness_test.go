package tests

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/config"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/metrics"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/server"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/server/mocks"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/storage"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// harness drives the router like a browser: it keeps the session cookie
// between requests.
type harness struct {
	t      *testing.T
	api    *mocks.MockBackend
	store  *storage.MemStorage
	srv    *server.Server
	router http.Handler
	cookie *http.Cookie
}

func testConfig() config.Config {
	return config.Config{
		Addr:       "localhost:8585",
		AssetsURL:  "http://assets.test",
		SessionKey: bytes.Repeat([]byte("s"), 32),
		CSRFKey:    bytes.Repeat([]byte("c"), 32),
	}
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBackend(ctrl)
	store := storage.New()
	srv := server.New(testConfig(), store, api, metrics.New())
	return &harness{t: t, api: api, store: store, srv: srv, router: srv.Router()}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	if h.cookie != nil {
		req.AddCookie(h.cookie)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == consts.SessionCookieName {
			h.cookie = c
		}
	}
	return w
}

func (h *harness) get(path string) *httptest.ResponseRecorder {
	return h.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (h *harness) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.do(req)
}

func (h *harness) postMultipart(path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(h.t, mw.WriteField(k, v))
	}
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, field+".png")
		require.NoError(h.t, err)
		_, err = fw.Write(data)
		require.NoError(h.t, err)
	}
	require.NoError(h.t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return h.do(req)
}

// notices returns a page that needs no backend call, so the flashes queued
// by the previous request can be read from it.
func (h *harness) notices() string {
	return h.get("/signup").Body.String()
}

func mint(t *testing.T, role, id string) string {
	return mintExpiring(t, role, id, time.Now().Add(time.Hour))
}

func mintExpiring(t *testing.T, role, id string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"name": "Asha",
		"role": role,
		"exp":  exp.Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

// sessions lists the ids of every stored web session.
func (h *harness) sessions() []string {
	h.t.Helper()
	sids, err := h.store.ExpiredSessions(context.Background(), time.Now().Add(time.Hour), 100)
	require.NoError(h.t, err)
	return sids
}

// login signs the harness in with a token of role and returns the token.
func (h *harness) login(role, id string) string {
	token := mint(h.t, role, id)
	creds := backend.Credentials{Email: "asha@example.com", Password: "secret1"}
	h.api.EXPECT().Login(gomock.Any(), creds).Return(token, nil)
	w := h.post("/login", url.Values{"email": {creds.Email}, "password": {creds.Password}})
	require.Equal(h.t, http.StatusSeeOther, w.Code)
	require.Equal(h.t, consts.RouteDashboard, w.Header().Get("Location"))
	return token
}

// streamRecorder lets gin stream into a recorder.
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}
