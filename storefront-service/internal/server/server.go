package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/cart"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/config"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/metrics"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/moderation"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/registration"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/session"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/validation"
)

//go:generate mockgen -source=server.go -destination=./mocks/service_mock.go -package=mocks

type Storage interface {
	CreateSession(ctx context.Context) (string, error)
	GetSession(ctx context.Context, sid string) (models.WebSession, error)
	SaveToken(ctx context.Context, sid, token string) error
	ClearToken(ctx context.Context, sid string) error
	SaveDraft(ctx context.Context, sid string, draft []byte) error
	GetDraft(ctx context.Context, sid string) ([]byte, error)
	DeleteDraft(ctx context.Context, sid string) error
	DeleteSession(ctx context.Context, sid string) error
	ExpiredSessions(ctx context.Context, before time.Time, limit int) ([]string, error)
	ExpireDrafts(ctx context.Context, before time.Time) (int64, error)
}

// Backend is the part of the REST API the pages use.
type Backend interface {
	Login(ctx context.Context, creds backend.Credentials) (string, error)
	Register(ctx context.Context, u backend.NewUser) (string, error)
	RegisterSeller(ctx context.Context, app backend.SellerApplication) (string, error)

	ShowBooks(ctx context.Context, token string) ([]models.Book, error)
	ShowBookByID(ctx context.Context, token, id string) (models.Book, error)
	ShowBooksBySeller(ctx context.Context, token, sellerID string) ([]models.Book, error)
	CreateBook(ctx context.Context, token string, b backend.NewBook) (string, error)
	DeleteBook(ctx context.Context, token, id string) error

	ShowInCart(ctx context.Context, token string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, token, bookID string, quantity int) error
	UpdateCart(ctx context.Context, token, bookID string, quantity int) ([]models.CartItem, error)
	RemoveFromCart(ctx context.Context, token, bookID string) ([]models.CartItem, error)
	Checkout(ctx context.Context, token string, req backend.CheckoutRequest) (models.Order, error)

	ShowAddresses(ctx context.Context, token string) ([]models.Address, error)
	AddAddress(ctx context.Context, token string, a backend.NewAddress) (string, error)

	GetUsers(ctx context.Context, token string) ([]models.User, error)
	GetSellers(ctx context.Context, token string) ([]models.User, error)
	GetPendingSellers(ctx context.Context, token string) ([]models.User, error)
	GetSellerByID(ctx context.Context, token, id string) (models.User, error)
	ApprovePendingRequest(ctx context.Context, token, id string) error
	RejectPendingRequest(ctx context.Context, token, id string) error
	DeleteSeller(ctx context.Context, token, id string) error
}

type Server struct {
	serv       *http.Server
	cfg        config.Config
	valid      *validator.Validate
	Storage    Storage
	Backend    Backend
	cookies    sessions.Store
	bus        *session.Bus
	manager    *session.Manager
	gate       *session.Gate
	sweeper    *session.Sweeper
	cart       *cart.Service
	wizard     *registration.Wizard
	moderation *moderation.Service
	assets     backend.Assets
	metrics    *metrics.Metrics
	pages      *pages
}

func New(cfg config.Config, stor Storage, api Backend, m *metrics.Metrics) *Server {
	server := http.Server{ //nolint:gosec // slowloris is handled by the proxy
		Addr:              cfg.Addr,
		ReadHeaderTimeout: 10 * time.Second, //nolint:mnd
	}

	cookies := sessions.NewCookieStore(cfg.SessionKey)
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = cfg.CookieSecure
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.Path = "/"

	bus := session.NewBus()
	return &Server{
		serv:       &server,
		cfg:        cfg,
		valid:      validation.New(),
		Storage:    stor,
		Backend:    api,
		cookies:    cookies,
		bus:        bus,
		manager:    session.NewManager(stor, session.NewReader(time.Now), bus),
		gate:       session.NewGate(),
		sweeper: session.NewSweeper(stor, bus, session.SweepConfig{
			SessionTTL: cfg.SessionTTL,
			DraftTTL:   cfg.DraftTTL,
			Interval:   cfg.SweepInterval,
		}, time.Now),
		cart:       cart.New(api, bus),
		wizard:     registration.NewWizard(api, stor),
		moderation: moderation.New(api),
		assets:     backend.NewAssets(cfg.AssetsURL),
		metrics:    m,
		pages:      mustLoadPages(),
	}
}

func (s *Server) ShutdownServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd
	defer cancel()
	return s.serv.Shutdown(ctx)
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	s.serv.Handler = s.Handler()
	// Requests, and the event streams among them, end with the process.
	s.serv.BaseContext = func(net.Listener) context.Context { return ctx }
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// RunSweeper reclaims stale sessions and registration drafts until ctx is
// done.
func (s *Server) RunSweeper(ctx context.Context) error {
	return s.sweeper.Run(ctx)
}

// Handler is the router wrapped in security headers and CSRF protection.
func (s *Server) Handler() http.Handler {
	protect := csrf.Protect(
		s.cfg.CSRFKey,
		csrf.Secure(s.cfg.CookieSecure),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(s.csrfFailed)),
	)
	return securityHeaders(protect(s.Router()))
}

// Router registers every page and endpoint. Tests drive it without the
// CSRF layer.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context on as the context of backend calls; this
	// makes it carry the request's cancellation.
	router.ContextWithFallback = true
	router.Use(gin.Recovery(), requestLogger())
	if s.metrics != nil {
		router.Use(s.metrics.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}
	router.GET("/healthz", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })
	router.StaticFS("/static", staticFS())

	api := router.Group("/api")
	api.Use(cors.New(s.corsConfig()), s.SessionMiddleware())
	{
		api.GET("/session", s.SessionInfo)
		api.GET("/cart/summary", s.CartSummary)
	}

	pages := router.Group("/")
	pages.Use(s.SessionMiddleware())
	{
		pages.GET("/", func(ctx *gin.Context) { ctx.Redirect(http.StatusSeeOther, consts.RouteBooks) })
		pages.GET("/events", s.Events)
		pages.GET("/login", s.LoginPage)
		pages.POST("/login", s.Login)
		pages.POST("/logout", s.Logout)
		pages.GET("/signup", s.SignupPage)
		pages.POST("/signup", s.Signup)
		pages.GET("/register/seller", s.SellerWizardPage)
		pages.POST("/register/seller", s.SellerWizardStep)
		pages.GET(consts.RouteNotAuthorized, s.NotAuthorized)

		pages.GET("/books", s.AllBooks)
		pages.GET("/books/:id", s.BookInfo)

		signedIn := pages.Group("/", s.RequireRole())
		{
			signedIn.GET("/dashboard", s.Dashboard)
			signedIn.POST("/cart/items", s.AddToCart)
			signedIn.GET("/cart", s.Cart)
			signedIn.POST("/cart/items/:id/quantity", s.SetQuantity)
			signedIn.GET("/cart/items/:id/remove", s.ConfirmRemove)
			signedIn.POST("/cart/items/:id/remove", s.RemoveFromCart)
			signedIn.GET("/checkout", s.CheckoutPage)
			signedIn.POST("/checkout", s.Checkout)
			signedIn.GET("/addresses", s.Addresses)
			signedIn.POST("/addresses", s.AddAddress)
		}

		seller := pages.Group("/seller", s.RequireRole(models.RoleSeller))
		{
			seller.GET("/books/new", s.NewBookPage)
			seller.POST("/books", s.AddBook)
			seller.POST("/books/:id/delete", s.RemoveBook)
		}

		admin := pages.Group("/admin", s.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", s.AdminList(listUsers))
			admin.GET("/sellers", s.AdminList(listSellers))
			admin.GET("/pending", s.AdminList(listPending))
			admin.GET("/sellers/:id", s.SellerDetail)
			admin.GET("/sellers/:id/:action", s.ConfirmModeration)
			admin.POST("/sellers/:id/:action", s.Moderate)
		}
	}
	router.NoRoute(s.SessionMiddleware(), func(ctx *gin.Context) {
		s.renderError(ctx, http.StatusNotFound, "Page not found")
	})
	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, //nolint:mnd
	}
	if len(s.cfg.CORSOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://" + s.cfg.Addr}
	} else {
		cfg.AllowOrigins = s.cfg.CORSOrigins
	}
	return cfg
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: *; script-src 'self'")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) csrfFailed(w http.ResponseWriter, r *http.Request) {
	logger.Get().Warn().Str("path", r.URL.Path).Err(csrf.FailureReason(r)).Msg("csrf check failed")
	http.Error(w, "Forbidden - the form expired, please go back and try again", http.StatusForbidden)
}
