package consts

import "time"

const (
	DBCtxTimeout = 2 * time.Second

	// Delay before the seller registration success page moves on to login.
	SellerRedirectDelay = 3 * time.Second
	// Delay before the plain signup success page moves on to login.
	SignupRedirectDelay = 2 * time.Second
	// Lifetime of transient notices on the page.
	NoticeTTL = 3 * time.Second

	SessionCookieName = "bookly-session"
	SessionIDKey      = "sid"

	ShippingCountry = "India"
)

const (
	RouteLogin         = "/login"
	RouteDashboard     = "/dashboard"
	RouteNotAuthorized = "/not-authorized"
	RouteCart          = "/cart"
	RouteBooks         = "/books"
)
