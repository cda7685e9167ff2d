// Package fiber is the HTTP adapter: route registration, cookie handling,
// and the capability gate in front of every page.
package fiber

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/logging"
	"github.com/ecocycle/server/services"
)

// Config carries the adapter's wiring.
type Config struct {
	App           *fiber.App
	Auth          *services.AuthService
	Pickups       *services.PickupService
	Rewards       *services.RewardsService
	Items         *services.ItemService
	Marketplace   *services.MarketplaceService
	Assist        *services.AssistService
	Cache         core.CacheWithStats // optional, enables the admin stats endpoint
	SessionMaxAge time.Duration
	Production    bool // sets the Secure flag on cookies
	Log           logging.Logger
}

type Server struct {
	app         *fiber.App
	auth        *services.AuthService
	pickups     *services.PickupService
	rewards     *services.RewardsService
	items       *services.ItemService
	marketplace *services.MarketplaceService
	assist      *services.AssistService
	cache       core.CacheWithStats

	sessionMaxAge time.Duration
	production    bool
	log           logging.Logger
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.App == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if cfg.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if cfg.SessionMaxAge == 0 {
		cfg.SessionMaxAge = 7 * 24 * time.Hour
	}
	if cfg.Log == nil {
		cfg.Log = logging.Nop{}
	}

	s := &Server{
		app:           cfg.App,
		auth:          cfg.Auth,
		pickups:       cfg.Pickups,
		rewards:       cfg.Rewards,
		items:         cfg.Items,
		marketplace:   cfg.Marketplace,
		assist:        cfg.Assist,
		cache:         cfg.Cache,
		sessionMaxAge: cfg.SessionMaxAge,
		production:    cfg.Production,
		log:           cfg.Log,
	}
	s.registerRoutes()
	return s, nil
}

// pageRoute declares a browser route together with its access capability.
// Authorization metadata lives here, next to the route, so the page set
// and the gate cannot drift apart.
type pageRoute struct {
	path         string
	capability   core.Capability
	title        string
	authRedirect bool // send logged-in users to /dashboard
}

func pageRoutes() []pageRoute {
	return []pageRoute{
		// Public marketing pages
		{path: "/", capability: core.CapPublic, title: "EcoCycle"},
		{path: "/about", capability: core.CapPublic, title: "About"},
		{path: "/contact", capability: core.CapPublic, title: "Contact"},
		{path: "/marketplace", capability: core.CapPublic, title: "Marketplace"},
		{path: "/education", capability: core.CapPublic, title: "Education"},
		{path: "/donate", capability: core.CapPublic, title: "Donate"},

		// Auth pages: public, but logged-in users are bounced to the dashboard
		{path: "/login", capability: core.CapPublic, title: "Login", authRedirect: true},
		{path: "/register", capability: core.CapPublic, title: "Register", authRedirect: true},

		// Authenticated pages
		{path: "/dashboard", capability: core.CapAuthenticated, title: "Dashboard"},
		{path: "/dashboard/schedule-pickup", capability: core.CapAuthenticated, title: "Schedule Pickup"},
		{path: "/dashboard/upload-item", capability: core.CapAuthenticated, title: "Upload Item"},
		{path: "/rewards", capability: core.CapAuthenticated, title: "Rewards"},
		{path: "/profile", capability: core.CapAuthenticated, title: "Profile"},
		{path: "/settings", capability: core.CapAuthenticated, title: "Settings"},
		{path: "/recycling-centers", capability: core.CapAuthenticated, title: "Recycling Centers"},
		{path: "/analytics", capability: core.CapAuthenticated, title: "Analytics"},

		// Role-gated dashboards
		{path: "/organization", capability: core.CapOrganization, title: "Organization"},
		{path: "/organization/pickups", capability: core.CapOrganization, title: "Organization Pickups"},
		{path: "/admin", capability: core.CapAdmin, title: "Admin"},
		{path: "/admin/analytics", capability: core.CapAdmin, title: "Admin Analytics"},
	}
}

func (s *Server) registerRoutes() {
	for _, r := range pageRoutes() {
		s.app.Get(r.path, s.gatePage(r.capability, r.authRedirect), s.page(r.title))
	}

	auth := s.app.Group("/api/auth")
	auth.Post("/login", s.handleLogin)
	auth.Post("/register", s.handleRegister)
	auth.Post("/logout", s.handleLogout)
	auth.Get("/session", s.handleGetSession)

	api := s.app.Group("/api")

	pickups := api.Group("/pickups")
	pickups.Post("/", s.gateAPI(core.CapAuthenticated), s.handleSchedulePickup)
	pickups.Get("/", s.gateAPI(core.CapAuthenticated), s.handleListOwnPickups)
	pickups.Get("/all", s.gateAPI(core.CapOrganization), s.handleListAllPickups)
	pickups.Post("/:id/cancel", s.gateAPI(core.CapAuthenticated), s.handleCancelPickup)
	pickups.Post("/:id/advance", s.gateAPI(core.CapOrganization), s.handleAdvancePickup)

	items := api.Group("/items")
	items.Post("/detect", s.gateAPI(core.CapAuthenticated), s.handleDetectItem)
	items.Get("/", s.gateAPI(core.CapAuthenticated), s.handleListOwnItems)

	rewards := api.Group("/rewards")
	rewards.Get("/", s.gateAPI(core.CapAuthenticated), s.handleRewardBalance)
	rewards.Get("/offers", s.gateAPI(core.CapAuthenticated), s.handleListOffers)
	rewards.Post("/redeem-code", s.gateAPI(core.CapAuthenticated), s.handleRedeemCode)
	rewards.Post("/scan-bin", s.gateAPI(core.CapAuthenticated), s.handleScanBin)
	rewards.Post("/offers/:id/redeem", s.gateAPI(core.CapAuthenticated), s.handleRedeemOffer)

	api.Get("/marketplace", s.handleMarketplace)
	api.Post("/assist", s.handleAssist)

	if s.cache != nil {
		api.Get("/admin/cache-stats", s.gateAPI(core.CapAdmin), s.handleCacheStats)
	}
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s | EcoCycle</title></head>
<body><div id="root" data-page="%s"></div><script src="/assets/app.js"></script></body>
</html>
`

// page serves the SPA shell; the client router takes over from data-page.
func (s *Server) page(title string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(fmt.Sprintf(pageShell, title, title))
	}
}
