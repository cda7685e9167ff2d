package fiber

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/core"
)

// Session cookie names. auth-token carries the opaque session token and is
// the only value authorization ever reads; user-name and user-role are
// display hints for the browser and are re-derived server-side on every
// gated request.
const (
	CookieToken = "auth-token"
	CookieName  = "user-name"
	CookieRole  = "user-role"
)

func (s *Server) setSessionCookies(c fiber.Ctx, token string, user *core.User) {
	maxAge := int(s.sessionMaxAge / time.Second)

	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   s.production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	// Readable by page scripts for the navbar greeting
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    user.Name,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: false,
		Secure:   s.production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	c.Cookie(&fiber.Cookie{
		Name:     CookieRole,
		Value:    string(user.Role),
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   s.production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookies expires all three session cookies. Clearing absent
// cookies is harmless, which keeps logout idempotent.
func (s *Server) clearSessionCookies(c fiber.Ctx) {
	for _, name := range []string{CookieToken, CookieName, CookieRole} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HTTPOnly: name != CookieName,
			Secure:   s.production,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
