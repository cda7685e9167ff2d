package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/core"
)

// Locals keys populated by the gate for downstream handlers. This is the
// request-scoped view of "current user": the session is resolved once per
// request and reused.
const (
	localUser    = "user"
	localSession = "session"
)

// resolveSession resolves the auth-token cookie to a stored session and
// user. The user-role cookie is deliberately never consulted; a tampered
// role cookie has no effect on authorization. Any failure (missing cookie,
// unknown token, expired session, deleted user) resolves to nil, which the
// gate treats as unauthenticated.
func (s *Server) resolveSession(c fiber.Ctx) *core.SessionData {
	token := c.Cookies(CookieToken)
	if token == "" {
		return nil
	}

	data, err := s.auth.GetSession(c.Context(), token)
	if err != nil {
		return nil
	}

	c.Locals(localUser, data.User)
	c.Locals(localSession, data.Session)
	return data
}

// gatePage guards a browser-facing route. Decision order:
// public → allow; no session → /login; insufficient role → /dashboard;
// authenticated user on an authRedirect route (login, register) → /dashboard.
func (s *Server) gatePage(capability core.Capability, authRedirect bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		data := s.resolveSession(c)

		if capability == core.CapPublic {
			if authRedirect && data != nil {
				return c.Redirect().To("/dashboard")
			}
			return c.Next()
		}

		if data == nil {
			return c.Redirect().To("/login")
		}

		if !capability.Allows(data.User.Role) {
			return c.Redirect().To("/dashboard")
		}

		return c.Next()
	}
}

// gateAPI guards a JSON route. Same decisions as gatePage, answered with
// statuses instead of redirects.
func (s *Server) gateAPI(capability core.Capability) fiber.Handler {
	return func(c fiber.Ctx) error {
		data := s.resolveSession(c)

		if capability == core.CapPublic {
			return c.Next()
		}

		if data == nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": core.ErrInvalidToken.Error(),
			})
		}

		if !capability.Allows(data.User.Role) {
			return failure(c, core.ErrForbidden)
		}

		return c.Next()
	}
}

// currentUser returns the gate-resolved user for the request.
func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals(localUser).(*core.User)
	return user
}
