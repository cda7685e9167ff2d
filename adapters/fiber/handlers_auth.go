package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ecocycle/server/services"
)

func (s *Server) handleLogin(c fiber.Ctx) error {
	var input services.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	result, err := s.auth.Login(c.Context(), input, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return failure(c, err)
	}

	s.setSessionCookies(c, result.Token, result.User)

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    result.User,
	})
}

func (s *Server) handleRegister(c fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	result, err := s.auth.Register(c.Context(), input, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return failure(c, err)
	}

	s.setSessionCookies(c, result.Token, result.User)

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"user":    result.User,
	})
}

// handleLogout always clears the cookies and succeeds, even when no
// session exists; logging out twice is not an error.
func (s *Server) handleLogout(c fiber.Ctx) error {
	token := c.Cookies(CookieToken)

	if err := s.auth.Logout(c.Context(), token); err != nil {
		return failure(c, err)
	}

	s.clearSessionCookies(c)

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// handleGetSession reports who is logged in. An absent or unresolvable
// session is a normal answer, not an error.
func (s *Server) handleGetSession(c fiber.Ctx) error {
	token := c.Cookies(CookieToken)
	if token == "" {
		return c.Status(http.StatusOK).JSON(fiber.Map{"isLoggedIn": false})
	}

	data, err := s.auth.GetSession(c.Context(), token)
	if err != nil {
		return c.Status(http.StatusOK).JSON(fiber.Map{"isLoggedIn": false})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"isLoggedIn": true,
		"user":       data.User,
	})
}
