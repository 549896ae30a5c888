package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/internal/pkg/constants"
	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
)

// GateDecision is the outcome of the session gate for a request.
type GateDecision int

const (
	// GateAllow lets the page handler render with the session identity.
	GateAllow GateDecision = iota
	// GateRedirect sends the visitor to the login page; nothing else renders.
	GateRedirect
)

// Gate decides whether an account-scoped page may render for the given
// session context. It only checks presence of a session, not roles.
func Gate(u usercontext.UserContext) GateDecision {
	if !u.IsLoggedIn {
		return GateRedirect
	}
	return GateAllow
}

// RequireAuth ensures a logged-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if Gate(usercontext.GetUserContext(c)) == GateRedirect {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPISessionAuth ensures a logged-in session for API routes and returns JSON 401 instead of redirect.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if Gate(usercontext.GetUserContext(c)) == GateRedirect {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
