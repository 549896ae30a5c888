package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/app/controllers"
	"github.com/nayemdev/portfolio/internal/pkg/session"
	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session identity for every request and
// stores it as the USER_CONTEXT local. Handlers read it through the
// usercontext accessors instead of touching the session themselves.
func UserContextMiddleware(c *fiber.Ctx) error {
	if session.GetSessionValue(c, controllers.AUTH_KEY) != "true" {
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			IsLoggedIn: false,
		})
		return c.Next()
	}

	c.Locals("USER_CONTEXT", usercontext.UserContext{
		UserID:     session.GetSessionValue(c, controllers.USER_ID),
		Username:   session.GetSessionValue(c, controllers.USER_NAME),
		Email:      session.GetSessionValue(c, controllers.USER_EMAIL),
		IsLoggedIn: true,
	})

	return c.Next()
}
