package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/app/controllers"
	"github.com/nayemdev/portfolio/internal/pkg/constants"
	"github.com/nayemdev/portfolio/internal/pkg/middleware"
)

// Account-only pages sit behind the session gate: no session means a
// redirect to /login before any page body renders.
func (h HttpRouter) registerProtectedRoutes(app *fiber.App) {
	app.Get(constants.DashboardRoute, middleware.RequireAuth, controllers.HandleUserDashboard)
	app.Get(constants.ProfileRoute, middleware.RequireAuth, controllers.HandleUserProfile)
}
