package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/app/controllers"
	"github.com/nayemdev/portfolio/internal/pkg/constants"
	"github.com/nayemdev/portfolio/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Static pages
	app.Get(constants.PublicRoute, controllers.HandleHome)
	app.Get("/about", controllers.HandleAbout)
	app.Get("/services", controllers.HandleServices)
	app.Get("/portfolio", controllers.HandlePortfolio)
	app.Get("/contact", controllers.HandleContactPage)
	app.Get("/privacy", controllers.HandlePrivacy)
	app.Get("/terms", controllers.HandleTerms)

	// Auth
	app.Get(constants.LoginRoute, controllers.HandleAuthLogin)
	app.Post(constants.LoginRoute, controllers.HandleAuthLogin)
	app.Get(constants.SignupRoute, controllers.HandleAuthSignup)
	app.Post(constants.SignupRoute, controllers.HandleAuthSignup)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
