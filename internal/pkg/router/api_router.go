package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/nayemdev/portfolio/app/controllers"
	"github.com/nayemdev/portfolio/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	// Contact form
	api.Post("/contact", controllers.HandleContactSubmit)
	api.Get("/contact", controllers.HandleContactList)

	// Payments
	api.Post("/payment", controllers.HandlePaymentInitiate)
	api.Get("/payment", controllers.HandlePaymentLookup)
	api.Get("/payment/history", middleware.RequireAPISessionAuth, controllers.HandlePaymentHistory)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
