package router

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/app/controllers"
	"github.com/nayemdev/portfolio/app/repository"
	"github.com/nayemdev/portfolio/internal/pkg/contact"
	"github.com/nayemdev/portfolio/internal/pkg/database"
	"github.com/nayemdev/portfolio/internal/pkg/env"
	"github.com/nayemdev/portfolio/internal/pkg/middleware"
	"github.com/nayemdev/portfolio/internal/pkg/payments"
	"github.com/nayemdev/portfolio/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize repositories and services
	repository.InitializeFactory(database.GetDB())
	factory := repository.GetGlobalFactory()

	controllers.InitializeContactController(contact.NewService(factory.GetContactMessageRepository()))

	paymentService := payments.NewService(factory.GetPaymentRepository())
	installGatewayConsumer(paymentService)
	controllers.InitializePaymentController(paymentService)

	h.registerPublicRoutes(app)
	h.registerProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

// installGatewayConsumer starts the payment confirmation consumer when a
// broker is configured. With real gateway events flowing, the fixed-delay
// fallback settlement is switched off.
func installGatewayConsumer(svc *payments.Service) {
	brokers := env.GetEnv("GATEWAY_BROKER", "")
	if brokers == "" {
		return
	}

	topic := env.GetEnv("GATEWAY_CONFIRM_TOPIC", "payment.confirmations")
	group := env.GetEnv("GATEWAY_CONSUMER_GROUP", "portfolio-payments")

	svc.SetAutoConfirm(false)
	consumer := payments.NewConfirmConsumer(strings.Split(brokers, ","), topic, group, svc)
	go consumer.Run(context.Background())
}
