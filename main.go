package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/nayemdev/portfolio/internal/pkg/cache"
	"github.com/nayemdev/portfolio/internal/pkg/database"
	"github.com/nayemdev/portfolio/internal/pkg/env"
	"github.com/nayemdev/portfolio/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Use(recover.New(), logger.New())
	// Live request metrics are a debugging surface, not a public page
	if env.IsDev() {
		app.Get("/metrics", monitor.New())
	}
	app.Static("/", "./public/assets")

	// ROUTER
	router.InstallRouter(app)

	return app
}
