package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
)

func HandleHome(c *fiber.Ctx) error {
	return renderPage(c, "home", "")
}

func HandleAbout(c *fiber.Ctx) error {
	return renderPage(c, "about", " | About")
}

func HandleServices(c *fiber.Ctx) error {
	return renderPage(c, "services", " | Services")
}

func HandlePortfolio(c *fiber.Ctx) error {
	return renderPage(c, "portfolio", " | Portfolio")
}

func HandleContactPage(c *fiber.Ctx) error {
	return renderPage(c, "contact", " | Contact")
}

func HandlePrivacy(c *fiber.Ctx) error {
	return renderPage(c, "privacy", " | Privacy Policy")
}

func HandleTerms(c *fiber.Ctx) error {
	return renderPage(c, "terms", " | Terms of Service")
}

// renderPage renders a public page within the main layout
func renderPage(c *fiber.Ctx, view, titleSuffix string) error {
	return c.Render(view, fiber.Map{
		"Title":         titleSuffix,
		"FromProtected": usercontext.IsLoggedIn(c),
		"Username":      usercontext.GetUsername(c),
		"Flash":         flash.Get(c),
	})
}
