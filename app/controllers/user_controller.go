package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/nayemdev/portfolio/app/models"
	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
	"github.com/nayemdev/portfolio/internal/pkg/utils"
)

const dashboardPaymentLimit = 10

// HandleUserDashboard renders the account dashboard with the user's most
// recent payments. The session gate already ran; identity comes from the
// request's user context.
func HandleUserDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var userPayments []models.Payment
	if paymentService != nil {
		if p, err := paymentService.ListByUser(userCtx.UserID, dashboardPaymentLimit); err == nil {
			userPayments = p
		}
		// A listing failure only hides the payment history block; the page
		// itself still renders.
	}

	return c.Render("dashboard", fiber.Map{
		"Title":         " | Dashboard",
		"FromProtected": true,
		"Username":      userCtx.Username,
		"Email":         userCtx.Email,
		"AvatarURL":     utils.GetGravatarURL(userCtx.Email, 120),
		"Payments":      userPayments,
		"Flash":         flash.Get(c),
	})
}

// HandleUserProfile renders the profile page from session identity fields
func HandleUserProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Render("profile", fiber.Map{
		"Title":         " | Profile",
		"FromProtected": true,
		"Username":      userCtx.Username,
		"Email":         userCtx.Email,
		"AvatarURL":     utils.GetGravatarURL(userCtx.Email, 200),
		"Flash":         flash.Get(c),
	})
}
