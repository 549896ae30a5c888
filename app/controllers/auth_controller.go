package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/nayemdev/portfolio/internal/pkg/constants"
	"github.com/nayemdev/portfolio/internal/pkg/session"
	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
)

// The credentials provider is a stub: any non-empty email and password pair
// authenticates, and the display name is the email local part. No account
// record is stored anywhere.

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		email := strings.TrimSpace(c.FormValue("email"))
		password := c.FormValue("password")

		fm := fiber.Map{
			"type": "error",
		}

		if email == "" || password == "" {
			fm["message"] = "Email and password are required"

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		identity := map[string]string{
			AUTH_KEY:   "true",
			USER_ID:    email,
			USER_NAME:  displayNameFromEmail(email),
			USER_EMAIL: email,
		}
		for key, value := range identity {
			if err := session.SetSessionValue(c, key, value); err != nil {
				fm["message"] = fmt.Sprintf("something went wrong: %s", err)

				return flash.WithError(c, fm).Redirect(constants.LoginRoute)
			}
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.DashboardRoute)
	}

	return c.Render("login", fiber.Map{
		"Title":         " | Login",
		"FromProtected": usercontext.IsLoggedIn(c),
		"Flash":         flash.Get(c),
	})
}

func HandleAuthSignup(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		name := strings.TrimSpace(c.FormValue("name"))
		email := strings.TrimSpace(c.FormValue("email"))
		password := c.FormValue("password")

		if name == "" || email == "" || password == "" {
			fm := fiber.Map{
				"type":    "error",
				"message": "All fields are required",
			}

			return flash.WithError(c, fm).Redirect(constants.SignupRoute)
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Account created! Please log in.",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
	}

	return c.Render("signup", fiber.Map{
		"Title":         " | Sign Up",
		"FromProtected": usercontext.IsLoggedIn(c),
		"Flash":         flash.Get(c),
	})
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "See you soon!",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
}

// displayNameFromEmail derives the display name from the email local part
func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
