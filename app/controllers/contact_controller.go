package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/internal/pkg/apperr"
	"github.com/nayemdev/portfolio/internal/pkg/contact"
)

var contactService *contact.Service

// InitializeContactController wires the contact service into the handlers
func InitializeContactController(svc *contact.Service) {
	contactService = svc
}

// HandleContactSubmit accepts a contact-form submission (JSON or form body)
func HandleContactSubmit(c *fiber.Ctx) error {
	var in contact.SubmitInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}

	if _, err := contactService.Submit(in); err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message sent successfully!",
	})
}

// HandleContactList returns the 50 most recent messages, newest first
func HandleContactList(c *fiber.Ctx) error {
	messages, err := contactService.ListRecent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch contacts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}
