package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nayemdev/portfolio/internal/pkg/apperr"
	"github.com/nayemdev/portfolio/internal/pkg/payments"
	"github.com/nayemdev/portfolio/internal/pkg/usercontext"
)

var paymentService *payments.Service

// InitializePaymentController wires the payment service into the handlers
func InitializePaymentController(svc *payments.Service) {
	paymentService = svc
}

// HandlePaymentInitiate records a pending payment and returns its id
// immediately; confirmation happens asynchronously.
func HandlePaymentInitiate(c *fiber.Ctx) error {
	var in payments.InitiateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All payment fields are required",
		})
	}

	// Logged-in users own their payments even when the client omits userId
	if in.UserID == "" && usercontext.IsLoggedIn(c) {
		in.UserID = usercontext.GetUserID(c)
	}

	payment, err := paymentService.Initiate(in)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process payment",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Payment initiated successfully!",
		"paymentId": payment.ID,
		"status":    payment.Status,
	})
}

// HandlePaymentLookup returns the current payment record by id. Callers
// polling during the confirmation window see pending until it settles.
func HandlePaymentLookup(c *fiber.Ctx) error {
	paymentID := c.Query("paymentId")
	if paymentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Payment ID is required",
		})
	}

	payment, err := paymentService.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Payment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch payment",
		})
	}

	return c.Status(fiber.StatusOK).JSON(payment)
}

// HandlePaymentHistory returns the caller's payments, newest first. The
// route sits behind the API session gate, so an identity is always present.
func HandlePaymentHistory(c *fiber.Ctx) error {
	userPayments, err := paymentService.ListByUser(usercontext.GetUserID(c), dashboardPaymentLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch payments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(userPayments)
}
