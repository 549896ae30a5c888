package repository

import (
	"github.com/nayemdev/portfolio/app/models"
)

// ContactMessageRepository defines the interface for contact-form database operations
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	GetRecent(limit int) ([]models.ContactMessage, error)
	Count() (int64, error)
}

// PaymentRepository defines the interface for payment-related database operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByUserID(userID string, offset, limit int) ([]models.Payment, error)
	// TransitionStatus moves a payment from one status to another and reports
	// whether a row actually changed. The conditional match on the current
	// status is what keeps the transition forward-only and exactly-once.
	TransitionStatus(id, from, to string) (bool, error)
	Count() (int64, error)
}
