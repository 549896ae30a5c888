package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PAYMENT_METHOD_BKASH = "bkash"
	PAYMENT_METHOD_NAGAD = "nagad"

	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_COMPLETED = "completed"
	PAYMENT_STATUS_FAILED    = "failed"

	// PAYMENT_USER_ANONYMOUS is recorded when a guest pays without an account
	PAYMENT_USER_ANONYMOUS = "anonymous"
)

// Payment represents a manually initiated mobile-payment transfer (bKash/Nagad)
// awaiting confirmation. Status only ever moves forward from pending to one of
// the terminal states.
type Payment struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Service       string    `gorm:"type:varchar(150)" json:"service" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Method        string    `gorm:"type:varchar(20);index" json:"method" validate:"required,oneof=bkash nagad"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone" validate:"required"`
	TransactionID string    `gorm:"type:varchar(100);index" json:"transactionId" validate:"required"`
	UserID        string    `gorm:"type:varchar(200);index;default:'anonymous'" json:"userId"`
	Status        string    `gorm:"type:varchar(20);index;default:'pending'" json:"status" validate:"oneof=pending completed failed"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns a fresh identifier and defaults when none are set
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.UserID == "" {
		p.UserID = PAYMENT_USER_ANONYMOUS
	}
	if p.Status == "" {
		p.Status = PAYMENT_STATUS_PENDING
	}
	return nil
}

// IsFinal reports whether the payment reached a terminal status
func (p *Payment) IsFinal() bool {
	return p.Status == PAYMENT_STATUS_COMPLETED || p.Status == PAYMENT_STATUS_FAILED
}
