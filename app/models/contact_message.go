package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage represents a visitor-submitted inquiry from the contact form.
// Records are immutable once created; there is no update or delete path.
type ContactMessage struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150)" json:"name" validate:"required"`
	Email     string    `gorm:"type:varchar(200);index" json:"email" validate:"required"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject" validate:"required"`
	Message   string    `gorm:"type:text" json:"message" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// BeforeCreate assigns a fresh identifier when none is set
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
