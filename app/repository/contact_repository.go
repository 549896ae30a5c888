package repository

import (
	"gorm.io/gorm"

	"github.com/nayemdev/portfolio/app/models"
)

// contactMessageRepository implements the ContactMessageRepository interface
type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository instance
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

// Create persists a new contact message in the database
func (r *contactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

// GetRecent retrieves the most recent contact messages, newest first
func (r *contactMessageRepository) GetRecent(limit int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

// Count returns the total number of contact messages
func (r *contactMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
