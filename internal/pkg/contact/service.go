package contact

import (
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/nayemdev/portfolio/app/models"
	"github.com/nayemdev/portfolio/app/repository"
	"github.com/nayemdev/portfolio/internal/pkg/apperr"
	"github.com/nayemdev/portfolio/internal/pkg/validation"
)

// RecentLimit caps the listing at the most recent messages. There is no
// further pagination.
const RecentLimit = 50

// SubmitInput carries one contact-form submission. All four fields are
// required; the tags are the single source of truth for both the page form
// and the JSON endpoint.
type SubmitInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Service handles contact-form submissions and listing
type Service struct {
	repo repository.ContactMessageRepository
}

// NewService creates a contact service on the given repository
func NewService(repo repository.ContactMessageRepository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a contact service with a gorm-backed repository
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(repository.NewContactMessageRepository(db))
}

// Submit validates and persists a contact message. The record is immutable
// once written.
func (s *Service) Submit(in SubmitInput) (*models.ContactMessage, error) {
	if err := validation.Struct(in); err != nil {
		if !validation.HasRuleViolation(err) {
			return nil, err
		}
		return nil, apperr.NewValidation("All fields are required")
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(msg); err != nil {
		log.Errorf("[Contact] failed to persist message from %s: %v", in.Email, err)
		return nil, apperr.NewStorage("contact message create", err)
	}

	return msg, nil
}

// ListRecent returns the most recent messages, newest first, capped at
// RecentLimit. An empty slice is returned when none exist.
func (s *Service) ListRecent() ([]models.ContactMessage, error) {
	messages, err := s.repo.GetRecent(RecentLimit)
	if err != nil {
		log.Errorf("[Contact] failed to list messages: %v", err)
		return nil, apperr.NewStorage("contact message list", err)
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}
