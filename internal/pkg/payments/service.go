package payments

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/nayemdev/portfolio/app/models"
	"github.com/nayemdev/portfolio/app/repository"
	"github.com/nayemdev/portfolio/internal/pkg/apperr"
	"github.com/nayemdev/portfolio/internal/pkg/validation"
)

// DefaultConfirmDelay is how long the fallback timer waits before settling a
// payment as completed. It stands in for a real gateway confirmation when no
// broker is configured.
const DefaultConfirmDelay = 5 * time.Second

// Outcome is a terminal confirmation result for a pending payment.
type Outcome string

const (
	OutcomeCompleted Outcome = models.PAYMENT_STATUS_COMPLETED
	OutcomeFailed    Outcome = models.PAYMENT_STATUS_FAILED
)

// ErrAlreadySettled is returned by Confirm when the payment already left the
// pending status. Terminal states never change again.
var ErrAlreadySettled = errors.New("payment already settled")

// InitiateInput carries one payment-initiation request. Amount arrives as the
// raw form value and is parsed here.
type InitiateInput struct {
	Service       string `json:"service" form:"service" validate:"required"`
	Amount        string `json:"amount" form:"amount" validate:"required"`
	Method        string `json:"method" form:"method" validate:"required"`
	Phone         string `json:"phone" form:"phone" validate:"required"`
	TransactionID string `json:"transactionId" form:"transactionId" validate:"required"`
	UserID        string `json:"userId" form:"userId"`
}

// Service handles the payment-intent lifecycle: creation in pending status,
// a single forward confirmation to completed or failed, and lookup.
type Service struct {
	repo         repository.PaymentRepository
	confirmDelay time.Duration
	autoConfirm  bool
}

// NewService creates a payment service with the fallback auto-confirmation
// enabled at the default delay
func NewService(repo repository.PaymentRepository) *Service {
	return &Service{
		repo:         repo,
		confirmDelay: DefaultConfirmDelay,
		autoConfirm:  true,
	}
}

// NewServiceFromDB creates a payment service with a gorm-backed repository
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(repository.NewPaymentRepository(db))
}

// SetConfirmDelay overrides the fallback confirmation delay
func (s *Service) SetConfirmDelay(d time.Duration) {
	s.confirmDelay = d
}

// SetAutoConfirm toggles the fallback timer. Disabled when a gateway
// confirmation consumer is running, so settlement comes from real events.
func (s *Service) SetAutoConfirm(enabled bool) {
	s.autoConfirm = enabled
}

// Initiate validates and persists a new payment in pending status and
// returns it immediately. When the fallback timer is active, a one-shot
// confirmation to completed fires after the configured delay; its failure is
// only logged, never reported to the original caller.
func (s *Service) Initiate(in InitiateInput) (*models.Payment, error) {
	if err := validation.Struct(in); err != nil {
		if !validation.HasRuleViolation(err) {
			return nil, err
		}
		return nil, apperr.NewValidation("All payment fields are required")
	}

	method := strings.ToLower(in.Method)
	if method != models.PAYMENT_METHOD_BKASH && method != models.PAYMENT_METHOD_NAGAD {
		return nil, apperr.NewValidation(`Invalid payment method. Use "bkash" or "nagad"`)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil {
		return nil, apperr.NewValidation("Amount must be a valid number")
	}
	if amount <= 0 {
		return nil, apperr.NewValidation("Amount must be greater than zero")
	}

	userID := in.UserID
	if userID == "" {
		userID = models.PAYMENT_USER_ANONYMOUS
	}

	payment := &models.Payment{
		Service:       in.Service,
		Amount:        amount,
		Method:        method,
		Phone:         in.Phone,
		TransactionID: in.TransactionID,
		UserID:        userID,
		Status:        models.PAYMENT_STATUS_PENDING,
	}
	if err := s.repo.Create(payment); err != nil {
		log.Errorf("[Payments] failed to persist payment for %s: %v", in.Phone, err)
		return nil, apperr.NewStorage("payment create", err)
	}

	if s.autoConfirm {
		s.scheduleAutoConfirm(payment.ID)
	}

	return payment, nil
}

// scheduleAutoConfirm arms the one-shot fallback settlement for a payment.
// There is no cancellation hook: once scheduled it always fires.
func (s *Service) scheduleAutoConfirm(paymentID string) {
	time.AfterFunc(s.confirmDelay, func() {
		if err := s.Confirm(paymentID, OutcomeCompleted); err != nil {
			log.Errorf("[Payments] auto-confirmation of %s failed: %v", paymentID, err)
		}
	})
}

// ListByUser returns a user's payments, newest first
func (s *Service) ListByUser(userID string, limit int) ([]models.Payment, error) {
	userPayments, err := s.repo.GetByUserID(userID, 0, limit)
	if err != nil {
		log.Errorf("[Payments] failed to list payments for %s: %v", userID, err)
		return nil, apperr.NewStorage("payment list", err)
	}
	if userPayments == nil {
		userPayments = []models.Payment{}
	}
	return userPayments, nil
}

// GetByID returns the current payment record. Callers polling during the
// confirmation window observe pending until the transition lands.
func (s *Service) GetByID(id string) (*models.Payment, error) {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		log.Errorf("[Payments] failed to load payment %s: %v", id, err)
		return nil, apperr.NewStorage("payment lookup", err)
	}
	return payment, nil
}

// Confirm settles a pending payment with a terminal outcome, exactly once.
// The conditional update in the repository guarantees the transition never
// runs backward and never runs twice.
func (s *Service) Confirm(id string, outcome Outcome) error {
	if outcome != OutcomeCompleted && outcome != OutcomeFailed {
		return apperr.NewValidation("Confirmation outcome must be completed or failed")
	}

	ok, err := s.repo.TransitionStatus(id, models.PAYMENT_STATUS_PENDING, string(outcome))
	if err != nil {
		return apperr.NewStorage("payment status transition", err)
	}
	if ok {
		log.Infof("[Payments] payment %s settled as %s", id, outcome)
		return nil
	}

	// No row moved: either the id is unknown or the payment already settled.
	if _, lookupErr := s.repo.GetByID(id); lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.NewStorage("payment lookup", lookupErr)
	}
	return ErrAlreadySettled
}
