package payments

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nayemdev/portfolio/app/models"
	"github.com/nayemdev/portfolio/internal/pkg/apperr"
)

type fakePaymentRepo struct {
	mu         sync.Mutex
	items      map[string]models.Payment
	order      []string
	failCreate bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{items: map[string]models.Payment{}}
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	if err := payment.BeforeCreate(nil); err != nil {
		return err
	}
	payment.CreatedAt = time.Now()
	r.items[payment.ID] = *payment
	r.order = append(r.order, payment.ID)
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (r *fakePaymentRepo) GetByUserID(userID string, offset, limit int) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	// iterate insertion order backwards: newest first
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		if p := r.items[r.order[i]]; p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) TransitionStatus(id, from, to string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.items[id]
	if !ok || payment.Status != from {
		return false, nil
	}
	payment.Status = to
	r.items[id] = payment
	return true, nil
}

func (r *fakePaymentRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakePaymentRepo) status(t *testing.T, id string) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.items[id]
	require.True(t, ok)
	return payment.Status
}

func newTestService(repo *fakePaymentRepo) *Service {
	svc := NewService(repo)
	svc.SetAutoConfirm(false)
	return svc
}

func validInput() InitiateInput {
	return InitiateInput{
		Service:       "Web Development",
		Amount:        "15000",
		Method:        "bKash",
		Phone:         "01712345678",
		TransactionID: "TXN123",
	}
}

func TestInitiateCreatesPendingPayment(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, models.PAYMENT_STATUS_PENDING, payment.Status)
	assert.Equal(t, models.PAYMENT_METHOD_BKASH, payment.Method)
	assert.Equal(t, 15000.0, payment.Amount)
	assert.Equal(t, models.PAYMENT_USER_ANONYMOUS, payment.UserID)
}

func TestInitiateNormalizesMethodCase(t *testing.T) {
	for _, method := range []string{"bkash", "Bkash", "BKASH"} {
		repo := newFakePaymentRepo()
		svc := newTestService(repo)

		in := validInput()
		in.Method = method
		payment, err := svc.Initiate(in)
		require.NoError(t, err)
		assert.Equal(t, models.PAYMENT_METHOD_BKASH, payment.Method)
	}

	repo := newFakePaymentRepo()
	svc := newTestService(repo)
	in := validInput()
	in.Method = "NAGAD"
	payment, err := svc.Initiate(in)
	require.NoError(t, err)
	assert.Equal(t, models.PAYMENT_METHOD_NAGAD, payment.Method)
}

func TestInitiateRejectsUnknownMethod(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Method = "paypal"
	_, err := svc.Initiate(in)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	count, _ := repo.Count()
	assert.Zero(t, count)
}

func TestInitiateRejectsMissingFields(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	mutations := []func(*InitiateInput){
		func(in *InitiateInput) { in.Service = "" },
		func(in *InitiateInput) { in.Amount = "" },
		func(in *InitiateInput) { in.Method = "" },
		func(in *InitiateInput) { in.Phone = "" },
		func(in *InitiateInput) { in.TransactionID = "" },
	}
	for _, mutate := range mutations {
		in := validInput()
		mutate(&in)
		_, err := svc.Initiate(in)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	}

	count, _ := repo.Count()
	assert.Zero(t, count)
}

func TestInitiateRejectsBadAmount(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	for _, amount := range []string{"abc", "15,000", "-500", "0"} {
		in := validInput()
		in.Amount = amount
		_, err := svc.Initiate(in)
		require.Error(t, err, "amount %q", amount)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestInitiateKeepsCallerUserID(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	in := validInput()
	in.UserID = "rahim@example.com"
	payment, err := svc.Initiate(in)
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", payment.UserID)
}

func TestInitiateStorageFailure(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.failCreate = true
	svc := newTestService(repo)

	_, err := svc.Initiate(validInput())
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))
}

func TestAutoConfirmSettlesAfterDelay(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewService(repo)
	svc.SetConfirmDelay(20 * time.Millisecond)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)

	// Immediately after initiation the record is still pending
	current, err := svc.GetByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PAYMENT_STATUS_PENDING, current.Status)

	require.Eventually(t, func() bool {
		current, err := svc.GetByID(payment.ID)
		return err == nil && current.Status == models.PAYMENT_STATUS_COMPLETED
	}, time.Second, 10*time.Millisecond)
}

func TestGetByIDUnknown(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())

	_, err := svc.GetByID("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestConfirmCompletedAndFailed(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeCompleted, OutcomeFailed} {
		repo := newFakePaymentRepo()
		svc := newTestService(repo)

		payment, err := svc.Initiate(validInput())
		require.NoError(t, err)

		require.NoError(t, svc.Confirm(payment.ID, outcome))
		assert.Equal(t, string(outcome), repo.status(t, payment.ID))
	}
}

func TestConfirmExactlyOnce(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(payment.ID, OutcomeCompleted))

	// A second confirmation cannot move or overwrite the terminal status
	err = svc.Confirm(payment.ID, OutcomeFailed)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Equal(t, models.PAYMENT_STATUS_COMPLETED, repo.status(t, payment.ID))
}

func TestConfirmUnknownPayment(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())

	err := svc.Confirm("does-not-exist", OutcomeCompleted)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestConfirmRejectsInvalidOutcome(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)

	err = svc.Confirm(payment.ID, Outcome("refunded"))
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, models.PAYMENT_STATUS_PENDING, repo.status(t, payment.ID))
}

func TestListByUser(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	in := validInput()
	in.UserID = "rahim@example.com"
	first, err := svc.Initiate(in)
	require.NoError(t, err)
	second, err := svc.Initiate(in)
	require.NoError(t, err)
	_, err = svc.Initiate(validInput()) // anonymous, not listed
	require.NoError(t, err)

	listed, err := svc.ListByUser("rahim@example.com", 10)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
