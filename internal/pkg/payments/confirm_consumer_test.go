package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nayemdev/portfolio/app/models"
)

func newTestConsumer(svc *Service) *ConfirmConsumer {
	// No reader: only the message handling path is under test
	return &ConfirmConsumer{svc: svc}
}

func confirmationPayload(t *testing.T, paymentID, outcome string) []byte {
	t.Helper()
	raw, err := json.Marshal(ConfirmationEvent{PaymentID: paymentID, Outcome: outcome})
	require.NoError(t, err)
	return raw
}

func TestConsumerSettlesPayment(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)
	consumer := newTestConsumer(svc)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)

	err = consumer.handleMessage(confirmationPayload(t, payment.ID, "failed"))
	require.NoError(t, err)
	assert.Equal(t, models.PAYMENT_STATUS_FAILED, repo.status(t, payment.ID))
}

func TestConsumerDropsMalformedEvent(t *testing.T) {
	consumer := newTestConsumer(newTestService(newFakePaymentRepo()))

	// Not retryable, so the handler reports success to allow the commit
	assert.NoError(t, consumer.handleMessage([]byte("{not json")))
}

func TestConsumerIgnoresDuplicateConfirmation(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)
	consumer := newTestConsumer(svc)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Confirm(payment.ID, OutcomeCompleted))

	err = consumer.handleMessage(confirmationPayload(t, payment.ID, "failed"))
	assert.NoError(t, err)
	assert.Equal(t, models.PAYMENT_STATUS_COMPLETED, repo.status(t, payment.ID))
}

func TestConsumerIgnoresUnknownPayment(t *testing.T) {
	consumer := newTestConsumer(newTestService(newFakePaymentRepo()))

	assert.NoError(t, consumer.handleMessage(confirmationPayload(t, "missing", "completed")))
}

func TestConsumerRunStopsWhenReaderClosed(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())
	consumer := NewConfirmConsumer([]string{"127.0.0.1:9092"}, "payment.confirmations", "settlement-test", svc)
	require.NoError(t, consumer.Close())

	done := make(chan struct{})
	go func() {
		consumer.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer kept running after its reader was closed")
	}
}

func TestConsumerIgnoresInvalidOutcome(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)
	consumer := newTestConsumer(svc)

	payment, err := svc.Initiate(validInput())
	require.NoError(t, err)

	err = consumer.handleMessage(confirmationPayload(t, payment.ID, "refunded"))
	assert.NoError(t, err)
	assert.Equal(t, models.PAYMENT_STATUS_PENDING, repo.status(t, payment.ID))
}
