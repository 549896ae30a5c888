package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/segmentio/kafka-go"

	"github.com/nayemdev/portfolio/internal/pkg/apperr"
)

// ConfirmationEvent is one gateway settlement event from the confirmation
// topic. Outcome must be a terminal payment status.
type ConfirmationEvent struct {
	PaymentID string `json:"payment_id"`
	Outcome   string `json:"outcome"`
}

// ConfirmConsumer feeds gateway confirmation events into Service.Confirm.
// While it runs, the fallback timer should be disabled so settlement only
// comes from real events.
type ConfirmConsumer struct {
	reader *kafka.Reader
	svc    *Service
}

// NewConfirmConsumer creates a consumer on the given brokers and topic
func NewConfirmConsumer(brokers []string, topic, groupID string, svc *Service) *ConfirmConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})

	return &ConfirmConsumer{reader: reader, svc: svc}
}

// Run consumes confirmation events until the context is cancelled. Offsets
// are committed only after the event was handled, so a crash mid-settlement
// redelivers; the exactly-once transition in Confirm absorbs the duplicate.
func (c *ConfirmConsumer) Run(ctx context.Context) {
	log.Infof("[Payments] confirmation consumer started (topic=%s)", c.reader.Config().Topic)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			// The reader reports io.EOF once Close ran; both mean shutdown
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info("[Payments] confirmation consumer stopping")
				return
			}
			log.Errorf("[Payments] failed to fetch confirmation event: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if err := c.handleMessage(m.Value); err != nil {
			log.Errorf("[Payments] failed to handle confirmation event (offset=%d): %v", m.Offset, err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Errorf("[Payments] failed to commit confirmation offset %d: %v", m.Offset, err)
		}
	}
}

// handleMessage settles one payment from a raw event. Malformed events and
// events for unknown or already-settled payments are logged and dropped;
// retrying them cannot succeed.
func (c *ConfirmConsumer) handleMessage(value []byte) error {
	var event ConfirmationEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Errorf("[Payments] dropping malformed confirmation event: %v (raw=%s)", err, value)
		return nil
	}

	err := c.svc.Confirm(event.PaymentID, Outcome(event.Outcome))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAlreadySettled):
		log.Warnf("[Payments] duplicate confirmation for %s ignored", event.PaymentID)
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		log.Warnf("[Payments] confirmation for unknown payment %s ignored", event.PaymentID)
		return nil
	case apperr.IsValidation(err):
		log.Warnf("[Payments] confirmation for %s carries invalid outcome %q, ignored", event.PaymentID, event.Outcome)
		return nil
	default:
		return err
	}
}

// Close releases the underlying reader
func (c *ConfirmConsumer) Close() error {
	return c.reader.Close()
}
