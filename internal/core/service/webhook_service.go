package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mpbridge/mp-relay/internal/core"
	"github.com/mpbridge/mp-relay/internal/port/input"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

// WebhookServiceImpl implements the WebhookService input port
type WebhookServiceImpl struct {
	paymentLookup output.PaymentLookup
	orderNotifier output.OrderNotifier
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	paymentLookup output.PaymentLookup,
	orderNotifier output.OrderNotifier,
) input.WebhookService {
	return &WebhookServiceImpl{
		paymentLookup: paymentLookup,
		orderNotifier: orderNotifier,
	}
}

// ProcessEvent runs the reconciliation pipeline for one incoming event.
// Every outcome, including a panic, maps to an acknowledgment: a non-2xx
// answer would make MercadoPago redeliver the event and duplicate the
// whole pipeline.
func (s *WebhookServiceImpl) ProcessEvent(ctx context.Context, event core.WebhookEvent) (ack input.WebhookAck) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] panic processing webhook: %v", core.CorrelationID(ctx), r)
			ack = input.WebhookAck{OK: true, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	if !event.Qualifies() {
		return input.WebhookAck{OK: true, Ignored: true}
	}

	if core.CorrelationID(ctx) == "" {
		ctx = core.WithCorrelationID(ctx, uuid.NewString())
	}
	correlationID := core.CorrelationID(ctx)

	// The notification payload is only a signal: the authoritative
	// record comes from the lookup.
	payment, err := s.paymentLookup.GetPayment(ctx, event.PaymentID)
	if err != nil {
		log.Printf("[%s] payment lookup failed: %v", correlationID, err)
		return input.WebhookAck{OK: true, Error: err.Error()}
	}

	log.Printf("[%s] payment %s status=%s external_reference=%q",
		correlationID, payment.ID, payment.Status, payment.ExternalReference)

	// No external_reference means the payment is not correlated to an
	// order; nothing to notify, and that is a normal outcome.
	if payment.ExternalReference == "" {
		return input.WebhookAck{OK: true}
	}

	notification := core.OrderNotification{
		OrderReference:    payment.ExternalReference,
		PaymentStatus:     core.TranslateStatus(payment.Status),
		PaymentID:         event.PaymentID,
		MercadopagoStatus: payment.Status,
	}

	// One attempt, outcome observed but never propagated: the ack owed
	// to MercadoPago does not depend on the order service being up.
	result := s.orderNotifier.Notify(ctx, notification)
	if result.Delivered {
		log.Printf("[%s] order %s updated to %s",
			correlationID, notification.OrderReference, notification.PaymentStatus)
	} else {
		log.Printf("[%s] order notification failed for %s: %s",
			correlationID, notification.OrderReference, result.Reason)
	}

	return input.WebhookAck{OK: true}
}
