package core

import "fmt"

// WebhookEvent is the normalized form of one incoming MercadoPago
// notification, after query/body precedence has been resolved at the
// HTTP boundary. It lives only for the duration of one request.
type WebhookEvent struct {
	Type      string
	PaymentID string
}

// Qualifies reports whether the event should trigger a payment lookup.
// MercadoPago also delivers merchant_order and test events; those are
// acknowledged and dropped.
func (e WebhookEvent) Qualifies() bool {
	return e.Type == "payment" && e.PaymentID != ""
}

// OrderNotification is the translated status update pushed to the order
// service. It is built at most once per event and never retried.
type OrderNotification struct {
	// OrderReference travels in the URL path, not the JSON body.
	OrderReference string `json:"-"`

	PaymentStatus     InternalStatus  `json:"paymentStatus"`
	PaymentID         string          `json:"paymentId"`
	MercadopagoStatus ProcessorStatus `json:"mercadopagoStatus"`
}

// LookupError indicates the authoritative payment record could not be
// fetched from MercadoPago.
type LookupError struct {
	PaymentID string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("payment lookup failed for %s: %v", e.PaymentID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
