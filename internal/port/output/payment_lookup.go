package output

import (
	"context"

	"github.com/mpbridge/mp-relay/internal/core"
)

// PaymentLookup is an output port (secondary port) for fetching the
// authoritative payment record from MercadoPago.
// Secondary adapters (REST client implementations) will implement this
type PaymentLookup interface {
	// GetPayment fetches the payment record by id. One round trip,
	// no retry, no caching. Failures come back as *core.LookupError.
	GetPayment(ctx context.Context, paymentID string) (*core.PaymentRecord, error)
}
