package input

import (
	"context"

	"github.com/mpbridge/mp-relay/internal/core"
)

// WebhookService is an input port (primary port) for webhook intake.
// Primary adapters (HTTP handlers) will use this
type WebhookService interface {
	// ProcessEvent runs the reconciliation pipeline for one event:
	// lookup, translate, notify. It never fails: every outcome maps
	// to an acknowledgment, because the caller owes MercadoPago a
	// 200 regardless of what happened downstream.
	ProcessEvent(ctx context.Context, event core.WebhookEvent) WebhookAck
}

// WebhookAck is the acknowledgment returned to MercadoPago. OK is
// always true; Ignored marks events that were filtered out, Error
// carries a failure message for out-of-band visibility only.
type WebhookAck struct {
	OK      bool   `json:"ok"`
	Ignored bool   `json:"ignored,omitempty"`
	Error   string `json:"error,omitempty"`
}
