package output

import (
	"context"

	"github.com/mpbridge/mp-relay/internal/core"
)

// NotifyResult is the outcome of one delivery attempt to the order
// service. Deliveries are fire-and-forget: the notifier never returns
// an error, it reports what happened and the caller decides what to
// log. There is exactly one attempt per notification.
type NotifyResult struct {
	Delivered bool
	// StatusCode is the downstream HTTP status, 0 when the request
	// never completed (connection error, timeout).
	StatusCode int
	// Reason describes the failure when Delivered is false.
	Reason string
}

// OrderNotifier is an output port (secondary port) for pushing a
// translated payment status to the downstream order service.
type OrderNotifier interface {
	Notify(ctx context.Context, notification core.OrderNotification) NotifyResult
}
