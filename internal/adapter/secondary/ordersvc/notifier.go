package ordersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mpbridge/mp-relay/internal/core"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

const (
	providerName   = "mercadopago"
	requestTimeout = 10 * time.Second
)

// Notifier is a secondary adapter that pushes translated payment
// statuses to the downstream order service. It implements the
// OrderNotifier output port.
type Notifier struct {
	baseURL      string
	pathTemplate string
	secret       string
	httpClient   *http.Client
}

// NewNotifier creates a new order-service notifier. pathTemplate must
// contain a "{reference}" placeholder; secret may be empty, in which
// case the x-webhook-secret header is omitted and the downstream
// service sees the call as unauthenticated.
func NewNotifier(baseURL, pathTemplate, secret string) *Notifier {
	return &Notifier{
		baseURL:      baseURL,
		pathTemplate: pathTemplate,
		secret:       secret,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// Notify delivers one status update. Exactly one attempt: a transient
// downstream outage loses the update unless MercadoPago redelivers the
// triggering event. The outcome is reported, never raised.
func (n *Notifier) Notify(ctx context.Context, notification core.OrderNotification) output.NotifyResult {
	body, err := json.Marshal(notification)
	if err != nil {
		return output.NotifyResult{Reason: fmt.Sprintf("failed to marshal notification: %v", err)}
	}

	path := strings.ReplaceAll(n.pathTemplate, "{reference}", notification.OrderReference)
	url := n.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return output.NotifyResult{Reason: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-webhook-provider", providerName)
	if n.secret != "" {
		req.Header.Set("x-webhook-secret", n.secret)
	}
	if id := core.CorrelationID(ctx); id != "" {
		req.Header.Set("x-correlation-id", id)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return output.NotifyResult{Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return output.NotifyResult{
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf("order service returned %d: %s", resp.StatusCode, respBody),
		}
	}

	return output.NotifyResult{Delivered: true, StatusCode: resp.StatusCode}
}
