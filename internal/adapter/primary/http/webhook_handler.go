package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mpbridge/mp-relay/internal/core"
	"github.com/mpbridge/mp-relay/internal/port/input"
)

// WebhookHandler is a primary adapter (HTTP handler) for MercadoPago
// webhook intake.
type WebhookHandler struct {
	webhookService input.WebhookService

	// signingSecret enables x-signature verification when non-empty.
	signingSecret string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService input.WebhookService, signingSecret string) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		signingSecret:  signingSecret,
	}
}

// webhookBody is the recognized shape of MercadoPago's notification
// body. Anything else decodes to zero values and gets filtered out.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// HandleWebhook handles POST /mp/webhook. It always answers 200: a
// non-2xx here would make MercadoPago retry-storm the endpoint, so
// every failure mode folds into the acknowledgment body instead.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	var body webhookBody
	// A malformed body is not an error; the event may still be fully
	// described by query parameters.
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		c.Logger().Debugf("webhook body not decodable: %v", err)
	}

	// Query parameters win over body fields of the same meaning.
	eventType := c.QueryParam("type")
	if eventType == "" {
		eventType = body.Type
	}
	paymentID := c.QueryParam("data.id")
	if paymentID == "" {
		paymentID = body.Data.ID
	}

	if h.signingSecret != "" {
		err := verifySignature(
			h.signingSecret,
			c.Request().Header.Get("x-signature"),
			c.Request().Header.Get("x-request-id"),
			paymentID,
		)
		if err != nil {
			c.Logger().Warnf("webhook signature rejected: %v", err)
			return c.JSON(http.StatusOK, input.WebhookAck{OK: true, Ignored: true})
		}
	}

	ctx := core.WithCorrelationID(c.Request().Context(), uuid.NewString())
	event := core.WebhookEvent{Type: eventType, PaymentID: paymentID}

	ack := h.webhookService.ProcessEvent(ctx, event)
	return c.JSON(http.StatusOK, ack)
}
