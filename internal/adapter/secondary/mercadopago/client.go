package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mpbridge/mp-relay/internal/core"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

const requestTimeout = 10 * time.Second

// Client is a secondary adapter that talks to the MercadoPago REST API.
// It implements the PaymentLookup and PreferenceCreator output ports.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client

	// Preference defaults, applied to every create call.
	backURLSuccess  string
	backURLFailure  string
	backURLPending  string
	notificationURL string
}

// Config holds the settings for the MercadoPago client.
type Config struct {
	BaseURL         string
	AccessToken     string
	BackURLSuccess  string
	BackURLFailure  string
	BackURLPending  string
	NotificationURL string
}

// NewClient creates a new MercadoPago client
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         cfg.BaseURL,
		accessToken:     cfg.AccessToken,
		httpClient:      &http.Client{Timeout: requestTimeout},
		backURLSuccess:  cfg.BackURLSuccess,
		backURLFailure:  cfg.BackURLFailure,
		backURLPending:  cfg.BackURLPending,
		notificationURL: cfg.NotificationURL,
	}
}

// paymentResponse is the subset of MercadoPago's payment resource the
// relay cares about. The id arrives as a number.
type paymentResponse struct {
	ID                json.Number          `json:"id"`
	Status            core.ProcessorStatus `json:"status"`
	ExternalReference string               `json:"external_reference"`
}

// GetPayment fetches the authoritative payment record by id. One round
// trip, no retry; every failure mode comes back as *core.LookupError.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*core.PaymentRecord, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.LookupError{PaymentID: paymentID, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &core.LookupError{PaymentID: paymentID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &core.LookupError{
			PaymentID: paymentID,
			Err:       fmt.Errorf("mercadopago returned %d: %s", resp.StatusCode, body),
		}
	}

	var payment paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, &core.LookupError{PaymentID: paymentID, Err: fmt.Errorf("failed to decode payment: %w", err)}
	}

	return &core.PaymentRecord{
		ID:                payment.ID.String(),
		Status:            payment.Status,
		ExternalReference: payment.ExternalReference,
	}, nil
}

type preferenceRequest struct {
	Items             []output.PreferenceItem `json:"items"`
	BackURLs          preferenceBackURLs      `json:"back_urls"`
	NotificationURL   string                  `json:"notification_url,omitempty"`
	AutoReturn        string                  `json:"auto_return"`
	ExternalReference string                  `json:"external_reference,omitempty"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// CreatePreference creates a checkout preference with the configured
// back URLs and notification URL.
func (c *Client) CreatePreference(ctx context.Context, items []output.PreferenceItem, externalReference string) (*output.Preference, error) {
	payload := preferenceRequest{
		Items: items,
		BackURLs: preferenceBackURLs{
			Success: c.backURLSuccess,
			Failure: c.backURLFailure,
			Pending: c.backURLPending,
		},
		NotificationURL:   c.notificationURL,
		AutoReturn:        "approved",
		ExternalReference: externalReference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preference: %w", err)
	}

	url := c.baseURL + "/checkout/preferences"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build preference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mercadopago returned %d: %s", resp.StatusCode, respBody)
	}

	var pref output.Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, fmt.Errorf("failed to decode preference: %w", err)
	}

	return &pref, nil
}
