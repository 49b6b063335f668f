package input

import (
	"context"

	"github.com/mpbridge/mp-relay/internal/port/output"
)

// PreferenceService is an input port (primary port) for creating
// checkout preferences.
type PreferenceService interface {
	CreatePreference(ctx context.Context, req CreatePreferenceRequest) (*output.Preference, error)
}

// CreatePreferenceRequest represents the request to create a checkout
// preference. Items may be empty; the service falls back to a single
// default item.
type CreatePreferenceRequest struct {
	Items             []output.PreferenceItem
	ExternalReference string
}
