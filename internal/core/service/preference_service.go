package service

import (
	"context"
	"fmt"

	"github.com/mpbridge/mp-relay/internal/port/input"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

// PreferenceServiceImpl implements the PreferenceService input port
type PreferenceServiceImpl struct {
	preferenceCreator output.PreferenceCreator
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(preferenceCreator output.PreferenceCreator) input.PreferenceService {
	return &PreferenceServiceImpl{
		preferenceCreator: preferenceCreator,
	}
}

// CreatePreference builds a checkout preference, defaulting to a single
// placeholder item when the request carries none.
func (s *PreferenceServiceImpl) CreatePreference(ctx context.Context, req input.CreatePreferenceRequest) (*output.Preference, error) {
	items := req.Items
	if len(items) == 0 {
		items = []output.PreferenceItem{
			{Title: "Mi producto", Quantity: 1, UnitPrice: 1000},
		}
	}

	pref, err := s.preferenceCreator.CreatePreference(ctx, items, req.ExternalReference)
	if err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	return pref, nil
}
