package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mpbridge/mp-relay/internal/port/input"
	"github.com/mpbridge/mp-relay/internal/port/output"
)

// PreferenceHandler is a primary adapter (HTTP handler) for checkout
// preference creation.
type PreferenceHandler struct {
	preferenceService input.PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService input.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// CreatePreferenceRequest represents the HTTP request to create a
// checkout preference.
type CreatePreferenceRequest struct {
	Items             []output.PreferenceItem `json:"items"`
	ExternalReference string                  `json:"external_reference"`
}

// HandleCreatePreference handles POST /mp/preference
func (h *PreferenceHandler) HandleCreatePreference(c echo.Context) error {
	var req CreatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	pref, err := h.preferenceService.CreatePreference(c.Request().Context(), input.CreatePreferenceRequest{
		Items:             req.Items,
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		c.Logger().Errorf("preference creation failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Failed to create preference",
		})
	}

	return c.JSON(http.StatusOK, pref)
}
