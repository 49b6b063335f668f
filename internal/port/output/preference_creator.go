package output

import "context"

// PreferenceItem is one line item in a checkout preference.
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Preference is MercadoPago's response to a preference create call,
// passed through verbatim.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// PreferenceCreator is an output port (secondary port) for creating a
// checkout preference against MercadoPago.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, items []PreferenceItem, externalReference string) (*Preference, error)
}
