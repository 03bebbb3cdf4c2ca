package dto

import "github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

type CreateSessionRequest struct {
	ProductId string `json:"productId" validate:"required"`

	// State is an optional permalink query string to hydrate from
	// (e.g. "sel_fenstertyp=normal&m_breite=500&qty=2").
	State string `json:"state"`
}

// SessionEventRequest is one reducer input event.
type SessionEventRequest struct {
	Type    string `json:"type" validate:"required,oneof=select measure quantity advance back"`
	StepKey string `json:"stepKey"`
	Value   string `json:"value"`
	Field   string `json:"field"`
	Amount  int    `json:"amount"`
}

// SessionResponse is the full state snapshot returned after every
// session operation: the storefront re-renders from it wholesale.
type SessionResponse struct {
	Id           string                    `json:"id"`
	ProductId    string                    `json:"productId"`
	Selections   map[string]string         `json:"selections"`
	Measurements map[string]int            `json:"measurements"`
	Quantity     int                       `json:"quantity"`
	ActiveFlow   []string                  `json:"activeFlow"`
	CurrentStep  string                    `json:"currentStep"`
	Status       configurator.Status       `json:"status"`
	FieldErrors  []configurator.FieldError `json:"fieldErrors,omitempty"`

	// Permalink restores this state after a reload or back-navigation.
	Permalink string `json:"permalink"`

	// Price of the current state; nil while a calculation is
	// unavailable (the UI shows a placeholder and disables submit).
	Price     *float64                `json:"price,omitempty"`
	Breakdown *configurator.Breakdown `json:"breakdown,omitempty"`
}
