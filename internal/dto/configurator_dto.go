package dto

import "github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

// ConfigResponse is the flow-ready configuration served to the
// storefront extension. Steps carry lower-cased types, expanded
// options and parsed next-step lists (nil kept distinct from empty).
type ConfigResponse struct {
	Product configurator.ProductInfo `json:"product"`
	Steps   []configurator.Step      `json:"steps"`
}

type CalculatePriceRequest struct {
	ProductId    string            `json:"productId" validate:"required"`
	Selections   map[string]string `json:"selections"`
	Measurements map[string]int    `json:"measurements"`
	Quantity     int               `json:"quantity" validate:"omitempty,min=1"`
}

type CalculatePriceResponse struct {
	Price     float64                `json:"price"`
	Breakdown configurator.Breakdown `json:"breakdown"`
}
