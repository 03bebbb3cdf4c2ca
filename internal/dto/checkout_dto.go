package dto

import (
	"github.com/google/uuid"
)

type SubmitConfigurationRequest struct {
	ProductId        string            `json:"productId" validate:"required"`
	Selections       map[string]string `json:"selections"`
	Measurements     map[string]int    `json:"measurements"`
	Quantity         int               `json:"quantity" validate:"omitempty,min=1"`
	BaseProductTitle string            `json:"baseProductTitle"`
	Image            string            `json:"image"`
}

type CreatedShopifyProduct struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	VariantId string `json:"variantId"`
}

type SubmitConfigurationResponse struct {
	ShopifyProduct  CreatedShopifyProduct `json:"shopifyProduct"`
	ConfigurationId uuid.UUID             `json:"configurationId"`
	Quantity        int                   `json:"quantity"`
	Price           float64               `json:"price"`
}

type SaveConfigurationRequest struct {
	ProductId       string            `json:"productId" validate:"required"`
	OrderId         *string           `json:"orderId"`
	Selections      map[string]string `json:"selections"`
	Measurements    map[string]int    `json:"measurements"`
	Quantity        int               `json:"quantity" validate:"omitempty,min=1"`
	CalculatedPrice float64           `json:"calculatedPrice"`
}

type SaveConfigurationResponse struct {
	ConfigurationId uuid.UUID `json:"configurationId"`
}
