package dto

import "github.com/google/uuid"

// ConfigurationSubmittedMessage is published on the internal bus after
// a successful checkout submission; the consumer writes the audit log.
type ConfigurationSubmittedMessage struct {
	ConfigurationId uuid.UUID `json:"configurationId"`
	ProductId       uuid.UUID `json:"productId"`
	ShopifyItemId   string    `json:"shopifyItemId"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
}
