package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderConfiguration is the durable record created when a shopper
// submits a configuration. OrderId stays nil until an external order
// creation step links it.
type OrderConfiguration struct {
	Id              uuid.UUID
	ProductId       uuid.UUID
	OrderId         *string
	Selections      map[string]string
	Measurements    map[string]int
	Quantity        int
	CalculatedPrice float64
	CreatedAt       time.Time
}
