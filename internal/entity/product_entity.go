package entity

import (
	"time"

	"github.com/google/uuid"
)

type StepType string

const (
	StepTypeOptions     StepType = "OPTIONS"
	StepTypeMeasurement StepType = "MEASUREMENT"
)

type Product struct {
	Id               uuid.UUID
	ShopifyProductId string
	Name             string
	BasePrice        float64
	Steps            []*Step
	PriceMatrices    []*PriceMatrixEntry
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type Step struct {
	Id          uuid.UUID
	ProductId   uuid.UUID
	Key         string
	Type        StepType
	Title       string
	Subtitle    string
	Description string
	Image       string
	Order       int

	// OPTIONS steps only.
	Options []*Option

	// MEASUREMENT steps only. Nil when the step carries no range.
	WidthMin  *int
	WidthMax  *int
	HeightMin *int
	HeightMax *int
}

type Option struct {
	Id          uuid.UUID
	StepId      uuid.UUID
	Value       string
	Label       string
	Description string
	Image       string
	Price       float64
	Order       int

	// ShowSteps is the stored JSON list of next step keys, or nil for
	// "no branching effect". Parsed into the flow-ready form by the
	// config mapper; absent and empty stay distinct.
	ShowSteps *string
}
