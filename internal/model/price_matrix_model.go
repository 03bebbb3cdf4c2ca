package model

import (
	"github.com/google/uuid"
)

type PriceMatrix struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;index"`
	WidthMin  int       `gorm:"not null"`
	WidthMax  int       `gorm:"not null"`
	HeightMin int       `gorm:"not null"`
	HeightMax int       `gorm:"not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
}

func (PriceMatrix) TableName() string {
	return "price_matrices"
}
