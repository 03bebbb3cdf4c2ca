package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopifyProductId string    `gorm:"type:varchar(255);uniqueIndex"`
	Name             string    `gorm:"type:varchar(255);not null"`
	BasePrice        float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Steps            []Step    `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
	PriceMatrices    []PriceMatrix `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
