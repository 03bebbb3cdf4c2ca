package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderConfiguration struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderId         *string        `gorm:"type:varchar(255);index"`
	Selections      datatypes.JSON `gorm:"type:jsonb;not null"`
	Measurements    datatypes.JSON `gorm:"type:jsonb;not null"`
	Quantity        int            `gorm:"not null;default:1"`
	CalculatedPrice float64        `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (OrderConfiguration) TableName() string {
	return "order_configurations"
}
