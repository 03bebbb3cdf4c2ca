package model

import (
	"github.com/google/uuid"
)

type Step struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_steps_product_key"`
	Key         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_steps_product_key"`
	Type        string    `gorm:"type:varchar(32);not null"` // OPTIONS | MEASUREMENT
	Title       string    `gorm:"type:varchar(255);not null"`
	Subtitle    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Order       int       `gorm:"column:step_order;not null;default:0"`
	Options     []Option  `gorm:"foreignKey:StepId;constraint:OnDelete:CASCADE"`

	WidthMin  *int `gorm:""`
	WidthMax  *int `gorm:""`
	HeightMin *int `gorm:""`
	HeightMax *int `gorm:""`
}

func (Step) TableName() string {
	return "steps"
}
