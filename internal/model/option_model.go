package model

import (
	"github.com/google/uuid"
)

type Option struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StepId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Value       string    `gorm:"type:varchar(255);not null"`
	Label       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Order       int       `gorm:"column:option_order;not null;default:0"`

	// JSON array of step keys, nullable. Null and "[]" are different
	// flow semantics and must stay distinguishable.
	ShowSteps *string `gorm:"type:text"`
}

func (Option) TableName() string {
	return "options"
}
