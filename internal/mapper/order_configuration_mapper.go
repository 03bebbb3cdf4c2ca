package mapper

import (
	"encoding/json"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/model"

	"gorm.io/datatypes"
)

type OrderConfigurationMapper struct{}

func NewOrderConfigurationMapper() *OrderConfigurationMapper {
	return &OrderConfigurationMapper{}
}

func (m *OrderConfigurationMapper) ToModel(o *entity.OrderConfiguration) (*model.OrderConfiguration, error) {
	if o == nil {
		return nil, nil
	}

	selections := o.Selections
	if selections == nil {
		selections = map[string]string{}
	}
	measurements := o.Measurements
	if measurements == nil {
		measurements = map[string]int{}
	}

	selJSON, err := json.Marshal(selections)
	if err != nil {
		return nil, err
	}
	measJSON, err := json.Marshal(measurements)
	if err != nil {
		return nil, err
	}

	return &model.OrderConfiguration{
		Id:              o.Id,
		ProductId:       o.ProductId,
		OrderId:         o.OrderId,
		Selections:      datatypes.JSON(selJSON),
		Measurements:    datatypes.JSON(measJSON),
		Quantity:        o.Quantity,
		CalculatedPrice: o.CalculatedPrice,
		CreatedAt:       o.CreatedAt,
	}, nil
}

func (m *OrderConfigurationMapper) ToEntity(o *model.OrderConfiguration) (*entity.OrderConfiguration, error) {
	if o == nil {
		return nil, nil
	}

	selections := map[string]string{}
	if len(o.Selections) > 0 {
		if err := json.Unmarshal(o.Selections, &selections); err != nil {
			return nil, err
		}
	}
	measurements := map[string]int{}
	if len(o.Measurements) > 0 {
		if err := json.Unmarshal(o.Measurements, &measurements); err != nil {
			return nil, err
		}
	}

	return &entity.OrderConfiguration{
		Id:              o.Id,
		ProductId:       o.ProductId,
		OrderId:         o.OrderId,
		Selections:      selections,
		Measurements:    measurements,
		Quantity:        o.Quantity,
		CalculatedPrice: o.CalculatedPrice,
		CreatedAt:       o.CreatedAt,
	}, nil
}
