package mapper

import (
	"time"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	steps := make([]*entity.Step, len(p.Steps))
	for i := range p.Steps {
		steps[i] = m.stepToEntity(&p.Steps[i])
	}

	matrices := make([]*entity.PriceMatrixEntry, len(p.PriceMatrices))
	for i := range p.PriceMatrices {
		matrices[i] = m.matrixToEntity(&p.PriceMatrices[i])
	}

	return &entity.Product{
		Id:               p.Id,
		ShopifyProductId: p.ShopifyProductId,
		Name:             p.Name,
		BasePrice:        p.BasePrice,
		Steps:            steps,
		PriceMatrices:    matrices,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	steps := make([]model.Step, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = *m.stepToModel(s)
	}

	matrices := make([]model.PriceMatrix, len(p.PriceMatrices))
	for i, pm := range p.PriceMatrices {
		matrices[i] = *m.matrixToModel(pm)
	}

	return &model.Product{
		Id:               p.Id,
		ShopifyProductId: p.ShopifyProductId,
		Name:             p.Name,
		BasePrice:        p.BasePrice,
		Steps:            steps,
		PriceMatrices:    matrices,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *ProductMapper) stepToEntity(s *model.Step) *entity.Step {
	options := make([]*entity.Option, len(s.Options))
	for i := range s.Options {
		opt := s.Options[i]
		options[i] = &entity.Option{
			Id:          opt.Id,
			StepId:      opt.StepId,
			Value:       opt.Value,
			Label:       opt.Label,
			Description: opt.Description,
			Image:       opt.Image,
			Price:       opt.Price,
			Order:       opt.Order,
			ShowSteps:   opt.ShowSteps,
		}
	}

	return &entity.Step{
		Id:          s.Id,
		ProductId:   s.ProductId,
		Key:         s.Key,
		Type:        entity.StepType(s.Type),
		Title:       s.Title,
		Subtitle:    s.Subtitle,
		Description: s.Description,
		Image:       s.Image,
		Order:       s.Order,
		Options:     options,
		WidthMin:    s.WidthMin,
		WidthMax:    s.WidthMax,
		HeightMin:   s.HeightMin,
		HeightMax:   s.HeightMax,
	}
}

func (m *ProductMapper) stepToModel(s *entity.Step) *model.Step {
	options := make([]model.Option, len(s.Options))
	for i, opt := range s.Options {
		options[i] = model.Option{
			Id:          opt.Id,
			StepId:      opt.StepId,
			Value:       opt.Value,
			Label:       opt.Label,
			Description: opt.Description,
			Image:       opt.Image,
			Price:       opt.Price,
			Order:       opt.Order,
			ShowSteps:   opt.ShowSteps,
		}
	}

	return &model.Step{
		Id:          s.Id,
		ProductId:   s.ProductId,
		Key:         s.Key,
		Type:        string(s.Type),
		Title:       s.Title,
		Subtitle:    s.Subtitle,
		Description: s.Description,
		Image:       s.Image,
		Order:       s.Order,
		Options:     options,
		WidthMin:    s.WidthMin,
		WidthMax:    s.WidthMax,
		HeightMin:   s.HeightMin,
		HeightMax:   s.HeightMax,
	}
}

func (m *ProductMapper) matrixToEntity(pm *model.PriceMatrix) *entity.PriceMatrixEntry {
	return &entity.PriceMatrixEntry{
		Id:        pm.Id,
		ProductId: pm.ProductId,
		WidthMin:  pm.WidthMin,
		WidthMax:  pm.WidthMax,
		HeightMin: pm.HeightMin,
		HeightMax: pm.HeightMax,
		Price:     pm.Price,
	}
}

func (m *ProductMapper) matrixToModel(pm *entity.PriceMatrixEntry) *model.PriceMatrix {
	return &model.PriceMatrix{
		Id:        pm.Id,
		ProductId: pm.ProductId,
		WidthMin:  pm.WidthMin,
		WidthMax:  pm.WidthMax,
		HeightMin: pm.HeightMin,
		HeightMax: pm.HeightMax,
		Price:     pm.Price,
	}
}

func (m *ProductMapper) MatrixToModels(entries []*entity.PriceMatrixEntry) []*model.PriceMatrix {
	models := make([]*model.PriceMatrix, len(entries))
	for i, e := range entries {
		models[i] = m.matrixToModel(e)
	}
	return models
}
