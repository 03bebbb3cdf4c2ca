package implementation

import (
	"context"
	"errors"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/mapper"
	"github.com/kuldeepak/Kellerfensteronline/internal/model"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/contract"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"

	"gorm.io/gorm"
)

type OrderConfigurationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderConfigurationMapper
}

func NewOrderConfigurationRepository(db *gorm.DB) contract.OrderConfigurationRepository {
	return &OrderConfigurationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderConfigurationMapper(),
	}
}

func (r *OrderConfigurationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderConfigurationRepositoryImpl) Create(ctx context.Context, config *entity.OrderConfiguration) error {
	m, err := r.mapper.ToModel(config)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*config = *saved
	return nil
}

func (r *OrderConfigurationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrderConfiguration, error) {
	var m model.OrderConfiguration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *OrderConfigurationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderConfiguration, error) {
	var models []*model.OrderConfiguration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.OrderConfiguration, len(models))
	for i, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
