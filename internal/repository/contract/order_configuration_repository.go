package contract

import (
	"context"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"
)

type OrderConfigurationRepository interface {
	Create(ctx context.Context, config *entity.OrderConfiguration) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrderConfiguration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderConfiguration, error)
}
