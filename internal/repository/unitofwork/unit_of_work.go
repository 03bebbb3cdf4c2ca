package unitofwork

import (
	"context"

	"github.com/kuldeepak/Kellerfensteronline/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	PriceMatrixRepository() contract.PriceMatrixRepository
	OrderConfigurationRepository() contract.OrderConfigurationRepository
}
