package service

import (
	"context"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/unitofwork"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

	"github.com/google/uuid"
)

type IMatrixService interface {
	// Replace swaps a product's entire price matrix in one
	// transaction. Concurrent replacements race last-writer-wins.
	Replace(ctx context.Context, productId string, req *dto.ReplaceMatrixRequest) (*dto.ReplaceMatrixResponse, error)

	Delete(ctx context.Context, productId string) error
}

type matrixService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalogService ICatalogService
	logger         logger.ILogger
}

func NewMatrixService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	sysLogger logger.ILogger,
) IMatrixService {
	return &matrixService{
		uowFactory:     uowFactory,
		catalogService: catalogService,
		logger:         sysLogger,
	}
}

func (c *matrixService) Replace(ctx context.Context, productId string, req *dto.ReplaceMatrixRequest) (*dto.ReplaceMatrixResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := c.findProduct(ctx, uow, productId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &configurator.NotFoundError{ProductID: productId}
	}

	entries := make([]*entity.PriceMatrixEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, &entity.PriceMatrixEntry{
			Id:        uuid.New(),
			ProductId: product.Id,
			WidthMin:  e.WidthMin,
			WidthMax:  e.WidthMax,
			HeightMin: e.HeightMin,
			HeightMax: e.HeightMax,
			Price:     e.Price,
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	count, err := uow.PriceMatrixRepository().ReplaceAll(ctx, product.Id, entries)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.invalidate(product, productId)

	c.logger.Info("matrix", "price matrix replaced", map[string]interface{}{
		"product_id": product.Id,
		"entries":    count,
	})

	return &dto.ReplaceMatrixResponse{Count: count}, nil
}

func (c *matrixService) Delete(ctx context.Context, productId string) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := c.findProduct(ctx, uow, productId)
	if err != nil {
		return err
	}
	if product == nil {
		return &configurator.NotFoundError{ProductID: productId}
	}

	if err := uow.PriceMatrixRepository().DeleteAll(ctx, product.Id); err != nil {
		return err
	}

	c.invalidate(product, productId)
	return nil
}

func (c *matrixService) findProduct(ctx context.Context, uow unitofwork.UnitOfWork, productId string) (*entity.Product, error) {
	if id, parseErr := uuid.Parse(productId); parseErr == nil {
		product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil || product != nil {
			return product, err
		}
	}
	return uow.ProductRepository().FindOne(ctx, specification.ByShopifyProductID{ID: productId})
}

// invalidate drops the cached config under both identifiers the
// storefront may have used.
func (c *matrixService) invalidate(product *entity.Product, requestedId string) {
	c.catalogService.InvalidateConfig(requestedId)
	c.catalogService.InvalidateConfig(product.Id.String())
	c.catalogService.InvalidateConfig(product.ShopifyProductId)
}
