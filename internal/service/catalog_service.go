package service

import (
	"context"
	"errors"
	"time"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/mapper"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/unitofwork"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ICatalogService interface {
	// GetConfig serves the flow-ready configuration for the storefront.
	GetConfig(ctx context.Context, productId string) (*dto.ConfigResponse, error)

	// ResolveConfig loads (or reuses a cached) engine config for the
	// given product identifier. Shared by pricing, sessions and checkout.
	ResolveConfig(ctx context.Context, productId string) (*configurator.Config, error)

	// GetProductDetail serves the full definition, price matrix
	// included, to the admin surface. A broken definition comes back
	// as its DefinitionError so the admin sees what to fix.
	GetProductDetail(ctx context.Context, productId string) (*dto.AdminProductResponse, error)

	// InvalidateConfig drops the cached config after an admin edit.
	InvalidateConfig(productId string)
}

type catalogService struct {
	uowFactory  unitofwork.RepositoryFactory
	logger      logger.ILogger
	configCache *cache.Cache
	pricePerSqM float64
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
	cacheTTL time.Duration,
	pricePerSqM float64,
) ICatalogService {
	return &catalogService{
		uowFactory:  uowFactory,
		logger:      sysLogger,
		configCache: cache.New(cacheTTL, 10*time.Minute),
		pricePerSqM: pricePerSqM,
	}
}

func (c *catalogService) GetConfig(ctx context.Context, productId string) (*dto.ConfigResponse, error) {
	cfg, err := c.ResolveConfig(ctx, productId)
	if err != nil {
		return nil, err
	}

	return &dto.ConfigResponse{
		Product: cfg.Product,
		Steps:   cfg.Steps,
	}, nil
}

func (c *catalogService) ResolveConfig(ctx context.Context, productId string) (*configurator.Config, error) {
	if cached, found := c.configCache.Get(productId); found {
		return cached.(*configurator.Config), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Internal id first, then the external product id the storefront
	// extension knows. Both arrive on the same path parameter.
	var found *entity.Product
	var err error
	if id, parseErr := uuid.Parse(productId); parseErr == nil {
		found, err = uow.ProductRepository().FindOne(ctx,
			specification.WithConfiguration{},
			specification.ByID{ID: id},
		)
		if err != nil {
			return nil, err
		}
	}
	if found == nil {
		found, err = uow.ProductRepository().FindOne(ctx,
			specification.WithConfiguration{},
			specification.ByShopifyProductID{ID: productId},
		)
		if err != nil {
			return nil, err
		}
	}
	if found == nil {
		return nil, &configurator.NotFoundError{ProductID: productId}
	}

	cfg, buildErr := mapper.BuildConfig(found, c.pricePerSqM)
	if buildErr != nil {
		var defErr *configurator.DefinitionError
		if errors.As(buildErr, &defErr) {
			c.logger.Error("catalog", "product definition rejected", map[string]interface{}{
				"product_id": productId,
				"problems":   defErr.Problems,
			})
		}
		return nil, buildErr
	}

	c.configCache.Set(productId, cfg, cache.DefaultExpiration)
	return cfg, nil
}

func (c *catalogService) GetProductDetail(ctx context.Context, productId string) (*dto.AdminProductResponse, error) {
	cfg, err := c.ResolveConfig(ctx, productId)
	if err != nil {
		return nil, err
	}

	return &dto.AdminProductResponse{
		Product: cfg.Product,
		Steps:   cfg.Steps,
		Matrix:  cfg.Matrix,
	}, nil
}

func (c *catalogService) InvalidateConfig(productId string) {
	c.configCache.Delete(productId)
}
