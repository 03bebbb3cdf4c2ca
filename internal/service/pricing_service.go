package service

import (
	"context"
	"errors"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"
)

type IPricingService interface {
	Calculate(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error)
}

type pricingService struct {
	catalogService ICatalogService
	logger         logger.ILogger
}

func NewPricingService(catalogService ICatalogService, sysLogger logger.ILogger) IPricingService {
	return &pricingService{
		catalogService: catalogService,
		logger:         sysLogger,
	}
}

func (c *pricingService) Calculate(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error) {
	cfg, err := c.catalogService.ResolveConfig(ctx, req.ProductId)
	if err != nil {
		var notFound *configurator.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		// Anything else means the price cannot be determined right now.
		// Callers must not fall back to a guessed or zero price.
		return nil, &configurator.PriceUnavailableError{Err: err}
	}

	price, breakdown := configurator.CalculatePrice(cfg, req.Selections, req.Measurements, req.Quantity)

	if price < 0 {
		c.logger.Warn("pricing", "negative total computed", map[string]interface{}{
			"product_id": req.ProductId,
			"total":      price,
		})
	}

	return &dto.CalculatePriceResponse{
		Price:     price,
		Breakdown: breakdown,
	}, nil
}
