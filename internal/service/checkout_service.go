package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/unitofwork"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"
	"github.com/kuldeepak/Kellerfensteronline/pkg/shopify"

	"github.com/google/uuid"
)

// ShopifyGateway is the slice of the commerce client checkout needs.
type ShopifyGateway interface {
	CreateItem(ctx context.Context, input shopify.ItemInput) (*shopify.CreatedItem, error)
	AddToCart(ctx context.Context, line shopify.CartLine) error
}

type ICheckoutService interface {
	// Submit materializes a finished configuration: price is
	// recalculated server-side, a purchasable item is created, the
	// configuration is persisted and the item is put in the cart.
	Submit(ctx context.Context, req *dto.SubmitConfigurationRequest) (*dto.SubmitConfigurationResponse, error)

	// Save persists a configuration snapshot without touching the shop.
	Save(ctx context.Context, req *dto.SaveConfigurationRequest) (*dto.SaveConfigurationResponse, error)
}

type checkoutService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalogService   ICatalogService
	pricingService   IPricingService
	gateway          ShopifyGateway
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	pricingService IPricingService,
	gateway ShopifyGateway,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		uowFactory:       uowFactory,
		catalogService:   catalogService,
		pricingService:   pricingService,
		gateway:          gateway,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (c *checkoutService) Submit(ctx context.Context, req *dto.SubmitConfigurationRequest) (*dto.SubmitConfigurationResponse, error) {
	cfg, err := c.catalogService.ResolveConfig(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}

	// The client's displayed price is advisory only; the stored and
	// charged price always comes from a fresh server-side calculation.
	priceRes, err := c.pricingService.Calculate(ctx, &dto.CalculatePriceRequest{
		ProductId:    req.ProductId,
		Selections:   req.Selections,
		Measurements: req.Measurements,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	unitPrice := priceRes.Breakdown.Subtotal

	baseTitle := req.BaseProductTitle
	if baseTitle == "" {
		baseTitle = cfg.Product.Name
	}

	title := assembleTitle(cfg, baseTitle, req.Selections, req.Measurements)
	itemOptions := assembleOptions(cfg, req.Selections, req.Measurements)

	created, err := c.gateway.CreateItem(ctx, shopify.ItemInput{
		Title:     title,
		Options:   itemOptions,
		UnitPrice: unitPrice,
		ImageURL:  req.Image,
	})
	if err != nil {
		return nil, &configurator.UpstreamError{Op: "create item", Err: err}
	}

	productId, err := uuid.Parse(cfg.Product.ID)
	if err != nil {
		return nil, err
	}

	orderConfig := &entity.OrderConfiguration{
		Id:              uuid.New(),
		ProductId:       productId,
		Selections:      req.Selections,
		Measurements:    req.Measurements,
		Quantity:        quantity,
		CalculatedPrice: priceRes.Price,
		CreatedAt:       time.Now(),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.OrderConfigurationRepository().Create(ctx, orderConfig); err != nil {
		return nil, err
	}

	properties := cartProperties(itemOptions)
	if err := c.gateway.AddToCart(ctx, shopify.CartLine{
		VariantID:  created.VariantID,
		Quantity:   quantity,
		Properties: properties,
	}); err != nil {
		// The item and the stored configuration already exist; the
		// shopper can still add the created product manually.
		return nil, &configurator.UpstreamError{Op: "add to cart", Err: err}
	}

	msgPayload := dto.ConfigurationSubmittedMessage{
		ConfigurationId: orderConfig.Id,
		ProductId:       productId,
		ShopifyItemId:   created.ProductID,
		Quantity:        quantity,
		Price:           priceRes.Price,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := c.publisherService.Publish(ctx, msgJson); err != nil {
			c.logger.Warn("checkout", "failed to publish submission event", map[string]interface{}{
				"configuration_id": orderConfig.Id,
				"error":            err.Error(),
			})
		}
	}

	return &dto.SubmitConfigurationResponse{
		ShopifyProduct: dto.CreatedShopifyProduct{
			Id:        created.ProductID,
			Title:     created.Title,
			Handle:    created.Handle,
			VariantId: created.VariantID,
		},
		ConfigurationId: orderConfig.Id,
		Quantity:        quantity,
		Price:           priceRes.Price,
	}, nil
}

func (c *checkoutService) Save(ctx context.Context, req *dto.SaveConfigurationRequest) (*dto.SaveConfigurationResponse, error) {
	cfg, err := c.catalogService.ResolveConfig(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}

	productId, err := uuid.Parse(cfg.Product.ID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	orderConfig := &entity.OrderConfiguration{
		Id:              uuid.New(),
		ProductId:       productId,
		OrderId:         req.OrderId,
		Selections:      req.Selections,
		Measurements:    req.Measurements,
		Quantity:        quantity,
		CalculatedPrice: req.CalculatedPrice,
		CreatedAt:       time.Now(),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.OrderConfigurationRepository().Create(ctx, orderConfig); err != nil {
		return nil, err
	}

	return &dto.SaveConfigurationResponse{
		ConfigurationId: orderConfig.Id,
	}, nil
}

// assembleTitle builds the display title of the created item:
// base title, the chosen option labels in step order, then the
// measurements as "WxHmm".
func assembleTitle(cfg *configurator.Config, baseTitle string, selections map[string]string, measurements map[string]int) string {
	title := baseTitle
	for _, step := range cfg.Steps {
		value, ok := selections[step.Key]
		if !ok {
			continue
		}
		if opt := stepOption(&step, value); opt != nil {
			title += " - " + opt.Label
		}
	}

	width := measurements[configurator.FieldWidth]
	height := measurements[configurator.FieldHeight]
	if width > 0 && height > 0 {
		title += fmt.Sprintf(" - %dx%dmm", width, height)
	}

	return title
}

// assembleOptions turns the raw answers into the human-readable
// name/value pairs shown on the item and in the cart.
func assembleOptions(cfg *configurator.Config, selections map[string]string, measurements map[string]int) []shopify.ItemOption {
	var options []shopify.ItemOption
	for _, step := range cfg.Steps {
		value, ok := selections[step.Key]
		if !ok {
			continue
		}
		if opt := stepOption(&step, value); opt != nil {
			options = append(options, shopify.ItemOption{
				Name:  step.Title,
				Value: opt.Label,
			})
		}
	}

	if width := measurements[configurator.FieldWidth]; width > 0 {
		options = append(options, shopify.ItemOption{Name: "Breite", Value: fmt.Sprintf("%d mm", width)})
	}
	if height := measurements[configurator.FieldHeight]; height > 0 {
		options = append(options, shopify.ItemOption{Name: "Höhe", Value: fmt.Sprintf("%d mm", height)})
	}

	return options
}

func cartProperties(options []shopify.ItemOption) map[string]string {
	properties := make(map[string]string, len(options))
	for _, opt := range options {
		properties[opt.Name] = opt.Value
	}
	return properties
}

func stepOption(step *configurator.Step, value string) *configurator.Option {
	if step.Type != configurator.StepTypeOptions {
		return nil
	}
	return step.OptionByValue(value)
}
