package service

import (
	"context"
	"errors"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/contract"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/specification"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/unitofwork"
	"github.com/kuldeepak/Kellerfensteronline/pkg/configurator"
	"github.com/kuldeepak/Kellerfensteronline/pkg/shopify"
)

// testConfig is a small cellar window definition shared by the service
// tests: a branching type step, a mounting step and a measurement step.
func testConfig() *configurator.Config {
	return &configurator.Config{
		Product: configurator.ProductInfo{
			ID:               "7b7b1c1e-5f2a-4b47-9a57-2f24a1a9c001",
			ShopifyProductID: "demo-kellerfenster",
			Name:             "Kellerfenster",
			BasePrice:        50,
		},
		Steps: []configurator.Step{
			{
				Key:   "fenstertyp",
				Type:  configurator.StepTypeOptions,
				Title: "Fenstertyp",
				Options: []configurator.Option{
					{Value: "normal", Label: "Normales Fenster", Price: 0, NextStepKeys: []string{"befestigung", "masse"}},
					{Value: "dachfenster", Label: "Dachfenster", Price: 25, NextStepKeys: []string{"masse"}},
				},
			},
			{
				Key:   "befestigung",
				Type:  configurator.StepTypeOptions,
				Title: "Befestigung",
				Options: []configurator.Option{
					{Value: "standard", Label: "Standard", Price: 10},
					{Value: "verstaerkt", Label: "Verstärkt", Price: 25},
				},
			},
			{
				Key:    "masse",
				Type:   configurator.StepTypeMeasurement,
				Title:  "Maße",
				Width:  configurator.Range{Min: 300, Max: 1500},
				Height: configurator.Range{Min: 400, Max: 1800},
			},
		},
		Matrix: []configurator.MatrixEntry{
			{WidthMin: 500, WidthMax: 600, HeightMin: 400, HeightMax: 500, Price: 31.57},
		},
	}
}

type fakeCatalogService struct {
	cfg         *configurator.Config
	err         error
	invalidated []string
}

func (f *fakeCatalogService) GetConfig(ctx context.Context, productId string) (*dto.ConfigResponse, error) {
	cfg, err := f.ResolveConfig(ctx, productId)
	if err != nil {
		return nil, err
	}
	return &dto.ConfigResponse{Product: cfg.Product, Steps: cfg.Steps}, nil
}

func (f *fakeCatalogService) ResolveConfig(ctx context.Context, productId string) (*configurator.Config, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

func (f *fakeCatalogService) GetProductDetail(ctx context.Context, productId string) (*dto.AdminProductResponse, error) {
	cfg, err := f.ResolveConfig(ctx, productId)
	if err != nil {
		return nil, err
	}
	return &dto.AdminProductResponse{Product: cfg.Product, Steps: cfg.Steps, Matrix: cfg.Matrix}, nil
}

func (f *fakeCatalogService) InvalidateConfig(productId string) {
	f.invalidated = append(f.invalidated, productId)
}

type fakeGateway struct {
	created   []shopify.ItemInput
	cartLines []shopify.CartLine
	createErr error
	cartErr   error
	nextItem  *shopify.CreatedItem
}

func (f *fakeGateway) CreateItem(ctx context.Context, input shopify.ItemInput) (*shopify.CreatedItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	if f.nextItem != nil {
		return f.nextItem, nil
	}
	return &shopify.CreatedItem{
		ProductID: "gid://shopify/Product/101",
		Title:     input.Title,
		Handle:    "kellerfenster-101",
		VariantID: "gid://shopify/ProductVariant/201",
	}, nil
}

func (f *fakeGateway) AddToCart(ctx context.Context, line shopify.CartLine) error {
	if f.cartErr != nil {
		return f.cartErr
	}
	f.cartLines = append(f.cartLines, line)
	return nil
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeLogger struct {
	warnings []string
	errs     []string
}

func (f *fakeLogger) Debug(module, message string, details map[string]interface{}) {}
func (f *fakeLogger) Info(module, message string, details map[string]interface{})  {}
func (f *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	f.warnings = append(f.warnings, message)
}
func (f *fakeLogger) Error(module, message string, details map[string]interface{}) {
	f.errs = append(f.errs, message)
}
func (f *fakeLogger) Sync() error { return nil }
func (f *fakeLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeLogger) GetLogById(id string) (*logger.LogEntry, error) {
	return nil, errors.New("not implemented")
}

type fakeOrderConfigRepo struct {
	created []*entity.OrderConfiguration
	err     error
}

func (f *fakeOrderConfigRepo) Create(ctx context.Context, config *entity.OrderConfiguration) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, config)
	return nil
}

func (f *fakeOrderConfigRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrderConfiguration, error) {
	return nil, nil
}

func (f *fakeOrderConfigRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderConfiguration, error) {
	return f.created, nil
}

type fakeProductRepo struct {
	product *entity.Product
	err     error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.product = product
	return nil
}

func (f *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	return f.product, f.err
}

func (f *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	if f.product == nil {
		return nil, f.err
	}
	return []*entity.Product{f.product}, f.err
}

type fakeUnitOfWork struct {
	productRepo     *fakeProductRepo
	orderConfigRepo *fakeOrderConfigRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }
func (f *fakeUnitOfWork) ProductRepository() contract.ProductRepository {
	if f.productRepo == nil {
		panic("no product repository configured")
	}
	return f.productRepo
}
func (f *fakeUnitOfWork) PriceMatrixRepository() contract.PriceMatrixRepository {
	panic("not used in tests")
}
func (f *fakeUnitOfWork) OrderConfigurationRepository() contract.OrderConfigurationRepository {
	return f.orderConfigRepo
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeRepositoryFactory, *fakeOrderConfigRepo) {
	repo := &fakeOrderConfigRepo{}
	return &fakeRepositoryFactory{uow: &fakeUnitOfWork{orderConfigRepo: repo}}, repo
}
