package bootstrap

import (
	"github.com/kuldeepak/Kellerfensteronline/internal/config"
	"github.com/kuldeepak/Kellerfensteronline/internal/controller"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/memory"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/unitofwork"
	"github.com/kuldeepak/Kellerfensteronline/internal/service"
	"github.com/kuldeepak/Kellerfensteronline/pkg/shopify"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ConfiguratorController controller.IConfiguratorController
	SessionController      controller.ISessionController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	sessionRepo := memory.NewSessionRepository(cfg.App.SessionTTL)
	shopClient := shopify.NewClient(
		cfg.Shopify.ShopDomain,
		cfg.Shopify.AdminToken,
		cfg.Shopify.StorefrontURL,
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.SubmissionTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.SubmissionTopic, sysLogger)

	catalogService := service.NewCatalogService(
		uowFactory,
		sysLogger,
		cfg.App.ConfigCacheTTL,
		cfg.Pricing.PricePerSqM,
	)
	pricingService := service.NewPricingService(catalogService, sysLogger)
	sessionService := service.NewSessionService(catalogService, sessionRepo)
	checkoutService := service.NewCheckoutService(
		uowFactory,
		catalogService,
		pricingService,
		shopClient,
		publisherService,
		sysLogger,
	)
	matrixService := service.NewMatrixService(uowFactory, catalogService, sysLogger)

	// 5. Controllers
	return &Container{
		ConfiguratorController: controller.NewConfiguratorController(catalogService, pricingService, checkoutService),
		SessionController:      controller.NewSessionController(sessionService),
		AdminController:        controller.NewAdminController(catalogService, matrixService, sysLogger),
		ConsumerService:        consumerService,
		Logger:                 sysLogger,
	}
}
