package controller

import (
	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/serverutils"
	"github.com/kuldeepak/Kellerfensteronline/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConfiguratorController interface {
	RegisterRoutes(r fiber.Router)
	GetConfig(ctx *fiber.Ctx) error
	CalculatePrice(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
}

type configuratorController struct {
	catalogService  service.ICatalogService
	pricingService  service.IPricingService
	checkoutService service.ICheckoutService
}

func NewConfiguratorController(
	catalogService service.ICatalogService,
	pricingService service.IPricingService,
	checkoutService service.ICheckoutService,
) IConfiguratorController {
	return &configuratorController{
		catalogService:  catalogService,
		pricingService:  pricingService,
		checkoutService: checkoutService,
	}
}

func (c *configuratorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public")
	h.Get("configurator/:productId", c.GetConfig)
	h.Post("calculate-price", c.CalculatePrice)
	h.Post("create-and-add-to-cart", c.Submit)
	h.Post("save-configuration", c.Save)
}

func (c *configuratorController) GetConfig(ctx *fiber.Ctx) error {
	productId := ctx.Params("productId")
	if productId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Product ID is required"))
	}

	res, err := c.catalogService.GetConfig(ctx.Context(), productId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get configuration", res))
}

func (c *configuratorController) CalculatePrice(ctx *fiber.Ctx) error {
	var req dto.CalculatePriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pricingService.Calculate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success calculate price", res))
}

func (c *configuratorController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create and add to cart", res))
}

func (c *configuratorController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save configuration", res))
}
