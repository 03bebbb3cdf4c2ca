package controller

import (
	"strconv"

	"github.com/kuldeepak/Kellerfensteronline/internal/dto"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/logger"
	"github.com/kuldeepak/Kellerfensteronline/internal/pkg/serverutils"
	"github.com/kuldeepak/Kellerfensteronline/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetProduct(ctx *fiber.Ctx) error
	ReplaceMatrix(ctx *fiber.Ctx) error
	DeleteMatrix(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	catalogService service.ICatalogService
	matrixService  service.IMatrixService
	logger         logger.ILogger
}

func NewAdminController(
	catalogService service.ICatalogService,
	matrixService service.IMatrixService,
	sysLogger logger.ILogger,
) IAdminController {
	return &adminController{
		catalogService: catalogService,
		matrixService:  matrixService,
		logger:         sysLogger,
	}
}

// requireAdmin runs after JwtMiddleware and checks the role claim it
// stored. Token validity is already established at this point.
func (c *adminController) requireAdmin(ctx *fiber.Ctx) error {
	role, ok := ctx.Locals("role").(string)
	if !ok {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Role missing"))
	}
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Use(c.requireAdmin)

	h.Get("/products/:id", c.GetProduct)
	h.Put("/products/:id/price-matrix", c.ReplaceMatrix)
	h.Delete("/products/:id/price-matrix", c.DeleteMatrix)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) GetProduct(ctx *fiber.Ctx) error {
	productId := ctx.Params("id")
	if productId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Product ID is required"))
	}

	res, err := c.catalogService.GetProductDetail(ctx.Context(), productId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Product detail", res))
}

func (c *adminController) ReplaceMatrix(ctx *fiber.Ctx) error {
	productId := ctx.Params("id")
	if productId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Product ID is required"))
	}

	var req dto.ReplaceMatrixRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matrixService.Replace(ctx.Context(), productId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Price matrix replaced", res))
}

func (c *adminController) DeleteMatrix(ctx *fiber.Ctx) error {
	productId := ctx.Params("id")
	if productId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Product ID is required"))
	}

	if err := c.matrixService.Delete(ctx.Context(), productId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Price matrix deleted", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	logId := ctx.Params("id") // Log ID is a content hash, not a UUID

	l, err := c.logger.GetLogById(logId)
	if err != nil || l == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", l))
}
