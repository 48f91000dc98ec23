package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain"
)

// ProductHandler maneja el CRUD de productos y el catálogo público.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	provider *ActorProvider
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase, provider *ActorProvider) *ProductHandler {
	return &ProductHandler{uc: uc, provider: provider}
}

// Create godoc
// @Summary      Crear producto en un galpón visible para el actor
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y warehouse_id son requeridos"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondProductError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos (warehouse_admin solo los de sus galpones)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.List(actor, page.Limit, page.Offset)
	if err != nil {
		return respondProductError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Listar productos de un galpón visible para el actor
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/warehouses/{id}/products [get]
func (h *ProductHandler) ListByWarehouse(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.ListByWarehouse(actor, c.Params("id"))
	if err != nil {
		return respondProductError(c, err)
	}
	return c.JSON(out)
}

// Catalogue godoc
// @Summary      Catálogo público: productos activos de un galpón (sin token)
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/catalogue/{id} [get]
func (h *ProductHandler) Catalogue(c *fiber.Ctx) error {
	out, err := h.uc.ListActiveByWarehouse(c.Params("id"))
	if err != nil {
		return respondProductError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.GetByID(actor, c.Params("id"))
	if err != nil {
		return respondProductError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (la reactivación tras una cascada es manual)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "Product ID"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return respondProductError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.Delete(actor, c.Params("id")); err != nil {
		return respondProductError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondProductError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a este producto"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
