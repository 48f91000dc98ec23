package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain"
)

// WarehouseHandler maneja el CRUD de galpones y el cambio de estado con cascada.
type WarehouseHandler struct {
	uc       *usecase.WarehouseUseCase
	provider *ActorProvider
}

// NewWarehouseHandler construye el handler de galpones.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, provider *ActorProvider) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, provider: provider}
}

// Create godoc
// @Summary      Crear galpón (solo app_admin; owner debe ser warehouse_admin)
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateWarehouseRequest  true  "datos del galpón"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.OwnerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y owner_id son requeridos"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondWarehouseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar galpones (warehouse_admin solo ve los suyos)
// @Tags         warehouses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
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
		return respondWarehouseError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener galpón por ID
// @Tags         warehouses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.GetByID(actor, c.Params("id"))
	if err != nil {
		return respondWarehouseError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar galpón (datos; el estado va por PATCH /status)
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "Warehouse ID"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return respondWarehouseError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado"})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado del galpón; desactivar arrastra sus productos a inactivo
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "Warehouse ID"
// @Param        body  body  dto.SetWarehouseStatusRequest  true  "status"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/status [patch]
func (h *WarehouseHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetWarehouseStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.SetStatus(c.Context(), actor, c.Params("id"), in.Status)
	if err != nil {
		return respondWarehouseError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar galpón (solo app_admin)
// @Tags         warehouses
// @Security     BearerAuth
// @Param        id  path  string  true  "Warehouse ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.Delete(actor, c.Params("id")); err != nil {
		return respondWarehouseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondWarehouseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a este galpón"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
