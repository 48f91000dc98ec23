package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain"
)

// TruckHandler maneja el CRUD de camiones y la asignación de motorista.
type TruckHandler struct {
	uc       *usecase.TruckUseCase
	provider *ActorProvider
}

// NewTruckHandler construye el handler de camiones.
func NewTruckHandler(uc *usecase.TruckUseCase, provider *ActorProvider) *TruckHandler {
	return &TruckHandler{uc: uc, provider: provider}
}

// Create godoc
// @Summary      Registrar camión de un cliente
// @Tags         trucks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTruckRequest  true  "client_id, plate, model"
// @Success      201   {object}  dto.TruckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trucks [post]
func (h *TruckHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTruckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" || in.Plate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y plate son requeridos"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondTruckError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar camiones (client_admin solo los de su cliente)
// @Tags         trucks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TruckListResponse
// @Router       /api/trucks [get]
func (h *TruckHandler) List(c *fiber.Ctx) error {
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
		return respondTruckError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener camión por ID
// @Tags         trucks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Truck ID"
// @Success      200  {object}  dto.TruckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trucks/{id} [get]
func (h *TruckHandler) GetByID(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.GetByID(actor, c.Params("id"))
	if err != nil {
		return respondTruckError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "camión no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar camión
// @Tags         trucks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "Truck ID"
// @Param        body  body  dto.UpdateTruckRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.TruckResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trucks/{id} [put]
func (h *TruckHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTruckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return respondTruckError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "camión no encontrado"})
	}
	return c.JSON(out)
}

// AssignDriver godoc
// @Summary      Asignar motorista al camión (driver_id vacío lo libera)
// @Tags         trucks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "Truck ID"
// @Param        body  body  dto.AssignTruckDriverRequest true  "driver_id"
// @Success      200   {object}  dto.TruckResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trucks/{id}/driver [put]
func (h *TruckHandler) AssignDriver(c *fiber.Ctx) error {
	var in dto.AssignTruckDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.AssignDriver(actor, c.Params("id"), in.DriverID)
	if err != nil {
		return respondTruckError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar camión
// @Tags         trucks
// @Security     BearerAuth
// @Param        id  path  string  true  "Truck ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trucks/{id} [delete]
func (h *TruckHandler) Delete(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.Delete(actor, c.Params("id")); err != nil {
		return respondTruckError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondTruckError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "camión no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a este camión"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
