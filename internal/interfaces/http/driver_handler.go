package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain"
)

// DriverHandler maneja contratación, despido y disponibilidad de motoristas.
type DriverHandler struct {
	uc       *usecase.DriverUseCase
	provider *ActorProvider
}

// NewDriverHandler construye el handler de motoristas.
func NewDriverHandler(uc *usecase.DriverUseCase, provider *ActorProvider) *DriverHandler {
	return &DriverHandler{uc: uc, provider: provider}
}

// Availability godoc
// @Summary      Disponibilidad de un motorista antes de contratarlo
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "ID del usuario driver"
// @Success      200     {object}  dto.DriverAvailabilityResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/drivers/{userId}/availability [get]
func (h *DriverHandler) Availability(c *fiber.Ctx) error {
	out, err := h.uc.GetAvailability(c.Context(), c.Params("userId"))
	if err != nil {
		return respondDriverError(c, err)
	}
	return c.JSON(out)
}

// Hire godoc
// @Summary      Contratar motorista para un cliente (multi-cliente permitido)
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.HireDriverRequest  true  "user_id, client_id, commission_rate"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/drivers/hire [post]
func (h *DriverHandler) Hire(c *fiber.Ctx) error {
	var in dto.HireDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y client_id son requeridos"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Hire(actor, in)
	if err != nil {
		return respondDriverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Dismiss godoc
// @Summary      Despedir motorista: la asignación pasa a inactiva, el registro se conserva
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assignment ID"
// @Success      200  {object}  dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id}/dismiss [post]
func (h *DriverHandler) Dismiss(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Dismiss(actor, c.Params("id"))
	if err != nil {
		return respondDriverError(c, err)
	}
	return c.JSON(out)
}

// ListAssignments godoc
// @Summary      Listar asignaciones según el rol del actor
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AssignmentListResponse
// @Router       /api/assignments [get]
func (h *DriverHandler) ListAssignments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.ListAssignments(actor, page.Limit, page.Offset)
	if err != nil {
		return respondDriverError(c, err)
	}
	return c.JSON(out)
}

// DeleteAssignment godoc
// @Summary      Eliminar asignación definitivamente
// @Tags         drivers
// @Security     BearerAuth
// @Param        id  path  string  true  "Assignment ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [delete]
func (h *DriverHandler) DeleteAssignment(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.DeleteAssignment(actor, c.Params("id")); err != nil {
		return respondDriverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondDriverError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "motorista o asignación no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta asignación"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
