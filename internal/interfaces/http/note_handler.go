package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain"
)

// NoteHandler maneja los romaneos: ciclo de vida y exportación XML/PDF.
type NoteHandler struct {
	uc       *usecase.NoteUseCase
	provider *ActorProvider
}

// NewNoteHandler construye el handler de romaneos.
func NewNoteHandler(uc *usecase.NoteUseCase, provider *ActorProvider) *NoteHandler {
	return &NoteHandler{uc: uc, provider: provider}
}

// Create godoc
// @Summary      Crear romaneo (nace en loading, pendiente de sincronizar)
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateNoteRequest  true  "truck_id, driver_id, client_id, total_amount"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TruckID == "" || in.DriverID == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "truck_id, driver_id y client_id son requeridos"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return respondNoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar romaneos según el rol del actor
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.NoteListResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c *fiber.Ctx) error {
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
		return respondNoteError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener romaneo por ID
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  dto.NoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) GetByID(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.GetByID(actor, c.Params("id"))
	if err != nil {
		return respondNoteError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "romaneo no encontrado"})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Transición de estado del romaneo (on_route estampa salida; completed, retorno)
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "Note ID"
// @Param        body  body  dto.UpdateNoteStatusRequest true  "status"
// @Success      200   {object}  dto.NoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notes/{id}/status [patch]
func (h *NoteHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateNoteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.uc.SetStatus(actor, c.Params("id"), in.Status)
	if err != nil {
		return respondNoteError(c, err)
	}
	return c.JSON(out)
}

// ExportXML godoc
// @Summary      Descargar manifiesto XML del romaneo
// @Tags         notes
// @Produce      application/xml
// @Security     BearerAuth
// @Param        id  path  string  true  "Note ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notes/{id}/export/xml [get]
func (h *NoteHandler) ExportXML(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, filename, err := h.uc.ExportManifest(actor, c.Params("id"))
	if err != nil {
		return respondNoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Descargar PDF del romaneo
// @Tags         notes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "Note ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notes/{id}/export/pdf [get]
func (h *NoteHandler) ExportPDF(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, filename, err := h.uc.ExportPDF(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondNoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Delete godoc
// @Summary      Eliminar romaneo
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	actor, err := h.provider.Actor(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.Delete(actor, c.Params("id")); err != nil {
		return respondNoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondNoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "romaneo no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a este romaneo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
