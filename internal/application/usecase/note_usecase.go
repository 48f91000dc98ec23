package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// NoteUseCase casos de uso para romaneos: CRUD, transiciones de estado y
// exportación (manifiesto XML y PDF imprimible).
type NoteUseCase struct {
	repo       repository.NoteRepository
	truckRepo  repository.TruckRepository
	driverRepo repository.DriverRepository
	clientRepo repository.ClientRepository
	manifest   NoteManifestBuilder
	pdf        NotePDFGenerator
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(
	repo repository.NoteRepository,
	truckRepo repository.TruckRepository,
	driverRepo repository.DriverRepository,
	clientRepo repository.ClientRepository,
	manifest NoteManifestBuilder,
	pdf NotePDFGenerator,
) *NoteUseCase {
	return &NoteUseCase{
		repo:       repo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
		clientRepo: clientRepo,
		manifest:   manifest,
		pdf:        pdf,
	}
}

// Create crea un romaneo en estado loading, pendiente de sincronizar.
func (uc *NoteUseCase) Create(actor access.Actor, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}) {
		return nil, domain.ErrForbidden
	}
	if actor.Role == entity.RoleClientAdmin && actor.ClientID != in.ClientID {
		return nil, domain.ErrForbidden
	}
	truck, err := uc.truckRepo.GetByID(in.TruckID)
	if err != nil {
		return nil, err
	}
	if truck == nil || truck.ClientID != in.ClientID {
		return nil, domain.ErrInvalidInput
	}
	driver, err := uc.driverRepo.GetByID(in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.ClientID != in.ClientID {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	note := &entity.Note{
		ID:          uuid.New().String(),
		TruckID:     in.TruckID,
		DriverID:    in.DriverID,
		ClientID:    in.ClientID,
		TotalAmount: in.TotalAmount,
		Status:      entity.NoteStatusLoading,
		SyncStatus:  entity.SyncStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// GetByID obtiene un romaneo visible para el actor.
func (uc *NoteUseCase) GetByID(actor access.Actor, id string) (*dto.NoteResponse, error) {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	visible, err := uc.canRead(actor, note)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domain.ErrForbidden
	}
	return toNoteResponse(note), nil
}

// canRead extiende el scoping de lectura a los motoristas: un driver ve los
// romaneos de sus propios registros Driver. La nota guarda el ID del registro
// Driver, no el del usuario, así que hay que resolverlo.
func (uc *NoteUseCase) canRead(actor access.Actor, note *entity.Note) (bool, error) {
	if access.CanSee(actor, note) {
		return true, nil
	}
	if actor.Role != entity.RoleDriver {
		return false, nil
	}
	driver, err := uc.driverRepo.GetByID(note.DriverID)
	if err != nil {
		return false, err
	}
	return driver != nil && driver.UserID == actor.UserID, nil
}

// List lista romaneos según el ámbito del actor: app_admin todos, client_admin
// los de su cliente, driver los de sus viajes.
func (uc *NoteUseCase) List(actor access.Actor, limit, offset int) (*dto.NoteListResponse, error) {
	var (
		list []*entity.Note
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.repo.List(limit, offset)
	case entity.RoleClientAdmin:
		list, err = uc.repo.ListByClient(actor.ClientID, limit, offset)
	case entity.RoleDriver:
		list, err = uc.repo.ListByDriverUser(actor.UserID, limit, offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNoteResponse(n))
	}
	return &dto.NoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetStatus aplica una transición de estado. Pasar a on_route estampa la fecha
// de salida; completed estampa el retorno. No se valida un grafo estricto de
// transiciones: el flujo operativo real corrige estados a mano.
func (uc *NoteUseCase) SetStatus(actor access.Actor, id string, status string) (*dto.NoteResponse, error) {
	switch status {
	case entity.NoteStatusLoading, entity.NoteStatusOnRoute, entity.NoteStatusCompleted, entity.NoteStatusCanceled:
	default:
		return nil, domain.ErrInvalidInput
	}
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, note) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	note.Status = status
	switch status {
	case entity.NoteStatusOnRoute:
		if note.DepartureDate == nil {
			note.DepartureDate = &now
		}
	case entity.NoteStatusCompleted:
		if note.ReturnDate == nil {
			note.ReturnDate = &now
		}
	}
	note.SyncStatus = entity.SyncStatusSynced
	note.UpdatedAt = now
	if err := uc.repo.Update(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Delete elimina un romaneo visible para el actor, sin chequeo de dependientes.
func (uc *NoteUseCase) Delete(actor access.Actor, id string) error {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if note == nil {
		return domain.ErrNotFound
	}
	if !access.CanSee(actor, note) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ExportManifest genera el manifiesto XML del romaneo con camión, motorista y cliente resueltos.
func (uc *NoteUseCase) ExportManifest(actor access.Actor, id string) ([]byte, string, error) {
	note, truck, driver, client, err := uc.loadForExport(actor, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.manifest.BuildManifest(note, truck, driver, client)
	if err != nil {
		return nil, "", fmt.Errorf("generar manifiesto: %w", err)
	}
	return data, fmt.Sprintf("romaneo-%s.xml", note.ID), nil
}

// ExportPDF genera la representación imprimible del romaneo.
func (uc *NoteUseCase) ExportPDF(ctx context.Context, actor access.Actor, id string) ([]byte, string, error) {
	note, truck, driver, client, err := uc.loadForExport(actor, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateNotePDF(ctx, note, truck, driver, client)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return data, fmt.Sprintf("romaneo-%s.pdf", note.ID), nil
}

func (uc *NoteUseCase) loadForExport(actor access.Actor, id string) (*entity.Note, *entity.Truck, *entity.Driver, *entity.Client, error) {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if note == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	visible, err := uc.canRead(actor, note)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !visible {
		return nil, nil, nil, nil, domain.ErrForbidden
	}
	truck, err := uc.truckRepo.GetByID(note.TruckID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	driver, err := uc.driverRepo.GetByID(note.DriverID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	client, err := uc.clientRepo.GetByID(note.ClientID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return note, truck, driver, client, nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		ID:            n.ID,
		TruckID:       n.TruckID,
		DriverID:      n.DriverID,
		ClientID:      n.ClientID,
		TotalAmount:   n.TotalAmount,
		Status:        n.Status,
		DepartureDate: n.DepartureDate,
		ReturnDate:    n.ReturnDate,
		SyncStatus:    n.SyncStatus,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}
