package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// DriverUseCase maneja la contratación de motoristas y su disponibilidad.
type DriverUseCase struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.DriverAssignmentRepository
	clientRepo     repository.ClientRepository
}

// NewDriverUseCase construye el caso de uso.
func NewDriverUseCase(
	userRepo repository.UserRepository,
	assignmentRepo repository.DriverAssignmentRepository,
	clientRepo repository.ClientRepository,
) *DriverUseCase {
	return &DriverUseCase{userRepo: userRepo, assignmentRepo: assignmentRepo, clientRepo: clientRepo}
}

// GetAvailability informa si un motorista está libre y, si no, con qué clientes
// trabaja. No disponible es solo informativo: el empleo multi-cliente está
// permitido, pero quien contrata decide con esa lista a la vista. Un cliente
// cuyo nombre no se puede resolver se omite de la lista sin fallar la llamada.
func (uc *DriverUseCase) GetAvailability(ctx context.Context, driverUserID string) (*dto.DriverAvailabilityResponse, error) {
	user, err := uc.userRepo.GetByID(driverUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	assignments, err := uc.assignmentRepo.ListActiveByUser(driverUserID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(assignments))
	for _, a := range assignments {
		client, err := uc.clientRepo.GetByID(a.ClientID)
		if err != nil || client == nil {
			continue
		}
		names = append(names, client.Name)
	}
	return &dto.DriverAvailabilityResponse{
		UserID:            driverUserID,
		IsAvailable:       len(assignments) == 0,
		ActiveAssignments: len(assignments),
		CurrentClients:    names,
	}, nil
}

// Hire crea una asignación activa driver-cliente. No exige que el motorista
// esté libre ni que el par (user, client) sea único: el sistema permite
// contrataciones concurrentes y duplicadas a propósito. Un client_admin solo
// contrata para su propio cliente.
func (uc *DriverUseCase) Hire(actor access.Actor, in dto.HireDriverRequest) (*dto.AssignmentResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}) {
		return nil, domain.ErrForbidden
	}
	if actor.Role == entity.RoleClientAdmin && actor.ClientID != in.ClientID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleDriver {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	assignment := &entity.DriverAssignment{
		ID:             uuid.New().String(),
		UserID:         in.UserID,
		ClientID:       in.ClientID,
		CommissionRate: in.CommissionRate,
		Status:         entity.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.assignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// Dismiss desactiva una asignación visible para el actor. El registro se
// conserva para el historial de comisiones.
func (uc *DriverUseCase) Dismiss(actor access.Actor, assignmentID string) (*dto.AssignmentResponse, error) {
	assignment, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, assignment) {
		return nil, domain.ErrForbidden
	}
	assignment.Status = entity.StatusInactive
	assignment.UpdatedAt = time.Now()
	if err := uc.assignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// ListAssignments lista asignaciones según el ámbito del actor.
func (uc *DriverUseCase) ListAssignments(actor access.Actor, limit, offset int) (*dto.AssignmentListResponse, error) {
	var (
		list []*entity.DriverAssignment
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.assignmentRepo.List(limit, offset)
	case entity.RoleClientAdmin:
		list, err = uc.assignmentRepo.ListByClient(actor.ClientID, limit, offset)
	case entity.RoleDriver:
		list, err = uc.assignmentRepo.ListByUser(actor.UserID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssignmentResponse(a))
	}
	return &dto.AssignmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeleteAssignment elimina la asignación sin chequeo de dependientes (dato hoja).
func (uc *DriverUseCase) DeleteAssignment(actor access.Actor, assignmentID string) error {
	assignment, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return domain.ErrNotFound
	}
	if !access.CanSee(actor, assignment) {
		return domain.ErrForbidden
	}
	return uc.assignmentRepo.Delete(assignmentID)
}

func toAssignmentResponse(a *entity.DriverAssignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		ClientID:       a.ClientID,
		CommissionRate: a.CommissionRate,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
