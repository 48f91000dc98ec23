package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// TruckUseCase casos de uso para camiones (ruta legada: un motorista a la vez
// por camión, vía CurrentDriverID).
type TruckUseCase struct {
	repo       repository.TruckRepository
	driverRepo repository.DriverRepository
}

// NewTruckUseCase construye el caso de uso.
func NewTruckUseCase(repo repository.TruckRepository, driverRepo repository.DriverRepository) *TruckUseCase {
	return &TruckUseCase{repo: repo, driverRepo: driverRepo}
}

// Create registra un camión para un cliente visible para el actor.
func (uc *TruckUseCase) Create(actor access.Actor, in dto.CreateTruckRequest) (*dto.TruckResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}) {
		return nil, domain.ErrForbidden
	}
	if actor.Role == entity.RoleClientAdmin && actor.ClientID != in.ClientID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	truck := &entity.Truck{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Plate:     in.Plate,
		Model:     in.Model,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck), nil
}

// GetByID obtiene un camión visible para el actor.
func (uc *TruckUseCase) GetByID(actor access.Actor, id string) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, nil
	}
	if !access.CanSee(actor, truck) {
		return nil, domain.ErrForbidden
	}
	return toTruckResponse(truck), nil
}

// List lista camiones: app_admin todos, client_admin los de su cliente.
func (uc *TruckUseCase) List(actor access.Actor, limit, offset int) (*dto.TruckListResponse, error) {
	var (
		list []*entity.Truck
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.repo.List(limit, offset)
	case entity.RoleClientAdmin:
		list, err = uc.repo.ListByClient(actor.ClientID, limit, offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TruckResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTruckResponse(t))
	}
	return &dto.TruckListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un merge parcial sobre un camión visible para el actor.
func (uc *TruckUseCase) Update(actor access.Actor, id string, in dto.UpdateTruckRequest) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, nil
	}
	if !access.CanSee(actor, truck) {
		return nil, domain.ErrForbidden
	}
	if in.Plate != nil {
		truck.Plate = *in.Plate
	}
	if in.Model != nil {
		truck.Model = *in.Model
	}
	if in.Status != nil {
		truck.Status = *in.Status
	}
	truck.UpdatedAt = time.Now()
	if err := uc.repo.Update(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck), nil
}

// AssignDriver asigna el motorista actual del camión; DriverID vacío lo libera.
// El registro Driver debe existir y pertenecer al mismo cliente que el camión.
func (uc *TruckUseCase) AssignDriver(actor access.Actor, truckID, driverID string) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(truckID)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, truck) {
		return nil, domain.ErrForbidden
	}
	if driverID != "" {
		driver, err := uc.driverRepo.GetByID(driverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, domain.ErrNotFound
		}
		if driver.ClientID != truck.ClientID {
			return nil, domain.ErrInvalidInput
		}
	}
	truck.CurrentDriverID = driverID
	truck.UpdatedAt = time.Now()
	if err := uc.repo.Update(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck), nil
}

// Delete elimina un camión visible para el actor, sin chequeo de dependientes.
func (uc *TruckUseCase) Delete(actor access.Actor, id string) error {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if truck == nil {
		return domain.ErrNotFound
	}
	if !access.CanSee(actor, truck) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toTruckResponse(t *entity.Truck) *dto.TruckResponse {
	if t == nil {
		return nil
	}
	return &dto.TruckResponse{
		ID:              t.ID,
		ClientID:        t.ClientID,
		Plate:           t.Plate,
		Model:           t.Model,
		CurrentDriverID: t.CurrentDriverID,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
