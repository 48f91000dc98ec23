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

// WarehouseUseCase casos de uso CRUD para galpones más la cascada de estado
// galpón→productos.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	userRepo repository.UserRepository
	txRunner TxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, userRepo repository.UserRepository, txRunner TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, userRepo: userRepo, txRunner: txRunner}
}

// Create crea un galpón asignado a un dueño warehouse_admin. Solo app_admin crea galpones.
func (uc *WarehouseUseCase) Create(actor access.Actor, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin}) {
		return nil, domain.ErrForbidden
	}
	owner, err := uc.userRepo.GetByID(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.Role != entity.RoleWarehouseAdmin {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Phone:       in.Phone,
		Email:       in.Email,
		ManagerName: in.ManagerName,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		Status:      entity.StatusActive,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene un galpón visible para el actor.
func (uc *WarehouseUseCase) GetByID(actor access.Actor, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if !access.CanSee(actor, warehouse) {
		return nil, domain.ErrForbidden
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista galpones según el ámbito: app_admin todos, warehouse_admin los suyos.
func (uc *WarehouseUseCase) List(actor access.Actor, limit, offset int) (*dto.WarehouseListResponse, error) {
	var (
		list []*entity.Warehouse
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.repo.List(limit, offset)
	case entity.RoleWarehouseAdmin:
		list, err = uc.repo.ListByOwner(actor.UserID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los datos de un galpón visible para el actor.
func (uc *WarehouseUseCase) Update(actor access.Actor, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if !access.CanSee(actor, warehouse) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Description != nil {
		warehouse.Description = *in.Description
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.City != nil {
		warehouse.City = *in.City
	}
	if in.State != nil {
		warehouse.State = *in.State
	}
	if in.Phone != nil {
		warehouse.Phone = *in.Phone
	}
	if in.Email != nil {
		warehouse.Email = *in.Email
	}
	if in.ManagerName != nil {
		warehouse.ManagerName = *in.ManagerName
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// SetStatus cambia el estado del galpón. Desactivar fuerza todos sus productos
// a inactivo en la misma transacción, cualquiera sea su estado actual; la
// operación es idempotente. Reactivar NO reactiva productos: eso es una acción
// manual por producto (asimetría intencional).
func (uc *WarehouseUseCase) SetStatus(ctx context.Context, actor access.Actor, id, status string) (*dto.WarehouseResponse, error) {
	if status != entity.StatusActive && status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanSee(actor, warehouse) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(warehouseRepo repository.WarehouseRepository, productRepo repository.ProductRepository) error {
		warehouse.Status = status
		warehouse.UpdatedAt = now
		if err := warehouseRepo.Update(warehouse); err != nil {
			return err
		}
		if status != entity.StatusInactive {
			return nil
		}
		products, err := productRepo.ListByWarehouse(id)
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.Status == entity.StatusInactive {
				continue
			}
			p.Status = entity.StatusInactive
			p.UpdatedAt = now
			if err := productRepo.Update(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete elimina un galpón por ID (solo app_admin).
func (uc *WarehouseUseCase) Delete(actor access.Actor, id string) error {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin}) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Address:     w.Address,
		City:        w.City,
		State:       w.State,
		Phone:       w.Phone,
		Email:       w.Email,
		ManagerName: w.ManagerName,
		OwnerID:     w.OwnerID,
		OwnerName:   w.OwnerName,
		Status:      w.Status,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
