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

// ClientUseCase casos de uso para clientes, incluido el onboarding: el
// client_admin recién registrado crea su Client y queda afiliado y activo.
type ClientUseCase struct {
	repo     repository.ClientRepository
	userRepo repository.UserRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, userRepo repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un cliente. Para un client_admin sin afiliación es su onboarding:
// además de crear el Client, el usuario queda asociado a él y pasa a activo.
// Un client_admin ya afiliado no puede crear otro cliente.
func (uc *ClientUseCase) Create(actor access.Actor, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}) {
		return nil, domain.ErrForbidden
	}
	if actor.Role == entity.RoleClientAdmin && actor.ClientID != "" {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Phone:     in.Phone,
		Status:    entity.StatusActive,
		CreatedBy: actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleClientAdmin {
		user, err := uc.userRepo.GetByID(actor.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.ClientID = client.ID
			user.Status = entity.UserStatusActive
			user.UpdatedAt = now
			if err := uc.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente visible para el actor.
func (uc *ClientUseCase) GetByID(actor access.Actor, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if !access.CanSee(actor, client) {
		return nil, domain.ErrForbidden
	}
	return toClientResponse(client), nil
}

// List lista clientes: app_admin ve todos; client_admin solo el suyo.
func (uc *ClientUseCase) List(actor access.Actor, limit, offset int) (*dto.ClientListResponse, error) {
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err := uc.repo.List(limit, offset)
		if err != nil {
			return nil, err
		}
		return toClientList(list, limit, offset), nil
	case entity.RoleClientAdmin:
		if actor.ClientID == "" {
			return toClientList(nil, limit, offset), nil
		}
		client, err := uc.repo.GetByID(actor.ClientID)
		if err != nil {
			return nil, err
		}
		var list []*entity.Client
		if client != nil {
			list = append(list, client)
		}
		return toClientList(list, limit, offset), nil
	}
	return nil, domain.ErrForbidden
}

// Search busca clientes por nombre, insensible a acentos y mayúsculas (solo app_admin).
func (uc *ClientUseCase) Search(actor access.Actor, name string, limit, offset int) (*dto.ClientListResponse, error) {
	if !access.CanAccessPage(actor.Role, []string{entity.RoleAppAdmin}) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.SearchByName(name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toClientList(list, limit, offset), nil
}

// Update aplica un merge parcial sobre un cliente visible para el actor.
func (uc *ClientUseCase) Update(actor access.Actor, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if !access.CanSee(actor, client) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.State != nil {
		client.State = *in.State
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func toClientList(list []*entity.Client, limit, offset int) *dto.ClientListResponse {
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Phone:     c.Phone,
		Status:    c.Status,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
