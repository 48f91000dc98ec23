package usecase

import (
	"context"
	"time"

	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios, incluida la eliminación
// protegida por el verificador de dependencias.
type UserUseCase struct {
	repo       repository.UserRepository
	clientRepo repository.ClientRepository
	checker    *IntegrityChecker
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(repo repository.UserRepository, clientRepo repository.ClientRepository, checker *IntegrityChecker) *UserUseCase {
	return &UserUseCase{repo: repo, clientRepo: clientRepo, checker: checker}
}

// GetByID obtiene un usuario visible para el actor.
func (uc *UserUseCase) GetByID(actor access.Actor, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !access.CanSee(actor, user) {
		return nil, domain.ErrForbidden
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios según el ámbito del actor: app_admin ve todos,
// client_admin solo los afiliados a su cliente.
func (uc *UserUseCase) List(actor access.Actor, limit, offset int) (*dto.UserListResponse, error) {
	var (
		list []*entity.User
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
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByRole lista usuarios de un rol (ej. warehouse_admin para elegir dueño de
// galpón), dentro del ámbito del actor: app_admin sin restricción, client_admin
// solo los afiliados a su cliente.
func (uc *UserUseCase) ListByRole(actor access.Actor, role string, limit, offset int) (*dto.UserListResponse, error) {
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	var (
		list []*entity.User
		err  error
	)
	switch actor.Role {
	case entity.RoleAppAdmin:
		list, err = uc.repo.ListByRole(role, limit, offset)
	case entity.RoleClientAdmin:
		list, err = uc.repo.ListByRoleAndClient(role, actor.ClientID, limit, offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un merge parcial sobre un usuario visible para el actor.
func (uc *UserUseCase) Update(actor access.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !access.CanSee(actor, user) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.ClientID != nil {
		user.ClientID = *in.ClientID
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// CheckDependencies expone el chequeo sin eliminar, para que la UI muestre los
// bloqueadores antes de confirmar.
func (uc *UserUseCase) CheckDependencies(ctx context.Context, id string) (*dto.CheckDependenciesResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	blockers := uc.checker.CheckUserDependencies(ctx, user)
	if blockers == nil {
		blockers = []dto.DependencyBlocker{}
	}
	return &dto.CheckDependenciesResponse{UserID: id, Blockers: blockers}, nil
}

// Delete elimina un usuario solo si el verificador no encuentra dependientes.
// Devuelve los bloqueadores con domain.ErrDependencyBlocked cuando la
// eliminación se rechaza. Eliminar un client_admin elimina también su Client
// (comportamiento heredado; ver DESIGN.md).
func (uc *UserUseCase) Delete(ctx context.Context, id string) ([]dto.DependencyBlocker, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	blockers := uc.checker.CheckUserDependencies(ctx, user)
	if len(blockers) > 0 {
		return blockers, domain.ErrDependencyBlocked
	}
	if user.Role == entity.RoleClientAdmin && user.ClientID != "" {
		if err := uc.clientRepo.Delete(user.ClientID); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return nil, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Status:             u.Status,
		ClientID:           u.ClientID,
		NeedsPasswordSetup: u.NeedsPasswordSetup,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
