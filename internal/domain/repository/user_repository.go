package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByRole(role string, limit, offset int) ([]*entity.User, error)
	ListByRoleAndClient(role, clientID string, limit, offset int) ([]*entity.User, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
