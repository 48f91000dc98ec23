package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// DriverRepository define el puerto de persistencia para el registro Driver legado (DIP).
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	ListByUser(userID string) ([]*entity.Driver, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Driver, error)
	CountByClient(clientID string) (int, error)
	Delete(id string) error
}
