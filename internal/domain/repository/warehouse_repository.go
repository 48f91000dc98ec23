package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	ListByOwner(ownerID string) ([]*entity.Warehouse, error)
	CountByOwner(ownerID string) (int, error)
	Delete(id string) error
}
