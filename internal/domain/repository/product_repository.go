package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByWarehouse(warehouseID string) ([]*entity.Product, error)
	ListByWarehouses(warehouseIDs []string, limit, offset int) ([]*entity.Product, error)
	ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error)
	Delete(id string) error
}
