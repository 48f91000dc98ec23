package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// TruckRepository define el puerto de persistencia para Truck (DIP).
type TruckRepository interface {
	Create(truck *entity.Truck) error
	GetByID(id string) (*entity.Truck, error)
	Update(truck *entity.Truck) error
	ListByClient(clientID string, limit, offset int) ([]*entity.Truck, error)
	List(limit, offset int) ([]*entity.Truck, error)
	CountByClient(clientID string) (int, error)
	CountByCurrentDriver(driverID string) (int, error)
	Delete(id string) error
}
