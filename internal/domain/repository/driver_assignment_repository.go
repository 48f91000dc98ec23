package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// DriverAssignmentRepository define el puerto de persistencia para DriverAssignment (DIP).
type DriverAssignmentRepository interface {
	Create(assignment *entity.DriverAssignment) error
	GetByID(id string) (*entity.DriverAssignment, error)
	Update(assignment *entity.DriverAssignment) error
	List(limit, offset int) ([]*entity.DriverAssignment, error)
	ListByUser(userID string) ([]*entity.DriverAssignment, error)
	ListActiveByUser(userID string) ([]*entity.DriverAssignment, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.DriverAssignment, error)
	CountByUser(userID string) (int, error)
	Delete(id string) error
}
