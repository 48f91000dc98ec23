package usecase

import (
	"context"
	"fmt"

	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
	"github.com/rifapro/rifapro-api/pkg/logger"
)

// IntegrityChecker enumera registros dependientes antes de una operación
// destructiva. Una lista vacía autoriza la operación; cualquier bloqueador la
// rechaza. El chequeo es fail-closed: si una consulta falla, se reporta un
// bloqueador sintético en lugar de permitir la eliminación con estado ambiguo.
type IntegrityChecker struct {
	assignmentRepo repository.DriverAssignmentRepository
	driverRepo     repository.DriverRepository
	truckRepo      repository.TruckRepository
	warehouseRepo  repository.WarehouseRepository
	log            *logger.Logger
}

// NewIntegrityChecker construye el verificador con sus puertos de consulta.
func NewIntegrityChecker(
	assignmentRepo repository.DriverAssignmentRepository,
	driverRepo repository.DriverRepository,
	truckRepo repository.TruckRepository,
	warehouseRepo repository.WarehouseRepository,
	log *logger.Logger,
) *IntegrityChecker {
	return &IntegrityChecker{
		assignmentRepo: assignmentRepo,
		driverRepo:     driverRepo,
		truckRepo:      truckRepo,
		warehouseRepo:  warehouseRepo,
		log:            log,
	}
}

// CheckUserDependencies enumera, según el rol del usuario candidato a eliminar,
// los registros que dependen de él. No retorna error: un fallo de consulta se
// convierte en un bloqueador con Count=-1 y queda registrado para seguimiento.
func (c *IntegrityChecker) CheckUserDependencies(ctx context.Context, user *entity.User) []dto.DependencyBlocker {
	var blockers []dto.DependencyBlocker

	switch user.Role {
	case entity.RoleDriver:
		blockers = append(blockers, c.checkDriverDependencies(user)...)
	case entity.RoleClientAdmin:
		if user.ClientID != "" {
			blockers = append(blockers, c.checkClientAdminDependencies(user)...)
		}
	case entity.RoleWarehouseAdmin:
		blockers = append(blockers, c.checkWarehouseAdminDependencies(user)...)
	}

	return blockers
}

func (c *IntegrityChecker) checkDriverDependencies(user *entity.User) []dto.DependencyBlocker {
	var blockers []dto.DependencyBlocker

	count, err := c.assignmentRepo.CountByUser(user.ID)
	if err != nil {
		return append(blockers, c.failClosed("driverAssignments", user.ID, err))
	}
	if count > 0 {
		blockers = append(blockers, dto.DependencyBlocker{
			Collection: "driverAssignments",
			Count:      count,
			Message:    fmt.Sprintf("el motorista tiene %d asignación(es) con clientes", count),
		})
	}

	legacy, err := c.driverRepo.ListByUser(user.ID)
	if err != nil {
		return append(blockers, c.failClosed("drivers", user.ID, err))
	}
	if len(legacy) > 0 {
		blockers = append(blockers, dto.DependencyBlocker{
			Collection: "drivers",
			Count:      len(legacy),
			Message:    fmt.Sprintf("existen %d registro(s) legados de motorista", len(legacy)),
		})
	}
	for _, d := range legacy {
		trucks, err := c.truckRepo.CountByCurrentDriver(d.ID)
		if err != nil {
			return append(blockers, c.failClosed("trucks", user.ID, err))
		}
		if trucks > 0 {
			blockers = append(blockers, dto.DependencyBlocker{
				Collection: "trucks",
				Count:      trucks,
				Message:    fmt.Sprintf("%d camión(es) tienen a este motorista asignado", trucks),
			})
		}
	}
	return blockers
}

func (c *IntegrityChecker) checkClientAdminDependencies(user *entity.User) []dto.DependencyBlocker {
	var blockers []dto.DependencyBlocker

	drivers, err := c.driverRepo.CountByClient(user.ClientID)
	if err != nil {
		return append(blockers, c.failClosed("drivers", user.ID, err))
	}
	if drivers > 0 {
		blockers = append(blockers, dto.DependencyBlocker{
			Collection: "drivers",
			Count:      drivers,
			Message:    fmt.Sprintf("el cliente tiene %d motorista(s) registrados", drivers),
		})
	}

	trucks, err := c.truckRepo.CountByClient(user.ClientID)
	if err != nil {
		return append(blockers, c.failClosed("trucks", user.ID, err))
	}
	if trucks > 0 {
		blockers = append(blockers, dto.DependencyBlocker{
			Collection: "trucks",
			Count:      trucks,
			Message:    fmt.Sprintf("el cliente tiene %d camión(es) registrados", trucks),
		})
	}
	return blockers
}

func (c *IntegrityChecker) checkWarehouseAdminDependencies(user *entity.User) []dto.DependencyBlocker {
	count, err := c.warehouseRepo.CountByOwner(user.ID)
	if err != nil {
		return []dto.DependencyBlocker{c.failClosed("warehouses", user.ID, err)}
	}
	if count > 0 {
		return []dto.DependencyBlocker{{
			Collection: "warehouses",
			Count:      count,
			Message:    fmt.Sprintf("el usuario es dueño de %d galpón(es)", count),
		}}
	}
	return nil
}

// failClosed registra el fallo de consulta y devuelve el bloqueador sintético:
// un estado ambiguo nunca se interpreta como "seguro de eliminar".
func (c *IntegrityChecker) failClosed(collection, userID string, err error) dto.DependencyBlocker {
	if c.log != nil {
		c.log.Error().Err(err).
			Str("collection", collection).
			Str("user_id", userID).
			Msg("fallo al verificar dependencias")
	}
	return dto.DependencyBlocker{
		Collection: collection,
		Count:      -1,
		Message:    "no se pudieron verificar las dependencias; intente de nuevo",
	}
}
