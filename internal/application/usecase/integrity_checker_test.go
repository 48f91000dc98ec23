package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

func newChecker(a *fakeAssignmentRepo, d *fakeDriverRepo, t *fakeTruckRepo, w *fakeWarehouseRepo) *IntegrityChecker {
	return NewIntegrityChecker(a, d, t, w, nil)
}

func TestCheckUserDependencies_DriverSinDependientes(t *testing.T) {
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())
	user := &entity.User{ID: "u1", Role: entity.RoleDriver}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Empty(t, blockers, "driver sin asignaciones ni registros legados debe poder eliminarse")
}

func TestCheckUserDependencies_DriverConAsignaciones(t *testing.T) {
	assignments := newFakeAssignmentRepo(
		&entity.DriverAssignment{ID: "a1", UserID: "u1", ClientID: "c1", Status: entity.StatusActive},
	)
	checker := newChecker(assignments, newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())
	user := &entity.User{ID: "u1", Role: entity.RoleDriver}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Len(t, blockers, 1)
	assert.Equal(t, "driverAssignments", blockers[0].Collection)
	assert.Equal(t, 1, blockers[0].Count)
}

func TestCheckUserDependencies_DriverConCamionAsignado(t *testing.T) {
	drivers := newFakeDriverRepo(&entity.Driver{ID: "d1", UserID: "u1", ClientID: "c1"})
	trucks := newFakeTruckRepo(&entity.Truck{ID: "t1", ClientID: "c1", CurrentDriverID: "d1"})
	checker := newChecker(newFakeAssignmentRepo(), drivers, trucks, newFakeWarehouseRepo())
	user := &entity.User{ID: "u1", Role: entity.RoleDriver}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	collections := make([]string, 0, len(blockers))
	for _, b := range blockers {
		collections = append(collections, b.Collection)
	}
	assert.Contains(t, collections, "drivers")
	assert.Contains(t, collections, "trucks")
}

func TestCheckUserDependencies_ClientAdminConCamiones(t *testing.T) {
	trucks := newFakeTruckRepo(&entity.Truck{ID: "t1", ClientID: "c1", Status: entity.StatusActive})
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), trucks, newFakeWarehouseRepo())
	user := &entity.User{ID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Len(t, blockers, 1)
	assert.Equal(t, "trucks", blockers[0].Collection)
	assert.Equal(t, 1, blockers[0].Count)
}

func TestCheckUserDependencies_ClientAdminSinClientID(t *testing.T) {
	trucks := newFakeTruckRepo(&entity.Truck{ID: "t1", ClientID: "c1"})
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), trucks, newFakeWarehouseRepo())
	// client_admin aún sin onboarding: no hay ámbito que verificar.
	user := &entity.User{ID: "u1", Role: entity.RoleClientAdmin}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Empty(t, blockers)
}

func TestCheckUserDependencies_WarehouseAdminConGalpones(t *testing.T) {
	warehouses := newFakeWarehouseRepo(
		&entity.Warehouse{ID: "w1", OwnerID: "u1"},
		&entity.Warehouse{ID: "w2", OwnerID: "u1"},
	)
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), warehouses)
	user := &entity.User{ID: "u1", Role: entity.RoleWarehouseAdmin}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Len(t, blockers, 1)
	assert.Equal(t, "warehouses", blockers[0].Collection)
	assert.Equal(t, 2, blockers[0].Count)
}

// Fail-closed: un fallo de consulta nunca se interpreta como "seguro de eliminar".
func TestCheckUserDependencies_FalloDeConsulta_FailClosed(t *testing.T) {
	storeErr := errors.New("conexión rechazada")

	t.Run("driver", func(t *testing.T) {
		assignments := newFakeAssignmentRepo()
		assignments.failWith = storeErr
		checker := newChecker(assignments, newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())

		blockers := checker.CheckUserDependencies(context.Background(), &entity.User{ID: "u1", Role: entity.RoleDriver})

		assert.NotEmpty(t, blockers, "fallo de consulta debe bloquear la eliminación")
		assert.Equal(t, -1, blockers[0].Count)
	})

	t.Run("client_admin", func(t *testing.T) {
		drivers := newFakeDriverRepo()
		drivers.failWith = storeErr
		checker := newChecker(newFakeAssignmentRepo(), drivers, newFakeTruckRepo(), newFakeWarehouseRepo())

		blockers := checker.CheckUserDependencies(context.Background(), &entity.User{ID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"})

		assert.NotEmpty(t, blockers)
		assert.Equal(t, -1, blockers[0].Count)
	})

	t.Run("warehouse_admin", func(t *testing.T) {
		warehouses := newFakeWarehouseRepo()
		warehouses.failWith = storeErr
		checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), warehouses)

		blockers := checker.CheckUserDependencies(context.Background(), &entity.User{ID: "u1", Role: entity.RoleWarehouseAdmin})

		assert.NotEmpty(t, blockers)
		assert.Equal(t, -1, blockers[0].Count)
	})
}

func TestCheckUserDependencies_AppAdminSinChequeos(t *testing.T) {
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())
	user := &entity.User{ID: "u1", Role: entity.RoleAppAdmin}

	blockers := checker.CheckUserDependencies(context.Background(), user)

	assert.Empty(t, blockers)
}
