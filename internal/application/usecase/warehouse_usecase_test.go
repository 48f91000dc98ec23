package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rifapro/rifapro-api/internal/application/dto"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

func buildWarehouseUC(warehouses *fakeWarehouseRepo, products *fakeProductRepo) *WarehouseUseCase {
	return NewWarehouseUseCase(warehouses, newFakeUserRepo(), &fakeTxRunner{
		warehouseRepo: warehouses,
		productRepo:   products,
	})
}

func appAdmin() access.Actor {
	return access.Actor{UserID: "admin", Role: entity.RoleAppAdmin}
}

func dtoCreateWarehouse(name, ownerID string) dto.CreateWarehouseRequest {
	return dto.CreateWarehouseRequest{Name: name, OwnerID: ownerID}
}

// Desactivar un galpón fuerza todos sus productos a inactivo, cualquiera sea su
// estado actual; los productos de otros galpones no se tocan.
func TestSetWarehouseStatus_DesactivarCascadaProductos(t *testing.T) {
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", OwnerID: "u1", Status: entity.StatusActive})
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", WarehouseID: "w1", Status: entity.StatusActive},
		&entity.Product{ID: "p2", WarehouseID: "w1", Status: entity.StatusActive},
		&entity.Product{ID: "p3", WarehouseID: "w1", Status: entity.StatusInactive},
		&entity.Product{ID: "p4", WarehouseID: "w2", Status: entity.StatusActive},
	)
	uc := buildWarehouseUC(warehouses, products)

	out, err := uc.SetStatus(context.Background(), appAdmin(), "w1", entity.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, out.Status)

	for _, id := range []string{"p1", "p2", "p3"} {
		p, _ := products.GetByID(id)
		assert.Equal(t, entity.StatusInactive, p.Status, "producto %s debe quedar inactivo", id)
	}
	p4, _ := products.GetByID("p4")
	assert.Equal(t, entity.StatusActive, p4.Status, "productos de otros galpones no se tocan")
}

// Reactivar el galpón NO reactiva los productos: la reactivación es manual por producto.
func TestSetWarehouseStatus_ReactivarNoCascada(t *testing.T) {
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", OwnerID: "u1", Status: entity.StatusActive})
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", WarehouseID: "w1", Status: entity.StatusActive},
		&entity.Product{ID: "p2", WarehouseID: "w1", Status: entity.StatusActive},
		&entity.Product{ID: "p3", WarehouseID: "w1", Status: entity.StatusInactive},
	)
	uc := buildWarehouseUC(warehouses, products)

	_, err := uc.SetStatus(context.Background(), appAdmin(), "w1", entity.StatusInactive)
	require.NoError(t, err)
	out, err := uc.SetStatus(context.Background(), appAdmin(), "w1", entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.Status)

	for _, id := range []string{"p1", "p2", "p3"} {
		p, _ := products.GetByID(id)
		assert.Equal(t, entity.StatusInactive, p.Status, "producto %s debe seguir inactivo tras reactivar el galpón", id)
	}
}

// Desactivar dos veces seguidas produce el mismo estado final que una vez.
func TestSetWarehouseStatus_Idempotente(t *testing.T) {
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", OwnerID: "u1", Status: entity.StatusActive})
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", WarehouseID: "w1", Status: entity.StatusActive},
	)
	uc := buildWarehouseUC(warehouses, products)

	_, err := uc.SetStatus(context.Background(), appAdmin(), "w1", entity.StatusInactive)
	require.NoError(t, err)
	_, err = uc.SetStatus(context.Background(), appAdmin(), "w1", entity.StatusInactive)
	require.NoError(t, err)

	w, _ := warehouses.GetByID("w1")
	assert.Equal(t, entity.StatusInactive, w.Status)
	p, _ := products.GetByID("p1")
	assert.Equal(t, entity.StatusInactive, p.Status)
}

func TestSetWarehouseStatus_GalponInexistente(t *testing.T) {
	uc := buildWarehouseUC(newFakeWarehouseRepo(), newFakeProductRepo())

	_, err := uc.SetStatus(context.Background(), appAdmin(), "nope", entity.StatusInactive)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetWarehouseStatus_EstadoInvalido(t *testing.T) {
	uc := buildWarehouseUC(newFakeWarehouseRepo(), newFakeProductRepo())

	_, err := uc.SetStatus(context.Background(), appAdmin(), "w1", "suspended")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El dueño puede desactivar su galpón; otro warehouse_admin no.
func TestSetWarehouseStatus_ScopingPorDueno(t *testing.T) {
	warehouses := newFakeWarehouseRepo(&entity.Warehouse{ID: "w1", OwnerID: "u1", Status: entity.StatusActive})
	uc := buildWarehouseUC(warehouses, newFakeProductRepo())

	owner := access.Actor{UserID: "u1", Role: entity.RoleWarehouseAdmin, WarehouseIDs: []string{"w1"}}
	_, err := uc.SetStatus(context.Background(), owner, "w1", entity.StatusInactive)
	assert.NoError(t, err)

	otro := access.Actor{UserID: "u2", Role: entity.RoleWarehouseAdmin}
	_, err = uc.SetStatus(context.Background(), otro, "w1", entity.StatusActive)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWarehouseCreate_DuenoDebeSerWarehouseAdmin(t *testing.T) {
	warehouses := newFakeWarehouseRepo()
	users := newFakeUserRepo(
		&entity.User{ID: "u1", Name: "Bebeto", Role: entity.RoleWarehouseAdmin, Status: entity.UserStatusActive},
		&entity.User{ID: "u2", Name: "Ana", Role: entity.RoleDriver, Status: entity.UserStatusActive},
	)
	uc := NewWarehouseUseCase(warehouses, users, &fakeTxRunner{warehouseRepo: warehouses, productRepo: newFakeProductRepo()})

	out, err := uc.Create(appAdmin(), dtoCreateWarehouse("Galpão Central", "u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", out.OwnerID)
	assert.Equal(t, "Bebeto", out.OwnerName)

	_, err = uc.Create(appAdmin(), dtoCreateWarehouse("Otro", "u2"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el dueño debe tener rol warehouse_admin")

	actor := access.Actor{UserID: "u1", Role: entity.RoleWarehouseAdmin}
	_, err = uc.Create(actor, dtoCreateWarehouse("Otro", "u1"))
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo app_admin crea galpones")
}
