package access

import (
	"testing"

	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

func TestCanAccessPage(t *testing.T) {
	all := []string{entity.RoleAppAdmin, entity.RoleClientAdmin, entity.RoleDriver, entity.RoleWarehouseAdmin}
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"rol permitido único", entity.RoleAppAdmin, []string{entity.RoleAppAdmin}, true},
		{"rol en conjunto múltiple", entity.RoleClientAdmin, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}, true},
		{"rol fuera del conjunto", entity.RoleDriver, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}, false},
		{"warehouse_admin en página de drivers", entity.RoleWarehouseAdmin, []string{entity.RoleAppAdmin, entity.RoleClientAdmin}, false},
		{"rol vacío deniega siempre", "", all, false},
		{"rol vacío con conjunto vacío", "", nil, false},
		{"rol desconocido", "superuser", all, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessPage(tt.role, tt.allowed); got != tt.want {
				t.Errorf("CanAccessPage(%q, %v) = %v, quería %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestCanSee_AppAdminSinRestriccion(t *testing.T) {
	actor := Actor{UserID: "u1", Role: entity.RoleAppAdmin}
	resources := []any{
		&entity.Client{ID: "c9"},
		&entity.Warehouse{ID: "w9", OwnerID: "otro"},
		&entity.Product{ID: "p9", WarehouseID: "w9"},
		&entity.Truck{ID: "t9", ClientID: "c9"},
		&entity.DriverAssignment{ID: "a9", UserID: "otro", ClientID: "c9"},
		&entity.User{ID: "otro"},
	}
	for _, res := range resources {
		if !CanSee(actor, res) {
			t.Errorf("app_admin debe ver %T", res)
		}
	}
}

func TestCanSee_ClientAdminScoping(t *testing.T) {
	actor := Actor{UserID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"}

	if !CanSee(actor, &entity.Client{ID: "c1"}) {
		t.Error("client_admin debe ver su propio cliente")
	}
	if CanSee(actor, &entity.Client{ID: "c2"}) {
		t.Error("client_admin no debe ver otros clientes")
	}
	if !CanSee(actor, &entity.Truck{ID: "t1", ClientID: "c1"}) {
		t.Error("client_admin debe ver camiones de su cliente")
	}
	if CanSee(actor, &entity.Truck{ID: "t2", ClientID: "c2"}) {
		t.Error("client_admin no debe ver camiones ajenos")
	}
	if !CanSee(actor, &entity.DriverAssignment{ID: "a1", UserID: "d1", ClientID: "c1"}) {
		t.Error("client_admin debe ver asignaciones de su cliente")
	}
	if CanSee(actor, &entity.Warehouse{ID: "w1", OwnerID: "u1"}) {
		t.Error("client_admin no opera sobre galpones")
	}
}

// Escenario de la propiedad de scoping: el dueño de w1 ve P1 (warehouseId=w1)
// pero no P2 (warehouseId=w2, de otro admin).
func TestCanSee_WarehouseAdminProductos(t *testing.T) {
	actor := Actor{UserID: "u1", Role: entity.RoleWarehouseAdmin, WarehouseIDs: []string{"w1"}}

	p1 := &entity.Product{ID: "p1", WarehouseID: "w1"}
	p2 := &entity.Product{ID: "p2", WarehouseID: "w2"}

	if !CanSee(actor, p1) {
		t.Error("warehouse_admin debe ver productos de sus galpones")
	}
	if CanSee(actor, p2) {
		t.Error("warehouse_admin no debe ver productos de galpones ajenos")
	}
	if !CanSee(actor, &entity.Warehouse{ID: "w1", OwnerID: "u1"}) {
		t.Error("warehouse_admin debe ver su galpón")
	}
	if CanSee(actor, &entity.Warehouse{ID: "w2", OwnerID: "u2"}) {
		t.Error("warehouse_admin no debe ver galpones ajenos")
	}
}

func TestCanSee_DriverSoloLoPropio(t *testing.T) {
	actor := Actor{UserID: "d1", Role: entity.RoleDriver, ClientID: "c1"}

	if !CanSee(actor, &entity.DriverAssignment{ID: "a1", UserID: "d1", ClientID: "c2"}) {
		t.Error("driver debe ver sus propias asignaciones")
	}
	if CanSee(actor, &entity.DriverAssignment{ID: "a2", UserID: "d2", ClientID: "c1"}) {
		t.Error("driver no debe ver asignaciones de otros")
	}
	if !CanSee(actor, &entity.User{ID: "d1"}) {
		t.Error("driver debe ver su propio perfil")
	}
	if CanSee(actor, &entity.Truck{ID: "t1", ClientID: "c1"}) {
		t.Error("driver no administra camiones")
	}
}

func TestCanSee_SinRolDeniega(t *testing.T) {
	actor := Actor{UserID: "u1"}
	if CanSee(actor, &entity.Client{ID: "c1"}) {
		t.Error("actor sin rol no debe ver nada")
	}
}
