package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

func buildUserUC(users *fakeUserRepo, clients *fakeClientRepo, checker *IntegrityChecker) *UserUseCase {
	if checker == nil {
		checker = newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())
	}
	return NewUserUseCase(users, clients, checker)
}

func TestUserDelete_SinDependientesProcede(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleDriver})
	uc := buildUserUC(users, newFakeClientRepo(), nil)

	blockers, err := uc.Delete(context.Background(), "u1")
	require.NoError(t, err)

	assert.Empty(t, blockers)
	u, _ := users.GetByID("u1")
	assert.Nil(t, u, "el usuario debe quedar eliminado")
}

func TestUserDelete_ConDependientesSeRechaza(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleDriver})
	assignments := newFakeAssignmentRepo(
		&entity.DriverAssignment{ID: "a1", UserID: "u1", ClientID: "c1", Status: entity.StatusActive},
	)
	checker := newChecker(assignments, newFakeDriverRepo(), newFakeTruckRepo(), newFakeWarehouseRepo())
	uc := buildUserUC(users, newFakeClientRepo(), checker)

	blockers, err := uc.Delete(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrDependencyBlocked)
	assert.NotEmpty(t, blockers)
	u, _ := users.GetByID("u1")
	assert.NotNil(t, u, "el usuario no debe eliminarse con dependientes")
}

// Eliminar un client_admin elimina también su Client (comportamiento heredado).
func TestUserDelete_ClientAdminCascadaASuCliente(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"})
	clients := newFakeClientRepo(&entity.Client{ID: "c1", Name: "Transportes Silva"})
	uc := buildUserUC(users, clients, nil)

	blockers, err := uc.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, blockers)

	assert.Contains(t, clients.deleted, "c1", "el Client del client_admin debe eliminarse en cascada")
	u, _ := users.GetByID("u1")
	assert.Nil(t, u)
}

func TestUserDelete_FalloDeChequeoBloquea(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleWarehouseAdmin})
	warehouses := newFakeWarehouseRepo()
	warehouses.failWith = errors.New("timeout")
	checker := newChecker(newFakeAssignmentRepo(), newFakeDriverRepo(), newFakeTruckRepo(), warehouses)
	uc := buildUserUC(users, newFakeClientRepo(), checker)

	blockers, err := uc.Delete(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrDependencyBlocked)
	assert.NotEmpty(t, blockers)
	u, _ := users.GetByID("u1")
	assert.NotNil(t, u)
}

func TestUserDelete_UsuarioInexistente(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(), newFakeClientRepo(), nil)

	_, err := uc.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserCheckDependencies_ListaVaciaNoNula(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleDriver})
	uc := buildUserUC(users, newFakeClientRepo(), nil)

	out, err := uc.CheckDependencies(context.Background(), "u1")
	require.NoError(t, err)

	assert.NotNil(t, out.Blockers)
	assert.Empty(t, out.Blockers)
}

func TestUserList_ScopedPorRol(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{ID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"},
		&entity.User{ID: "u2", Role: entity.RoleDriver, ClientID: "c1"},
		&entity.User{ID: "u3", Role: entity.RoleDriver, ClientID: "c2"},
	)
	uc := buildUserUC(users, newFakeClientRepo(), nil)

	all, err := uc.List(appAdmin(), 50, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	scoped, err := uc.List(access.Actor{UserID: "u1", Role: entity.RoleClientAdmin, ClientID: "c1"}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, scoped.Items, 2, "client_admin solo ve usuarios de su cliente")

	_, err = uc.List(access.Actor{UserID: "u2", Role: entity.RoleDriver, ClientID: "c1"}, 50, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El filtro ?role= respeta el mismo scoping que el listado general: un
// client_admin no puede enumerar motoristas de otros clientes.
func TestUserListByRole_ClientAdminNoVeOtrosClientes(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{ID: "drv-c1", Role: entity.RoleDriver, ClientID: "c1"},
		&entity.User{ID: "drv-c2", Role: entity.RoleDriver, ClientID: "c2"},
		&entity.User{ID: "wh-1", Role: entity.RoleWarehouseAdmin},
	)
	uc := buildUserUC(users, newFakeClientRepo(), nil)

	admin := access.Actor{UserID: "ca1", Role: entity.RoleClientAdmin, ClientID: "c1"}
	out, err := uc.ListByRole(admin, entity.RoleDriver, 50, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "client_admin de c1 solo ve sus propios motoristas")
	assert.Equal(t, "drv-c1", out.Items[0].ID)

	all, err := uc.ListByRole(appAdmin(), entity.RoleDriver, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2, "app_admin ve motoristas de todos los clientes")

	_, err = uc.ListByRole(access.Actor{UserID: "drv-c1", Role: entity.RoleDriver, ClientID: "c1"}, entity.RoleDriver, 50, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserListByRole_RolInvalido(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(), newFakeClientRepo(), nil)

	_, err := uc.ListByRole(appAdmin(), "superuser", 50, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
