package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

func buildNoteUC(notes *fakeNoteRepo, drivers *fakeDriverRepo) *NoteUseCase {
	return NewNoteUseCase(notes, newFakeTruckRepo(), drivers, newFakeClientRepo(), nil, nil)
}

func driverActor(userID, clientID string) access.Actor {
	return access.Actor{UserID: userID, Role: entity.RoleDriver, ClientID: clientID}
}

// Un motorista lista solo los romaneos de sus propios registros Driver,
// aunque comparta cliente con otros motoristas.
func TestNoteList_DriverSoloSusViajes(t *testing.T) {
	drivers := newFakeDriverRepo(
		&entity.Driver{ID: "d1", UserID: "u-silva", ClientID: "c1"},
		&entity.Driver{ID: "d2", UserID: "u-rocha", ClientID: "c1"},
	)
	notes := newFakeNoteRepo(drivers,
		&entity.Note{ID: "n1", DriverID: "d1", ClientID: "c1", Status: entity.NoteStatusLoading},
		&entity.Note{ID: "n2", DriverID: "d2", ClientID: "c1", Status: entity.NoteStatusOnRoute},
	)
	uc := buildNoteUC(notes, drivers)

	out, err := uc.List(driverActor("u-silva", "c1"), 50, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "n1", out.Items[0].ID)
}

// Un motorista con registros Driver en dos clientes ve los viajes de ambos.
func TestNoteList_DriverMultiCliente(t *testing.T) {
	drivers := newFakeDriverRepo(
		&entity.Driver{ID: "d1", UserID: "u-silva", ClientID: "c1"},
		&entity.Driver{ID: "d2", UserID: "u-silva", ClientID: "c2"},
	)
	notes := newFakeNoteRepo(drivers,
		&entity.Note{ID: "n1", DriverID: "d1", ClientID: "c1"},
		&entity.Note{ID: "n2", DriverID: "d2", ClientID: "c2"},
	)
	uc := buildNoteUC(notes, drivers)

	out, err := uc.List(driverActor("u-silva", "c1"), 50, 0)
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
}

func TestNoteList_ClientAdminScoped(t *testing.T) {
	drivers := newFakeDriverRepo(&entity.Driver{ID: "d1", UserID: "u-silva", ClientID: "c1"})
	notes := newFakeNoteRepo(drivers,
		&entity.Note{ID: "n1", DriverID: "d1", ClientID: "c1"},
		&entity.Note{ID: "n2", DriverID: "d9", ClientID: "c2"},
	)
	uc := buildNoteUC(notes, drivers)

	out, err := uc.List(access.Actor{UserID: "ca1", Role: entity.RoleClientAdmin, ClientID: "c1"}, 50, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "n1", out.Items[0].ID)
}

// El detalle sigue el mismo scoping que el listado: el motorista lee su propio
// romaneo y recibe 403 sobre el de otro.
func TestNoteGetByID_DriverSoloLoPropio(t *testing.T) {
	drivers := newFakeDriverRepo(
		&entity.Driver{ID: "d1", UserID: "u-silva", ClientID: "c1"},
		&entity.Driver{ID: "d2", UserID: "u-rocha", ClientID: "c1"},
	)
	notes := newFakeNoteRepo(drivers,
		&entity.Note{ID: "n1", DriverID: "d1", ClientID: "c1"},
		&entity.Note{ID: "n2", DriverID: "d2", ClientID: "c1"},
	)
	uc := buildNoteUC(notes, drivers)

	own, err := uc.GetByID(driverActor("u-silva", "c1"), "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", own.ID)

	_, err = uc.GetByID(driverActor("u-silva", "c1"), "n2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Los motoristas son solo lectura sobre romaneos: ni cambian estado ni eliminan.
func TestNote_DriverNoModifica(t *testing.T) {
	drivers := newFakeDriverRepo(&entity.Driver{ID: "d1", UserID: "u-silva", ClientID: "c1"})
	notes := newFakeNoteRepo(drivers,
		&entity.Note{ID: "n1", DriverID: "d1", ClientID: "c1", Status: entity.NoteStatusLoading},
	)
	uc := buildNoteUC(notes, drivers)

	_, err := uc.SetStatus(driverActor("u-silva", "c1"), "n1", entity.NoteStatusOnRoute)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(driverActor("u-silva", "c1"), "n1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
