package usecase

import (
	"context"

	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Cada fake permite inyectar
// un error (failWith) para simular fallos del almacén.

type fakeUserRepo struct {
	users    map[string]*entity.User
	failWith error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error      { delete(r.users, id); return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List(_, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) ListByRole(role string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ListByRoleAndClient(role, clientID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role && u.ClientID == clientID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ListByClient(clientID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.ClientID == clientID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeClientRepo struct {
	clients  map[string]*entity.Client
	deleted  []string
	failWith error
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	m := make(map[string]*entity.Client)
	for _, c := range clients {
		m[c.ID] = c
	}
	return &fakeClientRepo{clients: m}
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.clients, id)
	return nil
}
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.clients[id], nil
}
func (r *fakeClientRepo) List(_, _ int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClientRepo) SearchByName(_ string, _, _ int) ([]*entity.Client, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
	failWith   error
}

func newFakeWarehouseRepo(ws ...*entity.Warehouse) *fakeWarehouseRepo {
	m := make(map[string]*entity.Warehouse)
	for _, w := range ws {
		m[w.ID] = w
	}
	return &fakeWarehouseRepo{warehouses: m}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) Delete(id string) error           { delete(r.warehouses, id); return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}
func (r *fakeWarehouseRepo) ListByOwner(ownerID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.OwnerID == ownerID {
			out = append(out, w)
		}
	}
	return out, nil
}
func (r *fakeWarehouseRepo) CountByOwner(ownerID string) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	list, _ := r.ListByOwner(ownerID)
	return len(list), nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	failWith error
}

func newFakeProductRepo(ps ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range ps {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) ListByWarehouse(warehouseID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.WarehouseID == warehouseID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ListByWarehouses(ids []string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		byWh, _ := r.ListByWarehouse(id)
		out = append(out, byWh...)
	}
	return out, nil
}
func (r *fakeProductRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.WarehouseID == warehouseID && p.Status == entity.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments map[string]*entity.DriverAssignment
	failWith    error
}

func newFakeAssignmentRepo(as ...*entity.DriverAssignment) *fakeAssignmentRepo {
	m := make(map[string]*entity.DriverAssignment)
	for _, a := range as {
		m[a.ID] = a
	}
	return &fakeAssignmentRepo{assignments: m}
}

func (r *fakeAssignmentRepo) Create(a *entity.DriverAssignment) error {
	r.assignments[a.ID] = a
	return nil
}
func (r *fakeAssignmentRepo) Update(a *entity.DriverAssignment) error {
	r.assignments[a.ID] = a
	return nil
}
func (r *fakeAssignmentRepo) Delete(id string) error { delete(r.assignments, id); return nil }
func (r *fakeAssignmentRepo) GetByID(id string) (*entity.DriverAssignment, error) {
	return r.assignments[id], nil
}
func (r *fakeAssignmentRepo) List(_, _ int) ([]*entity.DriverAssignment, error) {
	var out []*entity.DriverAssignment
	for _, a := range r.assignments {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAssignmentRepo) ListByUser(userID string) ([]*entity.DriverAssignment, error) {
	var out []*entity.DriverAssignment
	for _, a := range r.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssignmentRepo) ListActiveByUser(userID string) ([]*entity.DriverAssignment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.DriverAssignment
	for _, a := range r.assignments {
		if a.UserID == userID && a.Status == entity.StatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssignmentRepo) ListByClient(clientID string, _, _ int) ([]*entity.DriverAssignment, error) {
	var out []*entity.DriverAssignment
	for _, a := range r.assignments {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAssignmentRepo) CountByUser(userID string) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	list, _ := r.ListByUser(userID)
	return len(list), nil
}

type fakeDriverRepo struct {
	drivers  map[string]*entity.Driver
	failWith error
}

func newFakeDriverRepo(ds ...*entity.Driver) *fakeDriverRepo {
	m := make(map[string]*entity.Driver)
	for _, d := range ds {
		m[d.ID] = d
	}
	return &fakeDriverRepo{drivers: m}
}

func (r *fakeDriverRepo) Create(d *entity.Driver) error { r.drivers[d.ID] = d; return nil }
func (r *fakeDriverRepo) Delete(id string) error        { delete(r.drivers, id); return nil }
func (r *fakeDriverRepo) GetByID(id string) (*entity.Driver, error) {
	return r.drivers[id], nil
}
func (r *fakeDriverRepo) ListByUser(userID string) ([]*entity.Driver, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Driver
	for _, d := range r.drivers {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDriverRepo) ListByClient(clientID string, _, _ int) ([]*entity.Driver, error) {
	var out []*entity.Driver
	for _, d := range r.drivers {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDriverRepo) CountByClient(clientID string) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	list, _ := r.ListByClient(clientID, 0, 0)
	return len(list), nil
}

type fakeTruckRepo struct {
	trucks   map[string]*entity.Truck
	failWith error
}

func newFakeTruckRepo(ts ...*entity.Truck) *fakeTruckRepo {
	m := make(map[string]*entity.Truck)
	for _, t := range ts {
		m[t.ID] = t
	}
	return &fakeTruckRepo{trucks: m}
}

func (r *fakeTruckRepo) Create(t *entity.Truck) error { r.trucks[t.ID] = t; return nil }
func (r *fakeTruckRepo) Update(t *entity.Truck) error { r.trucks[t.ID] = t; return nil }
func (r *fakeTruckRepo) Delete(id string) error       { delete(r.trucks, id); return nil }
func (r *fakeTruckRepo) GetByID(id string) (*entity.Truck, error) {
	return r.trucks[id], nil
}
func (r *fakeTruckRepo) List(_, _ int) ([]*entity.Truck, error) {
	var out []*entity.Truck
	for _, t := range r.trucks {
		out = append(out, t)
	}
	return out, nil
}
func (r *fakeTruckRepo) ListByClient(clientID string, _, _ int) ([]*entity.Truck, error) {
	var out []*entity.Truck
	for _, t := range r.trucks {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTruckRepo) CountByClient(clientID string) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	list, _ := r.ListByClient(clientID, 0, 0)
	return len(list), nil
}
func (r *fakeTruckRepo) CountByCurrentDriver(driverID string) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	n := 0
	for _, t := range r.trucks {
		if t.CurrentDriverID == driverID {
			n++
		}
	}
	return n, nil
}

type fakeNoteRepo struct {
	notes map[string]*entity.Note
	// drivers resuelve driver_id -> user_id para el listado por motorista,
	// como hace la subconsulta del adaptador real.
	drivers  *fakeDriverRepo
	failWith error
}

func newFakeNoteRepo(drivers *fakeDriverRepo, ns ...*entity.Note) *fakeNoteRepo {
	m := make(map[string]*entity.Note)
	for _, n := range ns {
		m[n.ID] = n
	}
	return &fakeNoteRepo{notes: m, drivers: drivers}
}

func (r *fakeNoteRepo) Create(n *entity.Note) error { r.notes[n.ID] = n; return nil }
func (r *fakeNoteRepo) Update(n *entity.Note) error { r.notes[n.ID] = n; return nil }
func (r *fakeNoteRepo) Delete(id string) error      { delete(r.notes, id); return nil }
func (r *fakeNoteRepo) GetByID(id string) (*entity.Note, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.notes[id], nil
}
func (r *fakeNoteRepo) List(_, _ int) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.notes {
		out = append(out, n)
	}
	return out, nil
}
func (r *fakeNoteRepo) ListByClient(clientID string, _, _ int) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (r *fakeNoteRepo) ListByDriverUser(userID string, _, _ int) ([]*entity.Note, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Note
	for _, n := range r.notes {
		d, _ := r.drivers.GetByID(n.DriverID)
		if d != nil && d.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.WarehouseRepository, repository.ProductRepository) error) error {
	return fn(r.warehouseRepo, r.productRepo)
}
