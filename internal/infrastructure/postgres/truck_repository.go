package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rifapro/rifapro-api/internal/domain"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

var _ repository.TruckRepository = (*TruckRepo)(nil)

const truckColumns = `id, client_id, plate, model, current_driver_id, status, created_at, updated_at`

// TruckRepo implementación del puerto TruckRepository sobre PostgreSQL (usable con pool o tx).
type TruckRepo struct {
	q Querier
}

// NewTruckRepository construye el adaptador de persistencia para camiones. Pasar pool o tx (Querier).
func NewTruckRepository(q Querier) *TruckRepo {
	return &TruckRepo{q: q}
}

// Create persiste un nuevo camión.
func (r *TruckRepo) Create(truck *entity.Truck) error {
	query := `
		INSERT INTO trucks (` + truckColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		truck.ID, truck.ClientID, truck.Plate, truck.Model, truck.CurrentDriverID,
		truck.Status, truck.CreatedAt, truck.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert truck: %w", err)
	}
	return nil
}

// GetByID obtiene un camión por ID.
func (r *TruckRepo) GetByID(id string) (*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`
	var t entity.Truck
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ClientID, &t.Plate, &t.Model, &t.CurrentDriverID,
		&t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return &t, nil
}

// Update actualiza un camión existente.
func (r *TruckRepo) Update(truck *entity.Truck) error {
	query := `
		UPDATE trucks SET client_id = $2, plate = $3, model = $4, current_driver_id = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		truck.ID, truck.ClientID, truck.Plate, truck.Model, truck.CurrentDriverID,
		truck.Status, truck.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update truck: %w", err)
	}
	return nil
}

// List lista camiones con paginación.
func (r *TruckRepo) List(limit, offset int) ([]*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()
	return collectTrucks(rows)
}

// ListByClient lista camiones de un cliente con paginación.
func (r *TruckRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trucks by client: %w", err)
	}
	defer rows.Close()
	return collectTrucks(rows)
}

// CountByClient cuenta los camiones de un cliente.
func (r *TruckRepo) CountByClient(clientID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM trucks WHERE client_id = $1`, clientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count trucks by client: %w", err)
	}
	return count, nil
}

// CountByCurrentDriver cuenta los camiones cuyo motorista asignado es el registro Driver dado.
func (r *TruckRepo) CountByCurrentDriver(driverID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM trucks WHERE current_driver_id = $1`, driverID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count trucks by driver: %w", err)
	}
	return count, nil
}

// Delete elimina un camión por ID.
func (r *TruckRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete truck: %w", err)
	}
	return nil
}

func collectTrucks(rows pgx.Rows) ([]*entity.Truck, error) {
	var list []*entity.Truck
	for rows.Next() {
		var t entity.Truck
		if err := rows.Scan(&t.ID, &t.ClientID, &t.Plate, &t.Model, &t.CurrentDriverID,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan truck: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
