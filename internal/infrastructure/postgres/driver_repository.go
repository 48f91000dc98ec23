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

var _ repository.DriverRepository = (*DriverRepo)(nil)

const driverColumns = `id, user_id, client_id, cpf, cnh, phone, address, city, state, commission_rate, created_at, updated_at`

// DriverRepo implementación del puerto DriverRepository (registros legados) sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador de persistencia para registros Driver. Pasar pool o tx (Querier).
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persiste un nuevo registro Driver.
func (r *DriverRepo) Create(driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		driver.ID, driver.UserID, driver.ClientID, driver.CPF, driver.CNH,
		driver.Phone, driver.Address, driver.City, driver.State, driver.CommissionRate,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un registro Driver por ID.
func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	var d entity.Driver
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.UserID, &d.ClientID, &d.CPF, &d.CNH,
		&d.Phone, &d.Address, &d.City, &d.State, &d.CommissionRate,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

// ListByUser lista los registros Driver que apuntan a un usuario.
func (r *DriverRepo) ListByUser(userID string) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list drivers by user: %w", err)
	}
	defer rows.Close()
	return collectDrivers(rows)
}

// ListByClient lista los registros Driver de un cliente con paginación.
func (r *DriverRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers by client: %w", err)
	}
	defer rows.Close()
	return collectDrivers(rows)
}

// CountByClient cuenta los registros Driver de un cliente.
func (r *DriverRepo) CountByClient(clientID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM drivers WHERE client_id = $1`, clientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count drivers by client: %w", err)
	}
	return count, nil
}

// Delete elimina un registro Driver por ID.
func (r *DriverRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	return nil
}

func collectDrivers(rows pgx.Rows) ([]*entity.Driver, error) {
	var list []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(&d.ID, &d.UserID, &d.ClientID, &d.CPF, &d.CNH,
			&d.Phone, &d.Address, &d.City, &d.State, &d.CommissionRate,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
