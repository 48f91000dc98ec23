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

var _ repository.DriverAssignmentRepository = (*DriverAssignmentRepo)(nil)

const assignmentColumns = `id, user_id, client_id, commission_rate, status, created_at, updated_at`

// DriverAssignmentRepo implementación del puerto DriverAssignmentRepository sobre PostgreSQL.
type DriverAssignmentRepo struct {
	q Querier
}

// NewDriverAssignmentRepository construye el adaptador de persistencia para asignaciones. Pasar pool o tx (Querier).
func NewDriverAssignmentRepository(q Querier) *DriverAssignmentRepo {
	return &DriverAssignmentRepo{q: q}
}

// Create persiste una nueva asignación driver-cliente.
func (r *DriverAssignmentRepo) Create(assignment *entity.DriverAssignment) error {
	query := `
		INSERT INTO driver_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.UserID, assignment.ClientID, assignment.CommissionRate,
		assignment.Status, assignment.CreatedAt, assignment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *DriverAssignmentRepo) GetByID(id string) (*entity.DriverAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM driver_assignments WHERE id = $1`
	var a entity.DriverAssignment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.UserID, &a.ClientID, &a.CommissionRate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// Update actualiza una asignación existente.
func (r *DriverAssignmentRepo) Update(assignment *entity.DriverAssignment) error {
	query := `
		UPDATE driver_assignments SET user_id = $2, client_id = $3, commission_rate = $4,
			status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.UserID, assignment.ClientID, assignment.CommissionRate,
		assignment.Status, assignment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// List lista todas las asignaciones con paginación.
func (r *DriverAssignmentRepo) List(limit, offset int) ([]*entity.DriverAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM driver_assignments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListByUser lista todas las asignaciones de un usuario driver.
func (r *DriverAssignmentRepo) ListByUser(userID string) ([]*entity.DriverAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM driver_assignments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by user: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListActiveByUser lista solo las asignaciones activas de un usuario driver.
func (r *DriverAssignmentRepo) ListActiveByUser(userID string) ([]*entity.DriverAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + ` FROM driver_assignments
		WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListByClient lista las asignaciones de un cliente con paginación.
func (r *DriverAssignmentRepo) ListByClient(clientID string, limit, offset int) ([]*entity.DriverAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + ` FROM driver_assignments
		WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assignments by client: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// CountByUser cuenta todas las asignaciones de un usuario, sin importar su status.
func (r *DriverAssignmentRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM driver_assignments WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count assignments by user: %w", err)
	}
	return count, nil
}

// Delete elimina una asignación por ID.
func (r *DriverAssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM driver_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func collectAssignments(rows pgx.Rows) ([]*entity.DriverAssignment, error) {
	var list []*entity.DriverAssignment
	for rows.Next() {
		var a entity.DriverAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.ClientID, &a.CommissionRate,
			&a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
