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

var _ repository.NoteRepository = (*NoteRepo)(nil)

const noteColumns = `id, truck_id, driver_id, client_id, total_amount, status, departure_date, return_date, sync_status, created_at, updated_at`

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL (usable con pool o tx).
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador de persistencia para romaneos. Pasar pool o tx (Querier).
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste un nuevo romaneo.
func (r *NoteRepo) Create(note *entity.Note) error {
	query := `
		INSERT INTO notes (` + noteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.TruckID, note.DriverID, note.ClientID, note.TotalAmount,
		note.Status, note.DepartureDate, note.ReturnDate, note.SyncStatus,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetByID obtiene un romaneo por ID.
func (r *NoteRepo) GetByID(id string) (*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	var n entity.Note
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.TruckID, &n.DriverID, &n.ClientID, &n.TotalAmount,
		&n.Status, &n.DepartureDate, &n.ReturnDate, &n.SyncStatus,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

// Update actualiza un romaneo existente.
func (r *NoteRepo) Update(note *entity.Note) error {
	query := `
		UPDATE notes SET truck_id = $2, driver_id = $3, client_id = $4, total_amount = $5,
			status = $6, departure_date = $7, return_date = $8, sync_status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.TruckID, note.DriverID, note.ClientID, note.TotalAmount,
		note.Status, note.DepartureDate, note.ReturnDate, note.SyncStatus, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// List lista romaneos con paginación.
func (r *NoteRepo) List(limit, offset int) ([]*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// ListByClient lista romaneos de un cliente con paginación.
func (r *NoteRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes by client: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// ListByDriverUser lista romaneos de los registros Driver del usuario dado, con paginación.
// Un motorista puede tener varios registros Driver (uno por cliente que lo contrata).
func (r *NoteRepo) ListByDriverUser(userID string, limit, offset int) ([]*entity.Note, error) {
	query := `
		SELECT ` + noteColumns + ` FROM notes
		WHERE driver_id IN (SELECT id FROM drivers WHERE user_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes by driver user: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// Delete elimina un romaneo por ID.
func (r *NoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func collectNotes(rows pgx.Rows) ([]*entity.Note, error) {
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.TruckID, &n.DriverID, &n.ClientID, &n.TotalAmount,
			&n.Status, &n.DepartureDate, &n.ReturnDate, &n.SyncStatus,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
