package repository

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// NoteRepository define el puerto de persistencia para Note (DIP).
type NoteRepository interface {
	Create(note *entity.Note) error
	GetByID(id string) (*entity.Note, error)
	Update(note *entity.Note) error
	List(limit, offset int) ([]*entity.Note, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Note, error)
	// ListByDriverUser lista romaneos cuyo registro Driver pertenece al usuario dado.
	ListByDriverUser(userID string, limit, offset int) ([]*entity.Note, error)
	Delete(id string) error
}
