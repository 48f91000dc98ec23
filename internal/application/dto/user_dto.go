package dto

import "time"

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	ClientID           string    `json:"client_id,omitempty"`
	NeedsPasswordSetup bool      `json:"needs_password_setup,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateUserRequest entrada para actualizar un usuario (merge parcial).
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending active inactive"`
	ClientID *string `json:"client_id"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// DependencyBlocker describe por qué una eliminación fue rechazada: la
// colección con dependientes, cuántos se encontraron y un mensaje legible.
// Count es -1 cuando la verificación misma falló (fail-closed).
type DependencyBlocker struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
	Message    string `json:"message"`
}

// CheckDependenciesResponse resultado del chequeo previo a eliminar un usuario.
// Blockers vacío significa que la eliminación puede proceder.
type CheckDependenciesResponse struct {
	UserID   string              `json:"user_id"`
	Blockers []DependencyBlocker `json:"blockers"`
}
