package entity

import "time"

// Estados comunes para entidades con activación/desactivación.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Client representa una empresa cliente, creada por su client_admin.
type Client struct {
	ID        string
	Name      string
	Address   string
	City      string
	State     string
	Phone     string
	Status    string // active, inactive
	CreatedBy string // ID del usuario client_admin que la creó
	CreatedAt time.Time
	UpdatedAt time.Time
}
