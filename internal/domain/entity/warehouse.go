package entity

import "time"

// Warehouse representa un galpón propiedad de exactamente un warehouse_admin (OwnerID).
// Un galpón inactivo fuerza todos sus productos a inactivo (cascada en el caso de uso).
type Warehouse struct {
	ID          string
	Name        string
	Description string
	Address     string
	City        string
	State       string
	Phone       string
	Email       string
	ManagerName string
	OwnerID     string // usuario warehouse_admin dueño del galpón
	OwnerName   string // nombre del dueño, desnormalizado para listados
	Status      string // active, inactive
	CreatedBy   string // quién lo creó (app_admin)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
