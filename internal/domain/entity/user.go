package entity

import "time"

// Roles válidos para User.
const (
	RoleAppAdmin       = "app_admin"
	RoleClientAdmin    = "client_admin"
	RoleDriver         = "driver"
	RoleWarehouseAdmin = "warehouse_admin"
)

// Estados de ciclo de vida de User.
const (
	UserStatusPending  = "pending"
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema con su rol y afiliación opcional a un cliente.
// Un client_admin activado está asociado a exactamente un Client; un driver puede
// tener cero o más DriverAssignments concurrentes.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Role               string // app_admin, client_admin, driver, warehouse_admin
	Status             string // pending, active, inactive
	ClientID           string // vacío salvo para drivers y client_admins afiliados
	NeedsPasswordSetup bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsValidRole indica si el rol es uno de los cuatro conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAppAdmin, RoleClientAdmin, RoleDriver, RoleWarehouseAdmin:
		return true
	}
	return false
}
