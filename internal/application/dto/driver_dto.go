package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HireDriverRequest contratación de un motorista por un cliente.
type HireDriverRequest struct {
	UserID         string          `json:"user_id" validate:"required"`
	ClientID       string          `json:"client_id" validate:"required"`
	CommissionRate decimal.Decimal `json:"commission_rate" validate:"required"`
}

// AssignmentResponse salida de una asignación driver-cliente.
type AssignmentResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	ClientID       string          `json:"client_id"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AssignmentListResponse lista paginada de asignaciones.
type AssignmentListResponse struct {
	Items []AssignmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// DriverAvailabilityResponse disponibilidad de un motorista antes de contratarlo.
// IsAvailable=false es solo informativo: el empleo multi-cliente está permitido,
// pero la UI debe mostrar los clientes actuales para decidir con contexto.
type DriverAvailabilityResponse struct {
	UserID            string   `json:"user_id"`
	IsAvailable       bool     `json:"is_available"`
	ActiveAssignments int      `json:"active_assignments"`
	CurrentClients    []string `json:"current_clients"`
}
