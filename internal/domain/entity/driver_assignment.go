package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DriverAssignment es la relación muchos-a-muchos entre un usuario driver y un Client,
// con comisión propia por relación. Un driver puede tener varias asignaciones activas
// a la vez (empleo multi-cliente permitido); la unicidad (UserID, ClientID) no se
// exige al escribir.
type DriverAssignment struct {
	ID             string
	UserID         string // usuario con rol driver
	ClientID       string
	CommissionRate decimal.Decimal // porcentaje por relación, ej. 0.05
	Status         string          // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
