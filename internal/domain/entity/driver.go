package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Driver es el registro legado de motorista por cliente, anterior a DriverAssignment.
// Se conserva porque los camiones y las notas aún lo referencian.
type Driver struct {
	ID             string
	UserID         string
	ClientID       string
	CPF            string
	CNH            string
	Phone          string
	Address        string
	City           string
	State          string
	CommissionRate decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
