package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenado en exactamente un galpón (WarehouseID).
// Su status es independiente del galpón salvo por la cascada de desactivación.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	CostPrice   decimal.Decimal
	Stock       int
	Weight      decimal.Decimal // kg
	ImageURL    string
	WarehouseID string
	Status      string // active, inactive
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
