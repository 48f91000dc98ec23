package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una Note (romaneo de entrega).
const (
	NoteStatusLoading   = "loading"
	NoteStatusOnRoute   = "on_route"
	NoteStatusCompleted = "completed"
	NoteStatusCanceled  = "canceled"
)

// Estados de sincronización de una Note capturada offline.
const (
	SyncStatusSynced  = "synced"
	SyncStatusPending = "pending"
)

// Note representa un romaneo de carga: camión + motorista + cliente con monto total.
type Note struct {
	ID            string
	TruckID       string
	DriverID      string // registro Driver legado
	ClientID      string
	TotalAmount   decimal.Decimal
	Status        string // loading, on_route, completed, canceled
	DepartureDate *time.Time
	ReturnDate    *time.Time
	SyncStatus    string // synced, pending
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
