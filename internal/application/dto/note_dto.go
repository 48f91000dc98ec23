package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateNoteRequest entrada para crear un romaneo.
type CreateNoteRequest struct {
	TruckID     string          `json:"truck_id" validate:"required"`
	DriverID    string          `json:"driver_id" validate:"required"`
	ClientID    string          `json:"client_id" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// UpdateNoteStatusRequest transición de estado del romaneo.
type UpdateNoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=loading on_route completed canceled"`
}

// NoteResponse salida de un romaneo.
type NoteResponse struct {
	ID            string          `json:"id"`
	TruckID       string          `json:"truck_id"`
	DriverID      string          `json:"driver_id"`
	ClientID      string          `json:"client_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	DepartureDate *time.Time      `json:"departure_date,omitempty"`
	ReturnDate    *time.Time      `json:"return_date,omitempty"`
	SyncStatus    string          `json:"sync_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NoteListResponse lista paginada de romaneos.
type NoteListResponse struct {
	Items []NoteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
