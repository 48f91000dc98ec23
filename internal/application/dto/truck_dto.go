package dto

import "time"

// CreateTruckRequest entrada para registrar un camión de un cliente.
type CreateTruckRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Plate    string `json:"plate" validate:"required"`
	Model    string `json:"model"`
}

// UpdateTruckRequest entrada para actualizar un camión.
type UpdateTruckRequest struct {
	Plate  *string `json:"plate"`
	Model  *string `json:"model"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// AssignTruckDriverRequest asigna (o con DriverID vacío, libera) el motorista actual.
type AssignTruckDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// TruckResponse salida de un camión.
type TruckResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Plate           string    `json:"plate"`
	Model           string    `json:"model,omitempty"`
	CurrentDriverID string    `json:"current_driver_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TruckListResponse lista paginada de camiones.
type TruckListResponse struct {
	Items []TruckResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
