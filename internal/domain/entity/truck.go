package entity

import "time"

// Truck pertenece a un Client y puede tener a lo sumo un motorista asignado a la vez.
type Truck struct {
	ID              string
	ClientID        string
	Plate           string
	Model           string
	CurrentDriverID string // ID del registro Driver legado; vacío si no hay asignado
	Status          string // active, inactive
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
