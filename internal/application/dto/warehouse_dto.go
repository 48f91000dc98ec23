package dto

import "time"

// CreateWarehouseRequest entrada para crear un galpón.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	ManagerName string `json:"manager_name"`
	OwnerID     string `json:"owner_id" validate:"required"`
}

// UpdateWarehouseRequest entrada para actualizar un galpón.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ManagerName *string `json:"manager_name"`
}

// SetWarehouseStatusRequest cambio de estado con cascada a productos.
type SetWarehouseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// WarehouseResponse salida de un galpón.
type WarehouseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	ManagerName string    `json:"manager_name"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de galpones.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
