package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Nombre     string `json:"nombre" validate:"required,min=1,max=200"`
	Password   string `json:"password" validate:"required,min=4"`
	Role       string `json:"role" validate:"required,oneof=Trabajador Encargado Administrador"`
	EmpleadoID *int64 `json:"empleado_id" validate:"omitempty,gt=0"`
}

// UpdateUserRequest actualización parcial de un usuario (solo campos presentes).
type UpdateUserRequest struct {
	Nombre     *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Role       *string `json:"role" validate:"omitempty,oneof=Trabajador Encargado Administrador"`
	EmpleadoID *int64  `json:"empleado_id" validate:"omitempty,gt=0"`
	Password   *string `json:"password" validate:"omitempty,min=4"`
}

// UserResponse proyección pública de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Nombre     string    `json:"nombre"`
	Role       string    `json:"role"`
	EmpleadoID *int64    `json:"empleado_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
