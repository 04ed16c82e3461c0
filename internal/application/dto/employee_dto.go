package dto

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=Trabajador Encargado Administrador"`
}

// UpdateEmployeeRequest actualización parcial de un empleado.
type UpdateEmployeeRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=Trabajador Encargado Administrador"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
