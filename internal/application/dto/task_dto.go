package dto

// CreateTaskRequest entrada para crear una tarea. Activo por defecto true
// (el handler aplica el default antes de validar).
type CreateTaskRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=2000"`
	Activo      *bool   `json:"activo"`
}

// UpdateTaskRequest actualización parcial de una tarea.
type UpdateTaskRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=2000"`
	Activo      *bool   `json:"activo"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activo      bool    `json:"activo"`
}
