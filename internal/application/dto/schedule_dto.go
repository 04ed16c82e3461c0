package dto

// CreateScheduleRequest entrada para crear un horario.
type CreateScheduleRequest struct {
	EmpleadoID int64   `json:"empleado_id" validate:"required,gt=0"`
	Fecha      string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Turno      string  `json:"turno" validate:"required,oneof=mañana tarde noche"`
	TaskID     *int64  `json:"task_id" validate:"omitempty,gt=0"`
}

// UpdateScheduleRequest actualización parcial de un horario.
type UpdateScheduleRequest struct {
	EmpleadoID *int64  `json:"empleado_id" validate:"omitempty,gt=0"`
	Fecha      *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Turno      *string `json:"turno" validate:"omitempty,oneof=mañana tarde noche"`
	TaskID     *int64  `json:"task_id" validate:"omitempty,gt=0"`
}

// ScheduleResponse salida de un horario (fecha en formato 2006-01-02).
type ScheduleResponse struct {
	ID         int64  `json:"id"`
	EmpleadoID int64  `json:"empleado_id"`
	Fecha      string `json:"fecha"`
	Turno      string `json:"turno"`
	TaskID     *int64 `json:"task_id"`
}
