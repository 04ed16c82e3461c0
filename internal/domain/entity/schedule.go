package entity

import "time"

// Turno franja horaria de un día de trabajo.
type Turno string

const (
	TurnoManana Turno = "mañana"
	TurnoTarde  Turno = "tarde"
	TurnoNoche  Turno = "noche"
)

// Valid indica si el turno es uno de los tres conocidos.
func (t Turno) Valid() bool {
	switch t {
	case TurnoManana, TurnoTarde, TurnoNoche:
		return true
	}
	return false
}

func (t Turno) String() string { return string(t) }

// Schedule asigna un empleado a un turno en una fecha, opcionalmente con tarea.
// No hay restricción de unicidad sobre (empleado, fecha, turno): el doble
// agendamiento está permitido por decisión de negocio.
type Schedule struct {
	ID         int64
	EmpleadoID int64
	Fecha      time.Time // solo la parte de fecha es significativa (columna DATE)
	Turno      Turno
	TaskID     *int64
}
