package repository

import (
	"time"

	"github.com/gadi-app/gadi-api/internal/domain/entity"
)

// ScheduleFilter filtros opcionales del listado de horarios.
type ScheduleFilter struct {
	EmpleadoID *int64
	FechaFrom  *time.Time
	FechaTo    *time.Time
}

// ScheduleRepository define el puerto de persistencia para Schedule.
type ScheduleRepository interface {
	Create(schedule *entity.Schedule) error
	GetByID(id int64) (*entity.Schedule, error)
	List(filter ScheduleFilter) ([]*entity.Schedule, error)
	Update(schedule *entity.Schedule) error
	Delete(id int64) error
	DeleteAll() error
}
