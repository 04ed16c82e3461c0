package usecase

import (
	"time"

	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// ScheduleUseCase casos de uso CRUD para horarios.
type ScheduleUseCase struct {
	repo repository.ScheduleRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// Create crea un horario. Un empleado_id o task_id inexistente devuelve
// ErrInvalidReference. El doble agendamiento (mismo empleado, fecha y turno)
// está permitido a propósito.
func (uc *ScheduleUseCase) Create(in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	turno := entity.Turno(in.Turno)
	if !turno.Valid() {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(dto.FechaLayout, in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	schedule := &entity.Schedule{
		EmpleadoID: in.EmpleadoID,
		Fecha:      fecha,
		Turno:      turno,
		TaskID:     in.TaskID,
	}
	if err := uc.repo.Create(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// GetByID obtiene un horario por ID.
func (uc *ScheduleUseCase) GetByID(id int64) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrScheduleNotFound
	}
	return toScheduleResponse(schedule), nil
}

// List lista horarios con filtros opcionales por empleado y rango de fechas.
func (uc *ScheduleUseCase) List(filter repository.ScheduleFilter) ([]*dto.ScheduleResponse, error) {
	schedules, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toScheduleResponse(s))
	}
	return out, nil
}

// Update actualiza parcialmente un horario.
func (uc *ScheduleUseCase) Update(id int64, in dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrScheduleNotFound
	}
	if in.EmpleadoID != nil {
		schedule.EmpleadoID = *in.EmpleadoID
	}
	if in.Fecha != nil {
		fecha, err := time.Parse(dto.FechaLayout, *in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		schedule.Fecha = fecha
	}
	if in.Turno != nil {
		turno := entity.Turno(*in.Turno)
		if !turno.Valid() {
			return nil, domain.ErrInvalidInput
		}
		schedule.Turno = turno
	}
	if in.TaskID != nil {
		schedule.TaskID = in.TaskID
	}
	if err := uc.repo.Update(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// Delete elimina un horario.
func (uc *ScheduleUseCase) Delete(id int64) error {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrScheduleNotFound
	}
	return uc.repo.Delete(id)
}

func toScheduleResponse(s *entity.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:         s.ID,
		EmpleadoID: s.EmpleadoID,
		Fecha:      s.Fecha.Format(dto.FechaLayout),
		Turno:      s.Turno.String(),
		TaskID:     s.TaskID,
	}
}
