package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación del puerto ScheduleRepository sobre PostgreSQL.
type ScheduleRepo struct {
	db querier
}

// NewScheduleRepository construye el adaptador de persistencia para horarios.
func NewScheduleRepository(db querier) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Create persiste un horario y asigna su ID. Las FK hacia empleados y tareas
// convierten referencias inexistentes en ErrInvalidReference.
func (r *ScheduleRepo) Create(schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (empleado_id, fecha, turno, task_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		schedule.EmpleadoID, schedule.Fecha, schedule.Turno.String(), schedule.TaskID,
	).Scan(&schedule.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un horario por ID. (nil, nil) si no existe.
func (r *ScheduleRepo) GetByID(id int64) (*entity.Schedule, error) {
	query := `SELECT id, empleado_id, fecha, turno, task_id FROM schedules WHERE id = $1`
	var s entity.Schedule
	var turno string
	err := r.db.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.EmpleadoID, &s.Fecha, &turno, &s.TaskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}
	s.Turno = entity.Turno(turno)
	return &s, nil
}

// List lista horarios aplicando los filtros presentes.
func (r *ScheduleRepo) List(filter repository.ScheduleFilter) ([]*entity.Schedule, error) {
	var conds []string
	var args []any
	if filter.EmpleadoID != nil {
		args = append(args, *filter.EmpleadoID)
		conds = append(conds, fmt.Sprintf("empleado_id = $%d", len(args)))
	}
	if filter.FechaFrom != nil {
		args = append(args, *filter.FechaFrom)
		conds = append(conds, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if filter.FechaTo != nil {
		args = append(args, *filter.FechaTo)
		conds = append(conds, fmt.Sprintf("fecha <= $%d", len(args)))
	}
	query := `SELECT id, empleado_id, fecha, turno, task_id FROM schedules`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha, id"

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		var s entity.Schedule
		var turno string
		if err := rows.Scan(&s.ID, &s.EmpleadoID, &s.Fecha, &turno, &s.TaskID); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		s.Turno = entity.Turno(turno)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un horario.
func (r *ScheduleRepo) Update(schedule *entity.Schedule) error {
	query := `UPDATE schedules SET empleado_id = $2, fecha = $3, turno = $4, task_id = $5 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		schedule.ID, schedule.EmpleadoID, schedule.Fecha, schedule.Turno.String(), schedule.TaskID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// Delete elimina un horario por ID.
func (r *ScheduleRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla (seeding).
func (r *ScheduleRepo) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM schedules`)
	if err != nil {
		return fmt.Errorf("delete schedules: %w", err)
	}
	return nil
}
