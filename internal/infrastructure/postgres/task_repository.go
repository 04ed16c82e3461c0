package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	db querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(db querier) *TaskRepo {
	return &TaskRepo{db: db}
}

// Create persiste una tarea y asigna su ID.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (nombre, descripcion, activo)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		task.Nombre, task.Descripcion, task.Activo,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. (nil, nil) si no existe.
func (r *TaskRepo) GetByID(id int64) (*entity.Task, error) {
	query := `SELECT id, nombre, descripcion, activo FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.db.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// List lista todas las tareas.
func (r *TaskRepo) List() ([]*entity.Task, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, nombre, descripcion, activo FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Activo); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `UPDATE tasks SET nombre = $2, descripcion = $3, activo = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		task.ID, task.Nombre, task.Descripcion, task.Activo,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // horarios existentes la referencian
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla (seeding).
func (r *TaskRepo) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM tasks`)
	if err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	return nil
}
