package usecase

import (
	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// TaskUseCase casos de uso CRUD para tareas.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create crea una tarea (activa por defecto).
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	task := &entity.Task{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activo:      activo,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(id int64) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return toTaskResponse(task), nil
}

// List lista todas las tareas.
func (uc *TaskUseCase) List() ([]*dto.TaskResponse, error) {
	tasks, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Update actualiza parcialmente una tarea.
func (uc *TaskUseCase) Update(id int64, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if in.Nombre != nil {
		task.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		task.Descripcion = in.Descripcion
	}
	if in.Activo != nil {
		task.Activo = *in.Activo
	}
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea.
func (uc *TaskUseCase) Delete(id int64) error {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	return uc.repo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Activo:      t.Activo,
	}
}
