package repository

import "github.com/gadi-app/gadi-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id int64) (*entity.Task, error)
	List() ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id int64) error
	DeleteAll() error
}
