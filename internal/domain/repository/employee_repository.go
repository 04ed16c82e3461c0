package repository

import "github.com/gadi-app/gadi-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id int64) error
	// DeleteAll lo usa el seeding para dejar la tabla limpia.
	DeleteAll() error
}
