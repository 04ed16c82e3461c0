package usecase

import (
	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. Devuelve ErrEmailAlreadyExists si el correo está tomado;
// el insert fallido no deja mutación parcial (una sola sentencia).
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		Nombre: in.Nombre,
		Email:  in.Email,
		Role:   role,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza parcialmente un empleado (solo campos presentes).
func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.Nombre != nil {
		employee.Nombre = *in.Nombre
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		employee.Role = role
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado. No hay cascada: usuarios que lo referencien
// quedan con empleado_id colgando, y sus horarios se rechazan a nivel de FK.
func (uc *EmployeeUseCase) Delete(id int64) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:     e.ID,
		Nombre: e.Nombre,
		Email:  e.Email,
		Role:   e.Role.String(),
	}
}
