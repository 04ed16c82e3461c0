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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create persiste un empleado y asigna su ID.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (nombre, email, role)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		employee.Nombre, employee.Email, employee.Role.String(),
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `SELECT id, nombre, email, role FROM employees WHERE id = $1`
	var e entity.Employee
	var role string
	err := r.db.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Nombre, &e.Email, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	e.Role = entity.Role(role)
	return &e, nil
}

// List lista todos los empleados.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, nombre, email, role FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var role string
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Email, &role); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.Role = entity.Role(role)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `UPDATE employees SET nombre = $2, email = $3, role = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		employee.ID, employee.Nombre, employee.Email, employee.Role.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // horarios existentes lo referencian
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla (seeding).
func (r *EmployeeRepo) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees`)
	if err != nil {
		return fmt.Errorf("delete employees: %w", err)
	}
	return nil
}
