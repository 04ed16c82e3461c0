package usecase

import (
	"context"
	"time"

	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// SeedTxRunner ejecuta fn con los repos de agenda atados a una transacción:
// el seeding limpia y repuebla en un solo commit, sin estados intermedios visibles.
type SeedTxRunner interface {
	Run(ctx context.Context, fn func(
		employees repository.EmployeeRepository,
		tasks repository.TaskRepository,
		schedules repository.ScheduleRepository,
	) error) error
}

// SeedResult conteo de registros creados por el seeding.
type SeedResult struct {
	Employees int `json:"employees"`
	Tasks     int `json:"tasks"`
	Schedules int `json:"schedules"`
}

// SeedUseCase puebla la base con datos de demostración realistas.
// Es idempotente: cada corrida limpia horarios, empleados y tareas antes de insertar.
type SeedUseCase struct {
	tx SeedTxRunner
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx SeedTxRunner) *SeedUseCase {
	return &SeedUseCase{tx: tx}
}

var seedEmployees = []entity.Employee{
	{Nombre: "Ana García", Email: "ana.garcia@example.com", Role: entity.RoleEncargado},
	{Nombre: "Luis Martínez", Email: "luis.martinez@example.com", Role: entity.RoleTrabajador},
	{Nombre: "Carmen López", Email: "carmen.lopez@example.com", Role: entity.RoleTrabajador},
	{Nombre: "Diego Torres", Email: "diego.torres@example.com", Role: entity.RoleTrabajador},
	{Nombre: "Marta Ruiz", Email: "marta.ruiz@example.com", Role: entity.RoleAdministrador},
}

var seedTaskNames = []string{
	"Riego viñedo",
	"Poda",
	"Control de plagas",
	"Cosecha",
	"Mantenimiento tractor",
}

// Seed limpia y repuebla empleados, tareas y dos semanas de horarios con
// turnos variados (días impares dos turnos, días pares uno).
func (uc *SeedUseCase) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := uc.tx.Run(ctx, func(
		employees repository.EmployeeRepository,
		tasks repository.TaskRepository,
		schedules repository.ScheduleRepository,
	) error {
		// Horarios primero por las FK hacia empleados y tareas.
		if err := schedules.DeleteAll(); err != nil {
			return err
		}
		if err := employees.DeleteAll(); err != nil {
			return err
		}
		if err := tasks.DeleteAll(); err != nil {
			return err
		}

		created := make([]*entity.Employee, 0, len(seedEmployees))
		for _, e := range seedEmployees {
			emp := e
			if err := employees.Create(&emp); err != nil {
				return err
			}
			created = append(created, &emp)
		}
		result.Employees = len(created)

		for _, nombre := range seedTaskNames {
			if err := tasks.Create(&entity.Task{Nombre: nombre, Activo: true}); err != nil {
				return err
			}
		}
		result.Tasks = len(seedTaskNames)

		turnos := []entity.Turno{entity.TurnoManana, entity.TurnoTarde, entity.TurnoNoche}
		today := time.Now().Truncate(24 * time.Hour)
		for day := 1; day <= 14; day++ {
			perDay := 1
			if day%2 == 1 {
				perDay = 2
			}
			for i := 0; i < perDay; i++ {
				emp := created[(day+i)%len(created)]
				if err := schedules.Create(&entity.Schedule{
					EmpleadoID: emp.ID,
					Fecha:      today.AddDate(0, 0, day),
					Turno:      turnos[(day+i)%len(turnos)],
				}); err != nil {
					return err
				}
				result.Schedules++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
