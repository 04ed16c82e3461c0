package usecase_test

import (
	"context"
	"sync"

	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// Fakes en memoria con el mismo contrato que los repositorios reales:
// Get* devuelven (nil, nil) si no existe, Create asigna ID secuencial,
// los correos únicos y las referencias de horarios se validan como en la base.

type memEmployeeRepo struct {
	mu        sync.Mutex
	seq       int64
	employees map[int64]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[int64]*entity.Employee)}
}

func (r *memEmployeeRepo) Create(employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.Email == employee.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	employee.ID = r.seq
	cp := *employee
	r.employees[employee.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEmployeeRepo) List() ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEmployeeRepo) Update(employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	for _, e := range r.employees {
		if e.ID != employee.ID && e.Email == employee.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *employee
	r.employees[employee.ID] = &cp
	return nil
}

func (r *memEmployeeRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, id)
	return nil
}

func (r *memEmployeeRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = make(map[int64]*entity.Employee)
	return nil
}

type memTaskRepo struct {
	mu    sync.Mutex
	seq   int64
	tasks map[int64]*entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int64]*entity.Task)}
}

func (r *memTaskRepo) Create(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	task.ID = r.seq
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(id int64) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *task
	return &cp, nil
}

func (r *memTaskRepo) List() ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		cp := *task
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTaskRepo) Update(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memTaskRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = make(map[int64]*entity.Task)
	return nil
}

// memScheduleRepo valida las FK contra los repos de empleados y tareas,
// igual que las constraints de la base (23503 → ErrInvalidReference).
type memScheduleRepo struct {
	mu        sync.Mutex
	seq       int64
	schedules map[int64]*entity.Schedule
	employees *memEmployeeRepo
	tasks     *memTaskRepo
}

func newMemScheduleRepo(employees *memEmployeeRepo, tasks *memTaskRepo) *memScheduleRepo {
	return &memScheduleRepo{
		schedules: make(map[int64]*entity.Schedule),
		employees: employees,
		tasks:     tasks,
	}
}

func (r *memScheduleRepo) checkRefs(s *entity.Schedule) error {
	if emp, _ := r.employees.GetByID(s.EmpleadoID); emp == nil {
		return domain.ErrInvalidReference
	}
	if s.TaskID != nil {
		if task, _ := r.tasks.GetByID(*s.TaskID); task == nil {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

func (r *memScheduleRepo) Create(schedule *entity.Schedule) error {
	if err := r.checkRefs(schedule); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	schedule.ID = r.seq
	cp := *schedule
	r.schedules[schedule.ID] = &cp
	return nil
}

func (r *memScheduleRepo) GetByID(id int64) (*entity.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memScheduleRepo) List(filter repository.ScheduleFilter) ([]*entity.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		if filter.EmpleadoID != nil && s.EmpleadoID != *filter.EmpleadoID {
			continue
		}
		if filter.FechaFrom != nil && s.Fecha.Before(*filter.FechaFrom) {
			continue
		}
		if filter.FechaTo != nil && s.Fecha.After(*filter.FechaTo) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memScheduleRepo) Update(schedule *entity.Schedule) error {
	if err := r.checkRefs(schedule); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[schedule.ID]; !ok {
		return domain.ErrScheduleNotFound
	}
	cp := *schedule
	r.schedules[schedule.ID] = &cp
	return nil
}

func (r *memScheduleRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.schedules, id)
	return nil
}

func (r *memScheduleRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules = make(map[int64]*entity.Schedule)
	return nil
}

// memSeedTx pasa los fakes directo a fn; la atomicidad real la prueba
// la implementación de postgres, aquí solo interesa la lógica del seeding.
type memSeedTx struct {
	employees *memEmployeeRepo
	tasks     *memTaskRepo
	schedules *memScheduleRepo
}

func (tx *memSeedTx) Run(_ context.Context, fn func(
	employees repository.EmployeeRepository,
	tasks repository.TaskRepository,
	schedules repository.ScheduleRepository,
) error) error {
	return fn(tx.employees, tx.tasks, tx.schedules)
}
