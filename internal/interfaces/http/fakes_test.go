package http_test

import (
	"context"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gadi-app/gadi-api/internal/application/auth"
	"github.com/gadi-app/gadi-api/internal/application/bootstrap"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
	apphttp "github.com/gadi-app/gadi-api/internal/interfaces/http"
	"github.com/gadi-app/gadi-api/pkg/password"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gadi-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
//
// Mismo contrato que los repositorios de postgres: Get* devuelven (nil, nil)
// cuando no existe, Create asigna IDs secuenciales, los correos son únicos y
// los horarios validan referencias como lo harían las FK.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*entity.User)}
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	user.ID = r.seq
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

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

// memTxRunner implementa bootstrap.TxRunner y usecase.SeedTxRunner sobre los
// fakes, serializando con un mutex como hace el advisory lock real.
type memTxRunner struct {
	mu        sync.Mutex
	users     *memUserRepo
	employees *memEmployeeRepo
	tasks     *memTaskRepo
	schedules *memScheduleRepo
}

func (tx *memTxRunner) RunSerialized(_ context.Context, fn func(users repository.UserRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return fn(tx.users)
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	employees repository.EmployeeRepository,
	tasks repository.TaskRepository,
	schedules repository.ScheduleRepository,
) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return fn(tx.employees, tx.tasks, tx.schedules)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test
// ──────────────────────────────────────────────────────────────────────────────

// testEnv aplicación Fiber completa (rutas reales) sobre repositorios fake.
type testEnv struct {
	app       *fiber.App
	users     *memUserRepo
	employees *memEmployeeRepo
	tasks     *memTaskRepo
	schedules *memScheduleRepo
}

// testOpts variaciones de despliegue que afectan al routing.
type testOpts struct {
	localMode       bool
	bootstrapSecret string
}

func buildTestEnv(t *testing.T, opts testOpts) *testEnv {
	t.Helper()
	users := newMemUserRepo()
	employees := newMemEmployeeRepo()
	tasks := newMemTaskRepo()
	schedules := newMemScheduleRepo(employees, tasks)
	tx := &memTxRunner{users: users, employees: employees, tasks: tasks, schedules: schedules}

	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}
	authUC := auth.NewAuthUseCase(users, jwtCfg)
	bootstrapUC := bootstrap.NewUseCase(tx, bootstrap.Config{
		LocalMode: opts.localMode,
		Secret:    opts.bootstrapSecret,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		BootstrapUC: bootstrapUC,
		UserUC:      usecase.NewUserUseCase(users),
		EmployeeUC:  usecase.NewEmployeeUseCase(employees),
		TaskUC:      usecase.NewTaskUseCase(tasks),
		ScheduleUC:  usecase.NewScheduleUseCase(schedules),
		SeedUC:      usecase.NewSeedUseCase(tx),
		UserRepo:    users,
		JWTSecret:   testJWTSecret,
		LocalMode:   opts.localMode,
	})
	return &testEnv{app: app, users: users, employees: employees, tasks: tasks, schedules: schedules}
}

// seedUser inserta un usuario directo en el fake y devuelve la entidad con ID.
func (env *testEnv) seedUser(t *testing.T, email, plain string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	u := &entity.User{Email: email, Nombre: "Usuario de Prueba", Role: role, PasswordHash: hash}
	require.NoError(t, env.users.Create(u))
	return u
}
