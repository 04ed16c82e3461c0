package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/auth"
	"github.com/gadi-app/gadi-api/internal/application/bootstrap"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BootstrapUC *bootstrap.UseCase
	UserUC      *usecase.UserUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	TaskUC      *usecase.TaskUseCase
	ScheduleUC  *usecase.ScheduleUseCase
	SeedUC      *usecase.SeedUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
	LocalMode   bool
}

// Router registra las rutas de la API.
//
// Política de acceso: los listados y consultas de empleados, tareas y horarios
// son públicos; toda mutación exige Encargado o Administrador, salvo borrar
// tareas y la administración de usuarios que exigen Administrador.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	encargadoOAdmin := RequireRole(entity.RoleEncargado, entity.RoleAdministrador)
	soloAdmin := RequireRole(entity.RoleAdministrador)

	// Auth: login y bootstrap públicos, me autenticado
	authHandler := NewAuthHandler(deps.AuthUC, deps.BootstrapUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/bootstrap", authHandler.Bootstrap)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Usuarios (solo Administrador)
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users := app.Group("/api/v1/users", authRequired, soloAdmin)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Empleados
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := app.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", authRequired, encargadoOAdmin, employeeHandler.Create)
	employees.Patch("/:id", authRequired, encargadoOAdmin, employeeHandler.Update)
	employees.Delete("/:id", authRequired, encargadoOAdmin, employeeHandler.Delete)

	// Tareas (borrado restringido a Administrador)
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := app.Group("/tasks")
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Post("/", authRequired, encargadoOAdmin, taskHandler.Create)
	tasks.Patch("/:id", authRequired, encargadoOAdmin, taskHandler.Update)
	tasks.Delete("/:id", authRequired, soloAdmin, taskHandler.Delete)

	// Horarios
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedules := app.Group("/schedules")
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Post("/", authRequired, encargadoOAdmin, scheduleHandler.Create)
	schedules.Patch("/:id", authRequired, encargadoOAdmin, scheduleHandler.Update)
	schedules.Delete("/:id", authRequired, encargadoOAdmin, scheduleHandler.Delete)

	// Admin: seeding de datos de demo
	adminHandler := NewAdminHandler(deps.SeedUC)
	app.Post("/admin/seed", authRequired, soloAdmin, adminHandler.Seed)

	// Herramientas de desarrollo (403 fuera de modo local)
	devHandler := NewDevHandler(deps.UserUC, deps.LocalMode)
	dev := app.Group("/dev")
	dev.Get("/users", devHandler.ListUsers)
	dev.Post("/reset-password", devHandler.ResetPassword)
}
