package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
)

// TaskHandler CRUD de tareas. Lectura pública; crear/actualizar exige
// Encargado o Administrador y borrar solo Administrador (ver router).
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  dto.TaskResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(tasks)
}

// GetByID godoc
// @Summary      Obtener tarea por ID
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	task, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(task)
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTaskRequest  true  "nombre, descripcion opcional, activo opcional"
// @Success      201   {object}  dto.TaskResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	task, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update godoc
// @Summary      Actualizar tarea (parcial)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	var in dto.UpdateTaskRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	task, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(task)
}

// Delete godoc
// @Summary      Eliminar tarea (solo Administrador)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Tarea eliminada exitosamente"})
}
