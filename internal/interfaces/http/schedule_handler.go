package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// ScheduleHandler CRUD de horarios. Lectura pública; mutaciones gateadas en el router.
type ScheduleHandler struct {
	uc *usecase.ScheduleUseCase
}

// NewScheduleHandler construye el handler de horarios.
func NewScheduleHandler(uc *usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear horario
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateScheduleRequest  true  "empleado_id, fecha, turno, task_id opcional"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	schedule, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// List godoc
// @Summary      Listar horarios
// @Tags         schedules
// @Produce      json
// @Param        empleado_id  query  int     false  "filtrar por empleado"
// @Param        fecha_from   query  string  false  "fecha mínima (2006-01-02)"
// @Param        fecha_to     query  string  false  "fecha máxima (2006-01-02)"
// @Success      200  {array}  dto.ScheduleResponse
// @Router       /schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	filter, err := scheduleFilterFromQuery(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	schedules, err := h.uc.List(filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(schedules)
}

func scheduleFilterFromQuery(c *fiber.Ctx) (repository.ScheduleFilter, error) {
	var filter repository.ScheduleFilter
	if v := c.QueryInt("empleado_id"); v > 0 {
		id := int64(v)
		filter.EmpleadoID = &id
	}
	if v := c.Query("fecha_from"); v != "" {
		from, err := time.Parse(dto.FechaLayout, v)
		if err != nil {
			return filter, err
		}
		filter.FechaFrom = &from
	}
	if v := c.Query("fecha_to"); v != "" {
		to, err := time.Parse(dto.FechaLayout, v)
		if err != nil {
			return filter, err
		}
		filter.FechaTo = &to
	}
	return filter, nil
}

// GetByID godoc
// @Summary      Obtener horario por ID
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	schedule, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(schedule)
}

// Update godoc
// @Summary      Actualizar horario (parcial)
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /schedules/{id} [patch]
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	var in dto.UpdateScheduleRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	schedule, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(schedule)
}

// Delete godoc
// @Summary      Eliminar horario
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondBadRequest(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Horario eliminado exitosamente"})
}
