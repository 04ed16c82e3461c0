package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/usecase"
)

// AdminHandler operaciones administrativas (seeding de datos de demo).
type AdminHandler struct {
	seedUC *usecase.SeedUseCase
}

// NewAdminHandler construye el handler administrativo.
func NewAdminHandler(seedUC *usecase.SeedUseCase) *AdminHandler {
	return &AdminHandler{seedUC: seedUC}
}

// Seed godoc
// @Summary      Poblar la base con datos de demostración (solo Administrador)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/seed [post]
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	result, err := h.seedUC.Seed(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"created": result,
	})
}
