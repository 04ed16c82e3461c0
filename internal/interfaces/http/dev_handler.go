package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
)

// DevHandler herramientas de desarrollo. Solo responden en modo local;
// fuera de local devuelven 403 sin tocar el store.
type DevHandler struct {
	userUC    *usecase.UserUseCase
	localMode bool
}

// NewDevHandler construye el handler de herramientas de desarrollo.
func NewDevHandler(userUC *usecase.UserUseCase, localMode bool) *DevHandler {
	return &DevHandler{userUC: userUC, localMode: localMode}
}

func forbiddenOutsideLocal(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code:    "FORBIDDEN",
		Message: "endpoint no disponible en producción",
	})
}

// ListUsers lista los usuarios sin hashes (solo desarrollo).
func (h *DevHandler) ListUsers(c *fiber.Ctx) error {
	if !h.localMode {
		return forbiddenOutsideLocal(c)
	}
	users, err := h.userUC.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(users)
}

// ResetPassword restablece el password de un usuario por email (solo desarrollo).
func (h *DevHandler) ResetPassword(c *fiber.Ctx) error {
	if !h.localMode {
		return forbiddenOutsideLocal(c)
	}
	var in dto.ResetPasswordRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	if err := h.userUC.ResetPassword(in); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
