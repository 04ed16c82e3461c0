package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gadi-app/gadi-api/internal/application/auth"
	"github.com/gadi-app/gadi-api/internal/application/bootstrap"
	"github.com/gadi-app/gadi-api/internal/application/dto"
)

// AuthHandler maneja login, bootstrap y la consulta del usuario actual.
type AuthHandler struct {
	authUC      *auth.AuthUseCase
	bootstrapUC *bootstrap.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(authUC *auth.AuthUseCase, bootstrapUC *bootstrap.UseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC, bootstrapUC: bootstrapUC}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Bootstrap godoc
// @Summary      Crear el primer administrador (solo con el store vacío)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body    body   dto.BootstrapRequest  true  "email, nombre, password, secret opcional"
// @Param        secret  query  string                false "secret compartido (alternativa al campo del body)"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/bootstrap [post]
func (h *AuthHandler) Bootstrap(c *fiber.Ctx) error {
	var in dto.BootstrapRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondBadRequest(c, err)
	}
	if in.Secret == "" {
		in.Secret = c.Query("secret")
	}
	admin, err := h.bootstrapUC.Bootstrap(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return unauthenticated(c)
	}
	return c.JSON(user)
}
