package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gadi-app/gadi-api/internal/application/auth"
	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
	"github.com/gadi-app/gadi-api/pkg/jwt"
)

// LocalUser clave de c.Locals para la proyección pública del usuario autenticado.
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT y relee el usuario de la base en
// cada petición (sin caché ni estado de proceso: el token solo prueba el
// subject, la existencia y el rol salen siempre del store).
//
// Todas las fallas devuelven el mismo 401: el cliente no puede distinguir
// token ausente, malformado, expirado, falsificado o con subject inexistente.
// La distinción queda solo en el log de debug.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c)
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rechazado")
			return unauthenticated(c)
		}
		user, err := users.GetByID(userID)
		if err != nil {
			log.Error().Err(err).Msg("leer usuario del token")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if user == nil {
			// token válido pero el usuario fue borrado: mismo 401 que un token falso
			log.Debug().Int64("user_id", userID).Msg("subject del token no existe")
			return unauthenticated(c)
		}
		c.Locals(LocalUser, auth.ToUserResponse(user))
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario del contexto (después del middleware de auth).
func GetCurrentUser(c *fiber.Ctx) *dto.UserResponse {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.UserResponse)
	return u
}

// RequireRole autoriza por rol contra el usuario ya cargado. Es una comparación
// pura: no toca el store ni muta nada. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return unauthenticated(c)
		}
		role := entity.Role(user.Role)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso denegado"})
	}
}
