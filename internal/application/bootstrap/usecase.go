package bootstrap

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/gadi-app/gadi-api/internal/application/auth"
	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
	"github.com/gadi-app/gadi-api/pkg/password"
)

// TxRunner ejecuta fn con un repositorio de usuarios atado a una transacción
// serializada: dos bootstraps concurrentes no pueden ver ambos el store vacío.
// Lo implementa postgres.TxRunner; el uso de interfaz evita acoplar el use case a pgx.
type TxRunner interface {
	RunSerialized(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// Config política del bootstrap según el entorno.
type Config struct {
	LocalMode bool   // en local se omite la verificación del secret
	Secret    string // secret compartido; obligatorio fuera de local
}

// UseCase alta del primer administrador. Único camino que crea un usuario
// sin pasar por el registro autenticado.
type UseCase struct {
	tx  TxRunner
	cfg Config
}

// NewUseCase construye el caso de uso de bootstrap.
func NewUseCase(tx TxRunner, cfg Config) *UseCase {
	return &UseCase{tx: tx, cfg: cfg}
}

// Bootstrap crea el primer usuario con rol Administrador.
//
// Precondiciones, en orden:
//   - Fuera de modo local el secret provisto debe coincidir con el configurado;
//     un despliegue no-local sin BOOTSTRAP_SECRET rechaza siempre (ErrForbidden).
//   - El store de usuarios debe estar vacío (ErrAlreadyInitialized si no).
//
// La verificación de vacuidad y el insert corren en la misma transacción
// serializada, así la transición Vacío → Inicializado ocurre exactamente una vez.
func (uc *UseCase) Bootstrap(ctx context.Context, in dto.BootstrapRequest) (*dto.UserResponse, error) {
	if !uc.cfg.LocalMode {
		if uc.cfg.Secret == "" {
			return nil, domain.ErrForbidden
		}
		if subtle.ConstantTimeCompare([]byte(in.Secret), []byte(uc.cfg.Secret)) != 1 {
			return nil, domain.ErrForbidden
		}
	}

	// bcrypt es costoso: hashear antes de tomar el lock de la transacción.
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var out *dto.UserResponse
	err = uc.tx.RunSerialized(ctx, func(users repository.UserRepository) error {
		n, err := users.Count()
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrAlreadyInitialized
		}
		now := time.Now()
		admin := &entity.User{
			Email:        in.Email,
			Nombre:       in.Nombre,
			Role:         entity.RoleAdministrador,
			PasswordHash: hash,
			EmpleadoID:   nil, // el primer admin nunca nace ligado a un empleado
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(admin); err != nil {
			return err
		}
		out = auth.ToUserResponse(admin)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
