package bootstrap_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadi-app/gadi-api/internal/application/bootstrap"
	"github.com/gadi-app/gadi-api/internal/application/dto"
	"github.com/gadi-app/gadi-api/internal/domain"
	"github.com/gadi-app/gadi-api/internal/domain/entity"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
	"github.com/gadi-app/gadi-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memUserRepo implementa repository.UserRepository sobre un map, con el mismo
// contrato que el repositorio real: Get* devuelven (nil, nil) si no existe y
// Create rechaza correos duplicados.
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

// memTxRunner serializa las ejecuciones con un mutex, igual que el advisory
// lock de la implementación real serializa los bootstraps concurrentes.
type memTxRunner struct {
	mu    sync.Mutex
	users repository.UserRepository
}

func (tx *memTxRunner) RunSerialized(_ context.Context, fn func(users repository.UserRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return fn(tx.users)
}

func validRequest() dto.BootstrapRequest {
	return dto.BootstrapRequest{
		Email:    "admin@gadi.example",
		Nombre:   "Admin Inicial",
		Password: "cambiar-ya",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrap_CreaPrimerAdmin(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: true})

	out, err := uc.Bootstrap(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "admin@gadi.example", out.Email)
	assert.Equal(t, entity.RoleAdministrador.String(), out.Role,
		"el bootstrap siempre crea Administrador, sin importar lo que pida el cliente")
	assert.Nil(t, out.EmpleadoID, "el primer admin no nace ligado a un empleado")

	stored, err := repo.GetByEmail("admin@gadi.example")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, password.Verify("cambiar-ya", stored.PasswordHash),
		"el password debe persistirse hasheado y verificable")
	assert.NotEqual(t, "cambiar-ya", stored.PasswordHash)
}

func TestBootstrap_SegundaVez_AlreadyInitialized(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: true})

	_, err := uc.Bootstrap(context.Background(), validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.Email = "otro@gadi.example"
	_, err = uc.Bootstrap(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized,
		"con el store no vacío el bootstrap debe rechazarse siempre")

	n, _ := repo.Count()
	assert.Equal(t, 1, n, "el rechazo no debe crear usuarios")
}

func TestBootstrap_ConUsuarioPreexistente_Rechaza(t *testing.T) {
	// Cualquier usuario existente cierra el bootstrap, no solo uno creado por él.
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(&entity.User{
		Email: "trabajador@gadi.example", Nombre: "Juan", Role: entity.RoleTrabajador,
	}))
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: true})

	_, err := uc.Bootstrap(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}

func TestBootstrap_Concurrente_ExactamenteUnoGana(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: true})

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Bootstrap(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
		}
	}
	assert.Equal(t, 1, ok, "de N bootstraps concurrentes exactamente uno debe ganar")

	count, _ := repo.Count()
	assert.Equal(t, 1, count)
}

func TestBootstrap_FueraDeLocal_SecretCorrecto(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{
		LocalMode: false,
		Secret:    "secret-de-despliegue",
	})

	in := validRequest()
	in.Secret = "secret-de-despliegue"
	out, err := uc.Bootstrap(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdministrador.String(), out.Role)
}

func TestBootstrap_FueraDeLocal_SecretIncorrecto_Forbidden(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{
		LocalMode: false,
		Secret:    "secret-de-despliegue",
	})

	in := validRequest()
	in.Secret = "adivinado"
	_, err := uc.Bootstrap(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in.Secret = ""
	_, err = uc.Bootstrap(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden, "secret ausente también es Forbidden")

	n, _ := repo.Count()
	assert.Equal(t, 0, n, "ningún intento rechazado debe crear usuarios")
}

func TestBootstrap_FueraDeLocal_SinSecretConfigurado_Forbidden(t *testing.T) {
	// Despliegue no-local sin BOOTSTRAP_SECRET: el bootstrap queda cerrado,
	// incluso si el cliente manda secret vacío "a juego".
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: false})

	_, err := uc.Bootstrap(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBootstrap_EnLocal_IgnoraSecret(t *testing.T) {
	repo := newMemUserRepo()
	uc := bootstrap.NewUseCase(&memTxRunner{users: repo}, bootstrap.Config{LocalMode: true})

	in := validRequest()
	in.Secret = "cualquier-cosa"
	_, err := uc.Bootstrap(context.Background(), in)
	assert.NoError(t, err, "en modo local el secret no se verifica")
}
