package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gadi-app/gadi-api/internal/application/bootstrap"
	"github.com/gadi-app/gadi-api/internal/application/usecase"
	"github.com/gadi-app/gadi-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.SeedTxRunner and bootstrap.TxRunner.
var _ usecase.SeedTxRunner = (*TxRunner)(nil)
var _ bootstrap.TxRunner = (*TxRunner)(nil)

// bootstrapLockKey clave del advisory lock que serializa el bootstrap
// ("gadi" en ASCII). Cierra la ventana check-then-act entre la verificación
// de vacuidad y el insert del primer administrador.
const bootstrapLockKey int64 = 0x67616469

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos de agenda atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	employees repository.EmployeeRepository,
	tasks repository.TaskRepository,
	schedules repository.ScheduleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmployeeRepository(tx), NewTaskRepository(tx), NewScheduleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSerialized inicia una transacción que toma el advisory lock de bootstrap
// antes de ejecutar fn con el repo de usuarios. El lock se libera al terminar
// la transacción; dos llamadas concurrentes se ejecutan una después de la otra.
func (r *TxRunner) RunSerialized(ctx context.Context, fn func(users repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
