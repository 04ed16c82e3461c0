// seed puebla la base configurada con los datos de demostración de gadi
// (empleados, tareas de viñedo y dos semanas de horarios). Es el mismo
// use case que expone POST /admin/seed, sin pasar por HTTP.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/gadi-app/gadi-api/internal/application/usecase"
	"github.com/gadi-app/gadi-api/internal/infrastructure/postgres"
	"github.com/gadi-app/gadi-api/pkg/config"
	"github.com/gadi-app/gadi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Service: "gadi-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	seedUC := usecase.NewSeedUseCase(postgres.NewTxRunner(pool))
	result, err := seedUC.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding")
	}

	log.Info().
		Int("employees", result.Employees).
		Int("tasks", result.Tasks).
		Int("schedules", result.Schedules).
		Msg("base poblada con datos de demostración")
}
