// Siembra los datos iniciales del terminal (usuarios, categorías, productos y
// clientes de demostración) en PostgreSQL. Es idempotente: si el flag
// "seeded" ya está puesto no hace nada.
package main

import (
	"context"

	"github.com/jhoicas/cafe-pos-api/internal/application/seed"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cafe-pos-api/pkg/config"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := seed.New(
		postgres.NewUserRepository(pool),
		postgres.NewCategoryRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewFlagRepository(pool),
	)
	seeded, err := uc.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}
	if seeded {
		log.Info().Msg("datos iniciales sembrados")
	} else {
		log.Info().Msg("los datos iniciales ya estaban sembrados")
	}
}
