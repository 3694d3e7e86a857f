package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.FlagRepository = (*FlagRepo)(nil)

// FlagRepo marcas de aplicación de una sola vez (tabla app_flags).
type FlagRepo struct {
	q Querier
}

// NewFlagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFlagRepository(q Querier) *FlagRepo {
	return &FlagRepo{q: q}
}

// IsSet indica si la marca existe.
func (r *FlagRepo) IsSet(name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM app_flags WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("flag is set: %w", err)
	}
	return exists, nil
}

// Set crea la marca (idempotente).
func (r *FlagRepo) Set(name string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO app_flags (name, set_at) VALUES ($1, now()) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("set flag: %w", err)
	}
	return nil
}
