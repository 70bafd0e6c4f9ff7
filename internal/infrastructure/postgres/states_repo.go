package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crediya/loan-service/internal/domain/model"
)

// StatesRepo implements port.StatesRepository.
type StatesRepo struct {
	pool *pgxpool.Pool
}

// NewStatesRepo creates a repository backed by PostgreSQL.
func NewStatesRepo(pool *pgxpool.Pool) *StatesRepo {
	return &StatesRepo{pool: pool}
}

// FindByCode returns the state with the given short code or (nil, nil) when
// no state carries it.
func (r *StatesRepo) FindByCode(ctx context.Context, code string) (*model.State, error) {
	query := `
		SELECT id_estado, nombre, descripcion, codigo
		FROM estados
		WHERE codigo = $1
	`
	var s model.State
	err := r.pool.QueryRow(ctx, query, code).Scan(&s.ID, &s.Name, &s.Description, &s.Code)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find state: %w", err)
	}
	return &s, nil
}
