package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crediya/loan-service/internal/domain/model"
)

// LoanTypeRepo implements port.LoanTypeRepository.
type LoanTypeRepo struct {
	pool *pgxpool.Pool
}

// NewLoanTypeRepo creates a repository backed by PostgreSQL.
func NewLoanTypeRepo(pool *pgxpool.Pool) *LoanTypeRepo {
	return &LoanTypeRepo{pool: pool}
}

// FindByID returns the loan type or (nil, nil) when it does not exist.
func (r *LoanTypeRepo) FindByID(ctx context.Context, id int64) (*model.LoanType, error) {
	query := `
		SELECT id_tipo_prestamo, nombre, monto_minimo, monto_maximo, tasa_interes, validacion_automatica
		FROM tipo_prestamo
		WHERE id_tipo_prestamo = $1
	`
	var lt model.LoanType
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.AmountMin, &lt.AmountMax, &lt.InterestRate, &lt.AutomaticValidation,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find loan type: %w", err)
	}
	return &lt, nil
}
