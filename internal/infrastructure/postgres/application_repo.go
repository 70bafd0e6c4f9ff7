package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/crediya/loan-service/internal/domain/model"
)

// pendingStateID is the seeded id of the "PEN" state, used when the caller
// does not filter on an explicit state.
const pendingStateID = int64(1)

// ApplicationRepo implements port.ApplicationRepository.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Save inserts a new application and returns it with the generated id.
func (r *ApplicationRepo) Save(ctx context.Context, app *model.Application) (*model.Application, error) {
	query := `
		INSERT INTO solicitud (monto, plazo, email, documento_identidad, id_estado, id_tipo_prestamo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_solicitud
	`
	saved := *app
	err := r.pool.QueryRow(ctx, query,
		app.Amount, app.Term, app.Email, app.IdentityDocument, app.StateID, app.LoanTypeID,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}
	return &saved, nil
}

// FindPending returns one page of applications matching the criteria. The
// COUNT and DATA queries share the same FROM/JOIN/WHERE so totals and rows
// always agree.
func (r *ApplicationRepo) FindPending(ctx context.Context, c model.PendingCriteria) (model.Page[model.PendingRow], error) {
	fromJoins := `
		FROM solicitud s
		INNER JOIN tipo_prestamo tp ON tp.id_tipo_prestamo = s.id_tipo_prestamo
		INNER JOIN estados       st ON st.id_estado        = s.id_estado
	`

	var where strings.Builder
	where.WriteString(" WHERE 1=1 ")
	args := make([]any, 0, 3)

	stateID := pendingStateID
	if c.StateID != nil {
		stateID = *c.StateID
	}
	args = append(args, stateID)
	fmt.Fprintf(&where, " AND s.id_estado = $%d ", len(args))

	if c.Filter != "" {
		args = append(args, "%"+strings.ToLower(c.Filter)+"%")
		fmt.Fprintf(&where, " AND (LOWER(s.email) LIKE $%d OR s.documento_identidad LIKE $%d) ", len(args), len(args))
	}
	if c.LoanTypeID != nil {
		args = append(args, *c.LoanTypeID)
		fmt.Fprintf(&where, " AND s.id_tipo_prestamo = $%d ", len(args))
	}

	countSQL := "SELECT COUNT(*) " + fromJoins + where.String()

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return model.Page[model.PendingRow]{}, fmt.Errorf("count pending applications: %w", err)
	}

	dataArgs := append(args, c.Size, c.Page*c.Size)
	dataSQL := `
		SELECT
			s.id_solicitud,
			s.monto,
			s.plazo,
			s.email,
			s.documento_identidad,
			s.id_estado,
			s.id_tipo_prestamo,
			st.nombre AS state_name,
			tp.nombre AS loan_type_name
	` + fromJoins + where.String() +
		fmt.Sprintf(" ORDER BY s.id_solicitud DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return model.Page[model.PendingRow]{}, fmt.Errorf("query pending applications: %w", err)
	}
	defer rows.Close()

	var items []model.PendingRow
	for rows.Next() {
		var (
			row  model.PendingRow
			term time.Time
		)
		var amount decimal.Decimal
		if err := rows.Scan(
			&row.ID, &amount, &term, &row.Email, &row.IdentityDocument,
			&row.StateID, &row.LoanTypeID, &row.StateName, &row.LoanTypeName,
		); err != nil {
			return model.Page[model.PendingRow]{}, fmt.Errorf("scan pending application: %w", err)
		}
		row.Amount = amount
		row.Term = term
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return model.Page[model.PendingRow]{}, fmt.Errorf("iterate pending applications: %w", err)
	}

	return model.NewPage(items, c.Page, c.Size, total), nil
}
