package operator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/dbmetrics"
	"github.com/glamtime/SalonBookingService/pkg/psqlbuilder"
)

// Repository is the operators (staff) storage layer.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an operators repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// operatorSelect joins the qualification table and aggregates service IDs
// so an operator is always loaded together with the services they perform.
func operatorSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"o.id",
		"o.name",
		"COALESCE(ARRAY_AGG(os.service_id) FILTER (WHERE os.service_id IS NOT NULL), '{}')",
		"o.created_at",
		"o.updated_at",
	).
		From("operators o").
		LeftJoin("operator_services os ON os.operator_id = o.id").
		GroupBy("o.id", "o.name", "o.created_at", "o.updated_at")
}

// GetByID fetches an operator with their qualified service IDs.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Operator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := operatorSelect().
		Where(squirrel.Eq{"o.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	op, err := scanOperator(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOperatorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan operator: %v", ErrScanRow, err)
	}

	return op, nil
}

// List fetches all operators, optionally restricted to those qualified
// for the given service, ordered by name.
func (r *Repository) List(ctx context.Context, serviceID *int64) ([]*domain.Operator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := operatorSelect().OrderBy("o.name ASC")

	if serviceID != nil {
		selectBuilder = selectBuilder.
			Having("BOOL_OR(os.service_id = ?)", *serviceID)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	operators := make([]*domain.Operator, 0)
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		operators = append(operators, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return operators, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOperator(row rowScanner) (*domain.Operator, error) {
	var op domain.Operator
	var serviceIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&op.ID,
		&op.Name,
		&serviceIDs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	op.ServiceIDs = []int64(serviceIDs)
	op.CreatedAt = createdAt.Time
	op.UpdatedAt = updatedAt.Time

	return &op, nil
}
