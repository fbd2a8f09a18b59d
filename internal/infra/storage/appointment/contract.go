package appointment

import (
	"context"
	"database/sql"

	"github.com/glamtime/SalonBookingService/pkg/dbmetrics"
)

// Database executor interfaces are shared with dbmetrics so the
// repository works over both *sql.DB and the instrumented wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
