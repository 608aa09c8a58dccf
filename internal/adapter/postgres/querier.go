package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is what repositories run statements against: the pool, an open
// transaction, or a pgxmock pool in unit tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ErrNoTx is returned by statements that only make sense inside RunInTx,
// such as row locks.
var ErrNoTx = errors.New("statement requires a transaction")

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx reports the transaction RunInTx attached to ctx, if any.
func TxFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx picks the caller's transaction when there is one so that
// repository calls made inside RunInTx join it; otherwise it uses db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := TxFromCtx(ctx); ok {
		return tx
	}
	return db
}

// TxQuerier is QuerierFromCtx for statements that must not run in
// autocommit mode.
func TxQuerier(ctx context.Context) (Querier, error) {
	tx, ok := TxFromCtx(ctx)
	if !ok {
		return nil, ErrNoTx
	}
	return tx, nil
}
