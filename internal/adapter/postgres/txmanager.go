package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs functions inside a transaction carried by the context.
// Repositories pick it up through QuerierFromCtx, so services stay unaware
// of pgx. A RunInTx call nested inside another joins the outer transaction.
type TxManager struct {
	db   Beginner
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager using READ COMMITTED transactions.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// RunInTx commits when fn returns nil and rolls back otherwise. fn's error
// is returned unchanged. A panic in fn rolls back and propagates.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	var fnErr error
	err := pgx.BeginTxFunc(ctx, m.db, m.opts, func(tx pgx.Tx) error {
		fnErr = fn(withTx(ctx, tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		// Begin or commit failed.
		return fmt.Errorf("transaction: %w", err)
	}
	return err
}
