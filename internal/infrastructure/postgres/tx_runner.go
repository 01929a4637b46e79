package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción de escritura, ejecuta fn con la tx y hace Commit o Rollback.
// La usa el importador para cargar todo el histórico de una vez.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// RunReadOnly ejecuta fn en una transacción REPEATABLE READ de solo lectura:
// todas las consultas ven el mismo estado de la base (snapshot consistente).
func (r *TxRunner) RunReadOnly(ctx context.Context, fn func(q Querier) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(q Querier) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
