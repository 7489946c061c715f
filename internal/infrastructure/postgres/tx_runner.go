package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blues182/sistema-transporte-admin/internal/application/inventario"
	"github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// Ensure TxRunner implements inventario.TxRunner and mantenimiento.TxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ mantenimiento.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback: stock y ledger se aplican juntos o ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	refaccionRepo repository.RefaccionRepository,
	movRepo repository.MovimientoInventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	refaccionRepo := NewRefaccionRepository(tx)
	movRepo := NewMovimientoInventarioRepository(tx)

	if err := fn(refaccionRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMantenimiento inicia una transacción con los repos del flujo de
// mantenimiento (orden + refacciones + ledger + trailer).
func (r *TxRunner) RunMantenimiento(ctx context.Context, fn func(
	mantRepo repository.MantenimientoRepository,
	refaccionRepo repository.RefaccionRepository,
	movRepo repository.MovimientoInventarioRepository,
	trailerRepo repository.TrailerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapStoreErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	mantRepo := NewMantenimientoRepository(tx)
	refaccionRepo := NewRefaccionRepository(tx)
	movRepo := NewMovimientoInventarioRepository(tx)
	trailerRepo := NewTrailerRepository(tx)

	if err := fn(mantRepo, refaccionRepo, movRepo, trailerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
