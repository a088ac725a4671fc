package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/internal/domain/repository"
)

// Ensure TxRunner implements inventario.TxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada
// instancia está atada a una tabla de inventario (almacén o sucursal).
type TxRunner struct {
	pool    *pgxpool.Pool
	newRepo func(q Querier) repository.InventoryRepository
}

// NewWarehouseTxRunner construye el runner para inventario de almacenes.
func NewWarehouseTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{
		pool:    pool,
		newRepo: func(q Querier) repository.InventoryRepository { return NewWarehouseInventoryRepository(q) },
	}
}

// NewBranchTxRunner construye el runner para inventario de sucursales.
func NewBranchTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{
		pool:    pool,
		newRepo: func(q Querier) repository.InventoryRepository { return NewBranchInventoryRepository(q) },
	}
}

// Run inicia una transacción, ejecuta fn con un repositorio atado a la tx y
// hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(r.newRepo(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
