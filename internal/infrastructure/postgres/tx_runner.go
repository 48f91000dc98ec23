package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta una función con repositorios de galpones y productos ligados
// a una misma transacción. Si fn devuelve error la transacción se revierte
// completa, de modo que el galpón y sus productos nunca quedan a medio camino.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor de transacciones sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, liga los repos a ella y confirma solo si fn termina sin error.
func (t *TxRunner) Run(ctx context.Context, fn func(repository.WarehouseRepository, repository.ProductRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewWarehouseRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
