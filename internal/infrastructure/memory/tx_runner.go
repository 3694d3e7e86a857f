package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner emula la transacción de BD sobre el almacén en memoria: toma una
// instantánea del estado completo antes de ejecutar fn y la restaura si fn
// falla. Un mutex propio serializa las transacciones, igual que los bloqueos
// de fila lo hacen en PostgreSQL.
type TxRunner struct {
	store *Store
	mu    sync.Mutex
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repos del almacén; si fn devuelve error el estado
// vuelve a la instantánea previa (rollback).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	pendingRepo repository.PendingOrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.store.snapshot()
	err := fn(
		NewProductRepo(r.store),
		NewCustomerRepo(r.store),
		NewOrderRepo(r.store),
		NewPendingOrderRepo(r.store),
	)
	if err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
