package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.PendingOrderRepository = (*PendingOrderRepo)(nil)

// PendingOrderRepo cola FIFO de órdenes offline sobre PostgreSQL. La columna
// position (BIGSERIAL) da el orden de llegada.
type PendingOrderRepo struct {
	q Querier
}

// NewPendingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPendingOrderRepository(q Querier) *PendingOrderRepo {
	return &PendingOrderRepo{q: q}
}

// Enqueue agrega una orden al final de la cola.
func (r *PendingOrderRepo) Enqueue(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal pending order items: %w", err)
	}
	query := `
		INSERT INTO offline_orders (id, items, subtotal, points_redeemed, final_amount, customer_id, points_earned, date, served_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, items, order.Subtotal, order.PointsRedeemed, order.FinalAmount,
		nullIfEmpty(order.CustomerID), order.PointsEarned, order.Date, order.ServedBy,
	)
	if err != nil {
		return fmt.Errorf("enqueue pending order: %w", err)
	}
	return nil
}

// ListFIFO devuelve la cola completa en orden de llegada.
func (r *PendingOrderRepo) ListFIFO() ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM offline_orders ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Count devuelve el tamaño de la cola.
func (r *PendingOrderRepo) Count() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM offline_orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending orders: %w", err)
	}
	return count, nil
}

// Clear vacía la cola. Solo el reconciliador la llama, y solo dentro de la
// misma transacción que fusionó las órdenes.
func (r *PendingOrderRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM offline_orders`); err != nil {
		return fmt.Errorf("clear pending orders: %w", err)
	}
	return nil
}
