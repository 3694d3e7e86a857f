package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, items, subtotal, points_redeemed, final_amount, customer_id, points_earned, date, served_by`

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Las líneas de
// la orden se guardan como JSONB: son instantáneas congeladas, nunca se
// consultan por columna.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta una orden sincronizada. Las órdenes son inmutables: no hay
// UPDATE ni DELETE sobre esta tabla.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, items, subtotal, points_redeemed, final_amount, customer_id, points_earned, date, served_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, items, order.Subtotal, order.PointsRedeemed, order.FinalAmount,
		nullIfEmpty(order.CustomerID), order.PointsEarned, order.Date, order.ServedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Exists indica si ya hay una orden con ese ID (dedupe del reconciliador).
func (r *OrderRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("order exists: %w", err)
	}
	return exists, nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List devuelve el historial, más reciente primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM orders ORDER BY date DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Count devuelve el total de órdenes sincronizadas.
func (r *OrderRepo) Count() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// scanOrder lee una fila de orders/offline_orders (mismas columnas).
func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var items []byte
	var customerID *string
	if err := row.Scan(&o.ID, &items, &o.Subtotal, &o.PointsRedeemed, &o.FinalAmount,
		&customerID, &o.PointsEarned, &o.Date, &o.ServedBy); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	return &o, nil
}
