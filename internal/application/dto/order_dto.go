package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del carrito al cobrar.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrderRequest cobro de un carrito. Subtotal y FinalAmount son los
// montos que el terminal mostró al operador; el motor los verifica contra los
// precios vigentes antes de confirmar.
type CreateOrderRequest struct {
	Items          []OrderItemRequest `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	FinalAmount    decimal.Decimal    `json:"final_amount"`
	PointsRedeemed int64              `json:"points_redeemed"`
	ServedBy       string             `json:"served_by"`
	CustomerID     string             `json:"customer_id"`
}

// OrderItemResponse línea congelada de una orden.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// OrderResponse respuesta de orden (recibo).
type OrderResponse struct {
	ID             string              `json:"id"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	PointsRedeemed int64               `json:"points_redeemed"`
	FinalAmount    decimal.Decimal     `json:"final_amount"`
	CustomerID     string              `json:"customer_id,omitempty"`
	PointsEarned   int64               `json:"points_earned"`
	Date           time.Time           `json:"date"`
	ServedBy       string              `json:"served_by"`
	Pending        bool                `json:"pending"` // true si quedó en la cola offline
}

// OrderListResponse listado paginado de órdenes sincronizadas.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// SyncResponse resultado de un pase de sincronización.
type SyncResponse struct {
	Synced int `json:"synced"`
}
