package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem es la instantánea de una línea de venta: nombre y precio quedan
// congelados al momento del cobro, aunque el producto cambie después.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// Subtotal devuelve precio unitario × cantidad de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Order es una venta cerrada. Es inmutable: no existe actualización ni
// eliminación de órdenes. FinalAmount = Subtotal − PointsRedeemed × tasa de canje.
// Una orden pendiente (cola offline) tiene exactamente la misma forma; solo
// cambia la colección en la que vive hasta que el reconciliador la sincroniza.
type Order struct {
	ID             string
	Items          []OrderItem
	Subtotal       decimal.Decimal
	PointsRedeemed int64
	FinalAmount    decimal.Decimal
	CustomerID     string // vacío si la venta fue sin cliente
	PointsEarned   int64
	Date           time.Time // UTC
	ServedBy       string    // ID del usuario que cobró
}
