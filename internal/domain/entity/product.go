package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible del café.
// Stock es un entero local al terminal: lo decrementa únicamente el motor de
// órdenes y lo fija directamente la pantalla de administración.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta (DH)
	Stock       int64
	CategoryID  string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
