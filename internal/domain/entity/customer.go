package entity

import "time"

// Customer representa un cliente del programa de fidelidad.
// LoyaltyPoints nunca puede quedar negativo: lo muta el motor de órdenes
// (canje/acumulación) y la pantalla de administración.
type Customer struct {
	ID            string
	Name          string
	Phone         string
	LoyaltyPoints int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
