package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// PendingOrderRepository define el puerto de la cola FIFO de órdenes aceptadas
// sin conectividad. Cada orden pendiente termina exactamente una vez en la
// colección sincronizada; la cola solo se vacía cuando la fusión persiste.
type PendingOrderRepository interface {
	Enqueue(order *entity.Order) error
	// ListFIFO devuelve la cola completa en orden de llegada.
	ListFIFO() ([]*entity.Order, error)
	Count() (int, error)
	Clear() error
}
