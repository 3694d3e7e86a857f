package orders

import (
	"context"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cobro (stock + puntos +
// orden) y la fusión del reconciliador sean todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
		pendingRepo repository.PendingOrderRepository,
	) error) error
}

// ConnectivitySignal expone el estado online/offline del terminal y sus
// transiciones. El motor de órdenes NO lo consulta: la conectividad entra
// como parámetro explícito a CreateOrder; solo el reconciliador lo usa para
// decidir cuándo correr.
type ConnectivitySignal interface {
	Online() bool
	// Changes entrega el nuevo estado en cada transición online/offline.
	Changes() <-chan bool
}

// ReceiptPDFGenerator genera la representación en PDF del recibo de una
// orden. customer y servedBy pueden ser nil si ya no existen.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, customer *entity.Customer, servedBy *entity.User) ([]byte, error)
}
