package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/loyalty"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LoyaltyConfig tasas del programa de fidelidad.
// RedemptionRate: valor en DH de un punto al canjear (0.5 observado).
// EarnRate: fracción del monto final pagado que se convierte en puntos (0.3).
type LoyaltyConfig struct {
	RedemptionRate decimal.Decimal
	EarnRate       decimal.Decimal
}

// DefaultLoyaltyConfig devuelve las tasas observadas del negocio.
func DefaultLoyaltyConfig() LoyaltyConfig {
	return LoyaltyConfig{
		RedemptionRate: decimal.NewFromFloat(0.5),
		EarnRate:       decimal.NewFromFloat(0.3),
	}
}

// CreateOrderUseCase es el motor de órdenes: valida el carrito contra el stock
// vigente, congela las líneas, descuenta inventario, aplica el canje y la
// acumulación de puntos y persiste la orden: en la colección sincronizada si
// hay conectividad o en la cola offline si no la hay. Todo dentro de una sola
// transacción.
type CreateOrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	loyaltyCfg   LoyaltyConfig

	// mu serializa los cobros del terminal: dos checkouts nunca intercalan
	// sus ciclos leer-modificar-escribir sobre el stock.
	mu sync.Mutex
}

// NewCreateOrderUseCase construye el motor de órdenes.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	loyaltyCfg LoyaltyConfig,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		loyaltyCfg:   loyaltyCfg,
	}
}

// OrderLineInput línea del carrito: producto y cantidad solicitada.
type OrderLineInput struct {
	ProductID string
	Quantity  int64
}

// CreateOrderInput entrada del cobro. Online es explícito: el motor nunca
// infiere la conectividad por su cuenta. Subtotal y FinalAmount son los
// montos que vio el operador; se verifican contra los precios vigentes.
type CreateOrderInput struct {
	Items          []OrderLineInput
	Subtotal       decimal.Decimal
	FinalAmount    decimal.Decimal
	PointsRedeemed int64
	ServedBy       string
	CustomerID     string
	Online         bool
}

// CreateOrder ejecuta el cobro y devuelve la orden creada (también cuando
// queda en la cola offline, para que el terminal imprima el recibo de
// inmediato). El stock se descuenta en ambas ramas: el inventario es local al
// terminal y una venta offline lo consume igual. Los ajustes de puntos del
// cliente solo se aplican online; offline quedan diferidos al reconciliador.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if len(in.Items) == 0 || in.PointsRedeemed < 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.CustomerID == "" && in.PointsRedeemed > 0 {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(in.ServedBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var order *entity.Order
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
		pendingRepo repository.PendingOrderRepository,
	) error {
		// 1) Congelar líneas contra el stock vigente (fila bloqueada), no
		// contra la foto que armó el carrito: re-validar aquí cierra la
		// carrera entre armar el carrito y cobrar.
		items := make([]entity.OrderItem, 0, len(in.Items))
		subtotal := decimal.Zero
		for _, line := range in.Items {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < line.Quantity {
				return domain.ErrInsufficientStock
			}
			item := entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				UnitPrice: product.Price,
				Quantity:  line.Quantity,
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.Subtotal())

			if err := productRepo.UpdateStock(product.ID, product.Stock-line.Quantity); err != nil {
				return err
			}
		}

		// 2) Verificar los montos declarados por el terminal.
		if !in.Subtotal.Equal(subtotal) {
			return domain.ErrInvalidInput
		}
		discount := loyalty.Discount(in.PointsRedeemed, uc.loyaltyCfg.RedemptionRate)
		if discount.GreaterThan(subtotal) {
			return domain.ErrInvalidInput
		}
		finalAmount := subtotal.Sub(discount)
		if !in.FinalAmount.Equal(finalAmount) {
			return domain.ErrInvalidInput
		}

		// 3) Orden inmutable con ID fresco y fecha UTC.
		earned := loyalty.PointsEarned(finalAmount, uc.loyaltyCfg.EarnRate)
		order = &entity.Order{
			ID:             uuid.New().String(),
			Items:          items,
			Subtotal:       subtotal,
			PointsRedeemed: in.PointsRedeemed,
			FinalAmount:    finalAmount,
			CustomerID:     in.CustomerID,
			PointsEarned:   earned,
			Date:           time.Now().UTC(),
			ServedBy:       user.ID,
		}

		// 4) Offline: a la cola, sin tocar los puntos del cliente.
		if !in.Online {
			return pendingRepo.Enqueue(order)
		}

		// 5) Online: ajustar puntos (canje + acumulación) y sincronizar ya.
		if in.CustomerID != "" {
			customer, err := customerRepo.GetForUpdate(in.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return domain.ErrNotFound
			}
			balance := customer.LoyaltyPoints + earned - in.PointsRedeemed
			if balance < 0 {
				return domain.ErrInsufficientPoints
			}
			if err := customerRepo.UpdatePoints(customer.ID, balance); err != nil {
				return err
			}
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// MaxRedeemable devuelve el máximo de puntos canjeables para un cliente y un
// subtotal dados (apoyo del terminal para precargar el tope del canje).
func (uc *CreateOrderUseCase) MaxRedeemable(customerID string, subtotal decimal.Decimal) (int64, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return 0, err
	}
	if customer == nil {
		return 0, domain.ErrNotFound
	}
	return loyalty.MaxRedeemablePoints(customer.LoyaltyPoints, subtotal, uc.loyaltyCfg.RedemptionRate), nil
}

// GetByID devuelve una orden sincronizada por ID.
func (uc *CreateOrderUseCase) GetByID(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve el historial de órdenes sincronizadas, paginado.
func (uc *CreateOrderUseCase) List(limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.List(limit, offset)
}
