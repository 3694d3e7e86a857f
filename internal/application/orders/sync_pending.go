package orders

import (
	"context"
	"sync/atomic"

	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// SyncUseCase es el reconciliador offline: cuando vuelve la conectividad
// drena la cola de órdenes pendientes, reaplica los ajustes de puntos de cada
// cliente y fusiona las órdenes en la colección sincronizada, todo en una
// transacción. Si la fusión falla, la cola queda intacta y se reintenta en la
// siguiente transición (al menos una vez); la deduplicación por ID de orden
// evita el doble registro en el reintento.
type SyncUseCase struct {
	txRunner    TxRunner
	pendingRepo repository.PendingOrderRepository
	signal      ConnectivitySignal
	log         *logger.Logger

	// running evita pases superpuestos si el evento online se dispara varias
	// veces seguidas.
	running atomic.Bool
}

// NewSyncUseCase construye el reconciliador.
func NewSyncUseCase(
	txRunner TxRunner,
	pendingRepo repository.PendingOrderRepository,
	signal ConnectivitySignal,
	log *logger.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		txRunner:    txRunner,
		pendingRepo: pendingRepo,
		signal:      signal,
		log:         log,
	}
}

// SyncPendingOrders drena la cola pendiente. Devuelve cuántas órdenes se
// fusionaron (0 sin error si no hay conectividad, la cola está vacía o ya hay
// un pase corriendo).
func (uc *SyncUseCase) SyncPendingOrders(ctx context.Context) (int, error) {
	if !uc.signal.Online() {
		return 0, nil
	}
	if !uc.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer uc.running.Store(false)

	synced := 0
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
		pendingRepo repository.PendingOrderRepository,
	) error {
		pending, err := pendingRepo.ListFIFO()
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		for _, order := range pending {
			exists, err := orderRepo.Exists(order.ID)
			if err != nil {
				return err
			}
			if exists {
				// Resto de un pase anterior que alcanzó a fusionar antes de
				// fallar: ni se reinserta ni se reaplican sus puntos.
				continue
			}
			if order.CustomerID != "" {
				customer, err := customerRepo.GetForUpdate(order.CustomerID)
				if err != nil {
					return err
				}
				if customer != nil {
					balance := customer.LoyaltyPoints + order.PointsEarned - order.PointsRedeemed
					if balance < 0 {
						// Un gasto online concurrente dejó el saldo corto:
						// el saldo nunca queda negativo.
						balance = 0
					}
					if err := customerRepo.UpdatePoints(customer.ID, balance); err != nil {
						return err
					}
				}
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			synced++
		}
		return pendingRepo.Clear()
	})
	if err != nil {
		return 0, err
	}
	return synced, nil
}

// PendingCount devuelve el tamaño actual de la cola offline (indicador del
// terminal).
func (uc *SyncUseCase) PendingCount() (int, error) {
	return uc.pendingRepo.Count()
}

// Watch consume las transiciones de conectividad y lanza un pase de
// sincronización en cada vuelta a online. Correr en una goroutine; termina
// cuando el contexto se cancela o la señal se cierra. Los fallos se loguean y
// se reintentan en la siguiente transición, nunca bloquean al terminal.
func (uc *SyncUseCase) Watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-uc.signal.Changes():
			if !ok {
				return
			}
			if !online {
				continue
			}
			count, err := uc.SyncPendingOrders(ctx)
			if err != nil {
				uc.log.Warn().Err(err).Msg("sincronización de órdenes offline falló; se reintenta en la próxima transición")
				continue
			}
			if count > 0 {
				uc.log.Info().Int("synced", count).Msg("órdenes offline fusionadas")
			}
		}
	}
}
