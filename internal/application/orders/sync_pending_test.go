package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/connectivity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newSync(st *memory.Store, online bool) (*orders.SyncUseCase, *connectivity.Switch) {
	sw := connectivity.NewSwitch(online)
	uc := orders.NewSyncUseCase(memory.NewTxRunner(st), memory.NewPendingOrderRepo(st), sw, testLogger())
	return uc, sw
}

// checkoutOffline cobra contra la cola: 2 espressos con canje de 20 puntos.
func checkoutOffline(t *testing.T, uc *orders.CreateOrderUseCase) *entity.Order {
	t.Helper()
	order, err := uc.CreateOrder(context.Background(), orders.CreateOrderInput{
		Items:          []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 2}},
		Subtotal:       d("20.00"),
		FinalAmount:    d("10.00"),
		PointsRedeemed: 20,
		ServedBy:       "user-1",
		CustomerID:     "cust-1",
		Online:         false,
	})
	require.NoError(t, err)
	return order
}

func TestSync_ColaVaciaEsNoOp(t *testing.T) {
	st, _ := fixture(t)
	uc, _ := newSync(st, true)

	synced, err := uc.SyncPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, synced)
}

func TestSync_SinConectividadNoHaceNada(t *testing.T) {
	st, engine := fixture(t)
	checkoutOffline(t, engine)
	uc, _ := newSync(st, false)

	synced, err := uc.SyncPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, synced)

	pending, err := uc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, 1, pending, "la cola queda intacta mientras no haya conectividad")
}

func TestSync_FusionaYReaplicaPuntos(t *testing.T) {
	st, engine := fixture(t)
	order := checkoutOffline(t, engine)
	require.Equal(t, int64(100), pointsOf(t, st, "cust-1"), "offline no toca puntos")

	uc, _ := newSync(st, true)
	synced, err := uc.SyncPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, synced)

	// 100 − 20 canjeados + floor(10 × 0.3) ganados = 83.
	assert.Equal(t, int64(83), pointsOf(t, st, "cust-1"))

	exists, err := memory.NewOrderRepo(st).Exists(order.ID)
	require.NoError(t, err)
	assert.True(t, exists, "la orden pasó al historial sincronizado")

	pending, err := uc.PendingCount()
	require.NoError(t, err)
	assert.Zero(t, pending, "la cola queda vacía tras la fusión")

	// Un segundo pase no tiene nada que hacer.
	synced, err = uc.SyncPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, synced)
}

func TestSync_DedupePorIDDeOrden(t *testing.T) {
	st, engine := fixture(t)
	order := checkoutOffline(t, engine)

	// Simular un pase anterior que fusionó la orden pero murió antes de
	// limpiar la cola: la orden ya está en el historial Y sigue encolada.
	require.NoError(t, memory.NewOrderRepo(st).Create(order))

	uc, _ := newSync(st, true)
	synced, err := uc.SyncPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, synced, "la orden duplicada se salta por completo")

	assert.Equal(t, int64(100), pointsOf(t, st, "cust-1"), "los puntos no se reaplican en el reintento")

	count, err := memory.NewOrderRepo(st).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "no se reinserta")

	pending, err := uc.PendingCount()
	require.NoError(t, err)
	assert.Zero(t, pending, "la cola sí se limpia")
}

// failingOrderRepo hace fallar la inserción en el historial.
type failingOrderRepo struct {
	repository.OrderRepository
}

func (failingOrderRepo) Create(*entity.Order) error {
	return errors.New("disco lleno")
}

// failingTxRunner envuelve el runner real inyectando el repo averiado.
type failingTxRunner struct {
	inner orders.TxRunner
}

func (r failingTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	pendingRepo repository.PendingOrderRepository,
) error) error {
	return r.inner.Run(ctx, func(
		p repository.ProductRepository,
		c repository.CustomerRepository,
		o repository.OrderRepository,
		pend repository.PendingOrderRepository,
	) error {
		return fn(p, c, failingOrderRepo{o}, pend)
	})
}

func TestSync_FalloDejaLaColaIntacta(t *testing.T) {
	st, engine := fixture(t)
	checkoutOffline(t, engine)

	sw := connectivity.NewSwitch(true)
	uc := orders.NewSyncUseCase(
		failingTxRunner{inner: memory.NewTxRunner(st)},
		memory.NewPendingOrderRepo(st),
		sw,
		testLogger(),
	)

	synced, err := uc.SyncPendingOrders(context.Background())
	require.Error(t, err)
	assert.Zero(t, synced)

	pending, err := uc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, 1, pending, "nada se pierde: se reintenta en la próxima transición")

	assert.Equal(t, int64(100), pointsOf(t, st, "cust-1"), "el ajuste de puntos también se revirtió")
	count, err := memory.NewOrderRepo(st).Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSync_WatchDisparaAlVolverOnline(t *testing.T) {
	st, engine := fixture(t)
	checkoutOffline(t, engine)

	uc, sw := newSync(st, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go uc.Watch(ctx)

	sw.SetOnline(true)

	require.Eventually(t, func() bool {
		pending, err := uc.PendingCount()
		return err == nil && pending == 0
	}, 2*time.Second, 20*time.Millisecond, "la vuelta a online debe drenar la cola")

	assert.Equal(t, int64(83), pointsOf(t, st, "cust-1"))
}
