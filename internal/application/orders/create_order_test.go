package orders_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fixture arma un almacén en memoria con el catálogo mínimo de pruebas:
// café 10.00 (stock 5), croissant 3.50 (stock 1), un operador y un cliente
// con 100 puntos.
func fixture(t *testing.T) (*memory.Store, *orders.CreateOrderUseCase) {
	t.Helper()
	st := memory.NewStore()
	now := time.Now().UTC()

	require.NoError(t, memory.NewProductRepo(st).Create(&entity.Product{
		ID: "prod-cafe", Name: "Espresso", Price: d("10.00"), Stock: 5,
		CategoryID: "cat-1", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewProductRepo(st).Create(&entity.Product{
		ID: "prod-croissant", Name: "Croissant", Price: d("3.50"), Stock: 1,
		CategoryID: "cat-2", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewUserRepo(st).Create(&entity.User{
		ID: "user-1", Name: "Jessica", Role: entity.RoleWorker, AccessCode: "222222",
	}))
	require.NoError(t, memory.NewCustomerRepo(st).Create(&entity.Customer{
		ID: "cust-1", Name: "John Doe", LoyaltyPoints: 100,
	}))

	uc := orders.NewCreateOrderUseCase(
		memory.NewTxRunner(st),
		memory.NewOrderRepo(st),
		memory.NewUserRepo(st),
		memory.NewCustomerRepo(st),
		orders.DefaultLoyaltyConfig(),
	)
	return st, uc
}

func stockOf(t *testing.T, st *memory.Store, id string) int64 {
	t.Helper()
	p, err := memory.NewProductRepo(st).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func pointsOf(t *testing.T, st *memory.Store, id string) int64 {
	t.Helper()
	c, err := memory.NewCustomerRepo(st).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c.LoyaltyPoints
}

func TestCreateOrder_OnlineConCanje(t *testing.T) {
	st, uc := fixture(t)

	// 2 espressos = 20.00; canje de 20 puntos = 10.00 de descuento.
	order, err := uc.CreateOrder(context.Background(), orders.CreateOrderInput{
		Items:          []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 2}},
		Subtotal:       d("20.00"),
		FinalAmount:    d("10.00"),
		PointsRedeemed: 20,
		ServedBy:       "user-1",
		CustomerID:     "cust-1",
		Online:         true,
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, order.Subtotal.Equal(d("20.00")))
	assert.True(t, order.FinalAmount.Equal(d("10.00")))
	assert.Equal(t, int64(3), order.PointsEarned, "floor(10 × 0.3) = 3")
	assert.Equal(t, "user-1", order.ServedBy)
	assert.False(t, order.Date.IsZero())
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(d("10.00")), "el precio queda congelado en la línea")

	assert.Equal(t, int64(3), stockOf(t, st, "prod-cafe"), "el stock se descuenta")
	assert.Equal(t, int64(83), pointsOf(t, st, "cust-1"), "100 − 20 + 3")

	exists, err := memory.NewOrderRepo(st).Exists(order.ID)
	require.NoError(t, err)
	assert.True(t, exists, "la orden queda en la colección sincronizada")

	pending, err := memory.NewPendingOrderRepo(st).Count()
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestCreateOrder_OfflineEncolaSinTocarPuntos(t *testing.T) {
	st, uc := fixture(t)

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
	require.NotNil(t, order, "offline también devuelve la orden para imprimir el recibo")

	assert.Equal(t, int64(3), stockOf(t, st, "prod-cafe"), "el stock se descuenta también offline")
	assert.Equal(t, int64(100), pointsOf(t, st, "cust-1"), "los puntos quedan diferidos al reconciliador")

	pending, err := memory.NewPendingOrderRepo(st).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	count, err := memory.NewOrderRepo(st).Count()
	require.NoError(t, err)
	assert.Zero(t, count, "nada entra al historial hasta sincronizar")
}

func TestCreateOrder_StockInsuficienteRevierteTodo(t *testing.T) {
	st, uc := fixture(t)

	_, err := uc.CreateOrder(context.Background(), orders.CreateOrderInput{
		Items: []orders.OrderLineInput{
			{ProductID: "prod-cafe", Quantity: 1},
			{ProductID: "prod-croissant", Quantity: 2}, // stock 1
		},
		Subtotal:    d("17.00"),
		FinalAmount: d("17.00"),
		ServedBy:    "user-1",
		Online:      true,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), stockOf(t, st, "prod-cafe"), "la primera línea también se revierte")
	assert.Equal(t, int64(1), stockOf(t, st, "prod-croissant"))
}

func TestCreateOrder_MontosDeclaradosNoCuadran(t *testing.T) {
	st, uc := fixture(t)

	_, err := uc.CreateOrder(context.Background(), orders.CreateOrderInput{
		Items:       []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 1}},
		Subtotal:    d("9.00"), // el precio vigente es 10.00
		FinalAmount: d("9.00"),
		ServedBy:    "user-1",
		Online:      true,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), stockOf(t, st, "prod-cafe"), "sin efecto parcial")
}

func TestCreateOrder_PuntosInsuficientes(t *testing.T) {
	st, uc := fixture(t)
	require.NoError(t, memory.NewCustomerRepo(st).UpdatePoints("cust-1", 5))

	// Canje de 10 puntos = 5.00; subtotal 20.00, final 15.00, gana 4.
	// Saldo resultante: 5 + 4 − 10 = −1 → rechazado.
	_, err := uc.CreateOrder(context.Background(), orders.CreateOrderInput{
		Items:          []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 2}},
		Subtotal:       d("20.00"),
		FinalAmount:    d("15.00"),
		PointsRedeemed: 10,
		ServedBy:       "user-1",
		CustomerID:     "cust-1",
		Online:         true,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	assert.Equal(t, int64(5), stockOf(t, st, "prod-cafe"), "el descuento de stock se revierte")
	assert.Equal(t, int64(5), pointsOf(t, st, "cust-1"))
}

func TestCreateOrder_Validaciones(t *testing.T) {
	_, uc := fixture(t)
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, orders.CreateOrderInput{ServedBy: "user-1", Online: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "carrito vacío")

	_, err = uc.CreateOrder(ctx, orders.CreateOrderInput{
		Items:    []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 0}},
		ServedBy: "user-1", Online: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.CreateOrder(ctx, orders.CreateOrderInput{
		Items:          []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 1}},
		Subtotal:       d("10.00"),
		FinalAmount:    d("5.00"),
		PointsRedeemed: 10,
		ServedBy:       "user-1", Online: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "canje sin cliente")

	_, err = uc.CreateOrder(ctx, orders.CreateOrderInput{
		Items:       []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 1}},
		Subtotal:    d("10.00"),
		FinalAmount: d("10.00"),
		ServedBy:    "fantasma", Online: true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el operador debe existir")

	_, err = uc.CreateOrder(ctx, orders.CreateOrderInput{
		Items:       []orders.OrderLineInput{{ProductID: "prod-cafe", Quantity: 1}},
		Subtotal:    d("10.00"),
		FinalAmount: d("10.00"),
		ServedBy:    "user-1",
		CustomerID:  "fantasma", Online: true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el cliente referenciado debe existir")
}

func TestCreateOrder_CobrosConcurrentesSobreStockUno(t *testing.T) {
	st, uc := fixture(t)

	in := orders.CreateOrderInput{
		Items:       []orders.OrderLineInput{{ProductID: "prod-croissant", Quantity: 1}},
		Subtotal:    d("3.50"),
		FinalAmount: d("3.50"),
		ServedBy:    "user-1",
		Online:      true,
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateOrder(context.Background(), in)
		}(i)
	}
	wg.Wait()

	okCount, stockErrCount := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			stockErrCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un cobro gana la última unidad")
	assert.Equal(t, 1, stockErrCount, "el otro falla por stock")
	assert.Equal(t, int64(0), stockOf(t, st, "prod-croissant"), "el stock nunca queda negativo")
}
