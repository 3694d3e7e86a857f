package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/connectivity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/pdf"
	httprouter "github.com/jhoicas/cafe-pos-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// newApp levanta la API completa sobre el almacén en memoria, con la señal de
// conectividad en manual.
func newApp(t *testing.T) (*fiber.App, *memory.Store, *connectivity.Switch) {
	t.Helper()
	st := memory.NewStore()
	now := time.Now().UTC()

	require.NoError(t, memory.NewUserRepo(st).Create(&entity.User{
		ID: "user-1", Name: "Admin", Role: entity.RoleAdmin, AccessCode: "111111",
	}))
	require.NoError(t, memory.NewCustomerRepo(st).Create(&entity.Customer{
		ID: "cust-1", Name: "John Doe", LoyaltyPoints: 150,
	}))
	require.NoError(t, memory.NewCategoryRepo(st).Create(&entity.Category{
		ID: "cat-1", Name: "Coffee", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewProductRepo(st).Create(&entity.Product{
		ID: "prod-1", Name: "Espresso", Price: decimal.RequireFromString("10.00"),
		Stock: 5, CategoryID: "cat-1", CreatedAt: now, UpdatedAt: now,
	}))

	sw := connectivity.NewSwitch(true)
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	txRunner := memory.NewTxRunner(st)
	createOrderUC := orders.NewCreateOrderUseCase(
		txRunner,
		memory.NewOrderRepo(st),
		memory.NewUserRepo(st),
		memory.NewCustomerRepo(st),
		orders.DefaultLoyaltyConfig(),
	)
	syncUC := orders.NewSyncUseCase(txRunner, memory.NewPendingOrderRepo(st), sw, log)
	receiptUC := orders.NewReceiptUseCase(
		memory.NewOrderRepo(st),
		memory.NewCustomerRepo(st),
		memory.NewUserRepo(st),
		pdf.NewMarotoPDFGenerator(),
	)

	app := fiber.New()
	httprouter.Router(app, httprouter.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(memory.NewUserRepo(st)),
		ProductUC:     usecase.NewProductUseCase(memory.NewProductRepo(st), memory.NewCategoryRepo(st)),
		CategoryUC:    usecase.NewCategoryUseCase(memory.NewCategoryRepo(st), memory.NewProductRepo(st)),
		CustomerUC:    usecase.NewCustomerUseCase(memory.NewCustomerRepo(st)),
		UserUC:        usecase.NewUserUseCase(memory.NewUserRepo(st)),
		CreateOrderUC: createOrderUC,
		ReceiptUC:     receiptUC,
		SyncUC:        syncUC,
		Signal:        sw,
	})
	return app, st, sw
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAPI_LoginPorPIN(t *testing.T) {
	app, _, _ := newApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{AccessCode: "111111"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "user-1", user.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{AccessCode: "000000"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CobroOnline(t *testing.T) {
	app, st, _ := newApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Items:          []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 2}},
		Subtotal:       decimal.RequireFromString("20.00"),
		FinalAmount:    decimal.RequireFromString("10.00"),
		PointsRedeemed: 20,
		ServedBy:       "user-1",
		CustomerID:     "cust-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.False(t, order.Pending)
	assert.Equal(t, int64(3), order.PointsEarned)

	p, err := memory.NewProductRepo(st).GetByID("prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Stock)

	// El recibo PDF de la orden recién creada se sirve de inmediato.
	req, err := http.NewRequest(http.MethodGet, "/api/orders/"+order.ID+"/receipt", nil)
	require.NoError(t, err)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(pdfResp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "la respuesta debe ser un PDF")
}

func TestAPI_CobroOfflineYSincronizacionManual(t *testing.T) {
	app, _, sw := newApp(t)
	sw.SetOnline(false)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Items:       []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 1}},
		Subtotal:    decimal.RequireFromString("10.00"),
		FinalAmount: decimal.RequireFromString("10.00"),
		ServedBy:    "user-1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.True(t, order.Pending, "sin conectividad la orden queda en la cola")

	// Estado: offline con 1 pendiente.
	resp = doJSON(t, app, http.MethodGet, "/api/sync/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, false, status["online"])
	assert.Equal(t, float64(1), status["pending"])

	// Vuelve la conectividad y el disparo manual drena la cola.
	sw.SetOnline(true)
	resp = doJSON(t, app, http.MethodPost, "/api/sync", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sync dto.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sync))
	assert.Equal(t, 1, sync.Synced)
}

func TestAPI_StockInsuficienteDevuelveConflicto(t *testing.T) {
	app, _, _ := newApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		Items:       []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 99}},
		Subtotal:    decimal.RequireFromString("990.00"),
		FinalAmount: decimal.RequireFromString("990.00"),
		ServedBy:    "user-1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
