package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/shopspring/decimal"
)

// OrderHandler maneja el cobro, el historial y los recibos.
type OrderHandler struct {
	createUC  *orders.CreateOrderUseCase
	receiptUC *orders.ReceiptUseCase
	signal    orders.ConnectivitySignal
}

// NewOrderHandler construye el handler. La señal de conectividad decide si el
// cobro entra online o a la cola offline; el motor la recibe como parámetro
// explícito.
func NewOrderHandler(createUC *orders.CreateOrderUseCase, receiptUC *orders.ReceiptUseCase, signal orders.ConnectivitySignal) *OrderHandler {
	return &OrderHandler{createUC: createUC, receiptUC: receiptUC, signal: signal}
}

// Create godoc
// @Summary      Cobrar un carrito
// @Description  Descuenta stock, ajusta puntos (online) o encola la orden (offline).
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Carrito y montos mostrados al operador"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock o puntos insuficientes"
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	lines := make([]orders.OrderLineInput, len(in.Items))
	for i, item := range in.Items {
		lines[i] = orders.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	online := h.signal.Online()

	order, err := h.createUC.CreateOrder(c.Context(), orders.CreateOrderInput{
		Items:          lines,
		Subtotal:       in.Subtotal,
		FinalAmount:    in.FinalAmount,
		PointsRedeemed: in.PointsRedeemed,
		ServedBy:       in.ServedBy,
		CustomerID:     in.CustomerID,
		Online:         online,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orders.ToOrderResponse(order, !online))
}

// List godoc
// @Summary      Historial de órdenes sincronizadas
// @Tags         orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.createUC.List(limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	items := make([]dto.OrderResponse, len(list))
	for i, o := range list {
		items[i] = *orders.ToOrderResponse(o, false)
	}
	return c.JSON(dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// GetByID godoc
// @Summary      Obtener una orden sincronizada
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.createUC.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(orders.ToOrderResponse(order, false))
}

// Receipt godoc
// @Summary      Recibo en PDF de una orden
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.GetReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// MaxRedeemable godoc
// @Summary      Máximo de puntos canjeables para un cliente y subtotal
// @Tags         orders
// @Produce      json
// @Param        customer_id  query  string  true  "ID del cliente"
// @Param        subtotal     query  string  true  "Subtotal del carrito"
// @Success      200  {object}  map[string]int64
// @Router       /api/orders/max-redeemable [get]
func (h *OrderHandler) MaxRedeemable(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	subtotal, err := decimal.NewFromString(c.Query("subtotal"))
	if err != nil || customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y subtotal son requeridos"})
	}
	points, err := h.createUC.MaxRedeemable(customerID, subtotal)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"max_redeemable": points})
}
