package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
)

// SyncHandler expone el reconciliador offline: disparo manual y estado de la
// cola. El disparo automático lo hace SyncUseCase.Watch sobre la señal de
// conectividad.
type SyncHandler struct {
	uc     *orders.SyncUseCase
	signal orders.ConnectivitySignal
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *orders.SyncUseCase, signal orders.ConnectivitySignal) *SyncHandler {
	return &SyncHandler{uc: uc, signal: signal}
}

// Sync godoc
// @Summary      Disparar la sincronización de órdenes offline
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      500  {object}  dto.ErrorResponse  "La cola queda intacta y se reintenta"
// @Router       /api/sync [post]
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	synced, err := h.uc.SyncPendingOrders(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.SyncResponse{Synced: synced})
}

// Status godoc
// @Summary      Estado de conectividad y tamaño de la cola offline
// @Tags         sync
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/sync/status [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	pending, err := h.uc.PendingCount()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"online":  h.signal.Online(),
		"pending": pending,
	})
}
