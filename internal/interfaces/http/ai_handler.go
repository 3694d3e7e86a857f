package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
)

// AIHandler maneja los endpoints de texto asistido por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestDescription godoc
// @Summary      Sugerir descripción de producto con IA
// @Description  Redacta una descripción corta y atractiva para un artículo del
//               menú. Timeout interno de 10 s.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIDescriptionRequest  true  "product_name (obligatorio)"
// @Success      200   {object}  dto.AIDescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Router       /api/ai/suggest-description [post]
func (h *AIHandler) SuggestDescription(c *fiber.Ctx) error {
	var req dto.AIDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	text, err := h.uc.SuggestDescription(c.Context(), req.ProductName)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(dto.AIDescriptionResponse{Description: text})
}

// SalesInsights godoc
// @Summary      Análisis de ventas con IA
// @Description  Analiza las últimas órdenes y el catálogo y devuelve 3-4
//               observaciones accionables. Timeout interno de 10 s.
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.AIInsightsResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Router       /api/ai/sales-insights [get]
func (h *AIHandler) SalesInsights(c *fiber.Ctx) error {
	text, err := h.uc.SalesInsights(c.Context())
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(dto.AIInsightsResponse{Insights: text})
}

// aiError traduce los fallos del servicio de IA.
func aiError(c *fiber.Ctx, err error) error {
	if isTimeout(err) {
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
		})
	}
	if strings.Contains(err.Error(), "GEMINI_API_KEY") {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "AI_UNAVAILABLE", Message: "el servicio de IA no está configurado",
		})
	}
	return errorJSON(c, err)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
