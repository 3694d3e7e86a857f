package ports

import (
	"context"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// LLMService define el puerto de salida para los servicios de texto generado
// por IA (descripciones de producto e insights de ventas). Cualquier adaptador
// (Gemini, Anthropic, mock) debe implementar esta interfaz; el núcleo nunca
// depende de su salida, solo se la entrega al terminal.
type LLMService interface {
	// GenerateProductDescription redacta una descripción corta y atractiva
	// para un artículo del café. El contexto debe llevar timeout.
	GenerateProductDescription(ctx context.Context, productName string) (string, error)

	// GenerateSalesInsights analiza las últimas órdenes y el catálogo y
	// devuelve 3-4 observaciones accionables en una lista.
	GenerateSalesInsights(ctx context.Context, orders []*entity.Order, products []*entity.Product) (string, error)
}
