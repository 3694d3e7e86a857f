package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cafe-pos-api/internal/application/ports"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// aiCallTimeout acota cada llamada al LLM para que las latencias externas no
// bloqueen los goroutines del servidor.
const aiCallTimeout = 10 * time.Second

// insightsOrderWindow cuántas órdenes recientes se mandan al análisis.
const insightsOrderWindow = 50

// AIUseCase orquesta las funciones de texto asistidas por IA.
type AIUseCase struct {
	llm         ports.LLMService
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *AIUseCase {
	return &AIUseCase{llm: llm, orderRepo: orderRepo, productRepo: productRepo}
}

// SuggestDescription valida la entrada y delega al LLM.
func (uc *AIUseCase) SuggestDescription(ctx context.Context, productName string) (string, error) {
	if productName == "" {
		return "", domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	text, err := uc.llm.GenerateProductDescription(ctx, productName)
	if err != nil {
		return "", fmt.Errorf("descripción IA: %w", err)
	}
	return text, nil
}

// SalesInsights arma la ventana de órdenes recientes más el catálogo y pide
// el análisis al LLM.
func (uc *AIUseCase) SalesInsights(ctx context.Context) (string, error) {
	orders, err := uc.orderRepo.List(insightsOrderWindow, 0)
	if err != nil {
		return "", err
	}
	products, err := uc.productRepo.List(200, 0)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	text, err := uc.llm.GenerateSalesInsights(ctx, orders, products)
	if err != nil {
		return "", fmt.Errorf("insights IA: %w", err)
	}
	return text, nil
}
