package orders

import (
	"context"

	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo en PDF de una orden sincronizada.
type ReceiptUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		generator:    generator,
	}
}

// GetReceiptPDF devuelve los bytes del PDF del recibo. Cliente y operador son
// opcionales en el recibo: si ya no existen se omiten, la orden es inmutable
// y se basta sola.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	var customer *entity.Customer
	if order.CustomerID != "" {
		customer, _ = uc.customerRepo.GetByID(order.CustomerID)
	}
	servedBy, _ := uc.userRepo.GetByID(order.ServedBy)
	return uc.generator.GenerateReceiptPDF(ctx, order, customer, servedBy)
}
