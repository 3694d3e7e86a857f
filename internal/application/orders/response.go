package orders

import (
	"github.com/jhoicas/cafe-pos-api/internal/application/dto"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// ToOrderResponse mapea una orden de dominio a su DTO de respuesta.
// pending indica que la orden quedó en la cola offline.
func ToOrderResponse(o *entity.Order, pending bool) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:             o.ID,
		Items:          items,
		Subtotal:       o.Subtotal,
		PointsRedeemed: o.PointsRedeemed,
		FinalAmount:    o.FinalAmount,
		CustomerID:     o.CustomerID,
		PointsEarned:   o.PointsEarned,
		Date:           o.Date,
		ServedBy:       o.ServedBy,
		Pending:        pending,
	}
}
