package dto

// CreateCustomerRequest alta de cliente de fidelidad. Inicia con 0 puntos.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest actualización parcial tipada (nil = sin cambio).
// LoyaltyPoints solo desde administración; el motor de órdenes ajusta por su cuenta.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	LoyaltyPoints *int64  `json:"loyalty_points"`
}

// CustomerResponse respuesta de cliente.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LoyaltyPoints int64  `json:"loyalty_points"`
}
