package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (fidelidad).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetForUpdate bloquea la fila del cliente dentro de una transacción
	// (ajustes de puntos del motor de órdenes y del reconciliador).
	GetForUpdate(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// UpdatePoints fija el saldo de puntos del cliente.
	UpdatePoints(customerID string, points int64) error
	List(limit, offset int) ([]*entity.Customer, error)
	// Search busca por subcadena de nombre o teléfono, sin distinguir
	// mayúsculas (lookup del terminal al asociar un cliente al cobro).
	Search(query string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
