package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// OrderRepository define el puerto para la colección de órdenes sincronizadas.
// Las órdenes son inmutables: solo se insertan y se leen.
type OrderRepository interface {
	Create(order *entity.Order) error
	// Exists indica si ya hay una orden sincronizada con ese ID
	// (clave de deduplicación del reconciliador).
	Exists(id string) (bool, error)
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	Count() (int, error)
}
