package repository

import "github.com/jhoicas/cafe-pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar
	// dentro de una transacción para el ciclo leer-modificar-escribir de stock.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto (usado por el motor de órdenes).
	UpdateStock(productID string, stock int64) error
	List(limit, offset int) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
