// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, detrás de un RWMutex. Es el backend del modo dev
// (STORE_DRIVER=memory) y de los tests: mismo contrato que PostgreSQL,
// incluida la atomicidad del TxRunner (snapshot + restore).
package memory

import (
	"sync"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// Store guarda todo el estado del terminal en memoria.
type Store struct {
	mu         sync.RWMutex
	products   map[string]entity.Product
	categories map[string]entity.Category
	customers  map[string]entity.Customer
	users      map[string]entity.User
	orders     map[string]entity.Order
	orderSeq   []string // orden de inserción, para listar el historial
	pending    []entity.Order
	flags      map[string]bool
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]entity.Product),
		categories: make(map[string]entity.Category),
		customers:  make(map[string]entity.Customer),
		users:      make(map[string]entity.User),
		orders:     make(map[string]entity.Order),
		flags:      make(map[string]bool),
	}
}

// snapshot clona el estado completo (para el rollback del TxRunner).
type snapshot struct {
	products   map[string]entity.Product
	categories map[string]entity.Category
	customers  map[string]entity.Customer
	users      map[string]entity.User
	orders     map[string]entity.Order
	orderSeq   []string
	pending    []entity.Order
	flags      map[string]bool
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products:   make(map[string]entity.Product, len(s.products)),
		categories: make(map[string]entity.Category, len(s.categories)),
		customers:  make(map[string]entity.Customer, len(s.customers)),
		users:      make(map[string]entity.User, len(s.users)),
		orders:     make(map[string]entity.Order, len(s.orders)),
		orderSeq:   append([]string(nil), s.orderSeq...),
		pending:    cloneOrders(s.pending),
		flags:      make(map[string]bool, len(s.flags)),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.categories {
		snap.categories[k] = v
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = cloneOrder(v)
	}
	for k, v := range s.flags {
		snap.flags[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.categories = snap.categories
	s.customers = snap.customers
	s.users = snap.users
	s.orders = snap.orders
	s.orderSeq = snap.orderSeq
	s.pending = snap.pending
	s.flags = snap.flags
}

// cloneOrder copia la orden incluyendo su slice de líneas, para que ningún
// caller comparta memoria con el almacén.
func cloneOrder(o entity.Order) entity.Order {
	c := o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	return c
}

func cloneOrders(in []entity.Order) []entity.Order {
	out := make([]entity.Order, len(in))
	for i, o := range in {
		out[i] = cloneOrder(o)
	}
	return out
}
