package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// User representa un operador del terminal. AccessCode es el PIN de 4 a 6
// dígitos con el que inicia sesión en el terminal.
type User struct {
	ID         string
	Name       string
	Role       string // admin, worker
	AccessCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
