package connectivity

import (
	"sync/atomic"

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
)

// Ensure Switch implements orders.ConnectivitySignal.
var _ orders.ConnectivitySignal = (*Switch)(nil)

// Switch es una señal de conectividad manual: el estado lo fija quien la
// construye. La usan los tests y el modo dev en memoria.
type Switch struct {
	online  atomic.Bool
	changes chan bool
}

// NewSwitch crea el switch con el estado inicial dado.
func NewSwitch(online bool) *Switch {
	s := &Switch{changes: make(chan bool, 8)}
	s.online.Store(online)
	return s
}

// Online devuelve el estado actual.
func (s *Switch) Online() bool {
	return s.online.Load()
}

// Changes entrega el nuevo estado en cada transición.
func (s *Switch) Changes() <-chan bool {
	return s.changes
}

// SetOnline fija el estado y notifica solo si hubo transición.
func (s *Switch) SetOnline(online bool) {
	if s.online.Swap(online) == online {
		return
	}
	select {
	case s.changes <- online:
	default:
	}
}
