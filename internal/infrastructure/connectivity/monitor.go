// Package connectivity implementa el puerto ConnectivitySignal: el estado
// online/offline del terminal y sus transiciones. El monitor HTTP es el
// adaptador de producción; el Switch manual sirve para tests y modo dev.
package connectivity

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// Ensure Monitor implements orders.ConnectivitySignal.
var _ orders.ConnectivitySignal = (*Monitor)(nil)

// Monitor sondea periódicamente una URL con HEAD y publica las transiciones
// online/offline. Arranca asumiéndose offline hasta que el primer sondeo
// tenga éxito.
type Monitor struct {
	probeURL string
	interval time.Duration
	client   *http.Client
	log      *logger.Logger

	online  atomic.Bool
	changes chan bool
}

// NewMonitor construye el monitor. El timeout de cada sondeo es el intervalo
// mismo: un sondeo colgado cuenta como offline.
func NewMonitor(probeURL string, interval time.Duration, log *logger.Logger) *Monitor {
	return &Monitor{
		probeURL: probeURL,
		interval: interval,
		client:   &http.Client{Timeout: interval},
		log:      log,
		changes:  make(chan bool, 8),
	}
}

// Online devuelve el último estado observado.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Changes entrega el nuevo estado en cada transición.
func (m *Monitor) Changes() <-chan bool {
	return m.changes
}

// Start sondea hasta que el contexto se cancele. Correr en una goroutine.
func (m *Monitor) Start(ctx context.Context) {
	// Sondeo inmediato para no esperar un intervalo completo al arrancar.
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			close(m.changes)
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	online := false
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
	if err == nil {
		resp, err := m.client.Do(req)
		if err == nil {
			resp.Body.Close()
			online = resp.StatusCode < http.StatusInternalServerError
		}
	}

	if m.online.Swap(online) == online {
		return
	}
	if online {
		m.log.Info().Str("probe_url", m.probeURL).Msg("conectividad recuperada")
	} else {
		m.log.Warn().Str("probe_url", m.probeURL).Msg("conectividad perdida; las órdenes pasan a la cola offline")
	}
	select {
	case m.changes <- online:
	default:
		// El consumidor va atrasado; el estado ya quedó en online y el
		// próximo sondeo vuelve a notificar si hay otra transición.
	}
}
