package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects the dashboard counters behind a dedicated prometheus
// registry so the /metrics endpoint only exposes what the service owns.
type Registry struct {
	registry            *prometheus.Registry
	actionsTotal        *prometheus.CounterVec
	balanceRefreshTotal *prometheus.CounterVec
	sessionsTotal       *prometheus.CounterVec
	activityDepth       prometheus.Gauge
}

func NewRegistry() *Registry {
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exitdapp_vault_actions_total",
		Help: "Invest and withdraw submissions by final result",
	}, []string{"action", "result"})

	refreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exitdapp_balance_refresh_total",
		Help: "Vault balance reads by result",
	}, []string{"result"})

	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exitdapp_sessions_total",
		Help: "Wallet sessions opened and closed",
	}, []string{"event"})

	depth := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "exitdapp_activity_log_depth",
		Help: "Entries currently held in the activity log",
	})

	r := prometheus.NewRegistry()
	r.MustRegister(actions, refreshes, sessions, depth)

	return &Registry{
		registry:            r,
		actionsTotal:        actions,
		balanceRefreshTotal: refreshes,
		sessionsTotal:       sessions,
		activityDepth:       depth,
	}
}

func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Registry) IncAction(action, result string) {
	m.actionsTotal.WithLabelValues(action, result).Inc()
}

func (m *Registry) IncBalanceRefresh(result string) {
	m.balanceRefreshTotal.WithLabelValues(result).Inc()
}

func (m *Registry) IncSession(event string) {
	m.sessionsTotal.WithLabelValues(event).Inc()
}

func (m *Registry) SetActivityDepth(depth int) {
	m.activityDepth.Set(float64(depth))
}
