// Package metrics provides Prometheus metrics for the drink tracker.
package metrics

import (
	"net/http"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the tracker's Prometheus metrics. It satisfies
// tracker.Recorder.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	drinksLogged   *prometheus.CounterVec
	friendsTracked prometheus.Gauge
	commandErrors  *prometheus.CounterVec
}

// NewManager creates a metrics manager. Without WithRegistry the metrics
// live on a fresh registry rather than the global default.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "drinktracker",
		subsystem: "tracker",
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)

	m.drinksLogged = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "drinks_logged_total",
			Help:      "Total number of drinks logged by drink type",
		},
		[]string{"drink_type"},
	)

	m.friendsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "friends_tracked",
		Help:      "Current number of tracked friends",
	})

	m.commandErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "command_errors_total",
			Help:      "Total number of failed tracker commands by command and error kind",
		},
		[]string{"command", "kind"},
	)

	// Expose every drink type from the first scrape
	for _, t := range models.AllDrinkTypes {
		m.drinksLogged.WithLabelValues(string(t))
	}

	return m
}

// DrinkLogged increments the drinks logged counter for a drink type.
func (m *Manager) DrinkLogged(drinkType models.DrinkType) {
	m.drinksLogged.WithLabelValues(string(drinkType)).Inc()
}

// FriendsTracked sets the tracked friends gauge.
func (m *Manager) FriendsTracked(count int) {
	m.friendsTracked.Set(float64(count))
}

// CommandFailed increments the command errors counter.
func (m *Manager) CommandFailed(command, kind string) {
	m.commandErrors.WithLabelValues(command, kind).Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
