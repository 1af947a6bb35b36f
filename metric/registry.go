package metric

import (
	stderrors "errors"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360/semsubject/errors"
)

// Registry owns a dedicated Prometheus registry holding the engine
// metrics plus any metrics callers register alongside them.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
	registered         map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a registry with the engine metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		metrics:            NewMetrics(),
		registered:         make(map[string]prometheus.Collector),
	}

	for _, c := range r.metrics.collectors() {
		r.prometheusRegistry.MustRegister(c)
	}

	return r
}

// Metrics returns the engine metrics.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Register adds a caller-owned collector under a name. Registering an
// already registered collector under a new name is tolerated; reusing
// a name is not.
func (r *Registry) Register(name string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registered[name]; exists {
		return errors.Validationf("metric %q already registered", name)
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !stderrors.As(err, &already) {
			return errors.Wrap(err, errors.KindValidation, "register metric "+name)
		}
	}

	r.registered[name] = collector
	return nil
}

// Unregister removes a caller-owned collector by name.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	collector, exists := r.registered[name]
	if !exists {
		return false
	}
	delete(r.registered, name)
	return r.prometheusRegistry.Unregister(collector)
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{})
}
