// Package metrics expone contadores Prometheus de flujos del libro de stock y de HTTP.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

var _ inventory.WorkflowObserver = (*Registry)(nil)

// Registry agrupa los colectores de la aplicación en un registro propio.
type Registry struct {
	reg       *prometheus.Registry
	workflows *prometheus.CounterVec
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// New registra los colectores, incluidos los de proceso y runtime de Go.
func New(namespace string) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		workflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_workflows_total",
			Help:      "Flujos del libro de stock por operación, clase y resultado.",
		}, []string{"op", "class", "outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.reg.MustRegister(
		r.workflows, r.requests, r.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveWorkflow cuenta un flujo terminado.
func (r *Registry) ObserveWorkflow(op string, class entity.ItemClass, err error) {
	r.workflows.WithLabelValues(op, string(class), Outcome(err)).Inc()
}

// Outcome clasifica el error de un flujo en una etiqueta de baja cardinalidad.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrManualCorrection):
		return "manual_correction"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidGeometry),
		errors.Is(err, domain.ErrReturnExceedsInitial):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrDuplicateItem),
		errors.Is(err, domain.ErrStaleCancellation):
		return "rejected"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return "denied"
	default:
		return "store_error"
	}
}

// Middleware mide cada petición por la ruta registrada, no por la URL concreta.
func (r *Registry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		r.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		r.latency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposición en formato Prometheus.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer registro subyacente (tests).
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
