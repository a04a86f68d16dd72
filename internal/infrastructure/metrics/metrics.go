package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector métricas Prometheus de los binarios, con registro propio (no el global).
type Collector struct {
	registry *prometheus.Registry

	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New crea el collector bajo el namespace indicado (p. ej. "cadastro").
func New(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		GatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Peticiones al backend REST",
		}, []string{"method", "resource", "status_code"}),
		GatewayDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones al backend REST",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "resource"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas",
		}, []string{"method", "route", "status_code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP atendidas",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(c.GatewayRequests, c.GatewayDuration, c.HTTPRequests, c.HTTPDuration)
	return c
}

// Registry registro subyacente (tests y exportación).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler exposición en formato texto para /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveGateway registra una llamada al backend. status 0 = sin respuesta.
func (c *Collector) ObserveGateway(method, path string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	res := Resource(path)
	c.GatewayRequests.WithLabelValues(method, res, strconv.Itoa(status)).Inc()
	c.GatewayDuration.WithLabelValues(method, res).Observe(elapsed.Seconds())
}

// ObserveHTTP registra una petición atendida por un servidor fiber.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Resource primer segmento de la ruta ("/products/12" -> "products"); acota la cardinalidad.
func Resource(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
