package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request counters of a server instance.
type Metrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
	Items    prometheus.GaugeFunc
}

// NewMetrics registers the collectors on a private registry so several
// servers (tests) can coexist in one process.
func NewMetrics(store *Store) *Metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_devserver_requests_total",
			Help: "Requests handled by the todo dev server, by route and status code.",
		},
		[]string{"method", "route", "code"},
	)
	items := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "todo_devserver_items",
			Help: "Number of todo items currently stored.",
		},
		func() float64 { return float64(len(store.List())) },
	)

	reg.MustRegister(requests, items)

	return &Metrics{
		Registry: reg,
		Requests: requests,
		Items:    items,
	}
}

// middleware counts every request once the route pattern is known.
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
