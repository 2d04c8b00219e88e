// Package metrics exposes dialog engine activity as Prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/sortium/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors groups the metrics recorded for one run.
type Collectors struct {
	NodeVisits       *prometheus.CounterVec
	Turns            *prometheus.CounterVec
	ClassifyDuration prometheus.Histogram
	ClassifyErrors   prometheus.Counter

	registry *prometheus.Registry
}

// New creates collectors registered on a private registry.
func New() *Collectors {
	c := &Collectors{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortium_node_visits_total",
				Help: "Total number of times a node was presented",
			},
			[]string{"node_id"},
		),
		Turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortium_turns_total",
				Help: "Completed turns by outcome",
			},
			[]string{"outcome"},
		),
		ClassifyDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sortium_classify_duration_seconds",
				Help:    "Duration of classifier calls",
				Buckets: prometheus.DefBuckets,
			},
		),
		ClassifyErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sortium_classify_errors_total",
				Help: "Classifier calls that failed",
			},
		),
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(c.NodeVisits, c.Turns, c.ClassifyDuration, c.ClassifyErrors)
	return c
}

// Registry returns the registry holding the collectors.
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks that record into the collectors, chained after next.
func (c *Collectors) Hooks(next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			c.NodeVisits.WithLabelValues(e.NodeID).Inc()
			if next.OnNodeEnter != nil {
				next.OnNodeEnter(ctx, e)
			}
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			c.ClassifyDuration.Observe(e.Duration.Seconds())
			if e.Err != nil {
				c.ClassifyErrors.Inc()
			}
			if next.OnClassify != nil {
				next.OnClassify(ctx, e)
			}
		},
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			c.Turns.WithLabelValues(e.Outcome).Inc()
			if next.OnTurn != nil {
				next.OnTurn(ctx, e)
			}
		},
	}
}

// Router serves /metrics and /healthz.
func (c *Collectors) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	return r
}

// Serve listens on addr until ctx is done.
func (c *Collectors) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: c.Router(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
