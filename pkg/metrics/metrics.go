// Package metrics exposes query counters for the character source.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Recorder is what the character source reports to.
type Recorder interface {
	RecordQuery(outcome string, duration time.Duration)
	RecordCacheHit()
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Collector struct {
	queries   *prometheus.CounterVec
	cacheHits prometheus.Counter
	latency   prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rickmorty_queries_total",
			Help: "Character queries sent to the GraphQL endpoint by outcome.",
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rickmorty_cache_hits_total",
			Help: "Character queries answered from the response cache.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rickmorty_query_latency_seconds",
			Help:    "Latency of character queries sent to the endpoint.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.queries, c.cacheHits, c.latency)
	return c
}

func (c *Collector) RecordQuery(outcome string, duration time.Duration) {
	c.queries.WithLabelValues(outcome).Inc()
	c.latency.Observe(duration.Seconds())
}

func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

type Noop struct{}

func (Noop) RecordQuery(string, time.Duration) {}
func (Noop) RecordCacheHit()                   {}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Serve runs the /metrics endpoint until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("metrics endpoint listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics endpoint stopped", zap.Error(err))
		}
	}()
}
