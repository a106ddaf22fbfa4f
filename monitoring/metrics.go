package monitoring

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"xrpl-payment-portal/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const credentialKeyPattern = "cookies:*"

// Monitor implements ports.FlowMetrics on its own registry.
type Monitor struct {
	registry *prometheus.Registry
	redis    *redis.Client
	log      zerolog.Logger

	initiateDuration *prometheus.HistogramVec
	pollTicks        *prometheus.CounterVec
	outcomes         *prometheus.CounterVec
	logins           *prometheus.CounterVec
	credentialHosts  prometheus.Gauge
	goroutines       prometheus.Gauge
}

// NewMonitor creates a Monitor. redisClient may be nil when the credential
// store is in memory.
func NewMonitor(redisClient *redis.Client, log zerolog.Logger) *Monitor {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Monitor{
		registry: reg,
		redis:    redisClient,
		log:      log,
		initiateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_initiate_duration_seconds",
				Help:    "Duration of payment initiate calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"result"},
		),
		pollTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_poll_ticks_total",
				Help: "Total payment status poll ticks",
			},
			[]string{"result"},
		),
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_payment_outcomes_total",
				Help: "Total payment requests reaching a terminal state",
			},
			[]string{"state"},
		),
		logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_key_logins_total",
				Help: "Total key login submissions",
			},
			[]string{"result"},
		),
		credentialHosts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "portal_credential_hosts",
				Help: "Hosts with stored cookies in the shared credential store",
			},
		),
		goroutines: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "portal_active_goroutines",
				Help: "Current number of active goroutines",
			},
		),
	}
}

// Registry returns the registry the metrics live on.
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveInitiate records one initiate call.
func (m *Monitor) ObserveInitiate(result string, elapsed time.Duration) {
	m.initiateDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// IncPollTick counts one status poll tick.
func (m *Monitor) IncPollTick(result string) {
	m.pollTicks.WithLabelValues(result).Inc()
}

// IncOutcome counts a payment request reaching state.
func (m *Monitor) IncOutcome(state domain.FlowState) {
	m.outcomes.WithLabelValues(string(state)).Inc()
}

// IncLogin counts one key login submission.
func (m *Monitor) IncLogin(result string) {
	m.logins.WithLabelValues(result).Inc()
}

// Collect refreshes the gauges once.
func (m *Monitor) Collect(ctx context.Context) {
	m.goroutines.Set(float64(runtime.NumGoroutine()))

	if m.redis == nil {
		return
	}
	var (
		cursor uint64
		hosts  int
	)
	for {
		keys, next, err := m.redis.Scan(ctx, cursor, credentialKeyPattern, 100).Result()
		if err != nil {
			m.log.Warn().Err(err).Msg("Collecting credential store metrics failed")
			return
		}
		hosts += len(keys)
		if next == 0 {
			break
		}
		cursor = next
	}
	m.credentialHosts.Set(float64(hosts))
}

// Serve exposes /metrics on addr until ctx is done, refreshing the gauges
// every interval.
func (m *Monitor) Serve(ctx context.Context, addr string, interval time.Duration) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go m.collectLoop(ctx, interval)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	m.log.Info().Str("addr", addr).Msg("Metrics endpoint listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *Monitor) collectLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Collect(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Collect(ctx)
		}
	}
}
