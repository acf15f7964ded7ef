// Package metrics exposes Prometheus indicators for the Anti-Captcha client.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	anticaptcha "github.com/anatolykoptev/go-anticaptcha"
)

const namespace = "anticaptcha"

// Solve outcomes.
const (
	SolveReady     = "ready"
	SolveAPIError  = "api_error"
	SolveError     = "error"
	SolveCancelled = "cancelled"
)

// PromIndicators holds the client's Prometheus collectors.
type PromIndicators struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	solvesTotal     *prometheus.CounterVec
	solveDuration   *prometheus.HistogramVec
}

// NewPromIndicators registers the collectors on reg.
func NewPromIndicators(reg prometheus.Registerer) *PromIndicators {
	return &PromIndicators{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "API requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API request latency",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
			},
			[]string{"endpoint"},
		),
		solvesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Solve calls by task type and outcome",
			},
			[]string{"type", "outcome"},
		),
		solveDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Time from task creation to a terminal result",
				Buckets:   prometheus.LinearBuckets(5, 10, 12), // 5s to 115s
			},
			[]string{"type"},
		),
	}
}

// Hook returns a function for anticaptcha.ClientConfig.MetricsHook.
func (p *PromIndicators) Hook() func(endpoint, outcome string, elapsed time.Duration) {
	return func(endpoint, outcome string, elapsed time.Duration) {
		p.requestsTotal.WithLabelValues(endpoint, outcome).Inc()
		p.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
}

// ObserveSolve records the outcome of one Solve call.
func (p *PromIndicators) ObserveSolve(taskType string, res *anticaptcha.SolveResult, err error, elapsed time.Duration) {
	outcome := SolveOutcome(res, err)
	p.solvesTotal.WithLabelValues(taskType, outcome).Inc()
	if outcome == SolveReady {
		p.solveDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
	}
}

// SolveOutcome classifies the return values of Client.Solve.
func SolveOutcome(res *anticaptcha.SolveResult, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return SolveCancelled
	case err != nil || res == nil:
		return SolveError
	case res.Failed():
		return SolveAPIError
	}
	return SolveReady
}

// Solve runs client.Solve and records its outcome.
func (p *PromIndicators) Solve(ctx context.Context, client *anticaptcha.Client, task anticaptcha.Task) (*anticaptcha.SolveResult, error) {
	start := time.Now()
	res, err := client.Solve(ctx, task)
	taskType := "unknown"
	if task != nil {
		taskType = task.TaskType()
	}
	p.ObserveSolve(taskType, res, err, time.Since(start))
	return res, err
}
