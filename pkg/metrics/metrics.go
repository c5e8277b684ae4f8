// Package metrics records pre-flight check outcomes as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift/managed-upgrade-prechecks/config"
)

const (
	metricsTag   = config.MetricsSubsystem
	clusterLabel = "cluster"
	checkLabel   = "check"
	statusLabel  = "status"
)

// Metrics records the outcome of checks and check runs.
//go:generate mockgen -destination=mocks/metrics.go -package=mocks github.com/openshift/managed-upgrade-prechecks/pkg/metrics Metrics
type Metrics interface {
	UpdateMetricCheckFailed(clusterName string, checkID string)
	UpdateMetricCheckSucceeded(clusterName string, checkID string)
	UpdateMetricCheckResult(clusterName string, checkID string, status string)
	UpdateMetricRunCompleted(clusterName string, status string, duration time.Duration)
}

// Counter is the Prometheus-backed Metrics implementation.
type Counter struct {
	checkFailed  *prometheus.GaugeVec
	checkResults *prometheus.CounterVec
	runs         *prometheus.CounterVec
	runDuration  *prometheus.GaugeVec
}

var _ Metrics = &Counter{}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Counter, error) {
	c := &Counter{
		checkFailed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsTag,
			Name:      "check_failed",
			Help:      "Set to 1 when the last run of a prerequisite check failed",
		}, []string{clusterLabel, checkLabel}),
		checkResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsTag,
			Name:      "check_results_total",
			Help:      "Prerequisite check results by status",
		}, []string{clusterLabel, checkLabel, statusLabel}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsTag,
			Name:      "runs_total",
			Help:      "Completed prerequisite check runs by aggregate status",
		}, []string{clusterLabel, statusLabel}),
		runDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsTag,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last prerequisite check run",
		}, []string{clusterLabel}),
	}
	for _, collector := range []prometheus.Collector{c.checkFailed, c.checkResults, c.runs, c.runDuration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Counter) UpdateMetricCheckFailed(clusterName string, checkID string) {
	c.checkFailed.With(prometheus.Labels{
		clusterLabel: clusterName,
		checkLabel:   checkID}).Set(
		float64(1))
}

func (c *Counter) UpdateMetricCheckSucceeded(clusterName string, checkID string) {
	c.checkFailed.With(prometheus.Labels{
		clusterLabel: clusterName,
		checkLabel:   checkID}).Set(
		float64(0))
}

func (c *Counter) UpdateMetricCheckResult(clusterName string, checkID string, status string) {
	c.checkResults.With(prometheus.Labels{
		clusterLabel: clusterName,
		checkLabel:   checkID,
		statusLabel:  status}).Inc()
}

func (c *Counter) UpdateMetricRunCompleted(clusterName string, status string, duration time.Duration) {
	c.runs.With(prometheus.Labels{
		clusterLabel: clusterName,
		statusLabel:  status}).Inc()
	c.runDuration.With(prometheus.Labels{
		clusterLabel: clusterName}).Set(
		duration.Seconds())
}
