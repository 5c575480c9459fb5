package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsInterface defines the interface for the metrics service. This is required
// for dependency injection and mocking in tests.
type MetricsInterface interface {
	AddConfirmedDeployment(plan string)
	AddExpiredWatch(plan string)
	AddResumedBuild(plan string)
	AddFailedTrigger(plan string)
	AddInProgressWatch()
	RemoveInProgressWatch()
}

// Metrics contains all the prometheus collectors.
type Metrics struct {
	ConfirmedDeployments *prometheus.GaugeVec
	ExpiredWatches       *prometheus.GaugeVec
	ResumedBuilds        *prometheus.GaugeVec
	FailedTriggers       *prometheus.GaugeVec
	InProgressWatches    prometheus.Gauge
}

// NewMetrics creates and registers the metrics with the provided Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ConfirmedDeployments: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "confirmed_deployments",
			Help: "The amount of deployments confirmed on the expected version since startup.",
		}, []string{"plan"}),
		ExpiredWatches: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "expired_watches",
			Help: "The amount of watches that exhausted their poll budget unconfirmed.",
		}, []string{"plan"}),
		ResumedBuilds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "resumed_builds",
			Help: "The amount of Bamboo build stages resumed since startup.",
		}, []string{"plan"}),
		FailedTriggers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "failed_triggers",
			Help: "The amount of resume calls rejected or failed per plan.",
		}, []string{"plan"}),
		InProgressWatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "in_progress_watches",
			Help: "The number of watches currently polling or triggering.",
		}),
	}

	reg.MustRegister(m.ConfirmedDeployments, m.ExpiredWatches, m.ResumedBuilds, m.FailedTriggers, m.InProgressWatches)

	return m
}

// AddConfirmedDeployment increments the ConfirmedDeployments gauge for the given plan.
func (m *Metrics) AddConfirmedDeployment(plan string) {
	m.ConfirmedDeployments.WithLabelValues(plan).Inc()
}

// AddExpiredWatch increments the ExpiredWatches gauge for the given plan.
func (m *Metrics) AddExpiredWatch(plan string) {
	m.ExpiredWatches.WithLabelValues(plan).Inc()
}

// AddResumedBuild increments the ResumedBuilds gauge for the given plan.
func (m *Metrics) AddResumedBuild(plan string) {
	m.ResumedBuilds.WithLabelValues(plan).Inc()
}

// AddFailedTrigger increments the FailedTriggers gauge for the given plan.
func (m *Metrics) AddFailedTrigger(plan string) {
	m.FailedTriggers.WithLabelValues(plan).Inc()
}

// AddInProgressWatch increments the InProgressWatches gauge.
func (m *Metrics) AddInProgressWatch() {
	m.InProgressWatches.Inc()
}

// RemoveInProgressWatch decrements the InProgressWatches gauge.
func (m *Metrics) RemoveInProgressWatch() {
	m.InProgressWatches.Dec()
}
