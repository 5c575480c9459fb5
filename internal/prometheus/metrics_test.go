package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_AddConfirmedDeployment(t *testing.T) {
	// Arrange
	m := NewMetrics(prometheus.NewRegistry())
	expectedMetric := `
		# HELP confirmed_deployments The amount of deployments confirmed on the expected version since startup.
		# TYPE confirmed_deployments gauge
		confirmed_deployments{plan="REL"} 1
	`

	// Act
	m.AddConfirmedDeployment("REL")

	// Assert
	err := testutil.CollectAndCompare(m.ConfirmedDeployments, strings.NewReader(expectedMetric))
	assert.NoError(t, err)
}

func TestMetrics_AddExpiredWatch(t *testing.T) {
	// Arrange
	m := NewMetrics(prometheus.NewRegistry())
	expectedMetric := `
		# HELP expired_watches The amount of watches that exhausted their poll budget unconfirmed.
		# TYPE expired_watches gauge
		expired_watches{plan="REL"} 1
	`

	// Act
	m.AddExpiredWatch("REL")

	// Assert
	err := testutil.CollectAndCompare(m.ExpiredWatches, strings.NewReader(expectedMetric))
	assert.NoError(t, err)
}

func TestMetrics_AddResumedBuild(t *testing.T) {
	// Arrange
	m := NewMetrics(prometheus.NewRegistry())

	// Act
	m.AddResumedBuild("REL")
	m.AddResumedBuild("REL")

	// Assert
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ResumedBuilds.WithLabelValues("REL")))
}

func TestMetrics_AddFailedTrigger(t *testing.T) {
	// Arrange
	m := NewMetrics(prometheus.NewRegistry())

	// Act
	m.AddFailedTrigger("REL")

	// Assert
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FailedTriggers.WithLabelValues("REL")))
}

func TestMetrics_InProgressWatches(t *testing.T) {
	// Arrange
	m := NewMetrics(prometheus.NewRegistry())

	// Assert initial state
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InProgressWatches))

	// Act: Add a watch
	m.AddInProgressWatch()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InProgressWatches))

	// Act: Remove a watch
	m.RemoveInProgressWatch()
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InProgressWatches))
}
