package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the assessment module.
type Metrics struct {
	// Submissions by framework and scoring model
	Submissions *prometheus.CounterVec

	// Score distribution by framework
	ScorePercentage *prometheus.HistogramVec

	// Critical non-compliances flagged at submission time
	CriticalFindings *prometheus.CounterVec
}

// New creates a new Metrics instance with all assessment metrics registered.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mise_assessment_submissions_total",
			Help: "Total assessment submissions by framework and scoring model",
		}, []string{"framework", "model"}),

		ScorePercentage: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mise_assessment_score_percentage",
			Help:    "Distribution of assessment percentage scores by framework",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}, []string{"framework"}),

		CriticalFindings: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mise_assessment_critical_findings_total",
			Help: "Total critical non-compliances recorded by framework",
		}, []string{"framework"}),
	}
}

// RecordSubmission counts one scored submission.
func (m *Metrics) RecordSubmission(framework, model string, percentage float64) {
	if m != nil {
		m.Submissions.WithLabelValues(framework, model).Inc()
		m.ScorePercentage.WithLabelValues(framework).Observe(percentage)
	}
}

// RecordCriticalFindings counts critical non-compliances in a submission.
func (m *Metrics) RecordCriticalFindings(framework string, n int) {
	if m != nil && n > 0 {
		m.CriticalFindings.WithLabelValues(framework).Add(float64(n))
	}
}
