package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts document generation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	bundles  *prometheus.CounterVec
	students prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics registers the generation metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		bundles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exam_bundles_generated_total",
				Help: "Document bundle generation attempts by outcome.",
			},
			[]string{"outcome"},
		),
		students: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "exam_students_assigned_total",
			Help: "Students placed into rooms across all generated bundles.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "exam_bundle_generation_seconds",
			Help:    "Time spent assigning, rendering and packing one bundle.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{m.bundles, m.students, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, students int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.bundles.WithLabelValues(outcome).Inc()
	if students > 0 {
		m.students.Add(float64(students))
	}
	m.duration.Observe(elapsed.Seconds())
}
