package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts page edits by operation and outcome.
type Metrics struct {
	edits *prometheus.CounterVec
}

// NewMetrics registers the edit counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_edits_total",
				Help: "Total number of page edit operations, by whether they changed the page.",
			},
			[]string{"op", "outcome"},
		),
	}
	if err := reg.Register(m.edits); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(op string, changed bool) {
	if m == nil {
		return
	}
	outcome := "applied"
	if !changed {
		outcome = "ignored"
	}
	m.edits.WithLabelValues(op, outcome).Inc()
}
