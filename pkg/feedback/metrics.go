package feedback

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts answers and points per game.
type Metrics struct {
	answers *prometheus.CounterVec
	points  *prometheus.CounterVec
}

// NewMetrics creates the answer collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "citizen_dojo",
				Subsystem: "session",
				Name:      "answers_total",
				Help:      "Total number of judged answers.",
			},
			[]string{"game", "verdict"},
		),
		points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "citizen_dojo",
				Subsystem: "session",
				Name:      "points_total",
				Help:      "Total points awarded for correct answers.",
			},
			[]string{"game"},
		),
	}
	reg.MustRegister(m.answers, m.points)
	return m
}

// Emit records s.
func (m *Metrics) Emit(s Signal) {
	verdict := "incorrect"
	switch {
	case s.Positive:
		verdict = "correct"
	case s.TimedOut:
		verdict = "timeout"
	}
	m.answers.WithLabelValues(s.GameID, verdict).Inc()
	if s.Points > 0 {
		m.points.WithLabelValues(s.GameID).Add(float64(s.Points))
	}
}

// Handler exposes the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
