package lvgl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event dispatch outcomes.
const (
	outcomeForwarded = "forwarded"
	outcomeFiltered  = "filtered"
	outcomeOrphan    = "orphan"
	outcomePanic     = "panic"
)

type metrics struct {
	events        *prometheus.CounterVec
	iterations    prometheus.Counter
	posted        prometheus.Counter
	substitutions prometheus.Counter
	widgets       prometheus.Gauge
}

// newMetrics builds the display collectors. A nil registerer leaves them
// unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvgl",
			Name:      "events_total",
			Help:      "Native events received, by semantic event and dispatch outcome.",
		}, []string{"event", "outcome"}),
		iterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvgl",
			Name:      "loop_iterations_total",
			Help:      "Owner loop iterations, each ending in one timer handler call.",
		}),
		posted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvgl",
			Name:      "posted_calls_total",
			Help:      "Closures run on the owner loop through Post.",
		}),
		substitutions: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvgl",
			Name:      "text_substitutions_total",
			Help:      "Strings replaced by a placeholder because they were not valid C strings.",
		}),
		widgets: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvgl",
			Name:      "widgets",
			Help:      "Widgets registered in the arena.",
		}),
	}
}

func (m *metrics) event(ev Event, outcome string) {
	m.events.WithLabelValues(ev.String(), outcome).Inc()
}
