package usecase

import (
	"github.com/prometheus/client_golang/prometheus"

	"voice-task-assistant/internal/conversation"
)

// Metrics counts assistant turns and task commits.
type Metrics struct {
	turns        *prometheus.CounterVec
	tasksSaved   prometheus.Counter
	saveFailures prometheus.Counter
}

// NewMetrics creates the assistant counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "turns_total",
			Help:      "Conversation turns processed, by resulting state.",
		}, []string{"state"}),
		tasksSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "tasks_saved_total",
			Help:      "Tasks committed from confirmed drafts.",
		}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "save_failures_total",
			Help:      "Confirmed drafts that could not be stored.",
		}),
	}
	reg.MustRegister(m.turns, m.tasksSaved, m.saveFailures)
	return m
}

func (m *Metrics) observeTurn(state conversation.State) {
	m.turns.WithLabelValues(string(state)).Inc()
}
