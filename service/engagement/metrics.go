package engagement

import (
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	transitions   *prometheus.CounterVec
	sweepActions  *prometheus.CounterVec
	collaborators *prometheus.CounterVec
	conflicts     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engagement",
			Name:      "transition_total",
			Help:      "Number of committed assignment status transitions",
		}, []string{"from", "to"}),

		sweepActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engagement",
			Name:      "sweep_action_total",
			Help:      "Number of sweep decisions by action",
		}, []string{"action"}),

		collaborators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engagement",
			Name:      "collaborator_failure_total",
			Help:      "Number of failed calls to external collaborators",
		}, []string{"collaborator"}),

		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "engagement",
			Name:      "precondition_failure_total",
			Help:      "Number of conditional updates rejected by a concurrent change",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.transitions, m.sweepActions, m.collaborators, m.conflicts)
	}
	return m
}

func (m *metrics) transition(from, to model.AssignmentStatus) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *metrics) sweepAction(a sweepAction) {
	m.sweepActions.WithLabelValues(a.String()).Inc()
}

func (m *metrics) collaboratorFailure(name string) {
	m.collaborators.WithLabelValues(name).Inc()
}
