// Package metrics provides Prometheus counters for the reconstruction
// pipeline: event throughput, selector acceptance, and histogram fills.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the pipeline metrics and their registry.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	eventsProcessed prometheus.Counter
	eventsSkipped   *prometheus.CounterVec

	tracksSeen     prometheus.Counter
	pionsAccepted  prometheus.Counter
	v0sSeen        prometheus.Counter
	kshortAccepted prometheus.Counter

	sameEventFills prometheus.Counter
	mixedFills     prometheus.Counter
	mixedPairs     prometheus.Counter
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(sub string) Option {
	return func(m *Manager) {
		if sub != "" {
			m.subsystem = sub
		}
	}
}

// WithRegistry sets the registry metrics are registered with.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "ckstar",
		subsystem: "pipeline",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.eventsProcessed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_processed_total",
		Help:      "Collision events run through the same-event pass.",
	})
	m.eventsSkipped = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_skipped_total",
		Help:      "Collision events skipped, by reason.",
	}, []string{"reason"})
	m.tracksSeen = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracks_seen_total",
		Help:      "Charged tracks examined by the selectors.",
	})
	m.pionsAccepted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pions_accepted_total",
		Help:      "Tracks surviving PID and quality selection.",
	})
	m.v0sSeen = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "v0s_seen_total",
		Help:      "V0 candidates examined by the selectors.",
	})
	m.kshortAccepted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "kshort_accepted_total",
		Help:      "V0 candidates surviving daughter and topology selection.",
	})
	m.sameEventFills = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "same_event_fills_total",
		Help:      "Pairs filled into the unlike-sign spectrum.",
	})
	m.mixedFills = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mixed_fills_total",
		Help:      "Pairs filled into the mixed-event spectrum.",
	})
	m.mixedPairs = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mixed_event_pairs_total",
		Help:      "Distinct event pairs combined by the mixer.",
	})

	return m
}

// Registry returns the registry the metrics are registered with.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

func (m *Manager) EventProcessed() { m.eventsProcessed.Inc() }

func (m *Manager) EventSkipped(reason string) { m.eventsSkipped.WithLabelValues(reason).Inc() }

func (m *Manager) TrackSeen() { m.tracksSeen.Inc() }

func (m *Manager) PionAccepted() { m.pionsAccepted.Inc() }

func (m *Manager) V0Seen() { m.v0sSeen.Inc() }

func (m *Manager) KShortAccepted() { m.kshortAccepted.Inc() }

func (m *Manager) SameEventFill() { m.sameEventFills.Inc() }

func (m *Manager) MixedFill() { m.mixedFills.Inc() }

func (m *Manager) MixedPair() { m.mixedPairs.Inc() }

// Nop returns a Manager with an isolated registry, for tests and for
// callers that do not scrape metrics.
func Nop() *Manager { return NewManager() }
