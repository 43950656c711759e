package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "pawsalon"

// BookingMetrics exposes counters/histograms for the booking engine.
// A nil *BookingMetrics is valid and records nothing.
type BookingMetrics struct {
	bookings             *prometheus.CounterVec
	commitLatency        prometheus.Histogram
	referenceCollisions  prometheus.Counter
	waitlistJoins        *prometheus.CounterVec
	statusTransitions    *prometheus.CounterVec
	availabilityDuration prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		commitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "commit_seconds",
			Help:      "Time spent inside the per-date critical section",
			Buckets:   prometheus.DefBuckets,
		}),
		referenceCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "reference_collisions_total",
			Help:      "Generated references that were already taken",
		}),
		waitlistJoins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "waitlist",
			Name:      "joins_total",
			Help:      "Waitlist join attempts by outcome",
		}, []string{"outcome"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointment",
			Name:      "status_transitions_total",
			Help:      "Applied appointment status transitions by target status",
		}, []string{"status"}),
		availabilityDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "query_seconds",
			Help:      "Latency of availability queries",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookings,
		m.commitLatency,
		m.referenceCollisions,
		m.waitlistJoins,
		m.statusTransitions,
		m.availabilityDuration,
	)
	return m
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveCommit(seconds float64) {
	if m == nil {
		return
	}
	m.commitLatency.Observe(seconds)
}

func (m *BookingMetrics) ObserveReferenceCollision() {
	if m == nil {
		return
	}
	m.referenceCollisions.Inc()
}

func (m *BookingMetrics) ObserveWaitlistJoin(outcome string) {
	if m == nil {
		return
	}
	m.waitlistJoins.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveStatusTransition(status string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveAvailability(seconds float64) {
	if m == nil {
		return
	}
	m.availabilityDuration.Observe(seconds)
}
