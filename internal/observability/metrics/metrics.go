package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for the booking pipeline.
type SchedulingMetrics struct {
	bookingsTotal      *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	followUpsTotal     *prometheus.CounterVec
	scheduleLatency    prometheus.Histogram
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goham",
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goham",
			Subsystem: "alerts",
			Name:      "notifications_total",
			Help:      "Notification sends by channel and status",
		}, []string{"channel", "status"}),
		followUpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goham",
			Subsystem: "followup",
			Name:      "tasks_total",
			Help:      "Follow-up tasks by kind and status",
		}, []string{"kind", "status"}),
		scheduleLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goham",
			Subsystem: "scheduling",
			Name:      "pipeline_latency_seconds",
			Help:      "Latency of the full scheduling pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.notificationsTotal, m.followUpsTotal, m.scheduleLatency)
	return m
}

func (m *SchedulingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *SchedulingMetrics) ObserveNotification(channel string, sent bool) {
	if m == nil {
		return
	}
	status := "sent"
	if !sent {
		status = "failed"
	}
	m.notificationsTotal.WithLabelValues(channel, status).Inc()
}

func (m *SchedulingMetrics) ObserveFollowUp(kind, status string) {
	if m == nil {
		return
	}
	m.followUpsTotal.WithLabelValues(kind, status).Inc()
}

func (m *SchedulingMetrics) ObserveLatency(seconds float64) {
	if m == nil {
		return
	}
	m.scheduleLatency.Observe(seconds)
}
