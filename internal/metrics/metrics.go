package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for lead intake and delivery.
type LeadMetrics struct {
	leadsTotal      *prometheus.CounterVec
	deliveriesTotal *prometheus.CounterVec
	deliveryLatency *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techflow",
			Subsystem: "leads",
			Name:      "received_total",
			Help:      "Lead submissions by source and outcome",
		}, []string{"source", "outcome"}),
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techflow",
			Subsystem: "leads",
			Name:      "sink_deliveries_total",
			Help:      "Lead deliveries per sink and status",
		}, []string{"sink", "status"}),
		deliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "techflow",
			Subsystem: "leads",
			Name:      "sink_latency_seconds",
			Help:      "Latency of a single sink delivery",
			Buckets:   prometheus.DefBuckets,
		}, []string{"sink"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.deliveriesTotal, m.deliveryLatency)
	return m
}

// ObserveLead counts one submission; outcome is accepted, invalid or error.
func (m *LeadMetrics) ObserveLead(source, outcome string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(source, outcome).Inc()
}

func (m *LeadMetrics) ObserveDelivery(sink string, ok bool, seconds float64) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failure"
	}
	m.deliveriesTotal.WithLabelValues(sink, status).Inc()
	m.deliveryLatency.WithLabelValues(sink).Observe(seconds)
}
