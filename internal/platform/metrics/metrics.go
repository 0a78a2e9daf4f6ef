package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the consent and data-flow pipelines.
type Metrics struct {
	ConsentRequestsCreated    prometheus.Counter
	ConsentNotifications      *prometheus.CounterVec
	ConsentStatusTransitions  *prometheus.CounterVec
	DataFlowRequestsInitiated prometheus.Counter
	DataFlowRequestsFailed    prometheus.Counter
	DataFlowDeletesPublished  prometheus.Counter
	DeadLetteredMessages      prometheus.Counter
	GatewayCallLatency        *prometheus.HistogramVec
}

// New registers and returns HIU metrics collectors.
func New() *Metrics {
	return &Metrics{
		ConsentRequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hiu_consent_requests_created_total",
			Help: "Total number of consent requests created",
		}),
		ConsentNotifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hiu_consent_notifications_total",
			Help: "Total number of consent notifications handled, labeled by status",
		}, []string{"status"}),
		ConsentStatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hiu_consent_status_transitions_total",
			Help: "Total number of consent status transitions, labeled by target status",
		}, []string{"status"}),
		DataFlowRequestsInitiated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hiu_dataflow_requests_initiated_total",
			Help: "Total number of data-flow requests forwarded to the gateway",
		}),
		DataFlowRequestsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hiu_dataflow_requests_failed_total",
			Help: "Total number of data-flow request events that failed processing",
		}),
		DataFlowDeletesPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hiu_dataflow_deletes_published_total",
			Help: "Total number of data-flow delete broadcasts published",
		}),
		DeadLetteredMessages: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hiu_dead_lettered_messages_total",
			Help: "Total number of queue messages routed to a dead-letter topic",
		}),
		GatewayCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hiu_gateway_call_latency_seconds",
			Help:    "Latency of outbound gateway calls in seconds, labeled by path",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

func (m *Metrics) IncrementConsentRequestsCreated() {
	m.ConsentRequestsCreated.Inc()
}

func (m *Metrics) IncrementConsentNotifications(status string) {
	m.ConsentNotifications.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementConsentStatusTransitions(status string) {
	m.ConsentStatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementDataFlowRequestsInitiated() {
	m.DataFlowRequestsInitiated.Inc()
}

func (m *Metrics) IncrementDataFlowRequestsFailed() {
	m.DataFlowRequestsFailed.Inc()
}

func (m *Metrics) IncrementDataFlowDeletesPublished() {
	m.DataFlowDeletesPublished.Inc()
}

func (m *Metrics) IncrementDeadLetteredMessages() {
	m.DeadLetteredMessages.Inc()
}

func (m *Metrics) ObserveGatewayCallLatency(path string, seconds float64) {
	m.GatewayCallLatency.WithLabelValues(path).Observe(seconds)
}
