package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements MetricsRecorderInterface on the default
// registry. Construct it once per process.
type PrometheusMetrics struct {
	messagesReceived     prometheus.Counter
	messagesAcknowledged *prometheus.CounterVec
	messagesRetained     *prometheus.CounterVec
	transactionsCreated  *prometheus.CounterVec
	plansExpanded        prometheus.Counter
	installmentsCreated  prometheus.Counter
	rulesApplied         *prometheus.CounterVec
	rulesSkipped         *prometheus.CounterVec
	ruleFailures         prometheus.Counter
	breakerOpenSkips     *prometheus.CounterVec
	processingDuration   prometheus.Histogram
	partitionLag         *prometheus.GaugeVec
}

// NewPrometheusMetrics registers and returns the pipeline metric set
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		messagesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_messages_received_total",
			Help: "Total number of inbound messages picked up from the log",
		}),
		messagesAcknowledged: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_messages_acknowledged_total",
			Help: "Total number of messages whose offset was committed",
		}, []string{"outcome"}),
		messagesRetained: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_messages_retained_total",
			Help: "Total number of messages left for redelivery",
		}, []string{"code"}),
		transactionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_transactions_materialized_total",
			Help: "Total number of transactions materialized",
		}, []string{"kind"}),
		plansExpanded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_plans_expanded_total",
			Help: "Total number of installment plans expanded",
		}),
		installmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_installments_created_total",
			Help: "Total number of installment children created",
		}),
		rulesApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_rules_applied_total",
			Help: "Total number of automation rules applied",
		}, []string{"action"}),
		rulesSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_rules_action_skipped_total",
			Help: "Total number of matched rules whose action was skipped",
		}, []string{"reason"}),
		ruleFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_rule_evaluation_failures_total",
			Help: "Total number of isolated rule evaluation failures",
		}),
		breakerOpenSkips: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_partition_breaker_open_total",
			Help: "Total number of poll ticks skipped while a partition breaker was open",
		}, []string{"partition"}),
		processingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipeline_message_processing_duration_milliseconds",
			Help:    "Message processing duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		partitionLag: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pipeline_partition_lag",
			Help: "Unacknowledged events per partition",
		}, []string{"partition"}),
	}
}

// IncrementCounter routes a named counter increment to its metric
func (m *PrometheusMetrics) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case "pipeline.messages.received":
		m.messagesReceived.Inc()
	case "pipeline.messages.acknowledged":
		m.messagesAcknowledged.WithLabelValues(labels["outcome"]).Inc()
	case "pipeline.messages.retained":
		m.messagesRetained.WithLabelValues(labels["code"]).Inc()
	case "pipeline.transactions.materialized":
		m.transactionsCreated.WithLabelValues(labels["kind"]).Inc()
	case "pipeline.plans.expanded":
		m.plansExpanded.Inc()
	case "pipeline.installments.created":
		m.installmentsCreated.Inc()
	case "pipeline.rules.applied":
		m.rulesApplied.WithLabelValues(labels["action"]).Inc()
	case "pipeline.rules.action_skipped":
		m.rulesSkipped.WithLabelValues(labels["reason"]).Inc()
	case "pipeline.rules.evaluation_failed":
		m.ruleFailures.Inc()
	case "pipeline.partition.breaker_open":
		m.breakerOpenSkips.WithLabelValues(labels["partition"]).Inc()
	}
}

// RecordProcessingTime records a processing duration
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "pipeline.message.processing" {
		m.processingDuration.Observe(float64(duration.Milliseconds()))
	}
}

// SetGauge sets a named gauge
func (m *PrometheusMetrics) SetGauge(name string, value float64, labels map[string]string) {
	if name == "pipeline.partition.lag" {
		m.partitionLag.WithLabelValues(labels["partition"]).Set(value)
	}
}
