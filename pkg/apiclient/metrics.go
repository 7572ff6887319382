package apiclient

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts pipeline outcomes. Labels never include URLs, tokens,
// organization ids or backend error codes; failures are labelled by status
// class only.
type Metrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the pipeline collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apiclient_requests_total",
			Help: "Total number of outbound API requests, by URL classification.",
		}, []string{"classification"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apiclient_failures_total",
			Help: "Total number of normalized request failures, by URL classification and HTTP status class.",
		}, []string{"classification", "status_class"}),
	}
}

func (m *Metrics) observeRequest(class string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(class).Inc()
}

func (m *Metrics) observeFailure(class string, status int) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(class, statusClass(status)).Inc()
}

// statusClass maps a status to "1xx".."5xx", or "0" when no response was
// received or the status is out of range.
func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "0"
	}
	return strconv.Itoa(status/100) + "xx"
}
