package delivery

import "github.com/prometheus/client_golang/prometheus"

var (
	sentEnvelopesMetric = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawk_catcher",
		Name:      "envelopes_sent_total",
		Help:      "Envelopes accepted by the collector",
	})
	failedEnvelopesMetric = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawk_catcher",
		Name:      "envelopes_failed_total",
		Help:      "Envelopes that failed to deliver",
	})
	droppedEnvelopesMetric = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawk_catcher",
		Name:      "envelopes_dropped_total",
		Help:      "Envelopes dropped before a request was made",
	})
)

func init() {
	prometheus.MustRegister(sentEnvelopesMetric)
	prometheus.MustRegister(failedEnvelopesMetric)
	prometheus.MustRegister(droppedEnvelopesMetric)
}
