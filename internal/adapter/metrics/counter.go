package metrics

import "github.com/prometheus/client_golang/prometheus"

type counterReader interface {
	Value() int64
}

// NewCounterMetrics exposes the shared request counter as a gauge that is
// read at scrape time.
func NewCounterMetrics(reg prometheus.Registerer, counter counterReader) prometheus.GaugeFunc {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "request_counter",
		Help:      "Current value of the shared request counter.",
	}, func() float64 {
		return float64(counter.Value())
	})
	reg.MustRegister(g)
	return g
}
