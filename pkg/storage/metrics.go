package storage

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for link storage. A nil *Metrics is valid and records nothing.
type Metrics struct {
	linksEncoded   prometheus.Counter
	linksDecoded   prometheus.Counter
	handlesEncoded prometheus.Counter
	handlesDecoded prometheus.Counter
	malformedLinks prometheus.Counter
	linkArity      prometheus.Histogram
}

// NewMetrics creates the storage metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		linksEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freyjalink_links_encoded_total",
			Help: "Total number of links encoded and written",
		}),
		linksDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freyjalink_links_decoded_total",
			Help: "Total number of links read and decoded",
		}),
		handlesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freyjalink_handles_encoded_total",
			Help: "Total number of handles written as link targets",
		}),
		handlesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freyjalink_handles_decoded_total",
			Help: "Total number of handles read as link targets",
		}),
		malformedLinks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freyjalink_malformed_links_total",
			Help: "Link records rejected because their size is not a multiple of the handle size",
		}),
		linkArity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "freyjalink_link_arity",
			Help:    "Number of targets per written link",
			Buckets: []float64{0, 1, 2, 3, 4, 8, 16, 64, 256},
		}),
	}

	reg.MustRegister(
		m.linksEncoded,
		m.linksDecoded,
		m.handlesEncoded,
		m.handlesDecoded,
		m.malformedLinks,
		m.linkArity,
	)
	return m
}

func (m *Metrics) observeEncode(arity int) {
	if m == nil {
		return
	}
	m.linksEncoded.Inc()
	m.handlesEncoded.Add(float64(arity))
	m.linkArity.Observe(float64(arity))
}

func (m *Metrics) observeDecode(arity int) {
	if m == nil {
		return
	}
	m.linksDecoded.Inc()
	m.handlesDecoded.Add(float64(arity))
}

func (m *Metrics) observeMalformed() {
	if m == nil {
		return
	}
	m.malformedLinks.Inc()
}
