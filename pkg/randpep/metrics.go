package randpep

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are counts for one run. They are only written out if there
// is somewhere to write them, in the node exporter textfile format.
type Metrics struct {
	loaded  prometheus.Counter
	drawn   prometheus.Counter
	skipped prometheus.Counter
	emitted prometheus.Counter
	pepLen  prometheus.Histogram
}

// NewMetrics registers our counters with registerer.
func NewMetrics(registerer prometheus.Registerer, p Params) *Metrics {
	m := &Metrics{}
	m.loaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "records_loaded_total",
		Help: "Total number of sequences read from the input.",
	})
	m.drawn = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "records_drawn_total",
		Help: "Total number of identifiers drawn before length filtering.",
	})
	m.skipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "records_skipped_total",
		Help: "Total number of drawn sequences too short to use.",
	})
	m.emitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "peptides_emitted_total",
		Help: "Total number of peptides written.",
	})
	n := p.MaxPepLen - p.MinPepLen + 1
	if n < 1 {
		n = 1
	}
	m.pepLen = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "peptide_length",
		Help:    "Length of peptides written.",
		Buckets: prometheus.LinearBuckets(float64(p.MinPepLen), 1, n),
	})

	r := prometheus.WrapRegistererWithPrefix("randpep_", registerer)
	r.MustRegister(m.loaded, m.drawn, m.skipped, m.emitted, m.pepLen)
	return m
}

// observe adds the results of one sampling run.
func (m *Metrics) observe(nseq int, t tally, peps []Peptide) {
	m.loaded.Add(float64(nseq))
	m.drawn.Add(float64(t.drawn))
	m.skipped.Add(float64(t.skipped))
	m.emitted.Add(float64(len(peps)))
	for _, p := range peps {
		m.pepLen.Observe(float64(len(p.Seq)))
	}
}
