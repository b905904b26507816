package currency

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors updated by a [RateCache].
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	fetches *prometheus.CounterVec
	rates   prometheus.Gauge
	changes prometheus.Counter
}

// NewMetrics returns unregistered collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exchange_rate_fetch_total",
				Help:      "Total number of exchange rate fetches by result.",
			},
			[]string{"result"},
		),
		rates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exchange_rates",
			Help:      "Number of currencies in the exchange rate table.",
		}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exchange_rate_changes_total",
			Help:      "Total number of per-currency exchange rate changes.",
		}),
	}
}

// Collectors returns the collectors for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.fetches, m.rates, m.changes}
}

// MustRegister registers the collectors with reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Collectors()...)
}

func (m *Metrics) observeFetch(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetches.WithLabelValues(result).Inc()
}

func (m *Metrics) observeTable(size, changed int) {
	if m == nil {
		return
	}
	m.rates.Set(float64(size))
	m.changes.Add(float64(changed))
}
