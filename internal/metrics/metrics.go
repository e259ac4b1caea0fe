package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

var (
	launchesDesc = prometheus.NewDesc(
		"launchdash_dataset_launches",
		"Launch records loaded at startup by site and outcome class",
		[]string{"site", "class"},
		nil,
	)

	derivationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_derivations_total",
		Help: "Chart derivations by output and site scope",
	}, []string{"output", "scope"})

	derivationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "launchdash_derivation_duration_seconds",
		Help:    "Duration of chart derivations",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}, []string{"output"})
)

// LaunchCollector is a custom Prometheus collector that reports the loaded
// dataset's launch counts on each scrape.
type LaunchCollector struct {
	table *dataset.Table
}

// NewLaunchCollector creates a collector over table.
func NewLaunchCollector(table *dataset.Table) *LaunchCollector {
	return &LaunchCollector{table: table}
}

// Describe sends the metric descriptor to the channel.
func (c *LaunchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- launchesDesc
}

// Collect emits one gauge per site and outcome class.
func (c *LaunchCollector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[string][2]int)
	for r := range c.table.All() {
		cnt := counts[r.Site]
		cnt[r.Class()]++
		counts[r.Site] = cnt
	}
	for _, site := range c.table.Sites() {
		for class, n := range counts[site] {
			ch <- prometheus.MustNewConstMetric(
				launchesDesc,
				prometheus.GaugeValue,
				float64(n),
				site,
				strconv.Itoa(class),
			)
		}
	}
}

var registerOnce sync.Once

// Init registers the dataset collector with the default registry.
// Must be called once at startup.
func Init(table *dataset.Table) {
	registerOnce.Do(func() {
		prometheus.MustRegister(NewLaunchCollector(table))
	})
}

// ObserveDerivation records one derivation. It matches the binding
// observer signature.
func ObserveDerivation(output string, state models.FilterState, elapsed time.Duration) {
	scope := "site"
	if state.IsAllSites() {
		scope = "all"
	}
	derivationsTotal.WithLabelValues(output, scope).Inc()
	derivationDuration.WithLabelValues(output).Observe(elapsed.Seconds())
}
